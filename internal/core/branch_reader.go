package core

import (
	"context"
	"errors"
)

var ErrBranchNotFound = errors.New("branch not found")

// BranchReader is what reviews and tips need to know about branches.
type BranchReader interface {
	BranchName(ctx context.Context, branchID int) (string, error)
	CountBranches(ctx context.Context) (int, error)
}
