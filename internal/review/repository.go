package review

import "context"

type Repository interface {
	// ListByBranch returns reviews newest first.
	ListByBranch(ctx context.Context, branchID int) ([]Review, error)
	Create(ctx context.Context, r *Review) error
}
