package branch

import "context"

type Repository interface {
	List(ctx context.Context) ([]Branch, error)
	Get(ctx context.Context, id int) (*Branch, error)
}

// PreferenceStore remembers the branch a visitor picked last, across
// browsing sessions.
type PreferenceStore interface {
	SaveSelection(ctx context.Context, visitorID string, branchID int) error
	LoadSelection(ctx context.Context, visitorID string) (int, error)
}
