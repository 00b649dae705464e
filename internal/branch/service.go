package branch

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repo        Repository
	preferences PreferenceStore
	log         *zap.Logger
}

func NewService(repo Repository, preferences PreferenceStore, log *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		preferences: preferences,
		log:         log,
	}
}

func (s *Service) ListBranches(ctx context.Context) ([]Branch, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBranch(ctx context.Context, id int) (*Branch, error) {
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Selected branch (per visitor, survives sessions)
// --------------------------------------------------

func (s *Service) SelectBranch(ctx context.Context, visitorID string, branchID int) (*Branch, error) {
	if _, err := uuid.Parse(visitorID); err != nil {
		return nil, ErrInvalidVisitor
	}

	b, err := s.repo.Get(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if err := s.preferences.SaveSelection(ctx, visitorID, branchID); err != nil {
		return nil, err
	}

	s.log.Info("branch interaction",
		zap.String("event", "select_branch"),
		zap.String("visitor_id", visitorID),
		zap.Int("branch_id", b.ID),
		zap.String("branch_name", b.Name),
	)

	return b, nil
}

// SelectedBranch returns ErrNoSelection when nothing was saved or the
// saved branch no longer exists.
func (s *Service) SelectedBranch(ctx context.Context, visitorID string) (*Branch, error) {
	if _, err := uuid.Parse(visitorID); err != nil {
		return nil, ErrInvalidVisitor
	}

	id, err := s.preferences.LoadSelection(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrBranchNotFound) {
		return nil, ErrNoSelection
	}
	return b, err
}

// BranchName implements core.BranchReader.
func (s *Service) BranchName(ctx context.Context, branchID int) (string, error) {
	b, err := s.repo.Get(ctx, branchID)
	if err != nil {
		return "", err
	}
	return b.Name, nil
}

// CountBranches implements core.BranchReader.
func (s *Service) CountBranches(ctx context.Context) (int, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(branches), nil
}
