package tips

import (
	"context"
	"fmt"

	"github.com/AlexeyAndrrr/konoramenidk/internal/core"
)

type Service struct {
	repo     Repository
	branches core.BranchReader
}

func NewService(repo Repository, branches core.BranchReader) *Service {
	return &Service{repo: repo, branches: branches}
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	amount, people, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("tip totals: %w", err)
	}

	recent, err := s.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent tips: %w", err)
	}

	branches, err := s.branches.CountBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("count branches: %w", err)
	}

	return &Stats{
		TotalAmount:   amount,
		TotalPeople:   people,
		TotalBranches: branches,
		RecentTips:    recent,
	}, nil
}
