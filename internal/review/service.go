package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/core"
	"go.uber.org/zap"
)

type Service struct {
	repo     Repository
	branches core.BranchReader
	log      *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, branches core.BranchReader, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		branches: branches,
		log:      log,
		now:      time.Now,
	}
}

// Submission is what a visitor sends from the review form.
type Submission struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	BranchID int    `json:"branch_id"`
}

func (s *Service) ListForBranch(ctx context.Context, branchID int) ([]Review, error) {
	return s.repo.ListByBranch(ctx, branchID)
}

// --------------------------------------------------
// Submit review
// --------------------------------------------------
func (s *Service) Submit(ctx context.Context, sub Submission) (*Review, error) {
	name := strings.TrimSpace(sub.Name)
	text := strings.TrimSpace(sub.Text)

	if name == "" || text == "" || sub.Rating == 0 || sub.BranchID == 0 {
		return nil, ErrMissingFields
	}

	if sub.Rating < MinRating || sub.Rating > MaxRating {
		return nil, ErrInvalidRating
	}

	branchName, err := s.branches.BranchName(ctx, sub.BranchID)
	if err != nil {
		if errors.Is(err, core.ErrBranchNotFound) {
			return nil, ErrUnknownBranch
		}
		return nil, err
	}

	rv := &Review{
		BranchID:   sub.BranchID,
		BranchName: branchName,
		Name:       name,
		Rating:     sub.Rating,
		Text:       text,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	s.log.Info("review interaction",
		zap.String("event", "submit_review"),
		zap.Int("branch_id", rv.BranchID),
		zap.Int("rating", rv.Rating),
		zap.Int64("review_id", rv.ID),
	)

	return rv, nil
}
