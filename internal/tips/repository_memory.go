package tips

import (
	"context"
	"time"
)

// InMemoryRepository serves a fixed snapshot of the tip jar.
type InMemoryRepository struct {
	amount int
	people int
	recent []Tip
}

func NewInMemoryRepository(amount, people int, recent []Tip) *InMemoryRepository {
	return &InMemoryRepository{amount: amount, people: people, recent: recent}
}

// NewSeededRepository returns the figures the site launched with.
func NewSeededRepository(now time.Time) *InMemoryRepository {
	return NewInMemoryRepository(12450, 247, []Tip{
		{Amount: 500, BranchName: "KONO Центр", CreatedAt: now.Add(-2 * time.Hour)},
		{Amount: 200, BranchName: "KONO Юг", CreatedAt: now.Add(-24 * time.Hour)},
		{Amount: 1000, BranchName: "KONO Север", CreatedAt: now.Add(-48 * time.Hour)},
	})
}

func (r *InMemoryRepository) Totals(ctx context.Context) (int, int, error) {
	return r.amount, r.people, nil
}

func (r *InMemoryRepository) Recent(ctx context.Context, limit int) ([]Tip, error) {
	if limit > len(r.recent) {
		limit = len(r.recent)
	}
	out := make([]Tip, limit)
	copy(out, r.recent[:limit])
	return out, nil
}
