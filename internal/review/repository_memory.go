package review

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews map[int][]Review
	nextID  int64
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	r := &InMemoryRepository{
		reviews: make(map[int][]Review),
		nextID:  1,
	}
	for _, rv := range seed {
		rv := rv
		_ = r.Create(context.Background(), &rv)
	}
	return r
}

func (r *InMemoryRepository) ListByBranch(ctx context.Context, branchID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Review, len(r.reviews[branchID]))
	copy(out, r.reviews[branchID])

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, rv *Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv.ID = r.nextID
	r.nextID++
	r.reviews[rv.BranchID] = append(r.reviews[rv.BranchID], *rv)
	return nil
}
