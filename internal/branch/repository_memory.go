package branch

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	branches []Branch
}

func NewInMemoryRepository(branches []Branch) *InMemoryRepository {
	return &InMemoryRepository{branches: branches}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Branch, error) {
	out := make([]Branch, len(r.branches))
	copy(out, r.branches)
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int) (*Branch, error) {
	for _, b := range r.branches {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, ErrBranchNotFound
}

type InMemoryPreferenceStore struct {
	mu         sync.RWMutex
	selections map[string]int
}

func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{selections: make(map[string]int)}
}

func (s *InMemoryPreferenceStore) SaveSelection(ctx context.Context, visitorID string, branchID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[visitorID] = branchID
	return nil
}

func (s *InMemoryPreferenceStore) LoadSelection(ctx context.Context, visitorID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.selections[visitorID]
	if !ok {
		return 0, ErrNoSelection
	}
	return id, nil
}
