package decks

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Deck
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Deck),
	}
}

// Create stores a finished deck under its ID.
func (r *MemoryRepo) Create(ctx context.Context, deck Deck) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[deck.ID] = deck
	return nil
}

// GetByID returns a deck by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Deck, error) {
	if err := ctx.Err(); err != nil {
		return Deck{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	deck, ok := r.data[id]
	if !ok {
		return Deck{}, ErrNotFound
	}
	return deck, nil
}
