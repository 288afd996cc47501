package auth

import (
	"context"
	"errors"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	cards map[string]*Card
}

// NewMemoryRepository builds an in-memory card store.
func NewMemoryRepository() Repository {
	return &memoryRepository{cards: make(map[string]*Card)}
}

func (r *memoryRepository) Save(_ context.Context, card *Card) error {
	if card == nil {
		return errors.New("card is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[card.Number()] = card
	return nil
}

func (r *memoryRepository) FindByNumber(_ context.Context, number string) (*Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[number]
	if !ok {
		return nil, ErrCardNotFound
	}
	return card, nil
}
