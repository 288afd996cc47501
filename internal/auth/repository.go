package auth

import (
	"context"
	"errors"
)

// ErrCardNotFound occurs when no card is registered under the given number.
var ErrCardNotFound = errors.New("card not found")

// Repository persists cards. Cards are looked up by card number; saving a
// card under an existing number replaces the stored entry.
type Repository interface {
	Save(ctx context.Context, card *Card) error
	FindByNumber(ctx context.Context, number string) (*Card, error)
}
