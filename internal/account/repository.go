package account

import (
	"context"
	"errors"
)

// ErrAccountNotFound occurs when no account is stored under the given number.
var ErrAccountNotFound = errors.New("account not found")

// Repository persists account snapshots and their links to cards.
//
// One card may reach several accounts (salary plus savings) and one account
// may in principle be reached from several cards (a joint account), so links
// are stored bidirectionally.
type Repository interface {
	// Save upserts the account under its number.
	Save(ctx context.Context, acct Account) error
	// FindByNumber returns the stored account or ErrAccountNotFound.
	FindByNumber(ctx context.Context, number string) (Account, error)
	// LinkToCard associates an existing account with a card. Linking an
	// unknown account fails and records nothing in either direction.
	LinkToCard(ctx context.Context, accountNumber, cardNumber string) error
	// FindByCardNumber returns the accounts linked to the card in link
	// order; an empty slice when there are none.
	FindByCardNumber(ctx context.Context, cardNumber string) ([]Account, error)
}
