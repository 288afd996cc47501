package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kronbank/kronbank/internal/account"
	"github.com/kronbank/kronbank/internal/auth"
)

// Apply loads the demo cards, accounts and card links used for development
// and demonstration. The entry point calls this explicitly; no demo data
// lives as implicit global state.
func Apply(ctx context.Context, cards *auth.Service, accounts account.Repository) error {
	demoCards := []struct {
		number, expiry, pin string
	}{
		{"123456789012", "12/25", "1234"},
		{"098765432109", "06/26", "4321"},
	}
	for _, c := range demoCards {
		card, err := auth.NewCard(c.number, c.expiry, c.pin)
		if err != nil {
			return fmt.Errorf("seed card %s: %w", c.number, err)
		}
		if err := cards.RegisterCard(ctx, card); err != nil {
			return fmt.Errorf("register card %s: %w", c.number, err)
		}
	}

	demoAccounts := []struct {
		number, name string
		balance      int64
	}{
		{"1001", "Salary account", 500},
		{"1002", "Savings account", 1200},
		{"2001", "Travel account", 3000},
	}
	for _, a := range demoAccounts {
		acct, err := account.NewAccount(a.number, a.name, decimal.NewFromInt(a.balance))
		if err != nil {
			return fmt.Errorf("seed account %s: %w", a.number, err)
		}
		if err := accounts.Save(ctx, acct); err != nil {
			return fmt.Errorf("save account %s: %w", a.number, err)
		}
	}

	links := [][2]string{
		{"1001", "123456789012"},
		{"1002", "123456789012"},
		{"2001", "098765432109"},
	}
	for _, l := range links {
		if err := accounts.LinkToCard(ctx, l[0], l[1]); err != nil {
			return fmt.Errorf("link account %s to card %s: %w", l[0], l[1], err)
		}
	}

	return nil
}
