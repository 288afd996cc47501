package console

import (
	"context"
	"fmt"

	"github.com/kronbank/kronbank/internal/account"
	"github.com/kronbank/kronbank/internal/ui"
)

// AccountHandler lets the user pick one of the accounts linked to their card.
type AccountHandler struct {
	ui       ui.UserInterface
	accounts *account.Service
}

// NewAccountHandler builds the account selection handler.
func NewAccountHandler(u ui.UserInterface, accounts *account.Service) *AccountHandler {
	return &AccountHandler{ui: u, accounts: accounts}
}

// Choose lists the accounts linked to the card and prompts for a selection.
// Numbers not linked to the card are refused.
func (h *AccountHandler) Choose(ctx context.Context, cardNumber string) (account.Account, bool) {
	linked, err := h.accounts.AccountsForCard(ctx, cardNumber)
	if err != nil || len(linked) == 0 {
		h.ui.Error("No accounts are linked to this card.")
		return account.Account{}, false
	}

	h.ui.Message("Accounts linked to your card:")
	for _, acct := range linked {
		h.ui.Message(fmt.Sprintf("  %s  %s", acct.Number(), acct.Name()))
	}

	for {
		number := h.ui.Input("Choose an account number: ")
		if number == "" {
			return account.Account{}, false
		}
		for _, acct := range linked {
			if acct.Number() == number {
				return acct, true
			}
		}
		h.ui.Error("That account is not linked to your card.")
	}
}
