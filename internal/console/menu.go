// Package console wires the interactive ATM session: login, account
// selection and the transaction menu loop.
package console

import (
	"context"
	"log/slog"

	"github.com/kronbank/kronbank/internal/ui"
)

// Menu coordinates the handlers into a full ATM session.
type Menu struct {
	ui           ui.UserInterface
	auth         *AuthHandler
	accounts     *AccountHandler
	transactions *TransactionHandler
	logger       *slog.Logger
}

// NewMenu builds the session coordinator.
func NewMenu(u ui.UserInterface, auth *AuthHandler, accounts *AccountHandler, transactions *TransactionHandler, logger *slog.Logger) *Menu {
	return &Menu{ui: u, auth: auth, accounts: accounts, transactions: transactions, logger: logger}
}

// Run drives one session: authenticate, pick an account, then loop over
// the transaction menu until the user quits. Every failure is rendered and
// control returns to the menu; nothing here panics or exits the process.
func (m *Menu) Run(ctx context.Context) {
	m.ui.Message("Welcome to the KronBank ATM!")

	cardNumber, ok := m.auth.Login(ctx)
	if !ok {
		m.ui.Message("Exiting after failed login.")
		return
	}

	acct, ok := m.accounts.Choose(ctx, cardNumber)
	if !ok {
		return
	}
	current := acct.Number()

	for {
		m.ui.Message("")
		m.ui.Message("--- Main menu ---")
		m.ui.Message("1. Deposit")
		m.ui.Message("2. Withdraw")
		m.ui.Message("3. Show balance")
		m.ui.Message("4. Switch account")
		m.ui.Message("0. Quit")

		switch m.ui.Input("Choose an option: ") {
		case "1":
			m.transactions.Deposit(ctx, current)
		case "2":
			m.transactions.Withdraw(ctx, current)
		case "3":
			m.transactions.ShowBalance(ctx, current)
		case "4":
			if next, ok := m.accounts.Choose(ctx, cardNumber); ok {
				current = next.Number()
			}
		case "0", "":
			m.ui.Message("Goodbye!")
			m.logger.Info("session ended", "card", cardNumber)
			return
		default:
			m.ui.Error("Unknown option.")
		}
	}
}
