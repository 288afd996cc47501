package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kronbank/kronbank/internal/account"
	"github.com/kronbank/kronbank/internal/cash"
	"github.com/kronbank/kronbank/internal/outcome"
	"github.com/kronbank/kronbank/internal/ui"
)

// TransactionHandler drives the deposit, withdrawal and balance flows.
type TransactionHandler struct {
	ui       ui.UserInterface
	accounts *account.Service
}

// NewTransactionHandler builds the transaction flow handler.
func NewTransactionHandler(u ui.UserInterface, accounts *account.Service) *TransactionHandler {
	return &TransactionHandler{ui: u, accounts: accounts}
}

// Deposit collects a batch of notes, asks for confirmation and applies the
// deposit. Denomination validation happens in the service so the batch
// stays all-or-nothing.
func (h *TransactionHandler) Deposit(ctx context.Context, accountNumber string) {
	h.ui.Message(fmt.Sprintf("Accepted denominations: %v kr", cash.Denominations))

	notes := make(map[int]int)
	for {
		raw := h.ui.Input("Denomination (0 to finish): ")
		if raw == "" || raw == "0" {
			break
		}
		denomination, err := strconv.Atoi(raw)
		if err != nil {
			h.ui.Error("Enter a note value.")
			continue
		}

		raw = h.ui.Input(fmt.Sprintf("Number of %d kr notes: ", denomination))
		count, err := strconv.Atoi(raw)
		if err != nil || count <= 0 {
			h.ui.Error("Enter a positive note count.")
			continue
		}
		notes[denomination] += count
	}

	if len(notes) == 0 {
		h.ui.Message("Nothing to deposit.")
		return
	}

	confirmed := h.ui.Confirm("Confirm deposit")
	h.renderTransaction(h.accounts.Deposit(ctx, accountNumber, notes, confirmed))
}

// Withdraw prompts for an amount and applies the withdrawal.
func (h *TransactionHandler) Withdraw(ctx context.Context, accountNumber string) {
	raw := h.ui.Input("Amount to withdraw: ")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		h.ui.Error("Enter a valid amount.")
		return
	}
	h.renderTransaction(h.accounts.Withdraw(ctx, accountNumber, amount))
}

// ShowBalance prints the formatted account balance.
func (h *TransactionHandler) ShowBalance(ctx context.Context, accountNumber string) {
	formatted, err := h.accounts.FormattedBalance(ctx, accountNumber)
	if err != nil {
		h.ui.Error("Account not found.")
		return
	}
	h.ui.Message("Balance: " + formatted)
}

func (h *TransactionHandler) renderTransaction(res outcome.Transaction) {
	if res.Success {
		h.ui.Message("Done. New balance: " + account.FormatAmount(res.NewBalance))
		return
	}
	h.ui.Error(res.Message)
}
