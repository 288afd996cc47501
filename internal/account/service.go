package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kronbank/kronbank/internal/cash"
	"github.com/kronbank/kronbank/internal/outcome"
	"github.com/kronbank/kronbank/internal/txlog"
)

// Service holds the business rules for account lookup, balance checks and
// cash movements. Expected business failures come back as outcome values,
// never as Go errors.
type Service struct {
	repo     Repository
	counter  cash.Counter
	recorder txlog.Recorder
}

// NewService builds an account service.
func NewService(repo Repository, counter cash.Counter, recorder txlog.Recorder) *Service {
	return &Service{repo: repo, counter: counter, recorder: recorder}
}

// Get fetches the account stored under number.
func (s *Service) Get(ctx context.Context, number string) (Account, error) {
	return s.repo.FindByNumber(ctx, number)
}

// AccountsForCard lists the accounts linked to the card, in link order.
func (s *Service) AccountsForCard(ctx context.Context, cardNumber string) ([]Account, error) {
	return s.repo.FindByCardNumber(ctx, cardNumber)
}

// CreateAccount registers a new account. An account number already in use
// is refused; balance mutations go through ReplaceBalance, not here.
func (s *Service) CreateAccount(ctx context.Context, acct Account) outcome.Operation {
	_, err := s.repo.FindByNumber(ctx, acct.Number())
	switch {
	case err == nil:
		return outcome.OperationFailed(fmt.Sprintf("account %s already exists", acct.Number()), outcome.CodeAccountExists)
	case !errors.Is(err, ErrAccountNotFound):
		return outcome.OperationFailed(err.Error(), outcome.CodeRepositoryError)
	}

	if err := s.repo.Save(ctx, acct); err != nil {
		return outcome.OperationFailed(err.Error(), outcome.CodeRepositoryError)
	}
	return outcome.OperationOK("account created")
}

// ReplaceBalance is the sole mutation primitive: it stores a fresh account
// snapshot carrying the same number and name with the new balance.
func (s *Service) ReplaceBalance(ctx context.Context, number string, newBalance decimal.Decimal) (Account, error) {
	acct, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return Account{}, err
	}

	updated, err := NewAccount(acct.Number(), acct.Name(), newBalance)
	if err != nil {
		return Account{}, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return Account{}, err
	}
	return updated, nil
}

// Exists reports whether an account is stored under number.
func (s *Service) Exists(ctx context.Context, number string) outcome.Operation {
	_, err := s.repo.FindByNumber(ctx, number)
	switch {
	case err == nil:
		return outcome.OperationOK("account exists")
	case errors.Is(err, ErrAccountNotFound):
		return outcome.OperationFailed("account not found", outcome.CodeAccountNotFound)
	default:
		return outcome.OperationFailed(err.Error(), outcome.CodeRepositoryError)
	}
}

// HasEnoughBalance verifies that the account exists and can cover amount.
func (s *Service) HasEnoughBalance(ctx context.Context, number string, amount decimal.Decimal) outcome.Operation {
	acct, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return outcome.OperationFailed("account not found", outcome.CodeAccountNotFound)
		}
		return outcome.OperationFailed(err.Error(), outcome.CodeRepositoryError)
	}

	if acct.Balance().GreaterThanOrEqual(amount) {
		return outcome.OperationOK("sufficient balance available")
	}
	return outcome.OperationFailed(
		fmt.Sprintf("insufficient balance: available %s kr, requested %s kr",
			acct.Balance().StringFixed(2), amount.StringFixed(2)),
		outcome.CodeInsufficientFunds)
}

// Withdraw takes amount out of the account if the balance covers it.
func (s *Service) Withdraw(ctx context.Context, number string, amount decimal.Decimal) outcome.Transaction {
	if amount.Sign() <= 0 {
		return outcome.TransactionFailed("amount must be greater than zero", outcome.CodeInvalidAmount)
	}

	acct, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return outcome.TransactionFailed("account not found", outcome.CodeAccountNotFound)
	}

	if acct.Balance().LessThan(amount) {
		return outcome.TransactionFailed(
			fmt.Sprintf("insufficient balance: available %s kr", acct.Balance().StringFixed(2)),
			outcome.CodeInsufficientFunds)
	}

	updated, err := s.ReplaceBalance(ctx, number, acct.Balance().Sub(amount))
	if err != nil {
		return outcome.TransactionFailed(fmt.Sprintf("withdrawal failed: %v", err), outcome.CodeWithdrawalFailed)
	}

	if s.recorder != nil {
		_ = s.recorder.Record(ctx, txlog.NewEntry(txlog.KindWithdrawal, number, amount))
	}
	return outcome.TransactionOK(updated.Balance())
}

// Deposit adds the value of the inserted notes to the account. The batch is
// all-or-nothing: an unconfirmed deposit or a single invalid denomination
// leaves the account untouched.
func (s *Service) Deposit(ctx context.Context, number string, notes map[int]int, confirmed bool) outcome.Transaction {
	acct, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return outcome.TransactionFailed("account not found", outcome.CodeAccountNotFound)
	}

	if !confirmed {
		return outcome.TransactionFailed("deposit cancelled: not confirmed", outcome.CodeValidationError)
	}

	sum, err := s.counter.CountAndVerify(notes)
	if err != nil {
		return outcome.TransactionFailed(err.Error(), outcome.CodeInvalidAmount)
	}

	updated, err := s.ReplaceBalance(ctx, number, acct.Balance().Add(sum))
	if err != nil {
		return outcome.TransactionFailed(fmt.Sprintf("deposit failed: %v", err), outcome.CodeDepositFailed)
	}

	if s.recorder != nil {
		_ = s.recorder.Record(ctx, txlog.NewEntry(txlog.KindDeposit, number, sum))
	}
	return outcome.TransactionOK(updated.Balance())
}

// FormattedBalance returns the display rendering of the account balance.
func (s *Service) FormattedBalance(ctx context.Context, number string) (string, error) {
	acct, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return "", err
	}
	return acct.FormattedBalance(), nil
}
