package console

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/kronbank/kronbank/internal/account"
	"github.com/kronbank/kronbank/internal/cash"
	"github.com/kronbank/kronbank/internal/txlog"
	"github.com/kronbank/kronbank/internal/ui"
)

func newAccountFixture(t *testing.T) (*account.Service, context.Context) {
	t.Helper()
	ctx := context.Background()
	repo := account.NewMemoryRepository()
	svc := account.NewService(repo, cash.NewSimulatedCounter(), txlog.NewMemoryRecorder())

	acct, err := account.NewAccount("1001", "Salary account", decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, acct))
	require.NoError(t, repo.LinkToCard(ctx, "1001", "123456789012"))
	return svc, ctx
}

func TestDepositFlow(t *testing.T) {
	svc, ctx := newAccountFixture(t)
	screen := &ui.Scripted{
		Inputs:   []string{"100", "2", "200", "1", "0"},
		Confirms: []bool{true},
	}
	handler := NewTransactionHandler(screen, svc)

	handler.Deposit(ctx, "1001")
	require.True(t, screen.Saw("1 400,00 kr"), "messages: %v", screen.Messages)

	acct, err := svc.Get(ctx, "1001")
	require.NoError(t, err)
	require.True(t, acct.Balance().Equal(decimal.NewFromInt(1400)))
}

func TestDepositFlowDeclined(t *testing.T) {
	svc, ctx := newAccountFixture(t)
	screen := &ui.Scripted{
		Inputs:   []string{"100", "2", "0"},
		Confirms: []bool{false},
	}
	handler := NewTransactionHandler(screen, svc)

	handler.Deposit(ctx, "1001")
	require.True(t, screen.Saw("not confirmed"))

	acct, err := svc.Get(ctx, "1001")
	require.NoError(t, err)
	require.True(t, acct.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestDepositFlowInvalidDenomination(t *testing.T) {
	svc, ctx := newAccountFixture(t)
	screen := &ui.Scripted{
		Inputs:   []string{"50", "2", "0"},
		Confirms: []bool{true},
	}
	handler := NewTransactionHandler(screen, svc)

	handler.Deposit(ctx, "1001")
	require.True(t, screen.Saw("invalid note denomination: 50"), "errors: %v", screen.Errors)

	acct, err := svc.Get(ctx, "1001")
	require.NoError(t, err)
	require.True(t, acct.Balance().Equal(decimal.NewFromInt(1000)))
}

func TestDepositFlowNothingInserted(t *testing.T) {
	svc, ctx := newAccountFixture(t)
	screen := &ui.Scripted{Inputs: []string{"0"}}
	handler := NewTransactionHandler(screen, svc)

	handler.Deposit(ctx, "1001")
	require.True(t, screen.Saw("Nothing to deposit"))
}

func TestWithdrawFlow(t *testing.T) {
	svc, ctx := newAccountFixture(t)

	t.Run("insufficient funds", func(t *testing.T) {
		screen := &ui.Scripted{Inputs: []string{"1200"}}
		NewTransactionHandler(screen, svc).Withdraw(ctx, "1001")
		require.True(t, screen.Saw("insufficient balance"))
	})

	t.Run("bad amount input", func(t *testing.T) {
		screen := &ui.Scripted{Inputs: []string{"a lot"}}
		NewTransactionHandler(screen, svc).Withdraw(ctx, "1001")
		require.True(t, screen.Saw("Enter a valid amount"))
	})

	t.Run("success", func(t *testing.T) {
		screen := &ui.Scripted{Inputs: []string{"250.50"}}
		NewTransactionHandler(screen, svc).Withdraw(ctx, "1001")
		require.True(t, screen.Saw("749,50 kr"), "messages: %v", screen.Messages)
	})
}

func TestShowBalance(t *testing.T) {
	svc, ctx := newAccountFixture(t)
	screen := &ui.Scripted{}
	handler := NewTransactionHandler(screen, svc)

	handler.ShowBalance(ctx, "1001")
	require.True(t, screen.Saw("1 000,00 kr"))

	handler.ShowBalance(ctx, "9999")
	require.True(t, screen.Saw("Account not found"))
}

func TestChooseAccount(t *testing.T) {
	svc, ctx := newAccountFixture(t)

	t.Run("linked account accepted", func(t *testing.T) {
		screen := &ui.Scripted{Inputs: []string{"1001"}}
		acct, ok := NewAccountHandler(screen, svc).Choose(ctx, "123456789012")
		require.True(t, ok)
		require.Equal(t, "1001", acct.Number())
	})

	t.Run("unlinked account refused until a linked one is given", func(t *testing.T) {
		screen := &ui.Scripted{Inputs: []string{"2001", "1001"}}
		acct, ok := NewAccountHandler(screen, svc).Choose(ctx, "123456789012")
		require.True(t, ok)
		require.Equal(t, "1001", acct.Number())
		require.True(t, screen.Saw("not linked"))
	})

	t.Run("card without accounts", func(t *testing.T) {
		screen := &ui.Scripted{}
		_, ok := NewAccountHandler(screen, svc).Choose(ctx, "098765432109")
		require.False(t, ok)
		require.True(t, screen.Saw("No accounts are linked"))
	})
}
