package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kronbank/kronbank/internal/auth"
	"github.com/kronbank/kronbank/internal/logging"
	"github.com/kronbank/kronbank/internal/ui"
)

func newAuthFixture(t *testing.T) (*auth.Service, context.Context) {
	t.Helper()
	ctx := context.Background()
	svc := auth.NewService(auth.NewMemoryRepository())
	card, err := auth.NewCard("123456789012", "12/25", "1234")
	require.NoError(t, err)
	require.NoError(t, svc.RegisterCard(ctx, card))
	return svc, ctx
}

func TestLoginSuccess(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	screen := &ui.Scripted{Inputs: []string{"123456789012", "1234"}}
	handler := NewAuthHandler(screen, svc, 3, true, logging.Discard())

	cardNumber, ok := handler.Login(ctx)
	require.True(t, ok)
	require.Equal(t, "123456789012", cardNumber)
	require.True(t, screen.Saw("Login successful"))
	require.True(t, svc.HasBankAccess("123456789012"))
}

func TestLoginSucceedsAfterWrongPIN(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	screen := &ui.Scripted{Inputs: []string{
		"123456789012", "0000",
		"123456789012", "1234",
	}}
	handler := NewAuthHandler(screen, svc, 3, true, logging.Discard())

	_, ok := handler.Login(ctx)
	require.True(t, ok)
	require.True(t, screen.Saw("Wrong PIN"))
}

func TestLoginRunsOutOfAttempts(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	screen := &ui.Scripted{Inputs: []string{
		"123456789012", "0000",
		"123456789012", "0000",
		"123456789012", "0000",
	}}
	handler := NewAuthHandler(screen, svc, 3, true, logging.Discard())

	_, ok := handler.Login(ctx)
	require.False(t, ok)
	require.True(t, screen.Saw("Too many failed attempts"))
}

func TestLoginBlockedCardAbortsSession(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	// Block the card outside the login flow.
	for i := 0; i < 3; i++ {
		svc.Authenticate(ctx, "123456789012", "0000")
	}

	screen := &ui.Scripted{Inputs: []string{"123456789012", "1234"}}
	handler := NewAuthHandler(screen, svc, 3, true, logging.Discard())

	_, ok := handler.Login(ctx)
	require.False(t, ok)
	require.True(t, screen.Saw("Card is blocked"))
}

func TestLoginInvalidCardPolicyConsumesAttempt(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	// One attempt only: with the policy on, a malformed card number ends
	// the session before the valid retry is read.
	screen := &ui.Scripted{Inputs: []string{"not-a-card", "123456789012", "1234"}}
	handler := NewAuthHandler(screen, svc, 1, true, logging.Discard())

	_, ok := handler.Login(ctx)
	require.False(t, ok)
	require.True(t, screen.Saw("Too many failed attempts"))
}

func TestLoginInvalidCardPolicyOffIsFree(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	// Same script, same single attempt: with the policy off, the malformed
	// number costs nothing and the retry succeeds.
	screen := &ui.Scripted{Inputs: []string{"not-a-card", "123456789012", "1234"}}
	handler := NewAuthHandler(screen, svc, 1, false, logging.Discard())

	_, ok := handler.Login(ctx)
	require.True(t, ok)
}

func TestLoginAbortsOnEmptyInput(t *testing.T) {
	svc, ctx := newAuthFixture(t)
	screen := &ui.Scripted{}
	handler := NewAuthHandler(screen, svc, 3, false, logging.Discard())

	_, ok := handler.Login(ctx)
	require.False(t, ok)
}
