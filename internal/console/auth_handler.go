package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kronbank/kronbank/internal/auth"
	"github.com/kronbank/kronbank/internal/ui"
)

// AuthHandler runs the interactive login flow: collect card number and PIN,
// authenticate, and keep track of how many session attempts remain.
type AuthHandler struct {
	ui     ui.UserInterface
	auth   *auth.Service
	logger *slog.Logger

	// maxAttempts bounds the login session; it is unrelated to the card's
	// own wrong-PIN ceiling.
	maxAttempts int
	// invalidCardUsesAttempt is the policy for whether a bad card number
	// burns a session attempt like a wrong PIN does.
	invalidCardUsesAttempt bool
}

// NewAuthHandler builds the login flow handler.
func NewAuthHandler(u ui.UserInterface, svc *auth.Service, maxAttempts int, invalidCardUsesAttempt bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		ui:                     u,
		auth:                   svc,
		logger:                 logger,
		maxAttempts:            maxAttempts,
		invalidCardUsesAttempt: invalidCardUsesAttempt,
	}
}

// Login prompts until authentication succeeds, the session attempts run
// out, or the card turns out to be blocked. On success it returns the
// authenticated card number.
func (h *AuthHandler) Login(ctx context.Context) (string, bool) {
	attempts := 0
	for attempts < h.maxAttempts {
		cardNumber := h.ui.Input("Enter your card number (12 digits): ")
		if cardNumber == "" {
			h.ui.Error("No input received, aborting login.")
			return "", false
		}

		if !h.auth.ValidateCardNumber(cardNumber) {
			h.ui.Error("Card number must be exactly 12 digits.")
			if h.invalidCardUsesAttempt {
				attempts++
			}
			continue
		}

		pin := h.ui.Input("Enter your PIN: ")
		h.ui.Message("PIN entered: " + h.ui.MaskSecret(pin))

		switch h.auth.Authenticate(ctx, cardNumber, pin) {
		case auth.StatusSuccess:
			h.ui.Message("Login successful.")
			h.logger.Info("login successful", "card", cardNumber)
			return cardNumber, true
		case auth.StatusInvalidCard:
			h.ui.Error("Unknown card. Try again.")
			if h.invalidCardUsesAttempt {
				attempts++
			}
		case auth.StatusWrongPIN:
			attempts++
			h.ui.Error(fmt.Sprintf("Wrong PIN. Attempts left: %d", h.maxAttempts-attempts))
		case auth.StatusCardBlocked:
			h.ui.Error("Card is blocked. Contact customer service.")
			h.logger.Warn("blocked card presented", "card", cardNumber)
			return "", false
		}
	}

	h.ui.Error("Too many failed attempts.")
	return "", false
}
