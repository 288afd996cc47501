package auth

import (
	"context"
	"regexp"
	"sync"
)

// Status is the result of an authentication attempt.
type Status string

const (
	StatusSuccess     Status = "SUCCESS"
	StatusInvalidCard Status = "INVALID_CARD"
	StatusWrongPIN    Status = "WRONG_PIN"
	StatusCardBlocked Status = "CARD_BLOCKED"
)

// Card numbers are exactly 12 decimal digits.
var cardNumberPattern = regexp.MustCompile(`^[0-9]{12}$`)

// Service authenticates cards and tracks which of them have completed PIN
// verification during this process lifetime.
type Service struct {
	repo Repository

	mu            sync.RWMutex
	authenticated map[string]bool
}

// NewService creates an authentication service over the given card store.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, authenticated: make(map[string]bool)}
}

// ValidateCardNumber reports whether the number has the expected format.
// Pure format check; the repository is never consulted.
func (s *Service) ValidateCardNumber(number string) bool {
	return cardNumberPattern.MatchString(number)
}

// RegisterCard stores the card, replacing any card with the same number.
func (s *Service) RegisterCard(ctx context.Context, card *Card) error {
	return s.repo.Save(ctx, card)
}

// Authenticate verifies the PIN for the card registered under cardNumber.
// Expected failures (unknown card, wrong PIN, blocked card) come back as a
// Status, never as an error; callers are responsible for rejecting
// malformed input before calling.
func (s *Service) Authenticate(ctx context.Context, cardNumber, pin string) Status {
	card, err := s.repo.FindByNumber(ctx, cardNumber)
	if err != nil {
		return StatusInvalidCard
	}

	if card.Blocked() {
		return StatusCardBlocked
	}

	if !card.VerifyPIN(pin) {
		return StatusWrongPIN
	}

	s.mu.Lock()
	s.authenticated[cardNumber] = true
	s.mu.Unlock()
	return StatusSuccess
}

// HasBankAccess reports whether the card has completed PIN verification at
// least once. Unknown cards default to false.
func (s *Service) HasBankAccess(cardNumber string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated[cardNumber]
}
