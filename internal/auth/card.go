package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// maxFailedAttempts is how many consecutive wrong PIN entries block a card.
const maxFailedAttempts = 3

type cardState int

const (
	cardActive cardState = iota
	cardBlocked
)

// Card is a bank card together with its PIN verification state machine.
// A card is either active, carrying up to two failed attempts on record,
// or blocked. Blocked is terminal: no transition leaves it.
type Card struct {
	number         string
	expiry         string
	pinHash        []byte
	state          cardState
	failedAttempts int
}

// NewCard creates an active card with a hashed PIN.
func NewCard(number, expiry, pin string) (*Card, error) {
	if number == "" {
		return nil, errors.New("card number is required")
	}
	if len(pin) < 4 {
		return nil, errors.New("PIN must be at least 4 digits")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Card{number: number, expiry: expiry, pinHash: hash}, nil
}

// VerifyPIN checks the candidate against the card's PIN. A blocked card
// always refuses without touching any state. A match resets the failure
// counter; a mismatch increments it and blocks the card on the third
// consecutive failure.
func (c *Card) VerifyPIN(candidate string) bool {
	if c.state == cardBlocked {
		return false
	}

	if err := bcrypt.CompareHashAndPassword(c.pinHash, []byte(candidate)); err != nil {
		c.failedAttempts++
		if c.failedAttempts >= maxFailedAttempts {
			c.state = cardBlocked
		}
		return false
	}

	c.failedAttempts = 0
	return true
}

// Number returns the card number.
func (c *Card) Number() string {
	return c.number
}

// Expiry returns the expiry date as printed on the card.
func (c *Card) Expiry() string {
	return c.expiry
}

// Blocked reports whether the card has reached its terminal state.
func (c *Card) Blocked() bool {
	return c.state == cardBlocked
}

// FailedAttempts returns the number of consecutive wrong PIN entries recorded.
func (c *Card) FailedAttempts() int {
	return c.failedAttempts
}
