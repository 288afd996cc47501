package auth

import "testing"

func TestVerifyPINBlocksAfterThreeFailures(t *testing.T) {
	card, err := NewCard("123456789012", "12/25", "1234")
	if err != nil {
		t.Fatalf("new card: %v", err)
	}

	for i := 0; i < 3; i++ {
		if card.VerifyPIN("0000") {
			t.Fatalf("wrong PIN verified on attempt %d", i+1)
		}
	}

	if !card.Blocked() {
		t.Fatal("card not blocked after three failures")
	}
	if card.VerifyPIN("1234") {
		t.Fatal("blocked card accepted the correct PIN")
	}
}

func TestCorrectPINResetsFailureCounter(t *testing.T) {
	card, err := NewCard("123456789012", "12/25", "1234")
	if err != nil {
		t.Fatalf("new card: %v", err)
	}

	card.VerifyPIN("0000")
	card.VerifyPIN("0000")
	if !card.VerifyPIN("1234") {
		t.Fatal("correct PIN rejected")
	}
	if card.FailedAttempts() != 0 {
		t.Fatalf("expected counter reset, got %d", card.FailedAttempts())
	}

	// Two more failures after the reset must not block the card.
	card.VerifyPIN("0000")
	card.VerifyPIN("0000")
	if card.Blocked() {
		t.Fatal("card blocked although the counter was reset in between")
	}

	card.VerifyPIN("0000")
	if !card.Blocked() {
		t.Fatal("card not blocked on the third consecutive failure")
	}
}

func TestBlockedCardStateIsTerminal(t *testing.T) {
	card, err := NewCard("123456789012", "12/25", "1234")
	if err != nil {
		t.Fatalf("new card: %v", err)
	}

	for i := 0; i < 3; i++ {
		card.VerifyPIN("9999")
	}
	attempts := card.FailedAttempts()

	if card.VerifyPIN("1234") {
		t.Fatal("blocked card verified a PIN")
	}
	if card.FailedAttempts() != attempts {
		t.Fatal("blocked card mutated its attempt counter")
	}
}

func TestNewCardValidation(t *testing.T) {
	if _, err := NewCard("", "12/25", "1234"); err == nil {
		t.Fatal("expected error for empty card number")
	}
	if _, err := NewCard("123456789012", "12/25", "123"); err == nil {
		t.Fatal("expected error for short PIN")
	}
}
