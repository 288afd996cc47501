package account

import (
	"context"
	"fmt"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
	// cardToAccounts and accountToCards mirror each other so lookups work
	// in both directions.
	cardToAccounts map[string][]string
	accountToCards map[string][]string
}

// NewMemoryRepository builds an in-memory account store.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		accounts:       make(map[string]Account),
		cardToAccounts: make(map[string][]string),
		accountToCards: make(map[string][]string),
	}
}

func (r *memoryRepository) Save(_ context.Context, acct Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[acct.Number()] = acct
	return nil
}

func (r *memoryRepository) FindByNumber(_ context.Context, number string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.accounts[number]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return acct, nil
}

func (r *memoryRepository) LinkToCard(_ context.Context, accountNumber, cardNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[accountNumber]; !ok {
		return fmt.Errorf("link account %s to card: %w", accountNumber, ErrAccountNotFound)
	}

	if contains(r.cardToAccounts[cardNumber], accountNumber) {
		return nil
	}

	r.cardToAccounts[cardNumber] = append(r.cardToAccounts[cardNumber], accountNumber)
	r.accountToCards[accountNumber] = append(r.accountToCards[accountNumber], cardNumber)
	return nil
}

func (r *memoryRepository) FindByCardNumber(_ context.Context, cardNumber string) ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	numbers := r.cardToAccounts[cardNumber]
	result := make([]Account, 0, len(numbers))
	for _, number := range numbers {
		if acct, ok := r.accounts[number]; ok {
			result = append(result, acct)
		}
	}
	return result, nil
}

func contains(values []string, candidate string) bool {
	for _, v := range values {
		if v == candidate {
			return true
		}
	}
	return false
}
