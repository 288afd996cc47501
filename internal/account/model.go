package account

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is an immutable snapshot of a bank account. Balance changes are
// modeled by storing a new Account under the same number, never by mutating
// an existing value.
type Account struct {
	number  string
	name    string
	balance decimal.Decimal
}

// NewAccount validates and creates an account snapshot. Construction is the
// enforcement point: an empty number or name, or a negative balance, is
// rejected outright rather than clamped.
func NewAccount(number, name string, balance decimal.Decimal) (Account, error) {
	if strings.TrimSpace(number) == "" {
		return Account{}, errors.New("account number cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return Account{}, errors.New("account name cannot be empty")
	}
	if balance.IsNegative() {
		return Account{}, errors.New("balance cannot be negative")
	}
	return Account{number: number, name: name, balance: balance}, nil
}

// Number returns the account number.
func (a Account) Number() string {
	return a.number
}

// Name returns the account name.
func (a Account) Name() string {
	return a.name
}

// Balance returns the account balance.
func (a Account) Balance() decimal.Decimal {
	return a.balance
}

// FormattedBalance renders the balance for display: two decimals, decimal
// comma, thousands grouped with a space and the kr suffix, e.g.
// "5 000,00 kr".
func (a Account) FormattedBalance() string {
	return FormatAmount(a.balance)
}

// FormatAmount renders an amount in the bank's display format.
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	parts := strings.SplitN(fixed, ".", 2)
	whole, frac := parts[0], parts[1]

	groups := []string{}
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	return sign + strings.Join(groups, " ") + "," + frac + " kr"
}
