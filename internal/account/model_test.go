package account

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAccountValidation(t *testing.T) {
	if _, err := NewAccount("", "Salary account", decimal.Zero); err == nil {
		t.Fatal("expected error for empty account number")
	}
	if _, err := NewAccount("1001", " ", decimal.Zero); err == nil {
		t.Fatal("expected error for blank account name")
	}
	if _, err := NewAccount("1001", "Salary account", decimal.NewFromInt(-1)); err == nil {
		t.Fatal("expected error for negative balance")
	}

	acct, err := NewAccount("1001", "Salary account", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if acct.Number() != "1001" || acct.Name() != "Salary account" {
		t.Fatalf("unexpected account fields: %s %s", acct.Number(), acct.Name())
	}
}

func TestFormattedBalance(t *testing.T) {
	cases := []struct {
		balance float64
		want    string
	}{
		{5000.0, "5 000,00 kr"},
		{0, "0,00 kr"},
		{500, "500,00 kr"},
		{999.9, "999,90 kr"},
		{1000, "1 000,00 kr"},
		{1234567.89, "1 234 567,89 kr"},
	}

	for _, tc := range cases {
		acct, err := NewAccount("1001", "Salary account", decimal.NewFromFloat(tc.balance))
		if err != nil {
			t.Fatalf("new account: %v", err)
		}
		if got := acct.FormattedBalance(); got != tc.want {
			t.Fatalf("balance %v formatted as %q, want %q", tc.balance, got, tc.want)
		}
	}
}
