package outcome

import "github.com/shopspring/decimal"

// Code classifies why an operation was refused.
type Code string

const (
	// Account errors
	CodeAccountNotFound Code = "ACCOUNT_NOT_FOUND"
	CodeAccountExists   Code = "ACCOUNT_EXISTS"

	// Transaction errors
	CodeInvalidAmount     Code = "INVALID_AMOUNT"
	CodeInsufficientFunds Code = "INSUFFICIENT_FUNDS"
	CodeDepositFailed     Code = "DEPOSIT_FAILED"
	CodeWithdrawalFailed  Code = "WITHDRAWAL_FAILED"

	// Authentication errors
	CodeInvalidCard Code = "INVALID_CARD"
	CodeWrongPIN    Code = "WRONG_PIN"
	CodeCardBlocked Code = "CARD_BLOCKED"

	// System errors
	CodeRepositoryError Code = "REPOSITORY_ERROR"
	CodeValidationError Code = "VALIDATION_ERROR"
)

// Operation reports the result of a check that moves no money, such as an
// account existence or balance-cover probe.
type Operation struct {
	Success bool
	Message string
	Code    Code
}

// OperationOK builds a successful operation result.
func OperationOK(message string) Operation {
	return Operation{Success: true, Message: message}
}

// OperationFailed builds a refused operation result carrying a coded reason.
func OperationFailed(message string, code Code) Operation {
	return Operation{Message: message, Code: code}
}

// Transaction reports the result of a deposit or withdrawal. NewBalance is
// only meaningful when Success is true.
type Transaction struct {
	Success    bool
	Message    string
	Code       Code
	NewBalance decimal.Decimal
}

// TransactionOK builds a successful transaction result carrying the balance
// after the mutation was applied.
func TransactionOK(newBalance decimal.Decimal) Transaction {
	return Transaction{Success: true, Message: "operation successful", NewBalance: newBalance}
}

// TransactionFailed builds a refused transaction result. The account is
// guaranteed untouched when this is returned.
func TransactionFailed(message string, code Code) Transaction {
	return Transaction{Message: message, Code: code}
}
