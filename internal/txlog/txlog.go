package txlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// KindDeposit marks a cash deposit entry.
	KindDeposit = "deposit"
	// KindWithdrawal marks a cash withdrawal entry.
	KindWithdrawal = "withdrawal"
)

// Entry describes one applied balance mutation.
type Entry struct {
	ID            string
	AccountNumber string
	Kind          string
	Amount        decimal.Decimal
	At            time.Time
}

// NewEntry stamps a transaction log entry with an identifier and timestamp.
func NewEntry(kind, accountNumber string, amount decimal.Decimal) Entry {
	return Entry{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		At:            time.Now().UTC(),
	}
}

// Recorder persists transaction log entries for downstream audit.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// LoggerRecorder is a stub implementation that writes entries to the logger.
type LoggerRecorder struct {
	logger *slog.Logger
}

// NewLoggerRecorder constructs a logging recorder stub.
func NewLoggerRecorder(logger *slog.Logger) *LoggerRecorder {
	return &LoggerRecorder{logger: logger}
}

// Record writes the entry to the structured logger.
func (r *LoggerRecorder) Record(_ context.Context, entry Entry) error {
	if r == nil || r.logger == nil {
		return nil
	}
	r.logger.Info("transaction",
		"id", entry.ID,
		"kind", entry.Kind,
		"account", entry.AccountNumber,
		"amount", entry.Amount.StringFixed(2),
		"at", entry.At)
	return nil
}
