package cash

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Denominations lists the note values the machine accepts, in currency units.
var Denominations = []int{100, 200, 500}

// InvalidDenominationError reports a note value the machine does not accept.
type InvalidDenominationError struct {
	Denomination int
}

func (e *InvalidDenominationError) Error() string {
	return fmt.Sprintf("invalid note denomination: %d", e.Denomination)
}

// Counter verifies a batch of inserted notes and reports its total value.
// The whole batch is rejected if any entry is invalid; no partial sums leak.
type Counter interface {
	CountAndVerify(notes map[int]int) (decimal.Decimal, error)
}

// SimulatedCounter is the software stand-in for the physical note counter.
type SimulatedCounter struct{}

// NewSimulatedCounter builds a note counter honoring the fixed denomination set.
func NewSimulatedCounter() *SimulatedCounter {
	return &SimulatedCounter{}
}

// CountAndVerify sums denomination x count over the batch. It fails on the
// first unknown denomination or negative count, discarding the running sum.
func (c *SimulatedCounter) CountAndVerify(notes map[int]int) (decimal.Decimal, error) {
	sum := int64(0)
	for denomination, count := range notes {
		if !accepted(denomination) {
			return decimal.Zero, &InvalidDenominationError{Denomination: denomination}
		}
		if count < 0 {
			return decimal.Zero, fmt.Errorf("negative note count for denomination %d", denomination)
		}
		sum += int64(denomination) * int64(count)
	}
	return decimal.NewFromInt(sum), nil
}

func accepted(denomination int) bool {
	for _, valid := range Denominations {
		if denomination == valid {
			return true
		}
	}
	return false
}
