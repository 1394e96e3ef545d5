package accounting

import (
	"fmt"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// minorUnitPlaces is the precision every monetary result is rounded to.
// The system is single-currency (IDR) and rounds ties away from zero at
// two places, so a negative tie gains magnitude (-100.005 -> -100.01).
// Depreciation, tax, and allocation math all share this one policy.
const minorUnitPlaces = 2

// RoundAmount rounds an amount to the currency minor unit, half away
// from zero.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(minorUnitPlaces)
}

// ApplyRate multiplies an amount by a percentage rate and rounds the
// result with the shared policy. ApplyRate(200, 11) -> 22.00.
func ApplyRate(amount decimal.Decimal, percent decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(percent).Div(decimal.NewFromInt(100)))
}

// ComputeMonthlyDepreciation returns the straight-line monthly
// depreciation amount: (cost - salvage) / usefulLifeMonths, rounded.
// The UI calls this repeatedly for live recalculation; the depreciation
// service uses the same function when recording entries.
func ComputeMonthlyDepreciation(cost, salvage decimal.Decimal, usefulLifeMonths int) (decimal.Decimal, error) {
	if usefulLifeMonths <= 0 {
		return decimal.Zero, fmt.Errorf("useful life must be positive, got %d", usefulLifeMonths)
	}
	base := cost.Sub(salvage)
	if base.IsNegative() {
		return decimal.Zero, fmt.Errorf("salvage value %s exceeds cost %s", salvage.String(), cost.String())
	}
	return RoundAmount(base.Div(decimal.NewFromInt(int64(usefulLifeMonths)))), nil
}

// ValidateBalanced checks the double-entry invariant over a set of journal
// lines: every line has exactly one non-zero side, no side is negative,
// and total debits equal total credits.
func ValidateBalanced(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("posting must produce at least two journal lines, got %d", len(lines))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("journal line %s has a negative side", line.LineID)
		}
		debitSet := !line.Debit.IsZero()
		creditSet := !line.Credit.IsZero()
		if debitSet == creditSet {
			return fmt.Errorf("journal line %s must have exactly one of debit/credit set", line.LineID)
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal lines do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}

// SumDebits returns the total debit side of a set of lines, which for a
// balanced posting is the economic value of the event.
func SumDebits(lines []domain.JournalLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Debit)
	}
	return total
}
