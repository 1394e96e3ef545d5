package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// idrAmountPattern matches Indonesian-formatted amounts: dots as thousands
// separators, comma as the decimal separator ("1.000.000,50"), optional
// leading minus, plain digit runs also accepted.
var idrAmountPattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})*(,\d+)?$|^-?\d+(,\d+)?$`)

// ParseIDRAmount parses an Indonesian-locale amount string into an exact
// decimal. "1.000.000,50" -> 1000000.50. Malformed input returns
// apperrors.ErrInvalidAmount.
func ParseIDRAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || !idrAmountPattern.MatchString(trimmed) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid amount", apperrors.ErrInvalidAmount, s)
	}

	normalized := strings.ReplaceAll(trimmed, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid amount", apperrors.ErrInvalidAmount, s)
	}
	return amount, nil
}

// FormatIDRAmount formats an amount in the Indonesian convention with two
// decimal places: 1000000.5 -> "1.000.000,50".
func FormatIDRAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
