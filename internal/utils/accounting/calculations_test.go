package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100.005", "100.01"},
		{"100.004", "100"},
		// Ties round away from zero, so a negative tie gains magnitude.
		{"-100.005", "-100.01"},
		{"-100.004", "-100"},
		{"0.555", "0.56"},
		{"1000000", "1000000"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := accounting.RoundAmount(d(tt.input))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestApplyRate(t *testing.T) {
	tests := []struct {
		amount  string
		percent string
		want    string
	}{
		{"200", "11", "22"},
		{"1000000", "11", "110000"},
		{"333333", "10", "33333.3"},
		{"100", "0.5", "0.5"},
		{"0", "11", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.amount+"x"+tt.percent, func(t *testing.T) {
			got := accounting.ApplyRate(d(tt.amount), d(tt.percent))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestComputeMonthlyDepreciation(t *testing.T) {
	got, err := accounting.ComputeMonthlyDepreciation(d("130000000"), d("10000000"), 48)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("2500000")))
}

func TestComputeMonthlyDepreciation_RoundsResult(t *testing.T) {
	got, err := accounting.ComputeMonthlyDepreciation(d("1000"), d("0"), 3)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("333.33")))
}

func TestComputeMonthlyDepreciation_ZeroUsefulLife(t *testing.T) {
	_, err := accounting.ComputeMonthlyDepreciation(d("1000"), d("0"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "useful life must be positive")
}

func TestComputeMonthlyDepreciation_SalvageExceedsCost(t *testing.T) {
	_, err := accounting.ComputeMonthlyDepreciation(d("1000"), d("2000"), 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds cost")
}

func TestComputeMonthlyDepreciation_SalvageEqualsCost(t *testing.T) {
	got, err := accounting.ComputeMonthlyDepreciation(d("1000"), d("1000"), 12)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func debitLine(amount string) domain.JournalLine {
	return domain.JournalLine{LineID: "dr-" + amount, Debit: d(amount), Credit: decimal.Zero}
}

func creditLine(amount string) domain.JournalLine {
	return domain.JournalLine{LineID: "cr-" + amount, Debit: decimal.Zero, Credit: d(amount)}
}

func TestValidateBalanced(t *testing.T) {
	err := accounting.ValidateBalanced([]domain.JournalLine{
		debitLine("1000000"),
		creditLine("1000000"),
	})
	assert.NoError(t, err)
}

func TestValidateBalanced_MultiLine(t *testing.T) {
	err := accounting.ValidateBalanced([]domain.JournalLine{
		debitLine("890000"),
		debitLine("110000"),
		creditLine("1000000"),
	})
	assert.NoError(t, err)
}

func TestValidateBalanced_SingleLine(t *testing.T) {
	err := accounting.ValidateBalanced([]domain.JournalLine{debitLine("1000")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two")
}

func TestValidateBalanced_Unbalanced(t *testing.T) {
	err := accounting.ValidateBalanced([]domain.JournalLine{
		debitLine("1000"),
		creditLine("999"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not balance")
}

func TestValidateBalanced_BothSidesSet(t *testing.T) {
	err := accounting.ValidateBalanced([]domain.JournalLine{
		{LineID: "bad", Debit: d("1000"), Credit: d("1000")},
		creditLine("0"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestValidateBalanced_NegativeSide(t *testing.T) {
	err := accounting.ValidateBalanced([]domain.JournalLine{
		{LineID: "neg", Debit: d("-1000"), Credit: decimal.Zero},
		creditLine("1000"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative side")
}

func TestSumDebits(t *testing.T) {
	total := accounting.SumDebits([]domain.JournalLine{
		debitLine("890000"),
		debitLine("110000"),
		creditLine("1000000"),
	})
	assert.True(t, total.Equal(d("1000000")))
}
