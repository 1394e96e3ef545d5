package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClampInspection(t *testing.T) {
	tests := []struct {
		name        string
		passed      string
		rejected    string
		inspectable string
		want        string
	}{
		{"within bound", "800", "100", "1000", "800"},
		{"exactly at bound", "900", "100", "1000", "900"},
		{"clamped to remainder", "950", "100", "1000", "900"},
		{"rejected consumes everything", "10", "1000", "1000", "0"},
		{"rejected above inspectable", "10", "1200", "1000", "0"},
		{"zero input stays zero", "0", "0", "1000", "0"},
		{"fractional quantities", "7.5", "2.5", "10", "7.5"},
		{"fractional clamp", "8", "2.5", "10", "7.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ClampInspection(d(tt.passed), d(tt.rejected), d(tt.inspectable))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
