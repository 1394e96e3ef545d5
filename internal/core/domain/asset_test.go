package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

func TestAssetBookValue(t *testing.T) {
	asset := domain.Asset{
		PurchaseCost:   d("130000000"),
		AccumulatedDep: d("30000000"),
	}
	assert.True(t, asset.BookValue().Equal(d("100000000")))
}

func TestAssetDisposedGain(t *testing.T) {
	tests := []struct {
		name     string
		proceeds string
		accum    string
		cost     string
		want     string
	}{
		{"sale above book value", "3000000", "8000000", "10000000", "1000000"},
		{"sale below book value", "1000000", "8000000", "10000000", "-1000000"},
		{"sale at book value", "2000000", "8000000", "10000000", "0"},
		{"scrap with remaining value", "0", "8500000", "10000000", "-1500000"},
		{"scrap fully depreciated", "0", "10000000", "10000000", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := domain.AssetDisposed{
				Proceeds:       d(tt.proceeds),
				AccumulatedDep: d(tt.accum),
				OriginalCost:   d(tt.cost),
			}
			assert.True(t, event.Gain().Equal(d(tt.want)), "got %s, want %s", event.Gain(), tt.want)
		})
	}
}
