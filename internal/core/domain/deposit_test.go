package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

func TestDepositReconciles(t *testing.T) {
	deposit := domain.Deposit{
		Total:     d("1000000.50"),
		Used:      d("250000"),
		Remaining: d("750000.50"),
	}
	assert.True(t, deposit.Reconciles())

	deposit.Remaining = d("750000")
	assert.False(t, deposit.Reconciles())
}

func TestDepositReconciles_ZeroValue(t *testing.T) {
	assert.True(t, domain.Deposit{
		Total:     decimal.Zero,
		Used:      decimal.Zero,
		Remaining: decimal.Zero,
	}.Reconciles())
}
