package domain_test

import (
	"testing"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

// The account type values are persisted in chart_of_accounts rows, so their
// string forms must stay stable.
func TestAccountTypeValues(t *testing.T) {
	assert.Equal(t, domain.AccountType("ASSET"), domain.AccountTypeAsset)
	assert.Equal(t, domain.AccountType("LIABILITY"), domain.AccountTypeLiability)
	assert.Equal(t, domain.AccountType("EQUITY"), domain.AccountTypeEquity)
	assert.Equal(t, domain.AccountType("REVENUE"), domain.AccountTypeRevenue)
	assert.Equal(t, domain.AccountType("EXPENSE"), domain.AccountTypeExpense)
}

func TestChartOfAccountHoldsFixedAssetType(t *testing.T) {
	coa := domain.ChartOfAccount{
		CoaID:       "coa-1",
		Code:        "1210.01",
		Name:        "Machinery",
		AccountType: domain.AccountTypeAsset,
	}
	machine := domain.Asset{AssetID: "asset-1", Name: "Press machine"}

	assert.Equal(t, domain.AccountTypeAsset, coa.AccountType)
	assert.Equal(t, "asset-1", machine.AssetID)
}
