package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelAccount converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		CoaID:           d.CoaID,
		Code:            d.Code,
		Name:            d.Name,
		AccountType:     models.AccountType(d.AccountType),
		ParentAccountID: ptrToNullString(d.ParentAccountID),
		Description:     d.Description,
		IsActive:        d.IsActive,
		Balance:         d.Balance,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		CoaID:           m.CoaID,
		Code:            m.Code,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		ParentAccountID: nullStringToPtr(m.ParentAccountID),
		Description:     m.Description,
		IsActive:        m.IsActive,
		Balance:         m.Balance,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model accounts to domain accounts
func ToDomainAccountSlice(ms []models.ChartOfAccount) []domain.ChartOfAccount {
	ds := make([]domain.ChartOfAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
