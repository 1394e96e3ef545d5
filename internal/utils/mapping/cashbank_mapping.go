package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelCashBank converts a domain CashBankTransaction header to its model
func ToModelCashBank(d domain.CashBankTransaction) models.CashBankTransaction {
	return models.CashBankTransaction{
		TransactionID:   d.TransactionID,
		Number:          d.Number,
		TransactionType: string(d.Type),
		Date:            d.Date,
		Amount:          d.Amount,
		Description:     d.Description,
		AccountCoaID:    d.AccountCoaID,
		OffsetCoaID:     ptrToNullString(d.OffsetCoaID),
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
		DeletedAt:       d.DeletedAt,
	}
}

// ToDomainCashBank converts a model header and its detail rows to the
// domain transaction.
func ToDomainCashBank(m models.CashBankTransaction, details []models.CashBankDetail) domain.CashBankTransaction {
	ds := make([]domain.CashBankDetail, len(details))
	for i, det := range details {
		ds[i] = ToDomainCashBankDetail(det)
	}
	return domain.CashBankTransaction{
		TransactionID: m.TransactionID,
		Number:        m.Number,
		Type:          domain.CashBankType(m.TransactionType),
		Date:          m.Date,
		Amount:        m.Amount,
		Description:   m.Description,
		AccountCoaID:  m.AccountCoaID,
		OffsetCoaID:   nullStringToPtr(m.OffsetCoaID),
		Details:       ds,
		Status:        domain.CashBankStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToModelCashBankDetail converts a domain detail line to its model
func ToModelCashBankDetail(transactionID string, d domain.CashBankDetail) models.CashBankDetail {
	return models.CashBankDetail{
		DetailID:      d.DetailID,
		TransactionID: transactionID,
		CoaID:         d.CoaID,
		Amount:        d.Amount,
		Description:   d.Description,
	}
}

// ToDomainCashBankDetail converts a model detail line to its domain form
func ToDomainCashBankDetail(m models.CashBankDetail) domain.CashBankDetail {
	return domain.CashBankDetail{
		DetailID:    m.DetailID,
		CoaID:       m.CoaID,
		Amount:      m.Amount,
		Description: m.Description,
	}
}
