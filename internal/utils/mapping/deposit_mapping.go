package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelDeposit converts a domain Deposit to a model Deposit
func ToModelDeposit(d domain.Deposit) models.Deposit {
	return models.Deposit{
		DepositID:   d.DepositID,
		Number:      d.Number,
		OwnerType:   string(d.Owner.Type),
		OwnerID:     d.Owner.ID,
		Total:       d.Total,
		Used:        d.Used,
		Remaining:   d.Remaining,
		LinkedCoaID: d.LinkedCoaID,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainDeposit converts a model Deposit to a domain Deposit
func ToDomainDeposit(m models.Deposit) domain.Deposit {
	return domain.Deposit{
		DepositID: m.DepositID,
		Number:    m.Number,
		Owner: domain.OwnerRef{
			Type: domain.OwnerType(m.OwnerType),
			ID:   m.OwnerID,
		},
		Total:       m.Total,
		Used:        m.Used,
		Remaining:   m.Remaining,
		LinkedCoaID: m.LinkedCoaID,
		Status:      domain.DepositStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainDepositSlice converts a slice of model deposits to domain deposits
func ToDomainDepositSlice(ms []models.Deposit) []domain.Deposit {
	ds := make([]domain.Deposit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeposit(m)
	}
	return ds
}

// ToModelDepositLog converts a domain DepositLog to a model DepositLog
func ToModelDepositLog(d domain.DepositLog) models.DepositLog {
	return models.DepositLog{
		LogID:     d.LogID,
		DepositID: d.DepositID,
		LogType:   string(d.Type),
		Amount:    d.Amount,
		Note:      d.Note,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainDepositLog converts a model DepositLog to a domain DepositLog
func ToDomainDepositLog(m models.DepositLog) domain.DepositLog {
	return domain.DepositLog{
		LogID:     m.LogID,
		DepositID: m.DepositID,
		Type:      domain.DepositLogType(m.LogType),
		Amount:    m.Amount,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToDomainDepositLogSlice converts a slice of model logs to domain logs
func ToDomainDepositLogSlice(ms []models.DepositLog) []domain.DepositLog {
	ds := make([]domain.DepositLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepositLog(m)
	}
	return ds
}
