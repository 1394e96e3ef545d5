package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelVoucher converts a domain VoucherRequest to a model VoucherRequest
func ToModelVoucher(d domain.VoucherRequest) models.VoucherRequest {
	return models.VoucherRequest{
		VoucherID:     d.VoucherID,
		Number:        d.Number,
		VoucherType:   string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Status:        string(d.Status),
		RequestedBy:   d.RequestedBy,
		ApprovedBy:    ptrToNullString(d.ApprovedBy),
		ApprovedAt:    ptrToNullTime(d.ApprovedAt),
		ApprovalNotes: d.ApprovalNotes,
		AccountCoaID:  ptrToNullString(d.AccountCoaID),
		OffsetCoaID:   ptrToNullString(d.OffsetCoaID),
		TransactionID: ptrToNullString(d.TransactionID),
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainVoucher converts a model VoucherRequest to a domain VoucherRequest
func ToDomainVoucher(m models.VoucherRequest) domain.VoucherRequest {
	return domain.VoucherRequest{
		VoucherID:     m.VoucherID,
		Number:        m.Number,
		Type:          domain.VoucherType(m.VoucherType),
		Amount:        m.Amount,
		Description:   m.Description,
		Status:        domain.DocumentStatus(m.Status),
		RequestedBy:   m.RequestedBy,
		ApprovedBy:    nullStringToPtr(m.ApprovedBy),
		ApprovedAt:    nullTimeToPtr(m.ApprovedAt),
		ApprovalNotes: m.ApprovalNotes,
		AccountCoaID:  nullStringToPtr(m.AccountCoaID),
		OffsetCoaID:   nullStringToPtr(m.OffsetCoaID),
		TransactionID: nullStringToPtr(m.TransactionID),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToDomainVoucherSlice converts a slice of model vouchers to domain vouchers
func ToDomainVoucherSlice(ms []models.VoucherRequest) []domain.VoucherRequest {
	ds := make([]domain.VoucherRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
