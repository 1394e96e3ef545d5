package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelPurchaseReturn converts a domain PurchaseReturn to a model PurchaseReturn
func ToModelPurchaseReturn(d domain.PurchaseReturn) models.PurchaseReturn {
	return models.PurchaseReturn{
		ReturnID:       d.ReturnID,
		Number:         d.Number,
		ReceiptID:      d.ReceiptID,
		QCID:           ptrToNullString(d.QCID),
		SupplierID:     d.SupplierID,
		BranchID:       d.BranchID,
		Quantity:       d.Quantity,
		Amount:         d.Amount,
		PayableCoaID:   d.PayableCoaID,
		InventoryCoaID: d.InventoryCoaID,
		Notes:          d.Notes,
		Status:         string(d.Status),
		RequestedBy:    d.RequestedBy,
		ApprovedBy:     ptrToNullString(d.ApprovedBy),
		ApprovedAt:     ptrToNullTime(d.ApprovedAt),
		ApprovalNotes:  d.ApprovalNotes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainPurchaseReturn converts a model PurchaseReturn to a domain PurchaseReturn
func ToDomainPurchaseReturn(m models.PurchaseReturn) domain.PurchaseReturn {
	return domain.PurchaseReturn{
		ReturnID:       m.ReturnID,
		Number:         m.Number,
		ReceiptID:      m.ReceiptID,
		QCID:           nullStringToPtr(m.QCID),
		SupplierID:     m.SupplierID,
		BranchID:       m.BranchID,
		Quantity:       m.Quantity,
		Amount:         m.Amount,
		PayableCoaID:   m.PayableCoaID,
		InventoryCoaID: m.InventoryCoaID,
		Notes:          m.Notes,
		Status:         domain.DocumentStatus(m.Status),
		RequestedBy:    m.RequestedBy,
		ApprovedBy:     nullStringToPtr(m.ApprovedBy),
		ApprovedAt:     nullTimeToPtr(m.ApprovedAt),
		ApprovalNotes:  m.ApprovalNotes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainPurchaseReturnSlice converts a slice of model purchase returns to domain
func ToDomainPurchaseReturnSlice(ms []models.PurchaseReturn) []domain.PurchaseReturn {
	ds := make([]domain.PurchaseReturn, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseReturn(m)
	}
	return ds
}
