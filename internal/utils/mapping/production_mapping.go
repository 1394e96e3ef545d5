package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelQC converts a domain QualityControl to its model
func ToModelQC(d domain.QualityControl) models.QualityControl {
	return models.QualityControl{
		QCID:           d.QCID,
		Number:         d.Number,
		ReceiptID:      d.ReceiptID,
		InspectableQty: d.InspectableQty,
		PassedQty:      d.PassedQty,
		RejectedQty:    d.RejectedQty,
		Status:         string(d.Status),
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQC converts a model QualityControl to its domain form
func ToDomainQC(m models.QualityControl) domain.QualityControl {
	return domain.QualityControl{
		QCID:           m.QCID,
		Number:         m.Number,
		ReceiptID:      m.ReceiptID,
		InspectableQty: m.InspectableQty,
		PassedQty:      m.PassedQty,
		RejectedQty:    m.RejectedQty,
		Status:         domain.QCStatus(m.Status),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainQCSlice converts model QC rows to domain form
func ToDomainQCSlice(ms []models.QualityControl) []domain.QualityControl {
	ds := make([]domain.QualityControl, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQC(m)
	}
	return ds
}

// ToModelMaterialIssue converts a domain MaterialIssue header to its model
func ToModelMaterialIssue(d domain.MaterialIssue) models.MaterialIssue {
	return models.MaterialIssue{
		IssueID:          d.IssueID,
		Number:           d.Number,
		ProductionPlanID: d.ProductionPlanID,
		Date:             d.Date,
		Status:           string(d.Status),
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMaterialIssue converts a model header and its item rows to the
// domain document.
func ToDomainMaterialIssue(m models.MaterialIssue, items []models.MaterialIssueItem) domain.MaterialIssue {
	ds := make([]domain.MaterialIssueItem, len(items))
	for i, it := range items {
		ds[i] = ToDomainMaterialIssueItem(it)
	}
	return domain.MaterialIssue{
		IssueID:          m.IssueID,
		Number:           m.Number,
		ProductionPlanID: m.ProductionPlanID,
		Date:             m.Date,
		Items:            ds,
		Status:           domain.MaterialIssueStatus(m.Status),
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelMaterialIssueItem converts a domain item line to its model
func ToModelMaterialIssueItem(issueID string, d domain.MaterialIssueItem) models.MaterialIssueItem {
	return models.MaterialIssueItem{
		ItemID:       d.ItemID,
		IssueID:      issueID,
		MaterialID:   d.MaterialID,
		RequestedQty: d.RequestedQty,
		IssuedQty:    d.IssuedQty,
		AvailableQty: d.AvailableQty,
	}
}

// ToDomainMaterialIssueItem converts a model item line to its domain form
func ToDomainMaterialIssueItem(m models.MaterialIssueItem) domain.MaterialIssueItem {
	return domain.MaterialIssueItem{
		ItemID:       m.ItemID,
		IssueID:      m.IssueID,
		MaterialID:   m.MaterialID,
		RequestedQty: m.RequestedQty,
		IssuedQty:    m.IssuedQty,
		AvailableQty: m.AvailableQty,
	}
}
