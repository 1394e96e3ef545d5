package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateQCRequest opens a quality-control inspection for a goods receipt.
type CreateQCRequest struct {
	ReceiptID      string `json:"receiptID" binding:"required"`
	InspectableQty string `json:"inspectableQty" binding:"required,idr_amount"`
	Notes          string `json:"notes"`
}

// RecordQCResultRequest records the final pass/reject split of an inspection.
type RecordQCResultRequest struct {
	PassedQty   string `json:"passedQty" binding:"required,idr_amount"`
	RejectedQty string `json:"rejectedQty" binding:"required,idr_amount"`
	Notes       string `json:"notes"`
}

// PreviewInspectionRequest is the unsaved what-if variant of a QC result.
type PreviewInspectionRequest struct {
	PassedQty   string `json:"passedQty" binding:"required,idr_amount"`
	RejectedQty string `json:"rejectedQty" binding:"required,idr_amount"`
}

// QCResponse defines the data returned for a quality-control record.
type QCResponse struct {
	QCID           string          `json:"qcID"`
	Number         string          `json:"number"`
	ReceiptID      string          `json:"receiptID"`
	InspectableQty decimal.Decimal `json:"inspectableQty"`
	PassedQty      decimal.Decimal `json:"passedQty"`
	RejectedQty    decimal.Decimal `json:"rejectedQty"`
	Status         domain.QCStatus `json:"status"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// InspectionPreviewResponse is the clamped outcome of a what-if inspection.
type InspectionPreviewResponse struct {
	PassedQty    decimal.Decimal `json:"passedQty"`
	RejectedQty  decimal.Decimal `json:"rejectedQty"`
	RemainingQty decimal.Decimal `json:"remainingQty"`
	Clamped      bool            `json:"clamped"`
}

// MaterialIssueItemRequest is one requested line of a material issue.
type MaterialIssueItemRequest struct {
	MaterialID   string `json:"materialID" binding:"required"`
	RequestedQty string `json:"requestedQty" binding:"required,idr_amount"`
}

// CreateMaterialIssueRequest defines the data needed to create a material issue.
type CreateMaterialIssueRequest struct {
	ProductionPlanID string                     `json:"productionPlanID" binding:"required"`
	Date             string                     `json:"date" binding:"required"` // YYYY-MM-DD
	Items            []MaterialIssueItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes            string                     `json:"notes"`
}

// MaterialIssueItemResponse is one stored line of a material issue.
type MaterialIssueItemResponse struct {
	ItemID       string          `json:"itemID"`
	MaterialID   string          `json:"materialID"`
	RequestedQty decimal.Decimal `json:"requestedQty"`
	IssuedQty    decimal.Decimal `json:"issuedQty"`
	AvailableQty decimal.Decimal `json:"availableQty"`
}

// MaterialIssueResponse defines the data returned for a material issue.
type MaterialIssueResponse struct {
	IssueID          string                      `json:"issueID"`
	Number           string                      `json:"number"`
	ProductionPlanID string                      `json:"productionPlanID"`
	Date             time.Time                   `json:"date"`
	Items            []MaterialIssueItemResponse `json:"items"`
	Status           domain.MaterialIssueStatus  `json:"status"`
	Notes            string                      `json:"notes,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
}

// ToQCResponse converts a domain.QualityControl to its DTO.
func ToQCResponse(q *domain.QualityControl) QCResponse {
	return QCResponse{
		QCID:           q.QCID,
		Number:         q.Number,
		ReceiptID:      q.ReceiptID,
		InspectableQty: q.InspectableQty,
		PassedQty:      q.PassedQty,
		RejectedQty:    q.RejectedQty,
		Status:         q.Status,
		Notes:          q.Notes,
		CreatedAt:      q.CreatedAt,
	}
}

// ToMaterialIssueResponse converts a domain.MaterialIssue to its DTO.
func ToMaterialIssueResponse(m *domain.MaterialIssue) MaterialIssueResponse {
	items := make([]MaterialIssueItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, MaterialIssueItemResponse{
			ItemID:       it.ItemID,
			MaterialID:   it.MaterialID,
			RequestedQty: it.RequestedQty,
			IssuedQty:    it.IssuedQty,
			AvailableQty: it.AvailableQty,
		})
	}
	return MaterialIssueResponse{
		IssueID:          m.IssueID,
		Number:           m.Number,
		ProductionPlanID: m.ProductionPlanID,
		Date:             m.Date,
		Items:            items,
		Status:           m.Status,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
}
