package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseReturnRequest starts a purchase return approval document.
type CreatePurchaseReturnRequest struct {
	ReceiptID      string  `json:"receiptID" binding:"required"`
	QCID           *string `json:"qcID"` // Set when returning a QC-rejected quantity
	SupplierID     string  `json:"supplierID" binding:"required"`
	BranchID       string  `json:"branchID" binding:"required"`
	Quantity       string  `json:"quantity" binding:"required,idr_amount"`
	Amount         string  `json:"amount" binding:"required,idr_amount"`
	PayableCoaID   string  `json:"payableCoaID" binding:"required"`
	InventoryCoaID string  `json:"inventoryCoaID" binding:"required"`
	Notes          string  `json:"notes"`
}

// PurchaseReturnResponse defines the data returned for a purchase return.
type PurchaseReturnResponse struct {
	ReturnID   string                `json:"returnID"`
	Number     string                `json:"number"`
	ReceiptID  string                `json:"receiptID"`
	QCID       *string               `json:"qcID,omitempty"`
	SupplierID string                `json:"supplierID"`
	BranchID   string                `json:"branchID"`
	Quantity   decimal.Decimal       `json:"quantity"`
	Amount     decimal.Decimal       `json:"amount"`
	Notes      string                `json:"notes,omitempty"`
	Status     domain.DocumentStatus `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ListPurchaseReturnsParams defines query parameters for listing purchase returns.
type ListPurchaseReturnsParams struct {
	Status    *domain.DocumentStatus `form:"status"`
	Limit     int                    `form:"limit,default=20"`
	NextToken *string                `form:"nextToken"`
}

// ListPurchaseReturnsResponse wraps a page of purchase returns.
type ListPurchaseReturnsResponse struct {
	Returns   []PurchaseReturnResponse `json:"returns"`
	NextToken *string                  `json:"nextToken,omitempty"`
}

// ToPurchaseReturnResponse converts a domain.PurchaseReturn to its DTO.
func ToPurchaseReturnResponse(r *domain.PurchaseReturn) PurchaseReturnResponse {
	return PurchaseReturnResponse{
		ReturnID:   r.ReturnID,
		Number:     r.Number,
		ReceiptID:  r.ReceiptID,
		QCID:       r.QCID,
		SupplierID: r.SupplierID,
		BranchID:   r.BranchID,
		Quantity:   r.Quantity,
		Amount:     r.Amount,
		Notes:      r.Notes,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}

// ToPurchaseReturnResponses converts a slice of domain purchase returns.
func ToPurchaseReturnResponses(returns []domain.PurchaseReturn) []PurchaseReturnResponse {
	out := make([]PurchaseReturnResponse, 0, len(returns))
	for i := range returns {
		out = append(out, ToPurchaseReturnResponse(&returns[i]))
	}
	return out
}
