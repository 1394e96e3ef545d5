package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the data needed to create a voucher request.
type CreateVoucherRequest struct {
	Type         domain.VoucherType `json:"type" binding:"required,oneof=PAYMENT RECEIPT"`
	Amount       string             `json:"amount" binding:"required,idr_amount"` // Indonesian-formatted
	Description  string             `json:"description" binding:"required"`
	AccountCoaID *string            `json:"accountCoaID"` // Optional until realization
	OffsetCoaID  *string            `json:"offsetCoaID"`
}

// ApproveVoucherRequest defines the approval payload.
type ApproveVoucherRequest struct {
	Notes string `json:"notes"`
	// AutoCreateTransaction realizes the voucher as a posted cash/bank
	// transaction in the same database transaction as the approval.
	AutoCreateTransaction bool    `json:"autoCreateTransaction"`
	AccountCoaID          *string `json:"accountCoaID"` // Overrides the voucher's mapping when set
	OffsetCoaID           *string `json:"offsetCoaID"`
}

// RejectVoucherRequest defines the rejection payload; the reason is mandatory.
type RejectVoucherRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CancelRequest defines the cancellation payload shared by workflow documents.
type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransitionRequest carries the optional fields of a generic workflow action.
type TransitionRequest struct {
	Notes string `json:"notes"`
}

// VoucherResponse defines the data returned for a voucher request.
type VoucherResponse struct {
	VoucherID     string                `json:"voucherID"`
	Number        string                `json:"number"`
	Type          domain.VoucherType    `json:"type"`
	Amount        decimal.Decimal       `json:"amount"`
	Description   string                `json:"description"`
	Status        domain.DocumentStatus `json:"status"`
	RequestedBy   string                `json:"requestedBy"`
	ApprovedBy    *string               `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time            `json:"approvedAt,omitempty"`
	ApprovalNotes string                `json:"approvalNotes,omitempty"`
	TransactionID *string               `json:"transactionID,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ListVouchersParams defines query parameters for listing voucher requests.
type ListVouchersParams struct {
	Status    *domain.DocumentStatus `form:"status"`
	Limit     int                    `form:"limit,default=20"`
	NextToken *string                `form:"nextToken"`
}

// ListVouchersResponse wraps a page of voucher requests.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherResponse converts a domain.VoucherRequest to its DTO.
func ToVoucherResponse(v *domain.VoucherRequest) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		Number:        v.Number,
		Type:          v.Type,
		Amount:        v.Amount,
		Description:   v.Description,
		Status:        v.Status,
		RequestedBy:   v.RequestedBy,
		ApprovedBy:    v.ApprovedBy,
		ApprovedAt:    v.ApprovedAt,
		ApprovalNotes: v.ApprovalNotes,
		TransactionID: v.TransactionID,
		CreatedAt:     v.CreatedAt,
	}
}
