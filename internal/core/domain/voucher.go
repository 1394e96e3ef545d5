package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType distinguishes disbursement from receipt vouchers.
type VoucherType string

const (
	VoucherPayment VoucherType = "PAYMENT"
	VoucherReceipt VoucherType = "RECEIPT"
)

// VoucherRequest is an internal approval document authorizing a future
// cash/bank disbursement or receipt. It moves through the shared workflow
// graph; approval may auto-create the realizing cash/bank transaction.
type VoucherRequest struct {
	VoucherID     string          `json:"voucherID"` // Primary Key (UUID)
	Number        string          `json:"number"`    // e.g. "VR-20250101-0001"
	Type          VoucherType     `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Status        DocumentStatus  `json:"status"`
	RequestedBy   string          `json:"requestedBy"`             // UserID reference
	ApprovedBy    *string         `json:"approvedBy,omitempty"`    // Set on approve/reject
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`    // Set on approve/reject
	ApprovalNotes string          `json:"approvalNotes,omitempty"` // Rejection reason or approval note
	AccountCoaID  *string         `json:"accountCoaID,omitempty"`  // Cash/bank COA for realization
	OffsetCoaID   *string         `json:"offsetCoaID,omitempty"`   // Counter COA for realization
	TransactionID *string         `json:"transactionID,omitempty"` // FK -> cashbank_transactions when realized
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
