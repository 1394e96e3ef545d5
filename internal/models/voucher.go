package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherRequest represents a payment or receipt voucher awaiting approval.
type VoucherRequest struct {
	VoucherID     string          `db:"voucher_id"`
	Number        string          `db:"number"`
	VoucherType   string          `db:"voucher_type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Status        string          `db:"status"`
	RequestedBy   string          `db:"requested_by"`
	ApprovedBy    sql.NullString  `db:"approved_by"`
	ApprovedAt    sql.NullTime    `db:"approved_at"`
	ApprovalNotes string          `db:"approval_notes"`
	AccountCoaID  sql.NullString  `db:"account_coa_id"`
	OffsetCoaID   sql.NullString  `db:"offset_coa_id"`
	TransactionID sql.NullString  `db:"transaction_id"` // Set when realized as a cash/bank transaction
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
