package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseReturn represents goods being returned to a supplier, awaiting approval.
type PurchaseReturn struct {
	ReturnID       string          `db:"return_id"`
	Number         string          `db:"number"`
	ReceiptID      string          `db:"receipt_id"`
	QCID           sql.NullString  `db:"qc_id"`
	SupplierID     string          `db:"supplier_id"`
	BranchID       string          `db:"branch_id"`
	Quantity       decimal.Decimal `db:"quantity"`
	Amount         decimal.Decimal `db:"amount"`
	PayableCoaID   string          `db:"payable_coa_id"`
	InventoryCoaID string          `db:"inventory_coa_id"`
	Notes          string          `db:"notes"`
	Status         string          `db:"status"`
	RequestedBy    string          `db:"requested_by"`
	ApprovedBy     sql.NullString  `db:"approved_by"`
	ApprovedAt     sql.NullTime    `db:"approved_at"`
	ApprovalNotes  string          `db:"approval_notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
