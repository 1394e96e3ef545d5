package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseReturn is a workflow document sending received goods back to a
// supplier. It originates from a purchase receipt, optionally via the QC
// inspection that rejected the quantity. Completing it posts the return
// journal (Dr supplier payable, Cr inventory).
type PurchaseReturn struct {
	ReturnID       string          `json:"returnID"` // Primary Key (UUID)
	Number         string          `json:"number"`   // e.g. "PR-20250101-0001"
	ReceiptID      string          `json:"receiptID"`
	QCID           *string         `json:"qcID,omitempty"` // Set when the return follows a QC rejection
	SupplierID     string          `json:"supplierID"`
	BranchID       string          `json:"branchID"` // Branch of the receipt; the QC inherits it
	Quantity       decimal.Decimal `json:"quantity"`
	Amount         decimal.Decimal `json:"amount"`
	PayableCoaID   string          `json:"payableCoaID"`
	InventoryCoaID string          `json:"inventoryCoaID"`
	Notes          string          `json:"notes"`
	Status         DocumentStatus  `json:"status"`
	RequestedBy    string          `json:"requestedBy"`
	ApprovedBy     *string         `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time      `json:"approvedAt,omitempty"`
	ApprovalNotes  string          `json:"approvalNotes,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
