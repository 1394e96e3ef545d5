package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerType distinguishes the party a deposit balance is held against.
// A customer deposit is a liability; a supplier deposit is an advance (asset).
type OwnerType string

const (
	OwnerCustomer OwnerType = "CUSTOMER"
	OwnerSupplier OwnerType = "SUPPLIER"
)

// OwnerRef is a typed polymorphic reference to the owning party of a deposit.
type OwnerRef struct {
	Type OwnerType `json:"type"` // CUSTOMER or SUPPLIER
	ID   string    `json:"id"`   // FK -> customers.customer_id or suppliers.supplier_id
}

// DepositStatus indicates the lifecycle state of a deposit balance.
type DepositStatus string

const (
	DepositActive DepositStatus = "ACTIVE"
	DepositClosed DepositStatus = "CLOSED"
)

// Deposit is a prepaid balance held against a customer or supplier.
// Invariant: Remaining = Total - Used after every mutation; all three are
// non-negative unless an authorized negative adjustment overrides Remaining.
// Fields are mutated only through the deposit service, never directly.
type Deposit struct {
	DepositID   string          `json:"depositID"`   // Primary Key (UUID)
	Number      string          `json:"number"`      // Document number (e.g., "DP-20250101-0001")
	Owner       OwnerRef        `json:"owner"`       // Owning customer or supplier
	Total       decimal.Decimal `json:"total"`       // Lifetime funded amount
	Used        decimal.Decimal `json:"used"`        // Lifetime consumed amount
	Remaining   decimal.Decimal `json:"remaining"`   // Total - Used
	LinkedCoaID string          `json:"linkedCoaID"` // Deposit liability/advance account
	Status      DepositStatus   `json:"status"`      // ACTIVE or CLOSED
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete only once mutation history exists
}

// Reconciles reports whether the stored columns still satisfy the
// Remaining = Total - Used invariant.
func (d Deposit) Reconciles() bool {
	return d.Remaining.Equal(d.Total.Sub(d.Used))
}

// DepositLogType classifies an entry in the deposit mutation ledger.
type DepositLogType string

const (
	DepositLogAdd        DepositLogType = "ADD"
	DepositLogUse        DepositLogType = "USE"
	DepositLogAdjustment DepositLogType = "ADJUSTMENT"
	DepositLogReturn     DepositLogType = "RETURN"
	DepositLogClose      DepositLogType = "CLOSE"
)

// DepositLog is one append-only entry in a deposit's mutation ledger.
// Exactly one log row is written per mutation, in the same database
// transaction as the deposit column update.
type DepositLog struct {
	LogID     string          `json:"logID"`     // Primary Key (UUID)
	DepositID string          `json:"depositID"` // FK -> deposits.deposit_id
	Type      DepositLogType  `json:"type"`      // ADD, USE, ADJUSTMENT, RETURN, CLOSE
	Amount    decimal.Decimal `json:"amount"`    // Signed; zero for CLOSE entries
	Note      string          `json:"note"`      // Mandatory for adjustments
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"` // UserID reference
}
