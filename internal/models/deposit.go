package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deposit represents a customer or supplier deposit balance row.
// Remaining is persisted redundantly and must always equal total - used.
type Deposit struct {
	DepositID   string          `db:"deposit_id"`
	Number      string          `db:"number"`
	OwnerType   string          `db:"owner_type"`
	OwnerID     string          `db:"owner_id"`
	Total       decimal.Decimal `db:"total"`
	Used        decimal.Decimal `db:"used"`
	Remaining   decimal.Decimal `db:"remaining"`
	LinkedCoaID string          `db:"linked_coa_id"`
	Status      string          `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// DepositLog is one append-only entry of a deposit's mutation history.
type DepositLog struct {
	LogID     string          `db:"log_id"`
	DepositID string          `db:"deposit_id"`
	LogType   string          `db:"log_type"`
	Amount    decimal.Decimal `db:"amount"`
	Note      string          `db:"note"`
	CreatedAt time.Time       `db:"created_at"`
	CreatedBy string          `db:"created_by"`
}
