package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// CashBankTransaction represents a cash or bank mutation header.
type CashBankTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	Number          string          `db:"number"`
	TransactionType string          `db:"transaction_type"`
	Date            time.Time       `db:"date"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	AccountCoaID    string          `db:"account_coa_id"`
	OffsetCoaID     sql.NullString  `db:"offset_coa_id"`
	Status          string          `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// CashBankDetail is one breakdown line of a cash/bank transaction.
type CashBankDetail struct {
	DetailID      string          `db:"detail_id"`
	TransactionID string          `db:"transaction_id"`
	CoaID         string          `db:"coa_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
}
