package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine represents one persisted general-ledger line. Lines sharing a
// reference form a single balanced posting.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	Reference    string          `db:"reference"`
	CoaID        string          `db:"coa_id"`
	Date         time.Time       `db:"date"`
	Description  string          `db:"description"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	JournalType  string          `db:"journal_type"`
	SourceType   string          `db:"source_type"`
	SourceID     string          `db:"source_id"`
	BranchID     sql.NullString  `db:"branch_id"`
	DepartmentID sql.NullString  `db:"department_id"`
	ProjectID    sql.NullString  `db:"project_id"`
	AuditFields
}
