package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of a chart of account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// ChartOfAccount represents one ledger account in the accounting structure.
// Journal lines reference accounts by CoaID only; the human-meaningful code
// (e.g. "1210.01") is resolved to an ID before posting.
type ChartOfAccount struct {
	CoaID           string          `json:"coaID"`           // Primary Key (UUID)
	Code            string          `json:"code"`            // Account code, unique (e.g., "1210.01")
	Name            string          `json:"name"`            // User-defined name
	AccountType     AccountType     `json:"accountType"`     // ASSET, LIABILITY, etc.
	ParentAccountID *string         `json:"parentAccountID"` // Nullable FK -> chart_of_accounts.coa_id (self-referencing)
	Description     string          `json:"description"`     // Nullable user description
	IsActive        bool            `json:"isActive"`        // Soft delete or status flag
	Balance         decimal.Decimal `json:"balance"`         // Persisted running balance
	AuditFields                     // Embed CreatedAt, CreatedBy, etc.
}
