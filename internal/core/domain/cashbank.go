package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashBankType classifies the direction and instrument of a transaction.
type CashBankType string

const (
	CashIn  CashBankType = "CASH_IN"
	CashOut CashBankType = "CASH_OUT"
	BankIn  CashBankType = "BANK_IN"
	BankOut CashBankType = "BANK_OUT"
)

// IsInflow reports whether the type moves money into the main account.
func (t CashBankType) IsInflow() bool {
	return t == CashIn || t == BankIn
}

// CashBankStatus indicates whether a transaction has been posted to the ledger.
type CashBankStatus string

const (
	CashBankDraft        CashBankStatus = "DRAFT"
	CashBankPostedStatus CashBankStatus = "POSTED"
)

// CashBankDetail is one breakdown line of a cash/bank transaction.
// Negative amounts represent reductions (e.g. withheld tax) and flip the
// debit/credit side when posted.
type CashBankDetail struct {
	DetailID    string          `json:"detailID"` // Primary Key (UUID)
	CoaID       string          `json:"coaID"`    // FK -> chart_of_accounts.coa_id
	Amount      decimal.Decimal `json:"amount"`   // Signed
	Description string          `json:"description"`
}

// CashBankTransaction is a cash or bank receipt/payment document. Posting
// emits balanced journal lines: with a breakdown, each detail gets its own
// line against the main account; without one, the offset account is used.
type CashBankTransaction struct {
	TransactionID string           `json:"transactionID"` // Primary Key (UUID)
	Number        string           `json:"number"`        // e.g. "CB-20250101-0001"
	Type          CashBankType     `json:"type"`
	Date          time.Time        `json:"date"`
	Amount        decimal.Decimal  `json:"amount"`
	Description   string           `json:"description"`
	AccountCoaID  string           `json:"accountCoaID"`          // Main cash/bank account
	OffsetCoaID   *string          `json:"offsetCoaID,omitempty"` // Counter account when no breakdown
	Details       []CashBankDetail `json:"details,omitempty"`
	Status        CashBankStatus   `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// DetailTotal sums the breakdown amounts. Posting requires this to equal
// Amount exactly when details are present.
func (t CashBankTransaction) DetailTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Details {
		total = total.Add(d.Amount)
	}
	return total
}
