package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalType tags a journal line with the subsystem that produced it.
type JournalType string

const (
	JournalCashBank          JournalType = "CASHBANK"
	JournalDeposit           JournalType = "DEPOSIT"
	JournalVoucher           JournalType = "VOUCHER"
	JournalAssetAcquisition  JournalType = "ASSET_ACQUISITION"
	JournalAssetDepreciation JournalType = "ASSET_DEPRECIATION"
	JournalAssetDisposal     JournalType = "ASSET_DISPOSAL"
	JournalAssetTransfer     JournalType = "ASSET_TRANSFER"
	JournalPurchaseReturn    JournalType = "PURCHASE_RETURN"
)

// SourceType identifies the kind of source document a journal line references.
type SourceType string

const (
	SourceDeposit             SourceType = "DEPOSIT"
	SourceVoucherRequest      SourceType = "VOUCHER_REQUEST"
	SourceCashBankTransaction SourceType = "CASHBANK_TRANSACTION"
	SourceAsset               SourceType = "ASSET"
	SourceAssetDepreciation   SourceType = "ASSET_DEPRECIATION"
	SourceAssetDisposal       SourceType = "ASSET_DISPOSAL"
	SourceAssetTransfer       SourceType = "ASSET_TRANSFER"
	SourcePurchaseReturn      SourceType = "PURCHASE_RETURN"
)

// JournalLine is a single immutable debit-or-credit line in the general
// ledger. Exactly one of Debit/Credit is non-zero. All lines sharing a
// Reference were posted in one transaction and sum to equal debits and
// credits. Corrections are reversing entries, never edits.
type JournalLine struct {
	LineID       string          `json:"lineID"`       // Primary Key (UUID)
	Reference    string          `json:"reference"`    // Posting reference, shared by all lines of one event
	CoaID        string          `json:"coaID"`        // FK -> chart_of_accounts.coa_id
	Date         time.Time       `json:"date"`         // Posting date
	Description  string          `json:"description"`  // Event description
	Debit        decimal.Decimal `json:"debit"`        // Zero when Credit is set
	Credit       decimal.Decimal `json:"credit"`       // Zero when Debit is set
	JournalType  JournalType     `json:"journalType"`  // Producing subsystem
	SourceType   SourceType      `json:"sourceType"`   // Source document kind
	SourceID     string          `json:"sourceID"`     // Source document ID
	BranchID     *string         `json:"branchID"`     // Resolved by the posting context resolver
	DepartmentID *string         `json:"departmentID"` // Resolved by the posting context resolver
	ProjectID    *string         `json:"projectID"`    // Resolved by the posting context resolver
	AuditFields
}

// PostingContext carries the branch/department/project tags a posting event
// is recorded under. It is resolved from the source document before line
// creation, never re-derived by the poster.
type PostingContext struct {
	BranchID     *string `json:"branchID"`
	DepartmentID *string `json:"departmentID"`
	ProjectID    *string `json:"projectID"`
}
