package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingEvent is a typed business event the journal poster can record.
// Each variant carries the amounts and resolved chart-of-account IDs its
// directional rule needs; the poster owns no COA lookup of its own.
type PostingEvent interface {
	JournalType() JournalType
	Source() (SourceType, string)
	EventDate() time.Time
}

// DepositFunded records money added to a deposit balance.
// Supplier: Dr advance-to-supplier, Cr cash/bank.
// Customer: Dr cash/bank, Cr customer-deposit liability.
type DepositFunded struct {
	DepositID    string
	Number       string
	Owner        OwnerType
	Amount       decimal.Decimal
	DepositCoaID string // Advance (supplier) or liability (customer) account
	PaymentCoaID string // Cash/bank account the funds moved through
	Date         time.Time
	Note         string
}

func (e DepositFunded) JournalType() JournalType     { return JournalDeposit }
func (e DepositFunded) Source() (SourceType, string) { return SourceDeposit, e.DepositID }
func (e DepositFunded) EventDate() time.Time         { return e.Date }

// DepositReduced records money leaving a deposit balance (consumption,
// refund, or negative adjustment). The debit/credit sides are the mirror
// of DepositFunded for the same owner type.
type DepositReduced struct {
	DepositID    string
	Number       string
	Owner        OwnerType
	Amount       decimal.Decimal
	DepositCoaID string
	PaymentCoaID string
	Date         time.Time
	Note         string
}

func (e DepositReduced) JournalType() JournalType     { return JournalDeposit }
func (e DepositReduced) Source() (SourceType, string) { return SourceDeposit, e.DepositID }
func (e DepositReduced) EventDate() time.Time         { return e.Date }

// CashBankPosted records a cash/bank transaction, with or without a
// detail breakdown. Detail lines with negative amounts flip sides (tax
// reductions on receipts, expense credits on payments).
type CashBankPosted struct {
	TransactionID string
	Number        string
	Type          CashBankType
	Amount        decimal.Decimal
	AccountCoaID  string  // Main cash/bank account
	OffsetCoaID   *string // Counter account when there is no breakdown
	Details       []CashBankDetail
	Date          time.Time
	Description   string
}

func (e CashBankPosted) JournalType() JournalType { return JournalCashBank }
func (e CashBankPosted) Source() (SourceType, string) {
	return SourceCashBankTransaction, e.TransactionID
}
func (e CashBankPosted) EventDate() time.Time { return e.Date }

// AssetAcquired records the acquisition of a fixed asset.
// Dr fixed asset, Cr accounts payable or cash/bank.
type AssetAcquired struct {
	AssetID      string
	AssetName    string
	Cost         decimal.Decimal
	AssetCoaID   string
	CreditCoaID  string // Payable or cash/bank funding source
	PurchaseDate time.Time
}

func (e AssetAcquired) JournalType() JournalType     { return JournalAssetAcquisition }
func (e AssetAcquired) Source() (SourceType, string) { return SourceAsset, e.AssetID }
func (e AssetAcquired) EventDate() time.Time         { return e.PurchaseDate }

// AssetDepreciated records one period of straight-line depreciation.
// Dr depreciation expense, Cr accumulated depreciation.
type AssetDepreciated struct {
	DepreciationID string
	AssetID        string
	AssetName      string
	Amount         decimal.Decimal
	ExpenseCoaID   string
	AccumCoaID     string
	Date           time.Time
	PeriodLabel    string // e.g. "2025-01"
}

func (e AssetDepreciated) JournalType() JournalType { return JournalAssetDepreciation }
func (e AssetDepreciated) Source() (SourceType, string) {
	return SourceAssetDepreciation, e.DepreciationID
}
func (e AssetDepreciated) EventDate() time.Time { return e.Date }

// AssetDisposed records the disposal of an asset at a gain or a loss.
// Gain:  Dr proceeds + accumulated depreciation, Cr asset cost + gain.
// Loss:  Dr proceeds + accumulated depreciation + loss, Cr asset cost.
type AssetDisposed struct {
	DisposalID     string
	AssetID        string
	AssetName      string
	Proceeds       decimal.Decimal // Zero for scrapping
	AccumulatedDep decimal.Decimal
	OriginalCost   decimal.Decimal
	ProceedsCoaID  string // Cash/bank or receivable; required when Proceeds > 0
	AccumCoaID     string
	AssetCoaID     string
	GainCoaID      string // Required when disposing at a gain
	LossCoaID      string // Required when disposing at a loss
	Date           time.Time
}

func (e AssetDisposed) JournalType() JournalType     { return JournalAssetDisposal }
func (e AssetDisposed) Source() (SourceType, string) { return SourceAssetDisposal, e.DisposalID }
func (e AssetDisposed) EventDate() time.Time         { return e.Date }

// Gain returns proceeds minus book value; negative means a loss.
func (e AssetDisposed) Gain() decimal.Decimal {
	bookValue := e.OriginalCost.Sub(e.AccumulatedDep)
	return e.Proceeds.Sub(bookValue)
}

// AssetTransferred records an inter-branch asset move through clearing
// accounts, tagged with the source and destination branches.
type AssetTransferred struct {
	TransferID    string
	AssetID       string
	AssetName     string
	BookValue     decimal.Decimal
	InClearCoaID  string // Clearing account at the receiving branch
	OutClearCoaID string // Clearing account at the sending branch
	FromBranchID  string
	ToBranchID    string
	Date          time.Time
}

func (e AssetTransferred) JournalType() JournalType     { return JournalAssetTransfer }
func (e AssetTransferred) Source() (SourceType, string) { return SourceAssetTransfer, e.TransferID }
func (e AssetTransferred) EventDate() time.Time         { return e.Date }

// PurchaseReturned records goods sent back to a supplier.
// Dr supplier payable, Cr inventory.
type PurchaseReturned struct {
	ReturnID       string
	Number         string
	SupplierID     string
	Amount         decimal.Decimal
	PayableCoaID   string
	InventoryCoaID string
	BranchID       string
	Date           time.Time
}

func (e PurchaseReturned) JournalType() JournalType     { return JournalPurchaseReturn }
func (e PurchaseReturned) Source() (SourceType, string) { return SourcePurchaseReturn, e.ReturnID }
func (e PurchaseReturned) EventDate() time.Time         { return e.Date }
