package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus indicates the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive         AssetStatus = "ACTIVE"
	AssetDisposedStatus AssetStatus = "DISPOSED"
)

// Asset is a fixed asset subject to straight-line depreciation.
type Asset struct {
	AssetID          string          `json:"assetID"` // Primary Key (UUID)
	Number           string          `json:"number"`  // e.g. "AST-20250101-0001"
	Name             string          `json:"name"`
	BranchID         string          `json:"branchID"` // Current location; changed only by a completed transfer
	PurchaseCost     decimal.Decimal `json:"purchaseCost"`
	SalvageValue     decimal.Decimal `json:"salvageValue"`
	UsefulLifeMonths int             `json:"usefulLifeMonths"`
	PurchaseDate     time.Time       `json:"purchaseDate"`
	UsageDate        time.Time       `json:"usageDate"` // Depreciation cannot start before this
	Status           AssetStatus     `json:"status"`
	AssetCoaID       string          `json:"assetCoaID"`     // Fixed asset (cost) account
	AccumCoaID       string          `json:"accumCoaID"`     // Accumulated depreciation account
	ExpenseCoaID     string          `json:"expenseCoaID"`   // Depreciation expense account
	AccumulatedDep   decimal.Decimal `json:"accumulatedDep"` // Sum of recorded depreciation
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// BookValue returns purchase cost less accumulated depreciation.
func (a Asset) BookValue() decimal.Decimal {
	return a.PurchaseCost.Sub(a.AccumulatedDep)
}

// AssetDepreciation is one recorded monthly depreciation entry.
// A (asset, year, month) pair is recorded at most once.
type AssetDepreciation struct {
	DepreciationID   string          `json:"depreciationID"` // Primary Key (UUID)
	AssetID          string          `json:"assetID"`
	Date             time.Time       `json:"date"`
	PeriodMonth      int             `json:"periodMonth"`
	PeriodYear       int             `json:"periodYear"`
	Amount           decimal.Decimal `json:"amount"`
	AccumulatedTotal decimal.Decimal `json:"accumulatedTotal"` // Running total after this entry
	BookValue        decimal.Decimal `json:"bookValue"`        // Cost - AccumulatedTotal
	Notes            string          `json:"notes"`
	AuditFields
}

// DisposalType distinguishes a sale from scrapping.
type DisposalType string

const (
	DisposalSale  DisposalType = "SALE"
	DisposalScrap DisposalType = "SCRAP"
)

// AssetDisposal is a workflow document removing an asset from the books.
// Completing it posts the gain/loss journal and marks the asset disposed,
// atomically.
type AssetDisposal struct {
	DisposalID    string          `json:"disposalID"` // Primary Key (UUID)
	Number        string          `json:"number"`
	AssetID       string          `json:"assetID"`
	Type          DisposalType    `json:"type"`
	SalePrice     decimal.Decimal `json:"salePrice"` // Required when Type == SALE
	ProceedsCoaID *string         `json:"proceedsCoaID,omitempty"`
	Notes         string          `json:"notes"`
	Status        DocumentStatus  `json:"status"`
	RequestedBy   string          `json:"requestedBy"`
	ApprovedBy    *string         `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time      `json:"approvedAt,omitempty"`
	ApprovalNotes string          `json:"approvalNotes,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// AssetTransfer is a workflow document moving an asset between branches.
// Completing it updates the asset's branch and posts the transfer journal
// in one transaction; a posting failure leaves the location unchanged.
type AssetTransfer struct {
	TransferID    string         `json:"transferID"` // Primary Key (UUID)
	Number        string         `json:"number"`
	AssetID       string         `json:"assetID"`
	FromBranchID  string         `json:"fromBranchID"`
	ToBranchID    string         `json:"toBranchID"` // Must differ from FromBranchID
	Notes         string         `json:"notes"`
	Status        DocumentStatus `json:"status"`
	RequestedBy   string         `json:"requestedBy"`
	ApprovedBy    *string        `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time     `json:"approvedAt,omitempty"`
	ApprovalNotes string         `json:"approvalNotes,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
