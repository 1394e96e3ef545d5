package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Asset represents a registered fixed asset.
type Asset struct {
	AssetID          string          `db:"asset_id"`
	Number           string          `db:"number"`
	Name             string          `db:"name"`
	BranchID         string          `db:"branch_id"`
	PurchaseCost     decimal.Decimal `db:"purchase_cost"`
	SalvageValue     decimal.Decimal `db:"salvage_value"`
	UsefulLifeMonths int             `db:"useful_life_months"`
	PurchaseDate     time.Time       `db:"purchase_date"`
	UsageDate        time.Time       `db:"usage_date"`
	Status           string          `db:"status"`
	AssetCoaID       string          `db:"asset_coa_id"`
	AccumCoaID       string          `db:"accum_coa_id"`
	ExpenseCoaID     string          `db:"expense_coa_id"`
	AccumulatedDep   decimal.Decimal `db:"accumulated_dep"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// AssetDepreciation is one recorded monthly depreciation period.
type AssetDepreciation struct {
	DepreciationID   string          `db:"depreciation_id"`
	AssetID          string          `db:"asset_id"`
	Date             time.Time       `db:"date"`
	PeriodMonth      int             `db:"period_month"`
	PeriodYear       int             `db:"period_year"`
	Amount           decimal.Decimal `db:"amount"`
	AccumulatedTotal decimal.Decimal `db:"accumulated_total"`
	BookValue        decimal.Decimal `db:"book_value"`
	Notes            string          `db:"notes"`
	AuditFields
}

// AssetDisposal is a disposal approval document for an asset.
type AssetDisposal struct {
	DisposalID    string          `db:"disposal_id"`
	Number        string          `db:"number"`
	AssetID       string          `db:"asset_id"`
	DisposalType  string          `db:"disposal_type"`
	SalePrice     decimal.Decimal `db:"sale_price"`
	ProceedsCoaID sql.NullString  `db:"proceeds_coa_id"`
	Notes         string          `db:"notes"`
	Status        string          `db:"status"`
	RequestedBy   string          `db:"requested_by"`
	ApprovedBy    sql.NullString  `db:"approved_by"`
	ApprovedAt    sql.NullTime    `db:"approved_at"`
	ApprovalNotes string          `db:"approval_notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// AssetTransfer is a branch transfer approval document for an asset.
type AssetTransfer struct {
	TransferID    string         `db:"transfer_id"`
	Number        string         `db:"number"`
	AssetID       string         `db:"asset_id"`
	FromBranchID  string         `db:"from_branch_id"`
	ToBranchID    string         `db:"to_branch_id"`
	Notes         string         `db:"notes"`
	Status        string         `db:"status"`
	RequestedBy   string         `db:"requested_by"`
	ApprovedBy    sql.NullString `db:"approved_by"`
	ApprovedAt    sql.NullTime   `db:"approved_at"`
	ApprovalNotes string         `db:"approval_notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
