package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAssetRequest defines the data needed to register a fixed asset.
type RegisterAssetRequest struct {
	Name             string `json:"name" binding:"required"`
	BranchID         string `json:"branchID" binding:"required"`
	PurchaseCost     string `json:"purchaseCost" binding:"required,idr_amount"`
	SalvageValue     string `json:"salvageValue" binding:"omitempty,idr_amount"`
	UsefulLifeMonths int    `json:"usefulLifeMonths" binding:"required,gt=0"`
	PurchaseDate     string `json:"purchaseDate" binding:"required"` // YYYY-MM-DD
	UsageDate        string `json:"usageDate" binding:"required"`    // YYYY-MM-DD
	AssetCoaID       string `json:"assetCoaID" binding:"required"`
	AccumCoaID       string `json:"accumCoaID" binding:"required"`
	ExpenseCoaID     string `json:"expenseCoaID" binding:"required"`
	PaymentCoaID     string `json:"paymentCoaID" binding:"required"`
}

// DepreciateAssetRequest runs depreciation for a single period.
type DepreciateAssetRequest struct {
	PeriodMonth int    `json:"periodMonth" binding:"required,min=1,max=12"`
	PeriodYear  int    `json:"periodYear" binding:"required,min=2000"`
	Notes       string `json:"notes"`
}

// CreateDisposalRequest starts a disposal approval document.
type CreateDisposalRequest struct {
	AssetID       string              `json:"assetID" binding:"required"`
	Type          domain.DisposalType `json:"type" binding:"required,oneof=SALE SCRAP"`
	SalePrice     string              `json:"salePrice" binding:"omitempty,idr_amount"` // Required for SALE
	ProceedsCoaID *string             `json:"proceedsCoaID"`
	Notes         string              `json:"notes" binding:"required"`
}

// CreateTransferRequest starts an asset transfer approval document.
type CreateTransferRequest struct {
	AssetID      string `json:"assetID" binding:"required"`
	FromBranchID string `json:"fromBranchID" binding:"required"`
	ToBranchID   string `json:"toBranchID" binding:"required,nefield=FromBranchID"`
	Notes        string `json:"notes"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID          string             `json:"assetID"`
	Number           string             `json:"number"`
	Name             string             `json:"name"`
	BranchID         string             `json:"branchID"`
	PurchaseCost     decimal.Decimal    `json:"purchaseCost"`
	SalvageValue     decimal.Decimal    `json:"salvageValue"`
	UsefulLifeMonths int                `json:"usefulLifeMonths"`
	PurchaseDate     time.Time          `json:"purchaseDate"`
	UsageDate        time.Time          `json:"usageDate"`
	AccumulatedDep   decimal.Decimal    `json:"accumulatedDep"`
	BookValue        decimal.Decimal    `json:"bookValue"`
	Status           domain.AssetStatus `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// DepreciationResponse defines one recorded depreciation period.
type DepreciationResponse struct {
	DepreciationID   string          `json:"depreciationID"`
	AssetID          string          `json:"assetID"`
	PeriodMonth      int             `json:"periodMonth"`
	PeriodYear       int             `json:"periodYear"`
	Amount           decimal.Decimal `json:"amount"`
	AccumulatedTotal decimal.Decimal `json:"accumulatedTotal"`
	BookValue        decimal.Decimal `json:"bookValue"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// DisposalResponse defines the data returned for a disposal document.
type DisposalResponse struct {
	DisposalID string                `json:"disposalID"`
	Number     string                `json:"number"`
	AssetID    string                `json:"assetID"`
	Type       domain.DisposalType   `json:"type"`
	SalePrice  decimal.Decimal       `json:"salePrice"`
	Notes      string                `json:"notes,omitempty"`
	Status     domain.DocumentStatus `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// TransferResponse defines the data returned for a transfer document.
type TransferResponse struct {
	TransferID   string                `json:"transferID"`
	Number       string                `json:"number"`
	AssetID      string                `json:"assetID"`
	FromBranchID string                `json:"fromBranchID"`
	ToBranchID   string                `json:"toBranchID"`
	Notes        string                `json:"notes,omitempty"`
	Status       domain.DocumentStatus `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Status    *domain.AssetStatus `form:"status"`
	Limit     int                 `form:"limit,default=20"`
	NextToken *string             `form:"nextToken"`
}

// ListAssetsResponse wraps a page of assets.
type ListAssetsResponse struct {
	Assets    []AssetResponse `json:"assets"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToAssetResponse converts a domain.Asset to its DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:          a.AssetID,
		Number:           a.Number,
		Name:             a.Name,
		BranchID:         a.BranchID,
		PurchaseCost:     a.PurchaseCost,
		SalvageValue:     a.SalvageValue,
		UsefulLifeMonths: a.UsefulLifeMonths,
		PurchaseDate:     a.PurchaseDate,
		UsageDate:        a.UsageDate,
		AccumulatedDep:   a.AccumulatedDep,
		BookValue:        a.BookValue(),
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
	}
}

// ToAssetResponses converts a slice of domain assets.
func ToAssetResponses(assets []domain.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		out = append(out, ToAssetResponse(&assets[i]))
	}
	return out
}

// ToDepreciationResponse converts a recorded depreciation period.
func ToDepreciationResponse(d *domain.AssetDepreciation) DepreciationResponse {
	return DepreciationResponse{
		DepreciationID:   d.DepreciationID,
		AssetID:          d.AssetID,
		PeriodMonth:      d.PeriodMonth,
		PeriodYear:       d.PeriodYear,
		Amount:           d.Amount,
		AccumulatedTotal: d.AccumulatedTotal,
		BookValue:        d.BookValue,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDisposalResponse converts a domain.AssetDisposal to its DTO.
func ToDisposalResponse(d *domain.AssetDisposal) DisposalResponse {
	return DisposalResponse{
		DisposalID: d.DisposalID,
		Number:     d.Number,
		AssetID:    d.AssetID,
		Type:       d.Type,
		SalePrice:  d.SalePrice,
		Notes:      d.Notes,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}

// ToTransferResponse converts a domain.AssetTransfer to its DTO.
func ToTransferResponse(t *domain.AssetTransfer) TransferResponse {
	return TransferResponse{
		TransferID:   t.TransferID,
		Number:       t.Number,
		AssetID:      t.AssetID,
		FromBranchID: t.FromBranchID,
		ToBranchID:   t.ToBranchID,
		Notes:        t.Notes,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
	}
}
