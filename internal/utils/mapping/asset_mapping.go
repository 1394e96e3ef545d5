package mapping

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:          d.AssetID,
		Number:           d.Number,
		Name:             d.Name,
		BranchID:         d.BranchID,
		PurchaseCost:     d.PurchaseCost,
		SalvageValue:     d.SalvageValue,
		UsefulLifeMonths: d.UsefulLifeMonths,
		PurchaseDate:     d.PurchaseDate,
		UsageDate:        d.UsageDate,
		Status:           string(d.Status),
		AssetCoaID:       d.AssetCoaID,
		AccumCoaID:       d.AccumCoaID,
		ExpenseCoaID:     d.ExpenseCoaID,
		AccumulatedDep:   d.AccumulatedDep,
		AuditFields:      ToModelAuditFields(d.AuditFields),
		DeletedAt:        d.DeletedAt,
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:          m.AssetID,
		Number:           m.Number,
		Name:             m.Name,
		BranchID:         m.BranchID,
		PurchaseCost:     m.PurchaseCost,
		SalvageValue:     m.SalvageValue,
		UsefulLifeMonths: m.UsefulLifeMonths,
		PurchaseDate:     m.PurchaseDate,
		UsageDate:        m.UsageDate,
		Status:           domain.AssetStatus(m.Status),
		AssetCoaID:       m.AssetCoaID,
		AccumCoaID:       m.AccumCoaID,
		ExpenseCoaID:     m.ExpenseCoaID,
		AccumulatedDep:   m.AccumulatedDep,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		DeletedAt:        m.DeletedAt,
	}
}

// ToDomainAssetSlice converts a slice of model assets to domain assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}

// ToModelDepreciation converts a domain AssetDepreciation to its model
func ToModelDepreciation(d domain.AssetDepreciation) models.AssetDepreciation {
	return models.AssetDepreciation{
		DepreciationID:   d.DepreciationID,
		AssetID:          d.AssetID,
		Date:             d.Date,
		PeriodMonth:      d.PeriodMonth,
		PeriodYear:       d.PeriodYear,
		Amount:           d.Amount,
		AccumulatedTotal: d.AccumulatedTotal,
		BookValue:        d.BookValue,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepreciation converts a model AssetDepreciation to its domain form
func ToDomainDepreciation(m models.AssetDepreciation) domain.AssetDepreciation {
	return domain.AssetDepreciation{
		DepreciationID:   m.DepreciationID,
		AssetID:          m.AssetID,
		Date:             m.Date,
		PeriodMonth:      m.PeriodMonth,
		PeriodYear:       m.PeriodYear,
		Amount:           m.Amount,
		AccumulatedTotal: m.AccumulatedTotal,
		BookValue:        m.BookValue,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepreciationSlice converts model depreciation rows to domain form
func ToDomainDepreciationSlice(ms []models.AssetDepreciation) []domain.AssetDepreciation {
	ds := make([]domain.AssetDepreciation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepreciation(m)
	}
	return ds
}

// ToModelDisposal converts a domain AssetDisposal to its model
func ToModelDisposal(d domain.AssetDisposal) models.AssetDisposal {
	return models.AssetDisposal{
		DisposalID:    d.DisposalID,
		Number:        d.Number,
		AssetID:       d.AssetID,
		DisposalType:  string(d.Type),
		SalePrice:     d.SalePrice,
		ProceedsCoaID: ptrToNullString(d.ProceedsCoaID),
		Notes:         d.Notes,
		Status:        string(d.Status),
		RequestedBy:   d.RequestedBy,
		ApprovedBy:    ptrToNullString(d.ApprovedBy),
		ApprovedAt:    ptrToNullTime(d.ApprovedAt),
		ApprovalNotes: d.ApprovalNotes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainDisposal converts a model AssetDisposal to its domain form
func ToDomainDisposal(m models.AssetDisposal) domain.AssetDisposal {
	return domain.AssetDisposal{
		DisposalID:    m.DisposalID,
		Number:        m.Number,
		AssetID:       m.AssetID,
		Type:          domain.DisposalType(m.DisposalType),
		SalePrice:     m.SalePrice,
		ProceedsCoaID: nullStringToPtr(m.ProceedsCoaID),
		Notes:         m.Notes,
		Status:        domain.DocumentStatus(m.Status),
		RequestedBy:   m.RequestedBy,
		ApprovedBy:    nullStringToPtr(m.ApprovedBy),
		ApprovedAt:    nullTimeToPtr(m.ApprovedAt),
		ApprovalNotes: m.ApprovalNotes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}

// ToModelTransfer converts a domain AssetTransfer to its model
func ToModelTransfer(d domain.AssetTransfer) models.AssetTransfer {
	return models.AssetTransfer{
		TransferID:    d.TransferID,
		Number:        d.Number,
		AssetID:       d.AssetID,
		FromBranchID:  d.FromBranchID,
		ToBranchID:    d.ToBranchID,
		Notes:         d.Notes,
		Status:        string(d.Status),
		RequestedBy:   d.RequestedBy,
		ApprovedBy:    ptrToNullString(d.ApprovedBy),
		ApprovedAt:    ptrToNullTime(d.ApprovedAt),
		ApprovalNotes: d.ApprovalNotes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainTransfer converts a model AssetTransfer to its domain form
func ToDomainTransfer(m models.AssetTransfer) domain.AssetTransfer {
	return domain.AssetTransfer{
		TransferID:    m.TransferID,
		Number:        m.Number,
		AssetID:       m.AssetID,
		FromBranchID:  m.FromBranchID,
		ToBranchID:    m.ToBranchID,
		Notes:         m.Notes,
		Status:        domain.DocumentStatus(m.Status),
		RequestedBy:   m.RequestedBy,
		ApprovedBy:    nullStringToPtr(m.ApprovedBy),
		ApprovedAt:    nullTimeToPtr(m.ApprovedAt),
		ApprovalNotes: m.ApprovalNotes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeletedAt:     m.DeletedAt,
	}
}
