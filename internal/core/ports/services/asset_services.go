package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// AssetReaderSvc defines read operations for fixed assets
type AssetReaderSvc interface {
	// GetAssetByID retrieves an asset by ID.
	GetAssetByID(ctx context.Context, assetID string, actorID string) (*domain.Asset, error)

	// ListAssets retrieves a paginated list of assets.
	ListAssets(ctx context.Context, params dto.ListAssetsParams, actorID string) (*dto.ListAssetsResponse, error)

	// GetDepreciationHistory retrieves recorded depreciation entries, oldest first.
	GetDepreciationHistory(ctx context.Context, assetID string, actorID string) ([]domain.AssetDepreciation, error)

	// GetDisposalByID retrieves a disposal document by ID.
	GetDisposalByID(ctx context.Context, disposalID string, actorID string) (*domain.AssetDisposal, error)

	// GetTransferByID retrieves a transfer document by ID.
	GetTransferByID(ctx context.Context, transferID string, actorID string) (*domain.AssetTransfer, error)
}

// AssetLifecycleSvc covers acquisition and monthly depreciation.
type AssetLifecycleSvc interface {
	// RegisterAsset persists a new asset and posts its acquisition journal.
	RegisterAsset(ctx context.Context, req dto.RegisterAssetRequest, actorID string) (*domain.Asset, error)

	// Depreciate records one month of straight-line depreciation and posts
	// its journal. A period already recorded fails with apperrors.ErrDuplicate;
	// depreciating below salvage value fails with apperrors.ErrValidation.
	Depreciate(ctx context.Context, assetID string, req dto.DepreciateAssetRequest, actorID string) (*domain.AssetDepreciation, error)
}

// AssetWorkflowSvc drives disposal and transfer documents through the
// shared approval workflow. Completing a disposal posts the gain/loss
// journal and marks the asset disposed atomically; completing a transfer
// moves the asset's branch and posts the transfer journal atomically.
type AssetWorkflowSvc interface {
	// CreateDisposal creates a draft disposal document.
	CreateDisposal(ctx context.Context, req dto.CreateDisposalRequest, actorID string) (*domain.AssetDisposal, error)

	// TransitionDisposal applies a workflow action (submit/approve/reject/complete/cancel).
	TransitionDisposal(ctx context.Context, disposalID string, action domain.WorkflowAction, req dto.TransitionRequest, actorID string) (*domain.AssetDisposal, error)

	// CreateTransfer creates a draft transfer document. The destination
	// branch must differ from the asset's current branch.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, actorID string) (*domain.AssetTransfer, error)

	// TransitionTransfer applies a workflow action (submit/approve/reject/complete/cancel).
	TransitionTransfer(ctx context.Context, transferID string, action domain.WorkflowAction, req dto.TransitionRequest, actorID string) (*domain.AssetTransfer, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetLifecycleSvc
	AssetWorkflowSvc
}
