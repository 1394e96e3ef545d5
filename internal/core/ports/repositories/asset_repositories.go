package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// AssetReader defines read operations for fixed assets
type AssetReader interface {
	// FindAssetByID retrieves a specific asset.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves a paginated list of assets, optionally filtered by status.
	ListAssets(ctx context.Context, status *domain.AssetStatus, limit int, nextToken *string) ([]domain.Asset, *string, error)

	// FindDepreciationByPeriod retrieves a recorded depreciation entry for an
	// asset and period, or apperrors.ErrNotFound.
	FindDepreciationByPeriod(ctx context.Context, assetID string, year int, month int) (*domain.AssetDepreciation, error)

	// FindDepreciationsByAssetID retrieves all recorded entries for an asset, oldest first.
	FindDepreciationsByAssetID(ctx context.Context, assetID string) ([]domain.AssetDepreciation, error)

	// NumberExists reports whether an asset, disposal, or transfer number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}

// AssetWriter defines write operations for fixed assets
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// SaveAssetInTx persists a new asset inside the caller's transaction,
	// so registration and its acquisition journal commit together.
	SaveAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error
}

// AssetTransactionSupport defines operations used inside depreciation,
// disposal, and transfer transactions.
type AssetTransactionSupport interface {
	// FindAssetByIDForUpdate selects the asset row and locks it for update.
	FindAssetByIDForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.Asset, error)

	// UpdateAssetInTx writes the asset's mutable columns (status, branch,
	// accumulated depreciation) inside the transaction.
	UpdateAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error

	// InsertDepreciationInTx appends a depreciation entry inside the transaction.
	InsertDepreciationInTx(ctx context.Context, tx pgx.Tx, entry domain.AssetDepreciation) error
}

// AssetDocumentReader defines read operations for disposal and transfer documents
type AssetDocumentReader interface {
	// FindDisposalByID retrieves a disposal document.
	FindDisposalByID(ctx context.Context, disposalID string) (*domain.AssetDisposal, error)

	// FindTransferByID retrieves a transfer document.
	FindTransferByID(ctx context.Context, transferID string) (*domain.AssetTransfer, error)
}

// AssetDocumentWriter defines write operations for disposal and transfer documents
type AssetDocumentWriter interface {
	// SaveDisposal persists a new disposal document in draft status.
	SaveDisposal(ctx context.Context, disposal domain.AssetDisposal) error

	// SaveTransfer persists a new transfer document in draft status.
	SaveTransfer(ctx context.Context, transfer domain.AssetTransfer) error

	// FindDisposalByIDForUpdate selects the disposal row and locks it for update.
	FindDisposalByIDForUpdate(ctx context.Context, tx pgx.Tx, disposalID string) (*domain.AssetDisposal, error)

	// FindTransferByIDForUpdate selects the transfer row and locks it for update.
	FindTransferByIDForUpdate(ctx context.Context, tx pgx.Tx, transferID string) (*domain.AssetTransfer, error)

	// UpdateDisposalInTx writes the disposal's status and approval fields inside the transaction.
	UpdateDisposalInTx(ctx context.Context, tx pgx.Tx, disposal domain.AssetDisposal) error

	// UpdateTransferInTx writes the transfer's status and approval fields inside the transaction.
	UpdateTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.AssetTransfer) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetTransactionSupport
	AssetDocumentReader
	AssetDocumentWriter
}

// AssetRepositoryWithTx extends AssetRepositoryFacade with transaction capabilities
type AssetRepositoryWithTx interface {
	AssetRepositoryFacade
	TransactionManager
}
