package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductionReader defines read operations for QC and material issue documents
type ProductionReader interface {
	// FindQCByID retrieves a quality control document.
	FindQCByID(ctx context.Context, qcID string) (*domain.QualityControl, error)

	// FindMaterialIssueByID retrieves a material issue with its items.
	FindMaterialIssueByID(ctx context.Context, issueID string) (*domain.MaterialIssue, error)

	// NumberExists reports whether a production document number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}

// ProductionWriter defines write operations for QC and material issue documents
type ProductionWriter interface {
	// SaveQC persists a new quality control document in pending status.
	SaveQC(ctx context.Context, qc domain.QualityControl) error

	// SaveMaterialIssue persists a new material issue and its items in draft status.
	SaveMaterialIssue(ctx context.Context, issue domain.MaterialIssue) error
}

// ProductionTransactionSupport defines operations used inside quantity-checked writes
type ProductionTransactionSupport interface {
	// FindQCByIDForUpdate selects the QC row and locks it for update.
	FindQCByIDForUpdate(ctx context.Context, tx pgx.Tx, qcID string) (*domain.QualityControl, error)

	// UpdateQCInTx writes the inspection result inside the transaction.
	UpdateQCInTx(ctx context.Context, tx pgx.Tx, qc domain.QualityControl) error

	// FindMaterialIssueByIDForUpdate selects the issue row (with items) and locks it.
	FindMaterialIssueByIDForUpdate(ctx context.Context, tx pgx.Tx, issueID string) (*domain.MaterialIssue, error)

	// UpdateMaterialIssueInTx writes the issue's status and item quantities inside the transaction.
	UpdateMaterialIssueInTx(ctx context.Context, tx pgx.Tx, issue domain.MaterialIssue) error

	// FindStockForUpdate retrieves the on-hand quantity of a material and locks its stock row.
	FindStockForUpdate(ctx context.Context, tx pgx.Tx, materialID string) (decimal.Decimal, error)

	// AdjustStockInTx applies a signed quantity delta to a material's stock row.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, materialID string, delta decimal.Decimal) error
}

// ProductionRepositoryFacade combines all production-related repository interfaces
type ProductionRepositoryFacade interface {
	ProductionReader
	ProductionWriter
	ProductionTransactionSupport
}

// ProductionRepositoryWithTx extends ProductionRepositoryFacade with transaction capabilities
type ProductionRepositoryWithTx interface {
	ProductionRepositoryFacade
	TransactionManager
}
