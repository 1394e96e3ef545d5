package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// PurchaseReturnReader defines read operations for purchase return documents
type PurchaseReturnReader interface {
	// FindReturnByID retrieves a specific purchase return.
	FindReturnByID(ctx context.Context, returnID string) (*domain.PurchaseReturn, error)

	// ListReturns retrieves a paginated list of purchase returns, optionally filtered by status.
	ListReturns(ctx context.Context, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.PurchaseReturn, *string, error)

	// NumberExists reports whether a purchase return number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}

// PurchaseReturnWriter defines write operations for purchase return documents
type PurchaseReturnWriter interface {
	// SaveReturn persists a new purchase return in draft status.
	SaveReturn(ctx context.Context, ret domain.PurchaseReturn) error
}

// PurchaseReturnTransactionSupport defines operations used inside workflow transitions
type PurchaseReturnTransactionSupport interface {
	// FindReturnByIDForUpdate selects the return row and locks it for update.
	FindReturnByIDForUpdate(ctx context.Context, tx pgx.Tx, returnID string) (*domain.PurchaseReturn, error)

	// UpdateReturnInTx writes the return's status and approval fields inside the transaction.
	UpdateReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.PurchaseReturn) error
}

// PurchaseReturnRepositoryFacade combines all purchase-return repository interfaces
type PurchaseReturnRepositoryFacade interface {
	PurchaseReturnReader
	PurchaseReturnWriter
	PurchaseReturnTransactionSupport
}

// PurchaseReturnRepositoryWithTx extends PurchaseReturnRepositoryFacade with transaction capabilities
type PurchaseReturnRepositoryWithTx interface {
	PurchaseReturnRepositoryFacade
	TransactionManager
}
