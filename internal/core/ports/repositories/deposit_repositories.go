package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// DepositReader defines read operations for deposit balances
type DepositReader interface {
	// FindDepositByID retrieves a specific deposit by its unique identifier.
	FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)

	// ListDeposits retrieves a paginated list of deposits using token-based pagination.
	ListDeposits(ctx context.Context, limit int, nextToken *string) ([]domain.Deposit, *string, error)

	// FindLogsByDepositID retrieves the mutation ledger of a deposit, oldest first.
	FindLogsByDepositID(ctx context.Context, depositID string) ([]domain.DepositLog, error)

	// NumberExists reports whether a document number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}

// DepositWriter defines write operations for deposit balances
type DepositWriter interface {
	// SaveDeposit persists a new deposit account.
	SaveDeposit(ctx context.Context, deposit domain.Deposit) error

	// MarkDepositDeleted soft-deletes a deposit; its logs are retained.
	MarkDepositDeleted(ctx context.Context, depositID string, deletedAt time.Time, deletedBy string) error
}

// DepositTransactionSupport defines operations used inside mutation transactions.
// Every balance mutation locks the deposit row, updates the columns, and appends
// the log entry within one transaction.
type DepositTransactionSupport interface {
	// FindDepositByIDForUpdate selects the deposit row and locks it for update.
	FindDepositByIDForUpdate(ctx context.Context, tx pgx.Tx, depositID string) (*domain.Deposit, error)

	// UpdateDepositInTx writes the deposit's balance columns and status inside the transaction.
	UpdateDepositInTx(ctx context.Context, tx pgx.Tx, deposit domain.Deposit) error

	// AppendLogInTx appends one mutation log entry inside the transaction.
	AppendLogInTx(ctx context.Context, tx pgx.Tx, entry domain.DepositLog) error
}

// DepositRepositoryFacade combines all deposit-related repository interfaces
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
	DepositTransactionSupport
}

// DepositRepositoryWithTx extends DepositRepositoryFacade with transaction capabilities
type DepositRepositoryWithTx interface {
	DepositRepositoryFacade
	TransactionManager
}
