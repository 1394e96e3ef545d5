package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// CashBankReader defines read operations for cash/bank transactions
type CashBankReader interface {
	// FindTransactionByID retrieves a transaction with its detail lines.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error)

	// ListTransactions retrieves a paginated list of transactions using token-based pagination.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.CashBankTransaction, *string, error)

	// NumberExists reports whether a transaction number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}

// CashBankWriter defines write operations for cash/bank transactions
type CashBankWriter interface {
	// SaveTransaction persists a new transaction and its details in draft status.
	SaveTransaction(ctx context.Context, trx domain.CashBankTransaction) error
}

// CashBankTransactionSupport defines operations used inside posting transactions
type CashBankTransactionSupport interface {
	// FindTransactionByIDForUpdate selects the transaction row (with details) and locks it.
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.CashBankTransaction, error)

	// UpdateTransactionStatusInTx marks the transaction posted inside the transaction.
	UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.CashBankStatus, userID string) error

	// SaveTransactionInTx persists a transaction inside the caller's transaction
	// (used when voucher approval auto-creates the realizing transaction).
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, trx domain.CashBankTransaction) error
}

// CashBankRepositoryFacade combines all cash/bank-related repository interfaces
type CashBankRepositoryFacade interface {
	CashBankReader
	CashBankWriter
	CashBankTransactionSupport
}

// CashBankRepositoryWithTx extends CashBankRepositoryFacade with transaction capabilities
type CashBankRepositoryWithTx interface {
	CashBankRepositoryFacade
	TransactionManager
}
