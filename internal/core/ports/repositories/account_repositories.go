package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for chart of account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, coaID string) (*domain.ChartOfAccount, error)

	// FindAccountByCode resolves a human-meaningful account code (e.g. "1210.01") to the account.
	FindAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, coaIDs []string) (map[string]domain.ChartOfAccount, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccount, error)
}

// AccountWriter defines write operations for chart of account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.ChartOfAccount) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.ChartOfAccount) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, coaID string, userID string, now time.Time) error
}

// AccountTransactionSupport defines operations used inside posting transactions
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, coaIDs []string) (map[string]domain.ChartOfAccount, error)

	// UpdateAccountBalancesInTx applies signed balance deltas to multiple accounts within a transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
