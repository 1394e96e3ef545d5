package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	"github.com/nusankara/erp_backoffice/internal/models"
	"github.com/nusankara/erp_backoffice/internal/utils/mapping"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for chart of account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `coa_id, code, name, account_type, parent_account_id, description, is_active, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.CoaID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.ParentAccountID,
		&m.Description,
		&m.IsActive,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CoaID,
		m.Code,
		m.Name,
		m.AccountType,
		m.ParentAccountID,
		m.Description,
		m.IsActive,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.CoaID, err)
	}
	return nil
}

// UpdateAccount updates the mutable details of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.ChartOfAccount) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE chart_of_accounts
		SET name = $2, parent_account_id = $3, description = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE coa_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.CoaID,
		m.Name,
		m.ParentAccountID,
		m.Description,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.CoaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account inactive without deleting its rows.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, coaID string, userID string, now time.Time) error {
	query := `
		UPDATE chart_of_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE coa_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, coaID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", coaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByID retrieves a single account by its identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, coaID string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE coa_id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, coaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", coaID, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountByCode resolves a human-meaningful account code to the account row.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE code = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, coaIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(coaIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE coa_id = ANY($1);`

	rows, err := r.pool.Query(ctx, query, coaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.ChartOfAccount, len(coaIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[m.CoaID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts ordered by code using limit/offset pagination.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccount, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		ORDER BY code
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.ChartOfAccount
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// FindAccountsByIDsForUpdate locks the named account rows for the duration of the
// caller's transaction. Rows are locked in a consistent order to avoid deadlocks
// between concurrent postings.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, coaIDs []string) (map[string]domain.ChartOfAccount, error) {
	if len(coaIDs) == 0 {
		return map[string]domain.ChartOfAccount{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		WHERE coa_id = ANY($1)
		ORDER BY coa_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, coaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.ChartOfAccount, len(coaIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accounts[m.CoaID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating locked account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccountBalancesInTx applies signed balance deltas to the locked accounts.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE chart_of_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE coa_id = $1;
	`
	batch := &pgx.Batch{}
	for coaID, delta := range balanceChanges {
		batch.Queue(query, coaID, delta, now, userID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to update account balances: %w", err)
	}
	return nil
}
