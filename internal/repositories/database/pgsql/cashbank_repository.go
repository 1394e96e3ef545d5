package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	"github.com/nusankara/erp_backoffice/internal/models"
	"github.com/nusankara/erp_backoffice/internal/utils/mapping"
	"github.com/nusankara/erp_backoffice/internal/utils/pagination"
)

type PgxCashBankRepository struct {
	BaseRepository
}

// newPgxCashBankRepository creates a new repository for cash/bank transactions.
func newPgxCashBankRepository(pool *pgxpool.Pool) portsrepo.CashBankRepositoryWithTx {
	return &PgxCashBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashBankRepositoryWithTx = (*PgxCashBankRepository)(nil)

const cashBankColumns = `transaction_id, number, transaction_type, date, amount, description, account_coa_id, offset_coa_id, status, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanCashBank(row pgx.Row) (models.CashBankTransaction, error) {
	var m models.CashBankTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.Number,
		&m.TransactionType,
		&m.Date,
		&m.Amount,
		&m.Description,
		&m.AccountCoaID,
		&m.OffsetCoaID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func findCashBankDetails(ctx context.Context, q rowQuerier, transactionID string) ([]models.CashBankDetail, error) {
	query := `
		SELECT detail_id, transaction_id, coa_id, amount, description
		FROM cashbank_details
		WHERE transaction_id = $1
		ORDER BY detail_id;
	`
	rows, err := q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction details for %s: %w", transactionID, err)
	}
	defer rows.Close()

	var details []models.CashBankDetail
	for rows.Next() {
		var m models.CashBankDetail
		if err := rows.Scan(&m.DetailID, &m.TransactionID, &m.CoaID, &m.Amount, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction detail row: %w", err)
		}
		details = append(details, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction detail rows: %w", err)
	}
	return details, nil
}

func insertCashBankInTx(ctx context.Context, tx pgx.Tx, trx domain.CashBankTransaction) error {
	m := mapping.ToModelCashBank(trx)

	query := `
		INSERT INTO cashbank_transactions (` + cashBankColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Number,
		m.TransactionType,
		m.Date,
		m.Amount,
		m.Description,
		m.AccountCoaID,
		m.OffsetCoaID,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	if len(trx.Details) == 0 {
		return nil
	}
	detailQuery := `
		INSERT INTO cashbank_details (detail_id, transaction_id, coa_id, amount, description)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, d := range trx.Details {
		md := mapping.ToModelCashBankDetail(trx.TransactionID, d)
		batch.Queue(detailQuery, md.DetailID, md.TransactionID, md.CoaID, md.Amount, md.Description)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to save transaction details for %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransaction persists a new transaction and its details atomically.
func (r *PgxCashBankRepository) SaveTransaction(ctx context.Context, trx domain.CashBankTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if err := insertCashBankInTx(ctx, tx, trx); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveTransactionInTx persists a transaction inside the caller's transaction.
// Used when voucher approval auto-creates the realizing transaction.
func (r *PgxCashBankRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, trx domain.CashBankTransaction) error {
	return insertCashBankInTx(ctx, tx, trx)
}

// FindTransactionByID retrieves a transaction with its detail lines.
func (r *PgxCashBankRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error) {
	query := `SELECT ` + cashBankColumns + ` FROM cashbank_transactions WHERE transaction_id = $1 AND deleted_at IS NULL;`

	m, err := scanCashBank(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	details, err := findCashBankDetails(ctx, r.Pool, transactionID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCashBank(m, details)
	return &d, nil
}

// ListTransactions retrieves transactions newest first using token-based pagination.
// Detail lines are not loaded for list views.
func (r *PgxCashBankRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.CashBankTransaction, *string, error) {
	args := []any{limit + 1}
	query := `
		SELECT ` + cashBankColumns + `
		FROM cashbank_transactions
		WHERE deleted_at IS NULL
	`
	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, createdAt, fields[1])
	}
	query += `
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var trxs []models.CashBankTransaction
	for rows.Next() {
		m, err := scanCashBank(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		trxs = append(trxs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}

	var token *string
	if len(trxs) > limit {
		trxs = trxs[:limit]
		last := trxs[len(trxs)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.TransactionID)
		token = &t
	}

	result := make([]domain.CashBankTransaction, 0, len(trxs))
	for _, m := range trxs {
		result = append(result, mapping.ToDomainCashBank(m, nil))
	}
	return result, token, nil
}

// NumberExists reports whether a transaction number is already taken.
func (r *PgxCashBankRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cashbank_transactions WHERE number = $1);`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check transaction number %s: %w", number, err)
	}
	return exists, nil
}

// FindTransactionByIDForUpdate locks the transaction row and loads its details.
func (r *PgxCashBankRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.CashBankTransaction, error) {
	query := `SELECT ` + cashBankColumns + ` FROM cashbank_transactions WHERE transaction_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanCashBank(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	details, err := findCashBankDetails(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCashBank(m, details)
	return &d, nil
}

// UpdateTransactionStatusInTx marks the transaction's posting status.
func (r *PgxCashBankRepository) UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.CashBankStatus, userID string) error {
	query := `
		UPDATE cashbank_transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query, transactionID, string(status), time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update transaction status %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
