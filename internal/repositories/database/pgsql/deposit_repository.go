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

type PgxDepositRepository struct {
	BaseRepository
}

// newPgxDepositRepository creates a new repository for deposit balances.
func newPgxDepositRepository(pool *pgxpool.Pool) portsrepo.DepositRepositoryWithTx {
	return &PgxDepositRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepositRepositoryWithTx = (*PgxDepositRepository)(nil)

const depositColumns = `deposit_id, number, owner_type, owner_id, total, used, remaining, linked_coa_id, status, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanDeposit(row pgx.Row) (models.Deposit, error) {
	var m models.Deposit
	err := row.Scan(
		&m.DepositID,
		&m.Number,
		&m.OwnerType,
		&m.OwnerID,
		&m.Total,
		&m.Used,
		&m.Remaining,
		&m.LinkedCoaID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveDeposit inserts a new deposit row.
func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	m := mapping.ToModelDeposit(deposit)

	query := `
		INSERT INTO deposits (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DepositID,
		m.Number,
		m.OwnerType,
		m.OwnerID,
		m.Total,
		m.Used,
		m.Remaining,
		m.LinkedCoaID,
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
			return fmt.Errorf("%w: deposit number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save deposit %s: %w", m.DepositID, err)
	}
	return nil
}

// FindDepositByID retrieves a deposit by its identifier. Soft-deleted rows are excluded.
func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_id = $1 AND deleted_at IS NULL;`

	m, err := scanDeposit(r.Pool.QueryRow(ctx, query, depositID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit %s: %w", depositID, err)
	}
	d := mapping.ToDomainDeposit(m)
	return &d, nil
}

// ListDeposits retrieves deposits newest first using token-based pagination.
func (r *PgxDepositRepository) ListDeposits(ctx context.Context, limit int, nextToken *string) ([]domain.Deposit, *string, error) {
	args := []any{limit + 1}
	query := `
		SELECT ` + depositColumns + `
		FROM deposits
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
		query += ` AND (created_at, deposit_id) < ($2, $3)`
		args = append(args, createdAt, fields[1])
	}
	query += `
		ORDER BY created_at DESC, deposit_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []models.Deposit
	for rows.Next() {
		m, err := scanDeposit(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		deposits = append(deposits, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating deposit rows: %w", err)
	}

	var token *string
	if len(deposits) > limit {
		deposits = deposits[:limit]
		last := deposits[len(deposits)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.DepositID)
		token = &t
	}
	return mapping.ToDomainDepositSlice(deposits), token, nil
}

// FindLogsByDepositID retrieves a deposit's mutation ledger, oldest first.
func (r *PgxDepositRepository) FindLogsByDepositID(ctx context.Context, depositID string) ([]domain.DepositLog, error) {
	query := `
		SELECT log_id, deposit_id, log_type, amount, note, created_at, created_by
		FROM deposit_logs
		WHERE deposit_id = $1
		ORDER BY created_at, log_id;
	`
	rows, err := r.Pool.Query(ctx, query, depositID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposit logs for %s: %w", depositID, err)
	}
	defer rows.Close()

	var logs []models.DepositLog
	for rows.Next() {
		var m models.DepositLog
		if err := rows.Scan(&m.LogID, &m.DepositID, &m.LogType, &m.Amount, &m.Note, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan deposit log row: %w", err)
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating deposit log rows: %w", err)
	}
	return mapping.ToDomainDepositLogSlice(logs), nil
}

// NumberExists reports whether a deposit number is already taken.
func (r *PgxDepositRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM deposits WHERE number = $1);`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check deposit number %s: %w", number, err)
	}
	return exists, nil
}

// MarkDepositDeleted soft-deletes a deposit. Its logs are retained.
func (r *PgxDepositRepository) MarkDepositDeleted(ctx context.Context, depositID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE deposits
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE deposit_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, depositID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to delete deposit %s: %w", depositID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDepositByIDForUpdate locks the deposit row for the duration of the transaction.
func (r *PgxDepositRepository) FindDepositByIDForUpdate(ctx context.Context, tx pgx.Tx, depositID string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE deposit_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanDeposit(tx.QueryRow(ctx, query, depositID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock deposit %s: %w", depositID, err)
	}
	d := mapping.ToDomainDeposit(m)
	return &d, nil
}

// UpdateDepositInTx writes the deposit's balance columns and status.
func (r *PgxDepositRepository) UpdateDepositInTx(ctx context.Context, tx pgx.Tx, deposit domain.Deposit) error {
	m := mapping.ToModelDeposit(deposit)

	query := `
		UPDATE deposits
		SET total = $2, used = $3, remaining = $4, status = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE deposit_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.DepositID,
		m.Total,
		m.Used,
		m.Remaining,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update deposit %s: %w", m.DepositID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AppendLogInTx appends one mutation log entry inside the caller's transaction.
func (r *PgxDepositRepository) AppendLogInTx(ctx context.Context, tx pgx.Tx, entry domain.DepositLog) error {
	m := mapping.ToModelDepositLog(entry)

	query := `
		INSERT INTO deposit_logs (log_id, deposit_id, log_type, amount, note, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query, m.LogID, m.DepositID, m.LogType, m.Amount, m.Note, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to append deposit log for %s: %w", m.DepositID, err)
	}
	return nil
}
