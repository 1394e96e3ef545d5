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

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher requests.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, number, voucher_type, amount, description, status, requested_by, approved_by, approved_at, approval_notes, account_coa_id, offset_coa_id, transaction_id, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanVoucher(row pgx.Row) (models.VoucherRequest, error) {
	var m models.VoucherRequest
	err := row.Scan(
		&m.VoucherID,
		&m.Number,
		&m.VoucherType,
		&m.Amount,
		&m.Description,
		&m.Status,
		&m.RequestedBy,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ApprovalNotes,
		&m.AccountCoaID,
		&m.OffsetCoaID,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveVoucher inserts a new voucher request row.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.VoucherRequest) error {
	m := mapping.ToModelVoucher(voucher)

	query := `
		INSERT INTO voucher_requests (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VoucherID,
		m.Number,
		m.VoucherType,
		m.Amount,
		m.Description,
		m.Status,
		m.RequestedBy,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.AccountCoaID,
		m.OffsetCoaID,
		m.TransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: voucher number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save voucher %s: %w", m.VoucherID, err)
	}
	return nil
}

// FindVoucherByID retrieves a voucher request by its identifier.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.VoucherRequest, error) {
	query := `SELECT ` + voucherColumns + ` FROM voucher_requests WHERE voucher_id = $1 AND deleted_at IS NULL;`

	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	d := mapping.ToDomainVoucher(m)
	return &d, nil
}

// ListVouchers retrieves voucher requests newest first, optionally filtered by status.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.VoucherRequest, *string, error) {
	args := []any{limit + 1}
	query := `
		SELECT ` + voucherColumns + `
		FROM voucher_requests
		WHERE deleted_at IS NULL
	`
	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, createdAt, fields[1])
		query += fmt.Sprintf(` AND (created_at, voucher_id) < ($%d, $%d)`, len(args)-1, len(args))
	}
	query += `
		ORDER BY created_at DESC, voucher_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []models.VoucherRequest
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating voucher rows: %w", err)
	}

	var token *string
	if len(vouchers) > limit {
		vouchers = vouchers[:limit]
		last := vouchers[len(vouchers)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.VoucherID)
		token = &t
	}
	return mapping.ToDomainVoucherSlice(vouchers), token, nil
}

// NumberExists reports whether a voucher number is already taken.
func (r *PgxVoucherRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM voucher_requests WHERE number = $1);`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check voucher number %s: %w", number, err)
	}
	return exists, nil
}

// FindVoucherByIDForUpdate locks the voucher row for the duration of the transaction.
func (r *PgxVoucherRepository) FindVoucherByIDForUpdate(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.VoucherRequest, error) {
	query := `SELECT ` + voucherColumns + ` FROM voucher_requests WHERE voucher_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanVoucher(tx.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock voucher %s: %w", voucherID, err)
	}
	d := mapping.ToDomainVoucher(m)
	return &d, nil
}

// UpdateVoucherInTx writes the voucher's status, approval, and realization fields.
func (r *PgxVoucherRepository) UpdateVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.VoucherRequest) error {
	m := mapping.ToModelVoucher(voucher)

	query := `
		UPDATE voucher_requests
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5,
		    transaction_id = $6, last_updated_at = $7, last_updated_by = $8
		WHERE voucher_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.VoucherID,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.TransactionID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update voucher %s: %w", m.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
