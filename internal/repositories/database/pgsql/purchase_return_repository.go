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

type PgxPurchaseReturnRepository struct {
	BaseRepository
}

// newPgxPurchaseReturnRepository creates a new repository for purchase return documents.
func newPgxPurchaseReturnRepository(pool *pgxpool.Pool) portsrepo.PurchaseReturnRepositoryWithTx {
	return &PgxPurchaseReturnRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseReturnRepositoryWithTx = (*PgxPurchaseReturnRepository)(nil)

const purchaseReturnColumns = `return_id, number, receipt_id, qc_id, supplier_id, branch_id, quantity, amount, payable_coa_id, inventory_coa_id, notes, status, requested_by, approved_by, approved_at, approval_notes, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanPurchaseReturn(row pgx.Row) (models.PurchaseReturn, error) {
	var m models.PurchaseReturn
	err := row.Scan(
		&m.ReturnID,
		&m.Number,
		&m.ReceiptID,
		&m.QCID,
		&m.SupplierID,
		&m.BranchID,
		&m.Quantity,
		&m.Amount,
		&m.PayableCoaID,
		&m.InventoryCoaID,
		&m.Notes,
		&m.Status,
		&m.RequestedBy,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ApprovalNotes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveReturn inserts a new purchase return row.
func (r *PgxPurchaseReturnRepository) SaveReturn(ctx context.Context, ret domain.PurchaseReturn) error {
	m := mapping.ToModelPurchaseReturn(ret)

	query := `
		INSERT INTO purchase_returns (` + purchaseReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReturnID,
		m.Number,
		m.ReceiptID,
		m.QCID,
		m.SupplierID,
		m.BranchID,
		m.Quantity,
		m.Amount,
		m.PayableCoaID,
		m.InventoryCoaID,
		m.Notes,
		m.Status,
		m.RequestedBy,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: purchase return number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save purchase return %s: %w", m.ReturnID, err)
	}
	return nil
}

// FindReturnByID retrieves a purchase return by its identifier.
func (r *PgxPurchaseReturnRepository) FindReturnByID(ctx context.Context, returnID string) (*domain.PurchaseReturn, error) {
	query := `SELECT ` + purchaseReturnColumns + ` FROM purchase_returns WHERE return_id = $1 AND deleted_at IS NULL;`

	m, err := scanPurchaseReturn(r.Pool.QueryRow(ctx, query, returnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase return %s: %w", returnID, err)
	}
	d := mapping.ToDomainPurchaseReturn(m)
	return &d, nil
}

// ListReturns retrieves purchase returns newest first, optionally filtered by status.
func (r *PgxPurchaseReturnRepository) ListReturns(ctx context.Context, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.PurchaseReturn, *string, error) {
	args := []any{limit + 1}
	query := `
		SELECT ` + purchaseReturnColumns + `
		FROM purchase_returns
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
		query += fmt.Sprintf(` AND (created_at, return_id) < ($%d, $%d)`, len(args)-1, len(args))
	}
	query += `
		ORDER BY created_at DESC, return_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list purchase returns: %w", err)
	}
	defer rows.Close()

	var returns []models.PurchaseReturn
	for rows.Next() {
		m, err := scanPurchaseReturn(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan purchase return row: %w", err)
		}
		returns = append(returns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating purchase return rows: %w", err)
	}

	var token *string
	if len(returns) > limit {
		returns = returns[:limit]
		last := returns[len(returns)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.ReturnID)
		token = &t
	}
	return mapping.ToDomainPurchaseReturnSlice(returns), token, nil
}

// NumberExists reports whether a purchase return number is already taken.
func (r *PgxPurchaseReturnRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM purchase_returns WHERE number = $1);`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase return number %s: %w", number, err)
	}
	return exists, nil
}

// FindReturnByIDForUpdate locks the purchase return row for the duration of the transaction.
func (r *PgxPurchaseReturnRepository) FindReturnByIDForUpdate(ctx context.Context, tx pgx.Tx, returnID string) (*domain.PurchaseReturn, error) {
	query := `SELECT ` + purchaseReturnColumns + ` FROM purchase_returns WHERE return_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanPurchaseReturn(tx.QueryRow(ctx, query, returnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock purchase return %s: %w", returnID, err)
	}
	d := mapping.ToDomainPurchaseReturn(m)
	return &d, nil
}

// UpdateReturnInTx writes the return's status and approval fields.
func (r *PgxPurchaseReturnRepository) UpdateReturnInTx(ctx context.Context, tx pgx.Tx, ret domain.PurchaseReturn) error {
	m := mapping.ToModelPurchaseReturn(ret)

	query := `
		UPDATE purchase_returns
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE return_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.ReturnID,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase return %s: %w", m.ReturnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
