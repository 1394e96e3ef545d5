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

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed assets and their
// depreciation, disposal, and transfer documents.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryWithTx {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryWithTx = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, number, name, branch_id, purchase_cost, salvage_value, useful_life_months, purchase_date, usage_date, status, asset_coa_id, accum_coa_id, expense_coa_id, accumulated_dep, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.Number,
		&m.Name,
		&m.BranchID,
		&m.PurchaseCost,
		&m.SalvageValue,
		&m.UsefulLifeMonths,
		&m.PurchaseDate,
		&m.UsageDate,
		&m.Status,
		&m.AssetCoaID,
		&m.AccumCoaID,
		&m.ExpenseCoaID,
		&m.AccumulatedDep,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveAsset inserts a new asset row outside any caller transaction.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if err := r.SaveAssetInTx(ctx, tx, asset); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveAssetInTx inserts a new asset row inside the caller's transaction, so
// registration and its acquisition journal commit together.
func (r *PgxAssetRepository) SaveAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		m.AssetID,
		m.Number,
		m.Name,
		m.BranchID,
		m.PurchaseCost,
		m.SalvageValue,
		m.UsefulLifeMonths,
		m.PurchaseDate,
		m.UsageDate,
		m.Status,
		m.AssetCoaID,
		m.AccumCoaID,
		m.ExpenseCoaID,
		m.AccumulatedDep,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: asset number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its identifier.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1 AND deleted_at IS NULL;`

	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// ListAssets retrieves assets newest first, optionally filtered by status.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, status *domain.AssetStatus, limit int, nextToken *string) ([]domain.Asset, *string, error) {
	args := []any{limit + 1}
	query := `
		SELECT ` + assetColumns + `
		FROM assets
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
		query += fmt.Sprintf(` AND (created_at, asset_id) < ($%d, $%d)`, len(args)-1, len(args))
	}
	query += `
		ORDER BY created_at DESC, asset_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating asset rows: %w", err)
	}

	var token *string
	if len(assets) > limit {
		assets = assets[:limit]
		last := assets[len(assets)-1]
		t := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.AssetID)
		token = &t
	}
	return mapping.ToDomainAssetSlice(assets), token, nil
}

// NumberExists reports whether a number is taken by any asset, disposal, or
// transfer document. The three series share one uniqueness check because
// they are generated by the same counter path.
func (r *PgxAssetRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM assets WHERE number = $1)
		    OR EXISTS(SELECT 1 FROM asset_disposals WHERE number = $1)
		    OR EXISTS(SELECT 1 FROM asset_transfers WHERE number = $1);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check asset number %s: %w", number, err)
	}
	return exists, nil
}

// FindAssetByIDForUpdate locks the asset row for the duration of the transaction.
func (r *PgxAssetRepository) FindAssetByIDForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanAsset(tx.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock asset %s: %w", assetID, err)
	}
	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// UpdateAssetInTx writes the asset's mutable columns inside the transaction.
func (r *PgxAssetRepository) UpdateAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)

	query := `
		UPDATE assets
		SET branch_id = $2, status = $3, accumulated_dep = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE asset_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.AssetID,
		m.BranchID,
		m.Status,
		m.AccumulatedDep,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", m.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const depreciationColumns = `depreciation_id, asset_id, date, period_month, period_year, amount, accumulated_total, book_value, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanDepreciation(row pgx.Row) (models.AssetDepreciation, error) {
	var m models.AssetDepreciation
	err := row.Scan(
		&m.DepreciationID,
		&m.AssetID,
		&m.Date,
		&m.PeriodMonth,
		&m.PeriodYear,
		&m.Amount,
		&m.AccumulatedTotal,
		&m.BookValue,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindDepreciationByPeriod retrieves a recorded entry for an asset and period.
func (r *PgxAssetRepository) FindDepreciationByPeriod(ctx context.Context, assetID string, year int, month int) (*domain.AssetDepreciation, error) {
	query := `
		SELECT ` + depreciationColumns + `
		FROM asset_depreciations
		WHERE asset_id = $1 AND period_year = $2 AND period_month = $3;
	`
	m, err := scanDepreciation(r.Pool.QueryRow(ctx, query, assetID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find depreciation for asset %s period %d-%d: %w", assetID, year, month, err)
	}
	d := mapping.ToDomainDepreciation(m)
	return &d, nil
}

// FindDepreciationsByAssetID retrieves all recorded entries for an asset, oldest first.
func (r *PgxAssetRepository) FindDepreciationsByAssetID(ctx context.Context, assetID string) ([]domain.AssetDepreciation, error) {
	query := `
		SELECT ` + depreciationColumns + `
		FROM asset_depreciations
		WHERE asset_id = $1
		ORDER BY period_year, period_month;
	`
	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list depreciations for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	var entries []models.AssetDepreciation
	for rows.Next() {
		m, err := scanDepreciation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan depreciation row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating depreciation rows: %w", err)
	}
	return mapping.ToDomainDepreciationSlice(entries), nil
}

// InsertDepreciationInTx appends a depreciation entry inside the transaction.
// The unique (asset_id, period_year, period_month) index backs the once-per-period rule.
func (r *PgxAssetRepository) InsertDepreciationInTx(ctx context.Context, tx pgx.Tx, entry domain.AssetDepreciation) error {
	m := mapping.ToModelDepreciation(entry)

	query := `
		INSERT INTO asset_depreciations (` + depreciationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.DepreciationID,
		m.AssetID,
		m.Date,
		m.PeriodMonth,
		m.PeriodYear,
		m.Amount,
		m.AccumulatedTotal,
		m.BookValue,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: depreciation for asset %s period %d-%d already recorded", apperrors.ErrDuplicate, m.AssetID, m.PeriodYear, m.PeriodMonth)
		}
		return fmt.Errorf("failed to insert depreciation for asset %s: %w", m.AssetID, err)
	}
	return nil
}

const disposalColumns = `disposal_id, number, asset_id, disposal_type, sale_price, proceeds_coa_id, notes, status, requested_by, approved_by, approved_at, approval_notes, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanDisposal(row pgx.Row) (models.AssetDisposal, error) {
	var m models.AssetDisposal
	err := row.Scan(
		&m.DisposalID,
		&m.Number,
		&m.AssetID,
		&m.DisposalType,
		&m.SalePrice,
		&m.ProceedsCoaID,
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

// SaveDisposal inserts a new disposal document.
func (r *PgxAssetRepository) SaveDisposal(ctx context.Context, disposal domain.AssetDisposal) error {
	m := mapping.ToModelDisposal(disposal)

	query := `
		INSERT INTO asset_disposals (` + disposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DisposalID,
		m.Number,
		m.AssetID,
		m.DisposalType,
		m.SalePrice,
		m.ProceedsCoaID,
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
			return fmt.Errorf("%w: disposal number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save disposal %s: %w", m.DisposalID, err)
	}
	return nil
}

// FindDisposalByID retrieves a disposal document.
func (r *PgxAssetRepository) FindDisposalByID(ctx context.Context, disposalID string) (*domain.AssetDisposal, error) {
	query := `SELECT ` + disposalColumns + ` FROM asset_disposals WHERE disposal_id = $1 AND deleted_at IS NULL;`

	m, err := scanDisposal(r.Pool.QueryRow(ctx, query, disposalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find disposal %s: %w", disposalID, err)
	}
	d := mapping.ToDomainDisposal(m)
	return &d, nil
}

// FindDisposalByIDForUpdate locks the disposal row for the duration of the transaction.
func (r *PgxAssetRepository) FindDisposalByIDForUpdate(ctx context.Context, tx pgx.Tx, disposalID string) (*domain.AssetDisposal, error) {
	query := `SELECT ` + disposalColumns + ` FROM asset_disposals WHERE disposal_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanDisposal(tx.QueryRow(ctx, query, disposalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock disposal %s: %w", disposalID, err)
	}
	d := mapping.ToDomainDisposal(m)
	return &d, nil
}

// UpdateDisposalInTx writes the disposal's status and approval fields.
func (r *PgxAssetRepository) UpdateDisposalInTx(ctx context.Context, tx pgx.Tx, disposal domain.AssetDisposal) error {
	m := mapping.ToModelDisposal(disposal)

	query := `
		UPDATE asset_disposals
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE disposal_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.DisposalID,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update disposal %s: %w", m.DisposalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const transferColumns = `transfer_id, number, asset_id, from_branch_id, to_branch_id, notes, status, requested_by, approved_by, approved_at, approval_notes, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanTransfer(row pgx.Row) (models.AssetTransfer, error) {
	var m models.AssetTransfer
	err := row.Scan(
		&m.TransferID,
		&m.Number,
		&m.AssetID,
		&m.FromBranchID,
		&m.ToBranchID,
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

// SaveTransfer inserts a new transfer document.
func (r *PgxAssetRepository) SaveTransfer(ctx context.Context, transfer domain.AssetTransfer) error {
	m := mapping.ToModelTransfer(transfer)

	query := `
		INSERT INTO asset_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransferID,
		m.Number,
		m.AssetID,
		m.FromBranchID,
		m.ToBranchID,
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
			return fmt.Errorf("%w: transfer number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save transfer %s: %w", m.TransferID, err)
	}
	return nil
}

// FindTransferByID retrieves a transfer document.
func (r *PgxAssetRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.AssetTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM asset_transfers WHERE transfer_id = $1 AND deleted_at IS NULL;`

	m, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	d := mapping.ToDomainTransfer(m)
	return &d, nil
}

// FindTransferByIDForUpdate locks the transfer row for the duration of the transaction.
func (r *PgxAssetRepository) FindTransferByIDForUpdate(ctx context.Context, tx pgx.Tx, transferID string) (*domain.AssetTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM asset_transfers WHERE transfer_id = $1 AND deleted_at IS NULL FOR UPDATE;`

	m, err := scanTransfer(tx.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock transfer %s: %w", transferID, err)
	}
	d := mapping.ToDomainTransfer(m)
	return &d, nil
}

// UpdateTransferInTx writes the transfer's status and approval fields.
func (r *PgxAssetRepository) UpdateTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.AssetTransfer) error {
	m := mapping.ToModelTransfer(transfer)

	query := `
		UPDATE asset_transfers
		SET status = $2, approved_by = $3, approved_at = $4, approval_notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE transfer_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransferID,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", m.TransferID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
