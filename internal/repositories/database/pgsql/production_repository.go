package pgsql

import (
	"context"
	"errors"
	"fmt"

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

type PgxProductionRepository struct {
	BaseRepository
}

// newPgxProductionRepository creates a new repository for QC and material issue documents.
func newPgxProductionRepository(pool *pgxpool.Pool) portsrepo.ProductionRepositoryWithTx {
	return &PgxProductionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductionRepositoryWithTx = (*PgxProductionRepository)(nil)

const qcColumns = `qc_id, number, receipt_id, inspectable_qty, passed_qty, rejected_qty, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanQC(row pgx.Row) (models.QualityControl, error) {
	var m models.QualityControl
	err := row.Scan(
		&m.QCID,
		&m.Number,
		&m.ReceiptID,
		&m.InspectableQty,
		&m.PassedQty,
		&m.RejectedQty,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveQC inserts a new quality control document.
func (r *PgxProductionRepository) SaveQC(ctx context.Context, qc domain.QualityControl) error {
	m := mapping.ToModelQC(qc)

	query := `
		INSERT INTO quality_controls (` + qcColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.QCID,
		m.Number,
		m.ReceiptID,
		m.InspectableQty,
		m.PassedQty,
		m.RejectedQty,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: QC number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save QC %s: %w", m.QCID, err)
	}
	return nil
}

// FindQCByID retrieves a quality control document.
func (r *PgxProductionRepository) FindQCByID(ctx context.Context, qcID string) (*domain.QualityControl, error) {
	query := `SELECT ` + qcColumns + ` FROM quality_controls WHERE qc_id = $1;`

	m, err := scanQC(r.Pool.QueryRow(ctx, query, qcID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find QC %s: %w", qcID, err)
	}
	d := mapping.ToDomainQC(m)
	return &d, nil
}

// FindQCByIDForUpdate locks the QC row for the duration of the transaction.
func (r *PgxProductionRepository) FindQCByIDForUpdate(ctx context.Context, tx pgx.Tx, qcID string) (*domain.QualityControl, error) {
	query := `SELECT ` + qcColumns + ` FROM quality_controls WHERE qc_id = $1 FOR UPDATE;`

	m, err := scanQC(tx.QueryRow(ctx, query, qcID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock QC %s: %w", qcID, err)
	}
	d := mapping.ToDomainQC(m)
	return &d, nil
}

// UpdateQCInTx writes the inspection result inside the transaction.
func (r *PgxProductionRepository) UpdateQCInTx(ctx context.Context, tx pgx.Tx, qc domain.QualityControl) error {
	m := mapping.ToModelQC(qc)

	query := `
		UPDATE quality_controls
		SET passed_qty = $2, rejected_qty = $3, status = $4, notes = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE qc_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.QCID,
		m.PassedQty,
		m.RejectedQty,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update QC %s: %w", m.QCID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const materialIssueColumns = `issue_id, number, production_plan_id, date, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanMaterialIssue(row pgx.Row) (models.MaterialIssue, error) {
	var m models.MaterialIssue
	err := row.Scan(
		&m.IssueID,
		&m.Number,
		&m.ProductionPlanID,
		&m.Date,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func findMaterialIssueItems(ctx context.Context, q rowQuerier, issueID string) ([]models.MaterialIssueItem, error) {
	query := `
		SELECT item_id, issue_id, material_id, requested_qty, issued_qty, available_qty
		FROM material_issue_items
		WHERE issue_id = $1
		ORDER BY item_id;
	`
	rows, err := q.Query(ctx, query, issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query issue items for %s: %w", issueID, err)
	}
	defer rows.Close()

	var items []models.MaterialIssueItem
	for rows.Next() {
		var m models.MaterialIssueItem
		if err := rows.Scan(&m.ItemID, &m.IssueID, &m.MaterialID, &m.RequestedQty, &m.IssuedQty, &m.AvailableQty); err != nil {
			return nil, fmt.Errorf("failed to scan issue item row: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating issue item rows: %w", err)
	}
	return items, nil
}

// SaveMaterialIssue persists a new material issue and its items atomically.
func (r *PgxProductionRepository) SaveMaterialIssue(ctx context.Context, issue domain.MaterialIssue) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	m := mapping.ToModelMaterialIssue(issue)

	query := `
		INSERT INTO material_issues (` + materialIssueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.IssueID,
		m.Number,
		m.ProductionPlanID,
		m.Date,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: material issue number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save material issue %s: %w", m.IssueID, err)
	}

	itemQuery := `
		INSERT INTO material_issue_items (item_id, issue_id, material_id, requested_qty, issued_qty, available_qty)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, item := range issue.Items {
		mi := mapping.ToModelMaterialIssueItem(issue.IssueID, item)
		batch.Queue(itemQuery, mi.ItemID, mi.IssueID, mi.MaterialID, mi.RequestedQty, mi.IssuedQty, mi.AvailableQty)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to save issue items for %s: %w", m.IssueID, err)
	}

	return r.Commit(ctx, tx)
}

// FindMaterialIssueByID retrieves a material issue with its items.
func (r *PgxProductionRepository) FindMaterialIssueByID(ctx context.Context, issueID string) (*domain.MaterialIssue, error) {
	query := `SELECT ` + materialIssueColumns + ` FROM material_issues WHERE issue_id = $1;`

	m, err := scanMaterialIssue(r.Pool.QueryRow(ctx, query, issueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find material issue %s: %w", issueID, err)
	}
	items, err := findMaterialIssueItems(ctx, r.Pool, issueID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainMaterialIssue(m, items)
	return &d, nil
}

// FindMaterialIssueByIDForUpdate locks the issue row and loads its items.
func (r *PgxProductionRepository) FindMaterialIssueByIDForUpdate(ctx context.Context, tx pgx.Tx, issueID string) (*domain.MaterialIssue, error) {
	query := `SELECT ` + materialIssueColumns + ` FROM material_issues WHERE issue_id = $1 FOR UPDATE;`

	m, err := scanMaterialIssue(tx.QueryRow(ctx, query, issueID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock material issue %s: %w", issueID, err)
	}
	items, err := findMaterialIssueItems(ctx, tx, issueID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainMaterialIssue(m, items)
	return &d, nil
}

// UpdateMaterialIssueInTx writes the issue's status and item quantities.
func (r *PgxProductionRepository) UpdateMaterialIssueInTx(ctx context.Context, tx pgx.Tx, issue domain.MaterialIssue) error {
	m := mapping.ToModelMaterialIssue(issue)

	query := `
		UPDATE material_issues
		SET status = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE issue_id = $1;
	`
	tag, err := tx.Exec(ctx, query, m.IssueID, m.Status, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update material issue %s: %w", m.IssueID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	itemQuery := `
		UPDATE material_issue_items
		SET issued_qty = $2, available_qty = $3
		WHERE item_id = $1;
	`
	batch := &pgx.Batch{}
	for _, item := range issue.Items {
		batch.Queue(itemQuery, item.ItemID, item.IssuedQty, item.AvailableQty)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to update issue items for %s: %w", m.IssueID, err)
	}
	return nil
}

// FindStockForUpdate retrieves the on-hand quantity of a material and locks its stock row.
func (r *PgxProductionRepository) FindStockForUpdate(ctx context.Context, tx pgx.Tx, materialID string) (decimal.Decimal, error) {
	query := `SELECT on_hand FROM material_stocks WHERE material_id = $1 FOR UPDATE;`

	var onHand decimal.Decimal
	err := tx.QueryRow(ctx, query, materialID).Scan(&onHand)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: stock for material %s", apperrors.ErrNotFound, materialID)
		}
		return decimal.Zero, fmt.Errorf("failed to lock stock for material %s: %w", materialID, err)
	}
	return onHand, nil
}

// AdjustStockInTx applies a signed quantity delta to a material's stock row.
func (r *PgxProductionRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, materialID string, delta decimal.Decimal) error {
	query := `
		UPDATE material_stocks
		SET on_hand = on_hand + $2
		WHERE material_id = $1;
	`
	tag, err := tx.Exec(ctx, query, materialID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for material %s: %w", materialID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stock for material %s", apperrors.ErrNotFound, materialID)
	}
	return nil
}

// NumberExists reports whether a QC or material issue number is already taken.
func (r *PgxProductionRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM quality_controls WHERE number = $1)
		    OR EXISTS(SELECT 1 FROM material_issues WHERE number = $1);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check production number %s: %w", number, err)
	}
	return exists, nil
}
