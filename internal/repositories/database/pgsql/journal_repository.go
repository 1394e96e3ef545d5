package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	"github.com/nusankara/erp_backoffice/internal/models"
	"github.com/nusankara/erp_backoffice/internal/utils/mapping"
	"github.com/nusankara/erp_backoffice/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for posted journal lines.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const journalLineColumns = `line_id, reference, coa_id, date, description, debit, credit, journal_type, source_type, source_id, branch_id, department_id, project_id, created_at, created_by, last_updated_at, last_updated_by`

func scanJournalLine(row pgx.Row) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.Reference,
		&m.CoaID,
		&m.Date,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.JournalType,
		&m.SourceType,
		&m.SourceID,
		&m.BranchID,
		&m.DepartmentID,
		&m.ProjectID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxJournalRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.JournalLine, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	var lines []models.JournalLine
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating journal line rows: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// FindLinesByReference retrieves every line of one posting. Debits sort before
// credits so callers render lines in ledger order.
func (r *PgxJournalRepository) FindLinesByReference(ctx context.Context, reference string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_lines
		WHERE reference = $1
		ORDER BY debit DESC, line_id;
	`
	lines, err := r.queryLines(ctx, query, reference)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return lines, nil
}

// FindLinesBySource retrieves all lines tagged to a source document, oldest posting first.
func (r *PgxJournalRepository) FindLinesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_lines
		WHERE source_type = $1 AND source_id = $2
		ORDER BY created_at, line_id;
	`
	return r.queryLines(ctx, query, string(sourceType), sourceID)
}

// FindLinesByPeriod retrieves all lines with a posting date inside the period,
// oldest first. Period reports aggregate these in memory.
func (r *PgxJournalRepository) FindLinesByPeriod(ctx context.Context, from, to time.Time) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_lines
		WHERE date >= $1 AND date <= $2
		ORDER BY date, created_at, line_id;
	`
	return r.queryLines(ctx, query, from, to)
}

// ListReferences retrieves journal lines newest posting first using token-based
// pagination over (date, created_at).
func (r *PgxJournalRepository) ListReferences(ctx context.Context, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	args := []any{limit + 1}
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_lines
	`
	if nextToken != nil && *nextToken != "" {
		date, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` WHERE (date, created_at) < ($2, $3)`
		args = append(args, date, createdAt)
	}
	query += `
		ORDER BY date DESC, created_at DESC, line_id DESC
		LIMIT $1;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal lines: %w", err)
	}
	defer rows.Close()

	var lines []models.JournalLine
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating journal line rows: %w", err)
	}

	var token *string
	if len(lines) > limit {
		lines = lines[:limit]
		last := lines[len(lines)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainJournalLineSlice(lines), token, nil
}

// InsertLinesInTx appends journal lines inside the caller's transaction.
// Lines are immutable once written; corrections are reversing entries.
func (r *PgxJournalRepository) InsertLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	query := `
		INSERT INTO journal_lines (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query,
			m.LineID,
			m.Reference,
			m.CoaID,
			m.Date,
			m.Description,
			m.Debit,
			m.Credit,
			m.JournalType,
			m.SourceType,
			m.SourceID,
			m.BranchID,
			m.DepartmentID,
			m.ProjectID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert journal lines: %w", err)
	}
	return nil
}
