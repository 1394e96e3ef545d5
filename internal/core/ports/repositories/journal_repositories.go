package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// JournalReader defines read operations for posted journal lines
type JournalReader interface {
	// FindLinesByReference retrieves every line of one posting, ordered deterministically.
	FindLinesByReference(ctx context.Context, reference string) ([]domain.JournalLine, error)

	// FindLinesBySource retrieves all lines tagged to a source document.
	FindLinesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalLine, error)

	// ListReferences retrieves a paginated list of posting references using token-based pagination.
	ListReferences(ctx context.Context, limit int, nextToken *string) ([]domain.JournalLine, *string, error)

	// FindLinesByPeriod retrieves all lines posted with a date in [from, to],
	// used by period reports.
	FindLinesByPeriod(ctx context.Context, from, to time.Time) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal lines
type JournalWriter interface {
	// InsertLinesInTx appends journal lines inside the caller's transaction.
	// Lines are immutable once written; corrections are reversing entries.
	InsertLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
