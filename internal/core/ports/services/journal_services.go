package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// JournalPosterSvc turns typed business events into balanced journal lines.
// PostInTx writes inside the caller's transaction so a business-state change
// and its accounting effect commit or roll back together. It never partially
// commits: an unresolvable chart-of-account mapping fails the whole event
// with apperrors.ErrMissingAccountMapping before any line is written.
type JournalPosterSvc interface {
	PostInTx(ctx context.Context, tx pgx.Tx, event domain.PostingEvent, actorID string) ([]domain.JournalLine, error)
}

// PostingContextResolverSvc resolves the branch/department/project tags for
// a source document before journal lines are created.
type PostingContextResolverSvc interface {
	Resolve(ctx context.Context, sourceType domain.SourceType, sourceID string) (domain.PostingContext, error)
}

// JournalReaderSvc defines read operations over posted journal lines
type JournalReaderSvc interface {
	// GetPosting retrieves every line of one posting reference.
	GetPosting(ctx context.Context, reference string, actorID string) ([]domain.JournalLine, error)

	// GetLinesBySource retrieves all lines tagged to a source document.
	GetLinesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string, actorID string) ([]domain.JournalLine, error)

	// ListPostings retrieves a paginated list of journal lines.
	ListPostings(ctx context.Context, params dto.ListJournalParams, actorID string) (*dto.ListJournalResponse, error)
}

// JournalSvcFacade combines posting and reading of journal data
type JournalSvcFacade interface {
	JournalPosterSvc
	JournalReaderSvc
}
