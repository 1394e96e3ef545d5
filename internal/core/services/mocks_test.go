package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// Shared cross-cutting mocks used by the service suites. Repository mocks
// live next to the suite that owns them.

// --- Mock AuthorizationSvcFacade ---
type MockAuthorizationService struct {
	mock.Mock
}

func (m *MockAuthorizationService) Authorize(ctx context.Context, actorID string, capability domain.Capability) error {
	args := m.Called(ctx, actorID, capability)
	return args.Error(0)
}

// allowAll arms the mock to grant every capability check.
func (m *MockAuthorizationService) allowAll() {
	m.On("Authorize", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

// --- Mock NumberingSvcFacade ---
type MockNumberingService struct {
	mock.Mock
}

func (m *MockNumberingService) NextNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

// --- Mock JournalPosterSvc ---
type MockJournalPoster struct {
	mock.Mock
}

func (m *MockJournalPoster) PostInTx(ctx context.Context, tx pgx.Tx, event domain.PostingEvent, actorID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, tx, event, actorID)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	return lines, args.Error(1)
}

// --- Mock NotifierSvc ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) DocumentTransitioned(ctx context.Context, docKind string, docID string, action domain.WorkflowAction, actorID string) {
	m.Called(ctx, docKind, docID, action, actorID)
}
