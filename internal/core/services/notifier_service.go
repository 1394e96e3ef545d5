package services

import (
	"context"
	"log/slog"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/middleware"
	"github.com/nusankara/erp_backoffice/internal/utils"
)

// notifierService publishes workflow transition events to the analytics
// backend. Delivery is fire-and-forget: a failed or uninitialized client
// never affects the transaction that triggered the event.
type notifierService struct {
	client *utils.PosthogClientWrapper
}

// NewNotifierService creates a notifier backed by the given analytics client.
func NewNotifierService(client *utils.PosthogClientWrapper) portssvc.NotifierSvc {
	return &notifierService{client: client}
}

var _ portssvc.NotifierSvc = (*notifierService)(nil)

// DocumentTransitioned records one completed workflow transition.
func (s *notifierService) DocumentTransitioned(ctx context.Context, docKind string, docID string, action domain.WorkflowAction, actorID string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Workflow document transitioned",
		slog.String("doc_kind", docKind),
		slog.String("doc_id", docID),
		slog.String("action", string(action)),
		slog.String("actor_id", actorID),
	)

	if s.client == nil || !s.client.IsInitialized() {
		return
	}
	s.client.Enqueue(actorID, "workflow_transition", map[string]any{
		"doc_kind": docKind,
		"doc_id":   docID,
		"action":   string(action),
	})
}
