package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// AuthorizationSvcFacade answers whether an actor may perform a gated
// action. The actor is always passed explicitly; services never read an
// ambient current user. A missing actor yields apperrors.ErrNotFound, a
// missing capability apperrors.ErrForbidden.
type AuthorizationSvcFacade interface {
	Authorize(ctx context.Context, actorID string, capability domain.Capability) error
}

// NumberingSvcFacade produces human-readable sequential document numbers
// in the form PREFIX-YYYYMMDD-NNNN, unique per registered prefix.
type NumberingSvcFacade interface {
	NextNumber(ctx context.Context, prefix string) (string, error)
}

// NotifierSvc is informed of completed workflow transitions. Calls are
// fire-and-forget; failures never affect the triggering transaction.
type NotifierSvc interface {
	DocumentTransitioned(ctx context.Context, docKind string, docID string, action domain.WorkflowAction, actorID string)
}
