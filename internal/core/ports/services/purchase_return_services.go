package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// PurchaseReturnSvcFacade drives purchase return documents through the
// shared approval workflow. Completing a return posts the return journal
// (supplier payable against inventory) atomically with the status change.
type PurchaseReturnSvcFacade interface {
	// CreateReturn creates a draft purchase return. When the return
	// originates from a QC inspection, the returned quantity may not exceed
	// the QC's rejected quantity.
	CreateReturn(ctx context.Context, req dto.CreatePurchaseReturnRequest, actorID string) (*domain.PurchaseReturn, error)

	// TransitionReturn applies a workflow action (submit/approve/reject/complete/cancel).
	TransitionReturn(ctx context.Context, returnID string, action domain.WorkflowAction, req dto.TransitionRequest, actorID string) (*domain.PurchaseReturn, error)

	// GetReturnByID retrieves a purchase return by ID.
	GetReturnByID(ctx context.Context, returnID string, actorID string) (*domain.PurchaseReturn, error)

	// ListReturns retrieves a paginated list of purchase returns.
	ListReturns(ctx context.Context, params dto.ListPurchaseReturnsParams, actorID string) (*dto.ListPurchaseReturnsResponse, error)
}
