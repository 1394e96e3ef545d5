package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/middleware"
	"github.com/nusankara/erp_backoffice/internal/utils"
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

// PurchaseReturnNumberPrefix prefixes generated purchase return numbers.
const PurchaseReturnNumberPrefix = "PR"

// purchaseReturnService drives purchase returns through the approval
// workflow and posts the return journal on completion.
type purchaseReturnService struct {
	returnRepo portsrepo.PurchaseReturnRepositoryWithTx
	qcReader   portsrepo.ProductionReader
	poster     portssvc.JournalPosterSvc
	authz      portssvc.AuthorizationSvcFacade
	numbering  portssvc.NumberingSvcFacade
	notifier   portssvc.NotifierSvc
}

// NewPurchaseReturnService creates a new purchase return service.
func NewPurchaseReturnService(returnRepo portsrepo.PurchaseReturnRepositoryWithTx, qcReader portsrepo.ProductionReader, poster portssvc.JournalPosterSvc, authz portssvc.AuthorizationSvcFacade, numbering portssvc.NumberingSvcFacade, notifier portssvc.NotifierSvc) portssvc.PurchaseReturnSvcFacade {
	return &purchaseReturnService{
		returnRepo: returnRepo,
		qcReader:   qcReader,
		poster:     poster,
		authz:      authz,
		numbering:  numbering,
		notifier:   notifier,
	}
}

var _ portssvc.PurchaseReturnSvcFacade = (*purchaseReturnService)(nil)

// CreateReturn creates a draft purchase return. A QC-originated return is
// bounded by the inspection's rejected quantity; its branch always comes
// from the receipt the document names, not the QC.
func (s *purchaseReturnService) CreateReturn(ctx context.Context, req dto.CreatePurchaseReturnRequest, actorID string) (*domain.PurchaseReturn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	quantity, err := utils.ParseIDRAmount(req.Quantity)
	if err != nil {
		return nil, err
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: return quantity must be positive", apperrors.ErrValidation)
	}
	amount, err := utils.ParseIDRAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: return amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	amount = accounting.RoundAmount(amount)

	if req.QCID != nil {
		qc, err := s.qcReader.FindQCByID(ctx, *req.QCID)
		if err != nil {
			return nil, err
		}
		if qc.ReceiptID != req.ReceiptID {
			return nil, fmt.Errorf("%w: inspection %s belongs to receipt %s, not %s",
				apperrors.ErrValidation, qc.Number, qc.ReceiptID, req.ReceiptID)
		}
		if qc.Status != domain.QCRecorded {
			return nil, fmt.Errorf("%w: inspection %s has no recorded result yet", apperrors.ErrConflict, qc.Number)
		}
		if quantity.GreaterThan(qc.RejectedQty) {
			return nil, fmt.Errorf("%w: returning %s exceeds rejected quantity %s",
				apperrors.ErrQuantityExceedsAvailable, quantity.String(), qc.RejectedQty.String())
		}
	}

	number, err := s.numbering.NextNumber(ctx, PurchaseReturnNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate purchase return number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate purchase return number: %w", err)
	}

	ret := domain.PurchaseReturn{
		ReturnID:       uuid.NewString(),
		Number:         number,
		ReceiptID:      req.ReceiptID,
		QCID:           req.QCID,
		SupplierID:     req.SupplierID,
		BranchID:       req.BranchID,
		Quantity:       quantity,
		Amount:         amount,
		PayableCoaID:   req.PayableCoaID,
		InventoryCoaID: req.InventoryCoaID,
		Notes:          req.Notes,
		Status:         domain.StatusDraft,
		RequestedBy:    actorID,
		AuditFields:    domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	if err := s.returnRepo.SaveReturn(ctx, ret); err != nil {
		logger.Error("Failed to save purchase return", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Purchase return created", slog.String("return_id", ret.ReturnID), slog.String("number", number))
	return &ret, nil
}

// TransitionReturn applies a workflow action to a purchase return.
// Completing posts the return journal in the same transaction.
func (s *purchaseReturnService) TransitionReturn(ctx context.Context, returnID string, action domain.WorkflowAction, req dto.TransitionRequest, actorID string) (*domain.PurchaseReturn, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	requiredCap := domain.CapPostJournals
	if action == domain.ActionApprove || action == domain.ActionReject || action == domain.ActionComplete {
		requiredCap = domain.CapApproveDocuments
	}
	if err := s.authz.Authorize(ctx, actorID, requiredCap); err != nil {
		return nil, err
	}
	if (action == domain.ActionReject || action == domain.ActionCancel) && req.Notes == "" {
		return nil, fmt.Errorf("%w: a reason is required to %s a purchase return", apperrors.ErrMissingJustification, action)
	}

	tx, err := s.returnRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.returnRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	ret, err := s.returnRepo.FindReturnByIDForUpdate(ctx, tx, returnID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock purchase return", slog.String("error", err.Error()), slog.String("return_id", returnID))
		}
		return nil, err
	}

	next, ok := domain.NextStatus(ret.Status, action)
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a purchase return in status %s",
			apperrors.ErrInvalidStateTransition, action, ret.Status)
	}
	ret.Status = next

	now := time.Now().UTC()
	switch action {
	case domain.ActionApprove, domain.ActionReject:
		ret.ApprovedBy = &actorID
		ret.ApprovedAt = &now
		ret.ApprovalNotes = req.Notes
	case domain.ActionComplete:
		event := domain.PurchaseReturned{
			ReturnID:       ret.ReturnID,
			Number:         ret.Number,
			SupplierID:     ret.SupplierID,
			Amount:         ret.Amount,
			PayableCoaID:   ret.PayableCoaID,
			InventoryCoaID: ret.InventoryCoaID,
			BranchID:       ret.BranchID,
			Date:           now,
		}
		if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
			logger.Error("Return posting failed, completion rolled back", slog.String("error", err.Error()), slog.String("return_id", returnID))
			return nil, err
		}
	}

	ret.LastUpdatedAt = now
	ret.LastUpdatedBy = actorID

	if err := s.returnRepo.UpdateReturnInTx(ctx, tx, *ret); err != nil {
		logger.Error("Failed to update purchase return", slog.String("error", err.Error()), slog.String("return_id", returnID))
		return nil, err
	}

	if err := s.returnRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase return transition: %w", err)
	}

	logger.Info("Purchase return transitioned",
		slog.String("return_id", ret.ReturnID),
		slog.String("action", string(action)),
		slog.String("status", string(ret.Status)),
	)
	if s.notifier != nil {
		s.notifier.DocumentTransitioned(ctx, "purchase_return", ret.ReturnID, action, actorID)
	}
	return ret, nil
}

// GetReturnByID retrieves a purchase return by ID.
func (s *purchaseReturnService) GetReturnByID(ctx context.Context, returnID string, actorID string) (*domain.PurchaseReturn, error) {
	return s.returnRepo.FindReturnByID(ctx, returnID)
}

// ListReturns retrieves a paginated list of purchase returns.
func (s *purchaseReturnService) ListReturns(ctx context.Context, params dto.ListPurchaseReturnsParams, actorID string) (*dto.ListPurchaseReturnsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	returns, nextToken, err := s.returnRepo.ListReturns(ctx, params.Status, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list purchase returns", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list purchase returns: %w", err)
	}
	return &dto.ListPurchaseReturnsResponse{
		Returns:   dto.ToPurchaseReturnResponses(returns),
		NextToken: nextToken,
	}, nil
}
