package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/middleware"
	"github.com/nusankara/erp_backoffice/internal/utils"
)

// Document number prefixes for the production subsystem.
const (
	QCNumberPrefix            = "QC"
	MaterialIssueNumberPrefix = "MI"
)

// productionService covers quality-control inspections and material
// issues to manufacturing.
type productionService struct {
	productionRepo portsrepo.ProductionRepositoryWithTx
	authz          portssvc.AuthorizationSvcFacade
	numbering      portssvc.NumberingSvcFacade
}

// NewProductionService creates a new production service.
func NewProductionService(productionRepo portsrepo.ProductionRepositoryWithTx, authz portssvc.AuthorizationSvcFacade, numbering portssvc.NumberingSvcFacade) portssvc.ProductionSvcFacade {
	return &productionService{
		productionRepo: productionRepo,
		authz:          authz,
		numbering:      numbering,
	}
}

var _ portssvc.ProductionSvcFacade = (*productionService)(nil)

// CreateQC opens an inspection over a received quantity.
func (s *productionService) CreateQC(ctx context.Context, req dto.CreateQCRequest, actorID string) (*domain.QualityControl, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	inspectable, err := utils.ParseIDRAmount(req.InspectableQty)
	if err != nil {
		return nil, err
	}
	if !inspectable.IsPositive() {
		return nil, fmt.Errorf("%w: inspectable quantity must be positive, got %s",
			apperrors.ErrValidation, inspectable.String())
	}

	number, err := s.numbering.NextNumber(ctx, QCNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate QC number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate QC number: %w", err)
	}

	qc := domain.QualityControl{
		QCID:           uuid.NewString(),
		Number:         number,
		ReceiptID:      req.ReceiptID,
		InspectableQty: inspectable,
		PassedQty:      decimal.Zero,
		RejectedQty:    decimal.Zero,
		Status:         domain.QCPendingInspection,
		Notes:          req.Notes,
		AuditFields:    domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	if err := s.productionRepo.SaveQC(ctx, qc); err != nil {
		logger.Error("Failed to save QC", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("QC created", slog.String("qc_id", qc.QCID), slog.String("number", number))
	return &qc, nil
}

// PreviewInspection returns the clamped passed quantity for a tentative
// input. Nothing is persisted.
func (s *productionService) PreviewInspection(ctx context.Context, passed, rejected, inspectable decimal.Decimal) decimal.Decimal {
	return domain.ClampInspection(passed, rejected, inspectable)
}

// RecordResult persists the final passed/rejected split. Unlike the
// preview, an out-of-bound total is rejected outright.
func (s *productionService) RecordResult(ctx context.Context, qcID string, req dto.RecordQCResultRequest, actorID string) (*domain.QualityControl, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	passed, err := utils.ParseIDRAmount(req.PassedQty)
	if err != nil {
		return nil, err
	}
	rejected, err := utils.ParseIDRAmount(req.RejectedQty)
	if err != nil {
		return nil, err
	}
	if passed.IsNegative() || rejected.IsNegative() {
		return nil, fmt.Errorf("%w: inspection quantities must not be negative", apperrors.ErrValidation)
	}

	tx, err := s.productionRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.productionRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	qc, err := s.productionRepo.FindQCByIDForUpdate(ctx, tx, qcID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock QC", slog.String("error", err.Error()), slog.String("qc_id", qcID))
		}
		return nil, err
	}
	if qc.Status != domain.QCPendingInspection {
		return nil, fmt.Errorf("%w: inspection %s is already recorded", apperrors.ErrConflict, qc.Number)
	}

	if passed.Add(rejected).GreaterThan(qc.InspectableQty) {
		return nil, fmt.Errorf("%w: passed %s + rejected %s exceeds inspectable %s",
			apperrors.ErrQuantityExceedsAvailable, passed.String(), rejected.String(), qc.InspectableQty.String())
	}

	now := time.Now().UTC()
	qc.PassedQty = passed
	qc.RejectedQty = rejected
	qc.Status = domain.QCRecorded
	if req.Notes != "" {
		qc.Notes = req.Notes
	}
	qc.LastUpdatedAt = now
	qc.LastUpdatedBy = actorID

	if err := s.productionRepo.UpdateQCInTx(ctx, tx, *qc); err != nil {
		logger.Error("Failed to record QC result", slog.String("error", err.Error()), slog.String("qc_id", qcID))
		return nil, err
	}

	if err := s.productionRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit QC result: %w", err)
	}

	logger.Info("QC result recorded",
		slog.String("qc_id", qc.QCID),
		slog.String("passed", passed.String()),
		slog.String("rejected", rejected.String()),
	)
	return qc, nil
}

// CreateMaterialIssue persists a draft issue document. Stock is neither
// checked nor reduced until the issue is finalized.
func (s *productionService) CreateMaterialIssue(ctx context.Context, req dto.CreateMaterialIssueRequest, actorID string) (*domain.MaterialIssue, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid issue date %q", apperrors.ErrValidation, req.Date)
	}

	issueID := uuid.NewString()
	items := make([]domain.MaterialIssueItem, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		if seen[it.MaterialID] {
			return nil, fmt.Errorf("%w: material %s appears more than once", apperrors.ErrValidation, it.MaterialID)
		}
		seen[it.MaterialID] = true

		qty, err := utils.ParseIDRAmount(it.RequestedQty)
		if err != nil {
			return nil, err
		}
		if !qty.IsPositive() {
			return nil, fmt.Errorf("%w: requested quantity for material %s must be positive",
				apperrors.ErrValidation, it.MaterialID)
		}
		items = append(items, domain.MaterialIssueItem{
			ItemID:       uuid.NewString(),
			IssueID:      issueID,
			MaterialID:   it.MaterialID,
			RequestedQty: qty,
		})
	}

	number, err := s.numbering.NextNumber(ctx, MaterialIssueNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate material issue number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate material issue number: %w", err)
	}

	issue := domain.MaterialIssue{
		IssueID:          issueID,
		Number:           number,
		ProductionPlanID: req.ProductionPlanID,
		Date:             date,
		Items:            items,
		Status:           domain.MaterialIssueDraft,
		Notes:            req.Notes,
		AuditFields:      domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	if err := s.productionRepo.SaveMaterialIssue(ctx, issue); err != nil {
		logger.Error("Failed to save material issue", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Material issue created", slog.String("issue_id", issue.IssueID), slog.String("number", number))
	return &issue, nil
}

// IssueMaterials finalizes a draft issue. Every material's stock row is
// locked in order, checked against the requested quantity, and reduced;
// any shortfall rolls the whole issue back.
func (s *productionService) IssueMaterials(ctx context.Context, issueID string, actorID string) (*domain.MaterialIssue, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	tx, err := s.productionRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.productionRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	issue, err := s.productionRepo.FindMaterialIssueByIDForUpdate(ctx, tx, issueID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock material issue", slog.String("error", err.Error()), slog.String("issue_id", issueID))
		}
		return nil, err
	}
	if issue.Status != domain.MaterialIssueDraft {
		return nil, fmt.Errorf("%w: issue %s is already %s", apperrors.ErrConflict, issue.Number, issue.Status)
	}

	now := time.Now().UTC()
	for i := range issue.Items {
		item := &issue.Items[i]

		onHand, err := s.productionRepo.FindStockForUpdate(ctx, tx, item.MaterialID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to lock stock row", slog.String("error", err.Error()), slog.String("material_id", item.MaterialID))
			}
			return nil, err
		}
		if item.RequestedQty.GreaterThan(onHand) {
			return nil, fmt.Errorf("%w: material %s requested %s but only %s on hand",
				apperrors.ErrQuantityExceedsAvailable, item.MaterialID, item.RequestedQty.String(), onHand.String())
		}

		if err := s.productionRepo.AdjustStockInTx(ctx, tx, item.MaterialID, item.RequestedQty.Neg()); err != nil {
			logger.Error("Failed to reduce stock", slog.String("error", err.Error()), slog.String("material_id", item.MaterialID))
			return nil, err
		}
		item.IssuedQty = item.RequestedQty
		item.AvailableQty = onHand
	}

	issue.Status = domain.MaterialIssueIssued
	issue.LastUpdatedAt = now
	issue.LastUpdatedBy = actorID

	if err := s.productionRepo.UpdateMaterialIssueInTx(ctx, tx, *issue); err != nil {
		logger.Error("Failed to update material issue", slog.String("error", err.Error()), slog.String("issue_id", issueID))
		return nil, err
	}

	if err := s.productionRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit material issue: %w", err)
	}

	logger.Info("Materials issued", slog.String("issue_id", issue.IssueID), slog.String("number", issue.Number))
	return issue, nil
}

// GetQCByID retrieves a quality control document.
func (s *productionService) GetQCByID(ctx context.Context, qcID string, actorID string) (*domain.QualityControl, error) {
	return s.productionRepo.FindQCByID(ctx, qcID)
}

// GetMaterialIssueByID retrieves a material issue with its items.
func (s *productionService) GetMaterialIssueByID(ctx context.Context, issueID string, actorID string) (*domain.MaterialIssue, error) {
	return s.productionRepo.FindMaterialIssueByID(ctx, issueID)
}
