package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// ProductionReaderSvc defines read operations for QC and material issue documents
type ProductionReaderSvc interface {
	// GetQCByID retrieves a quality control document.
	GetQCByID(ctx context.Context, qcID string, actorID string) (*domain.QualityControl, error)

	// GetMaterialIssueByID retrieves a material issue with its items.
	GetMaterialIssueByID(ctx context.Context, issueID string, actorID string) (*domain.MaterialIssue, error)
}

// QualityControlSvc records inspection results. PreviewInspection clamps
// for live UI recomputation; RecordResult hard-rejects an out-of-bound
// total with apperrors.ErrQuantityExceedsAvailable.
type QualityControlSvc interface {
	// CreateQC opens an inspection over a received quantity.
	CreateQC(ctx context.Context, req dto.CreateQCRequest, actorID string) (*domain.QualityControl, error)

	// PreviewInspection returns the clamped passed quantity for a tentative input.
	PreviewInspection(ctx context.Context, passed, rejected, inspectable decimal.Decimal) decimal.Decimal

	// RecordResult persists the final passed/rejected split.
	RecordResult(ctx context.Context, qcID string, req dto.RecordQCResultRequest, actorID string) (*domain.QualityControl, error)
}

// MaterialIssueSvc hands materials to manufacturing with stock checks.
type MaterialIssueSvc interface {
	// CreateMaterialIssue persists a draft issue document.
	CreateMaterialIssue(ctx context.Context, req dto.CreateMaterialIssueRequest, actorID string) (*domain.MaterialIssue, error)

	// IssueMaterials finalizes the issue, locking and reducing stock rows;
	// an item exceeding available stock fails with apperrors.ErrQuantityExceedsAvailable.
	IssueMaterials(ctx context.Context, issueID string, actorID string) (*domain.MaterialIssue, error)
}

// ProductionSvcFacade combines all production-related service interfaces
type ProductionSvcFacade interface {
	ProductionReaderSvc
	QualityControlSvc
	MaterialIssueSvc
}
