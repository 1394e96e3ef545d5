package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/middleware"
	"github.com/nusankara/erp_backoffice/internal/utils"
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

// Document number prefixes for the asset subsystem.
const (
	AssetNumberPrefix    = "AST"
	DisposalNumberPrefix = "AD"
	TransferNumberPrefix = "AT"
)

// LedgerAccounts carries the fixed chart-of-account IDs the asset
// subsystem posts against: disposal gain/loss and inter-branch transfer
// clearing accounts. They come from configuration, not per document.
type LedgerAccounts struct {
	DisposalGainCoaID string
	DisposalLossCoaID string
	TransferInCoaID   string
	TransferOutCoaID  string
}

// assetService covers acquisition, depreciation, and the disposal and
// transfer approval workflows.
type assetService struct {
	assetRepo portsrepo.AssetRepositoryWithTx
	poster    portssvc.JournalPosterSvc
	authz     portssvc.AuthorizationSvcFacade
	numbering portssvc.NumberingSvcFacade
	notifier  portssvc.NotifierSvc
	accounts  LedgerAccounts
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryWithTx, poster portssvc.JournalPosterSvc, authz portssvc.AuthorizationSvcFacade, numbering portssvc.NumberingSvcFacade, notifier portssvc.NotifierSvc, accounts LedgerAccounts) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo: assetRepo,
		poster:    poster,
		authz:     authz,
		numbering: numbering,
		notifier:  notifier,
		accounts:  accounts,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// RegisterAsset persists a new asset and posts its acquisition journal in
// one database transaction.
func (s *assetService) RegisterAsset(ctx context.Context, req dto.RegisterAssetRequest, actorID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	cost, err := utils.ParseIDRAmount(req.PurchaseCost)
	if err != nil {
		return nil, err
	}
	if !cost.IsPositive() {
		return nil, fmt.Errorf("%w: purchase cost must be positive, got %s", apperrors.ErrInvalidAmount, cost.String())
	}
	cost = accounting.RoundAmount(cost)

	salvage := decimal.Zero
	if req.SalvageValue != "" {
		salvage, err = utils.ParseIDRAmount(req.SalvageValue)
		if err != nil {
			return nil, err
		}
		salvage = accounting.RoundAmount(salvage)
	}
	if salvage.IsNegative() || salvage.GreaterThan(cost) {
		return nil, fmt.Errorf("%w: salvage value %s must be between zero and cost %s",
			apperrors.ErrValidation, salvage.String(), cost.String())
	}

	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date %q", apperrors.ErrValidation, req.PurchaseDate)
	}
	usageDate, err := time.Parse(dateLayout, req.UsageDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid usage date %q", apperrors.ErrValidation, req.UsageDate)
	}
	if usageDate.Before(purchaseDate) {
		return nil, fmt.Errorf("%w: usage date precedes purchase date", apperrors.ErrValidation)
	}

	number, err := s.numbering.NextNumber(ctx, AssetNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate asset number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate asset number: %w", err)
	}

	asset := domain.Asset{
		AssetID:          uuid.NewString(),
		Number:           number,
		Name:             req.Name,
		BranchID:         req.BranchID,
		PurchaseCost:     cost,
		SalvageValue:     salvage,
		UsefulLifeMonths: req.UsefulLifeMonths,
		PurchaseDate:     purchaseDate,
		UsageDate:        usageDate,
		Status:           domain.AssetActive,
		AssetCoaID:       req.AssetCoaID,
		AccumCoaID:       req.AccumCoaID,
		ExpenseCoaID:     req.ExpenseCoaID,
		AccumulatedDep:   decimal.Zero,
		AuditFields:      domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if err := s.assetRepo.SaveAssetInTx(ctx, tx, asset); err != nil {
		logger.Error("Failed to save asset", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	event := domain.AssetAcquired{
		AssetID:      asset.AssetID,
		AssetName:    asset.Name,
		Cost:         cost,
		AssetCoaID:   req.AssetCoaID,
		CreditCoaID:  req.PaymentCoaID,
		PurchaseDate: purchaseDate,
	}
	if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
		logger.Error("Acquisition posting failed, registration rolled back", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit asset registration: %w", err)
	}

	logger.Info("Asset registered", slog.String("asset_id", asset.AssetID), slog.String("number", number))
	return &asset, nil
}

// Depreciate records one month of straight-line depreciation and posts
// its journal atomically. The final period is capped so accumulated
// depreciation never exceeds cost minus salvage.
func (s *assetService) Depreciate(ctx context.Context, assetID string, req dto.DepreciateAssetRequest, actorID string) (*domain.AssetDepreciation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	if existing, err := s.assetRepo.FindDepreciationByPeriod(ctx, assetID, req.PeriodYear, req.PeriodMonth); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	} else if existing != nil {
		return nil, fmt.Errorf("%w: depreciation for %04d-%02d already recorded",
			apperrors.ErrDuplicate, req.PeriodYear, req.PeriodMonth)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}
	if asset.Status != domain.AssetActive {
		return nil, fmt.Errorf("%w: asset %s is %s", apperrors.ErrValidation, asset.Number, asset.Status)
	}

	periodStart := time.Date(req.PeriodYear, time.Month(req.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	if periodEnd.Before(asset.UsageDate) {
		return nil, fmt.Errorf("%w: period %04d-%02d precedes usage date %s",
			apperrors.ErrValidation, req.PeriodYear, req.PeriodMonth, asset.UsageDate.Format(dateLayout))
	}

	monthly, err := accounting.ComputeMonthlyDepreciation(asset.PurchaseCost, asset.SalvageValue, asset.UsefulLifeMonths)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	depreciableBase := asset.PurchaseCost.Sub(asset.SalvageValue)
	remaining := depreciableBase.Sub(asset.AccumulatedDep)
	if !remaining.IsPositive() {
		return nil, fmt.Errorf("%w: asset %s is fully depreciated", apperrors.ErrValidation, asset.Number)
	}
	amount := monthly
	if amount.GreaterThan(remaining) {
		amount = remaining
	}

	now := time.Now().UTC()
	asset.AccumulatedDep = asset.AccumulatedDep.Add(amount)
	asset.LastUpdatedAt = now
	asset.LastUpdatedBy = actorID

	entry := domain.AssetDepreciation{
		DepreciationID:   uuid.NewString(),
		AssetID:          asset.AssetID,
		Date:             periodEnd.Truncate(24 * time.Hour),
		PeriodMonth:      req.PeriodMonth,
		PeriodYear:       req.PeriodYear,
		Amount:           amount,
		AccumulatedTotal: asset.AccumulatedDep,
		BookValue:        asset.PurchaseCost.Sub(asset.AccumulatedDep),
		Notes:            req.Notes,
		AuditFields:      domain.NewAuditFields(actorID, now),
	}

	if err := s.assetRepo.InsertDepreciationInTx(ctx, tx, entry); err != nil {
		logger.Error("Failed to insert depreciation entry", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, err
	}
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to update asset accumulated depreciation", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, err
	}

	event := domain.AssetDepreciated{
		DepreciationID: entry.DepreciationID,
		AssetID:        asset.AssetID,
		AssetName:      asset.Name,
		Amount:         amount,
		ExpenseCoaID:   asset.ExpenseCoaID,
		AccumCoaID:     asset.AccumCoaID,
		Date:           entry.Date,
		PeriodLabel:    fmt.Sprintf("%04d-%02d", req.PeriodYear, req.PeriodMonth),
	}
	if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
		logger.Error("Depreciation posting failed, entry rolled back", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, err
	}

	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit depreciation: %w", err)
	}

	logger.Info("Depreciation recorded",
		slog.String("asset_id", asset.AssetID),
		slog.String("period", event.PeriodLabel),
		slog.String("amount", amount.String()),
	)
	return &entry, nil
}

// CreateDisposal creates a draft disposal document.
func (s *assetService) CreateDisposal(ctx context.Context, req dto.CreateDisposalRequest, actorID string) (*domain.AssetDisposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetActive {
		return nil, fmt.Errorf("%w: asset %s is already %s", apperrors.ErrValidation, asset.Number, asset.Status)
	}

	salePrice := decimal.Zero
	if req.Type == domain.DisposalSale {
		if req.SalePrice == "" {
			return nil, fmt.Errorf("%w: sale price is required for a sale disposal", apperrors.ErrValidation)
		}
		salePrice, err = utils.ParseIDRAmount(req.SalePrice)
		if err != nil {
			return nil, err
		}
		if salePrice.IsNegative() {
			return nil, fmt.Errorf("%w: sale price must not be negative", apperrors.ErrInvalidAmount)
		}
		salePrice = accounting.RoundAmount(salePrice)
	}

	number, err := s.numbering.NextNumber(ctx, DisposalNumberPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to generate disposal number: %w", err)
	}

	disposal := domain.AssetDisposal{
		DisposalID:    uuid.NewString(),
		Number:        number,
		AssetID:       req.AssetID,
		Type:          req.Type,
		SalePrice:     salePrice,
		ProceedsCoaID: req.ProceedsCoaID,
		Notes:         req.Notes,
		Status:        domain.StatusDraft,
		RequestedBy:   actorID,
		AuditFields:   domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	if err := s.assetRepo.SaveDisposal(ctx, disposal); err != nil {
		logger.Error("Failed to save disposal", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Disposal created", slog.String("disposal_id", disposal.DisposalID), slog.String("number", number))
	return &disposal, nil
}

// TransitionDisposal applies a workflow action to a disposal document.
// Completing posts the gain/loss journal and marks the asset disposed in
// one database transaction.
func (s *assetService) TransitionDisposal(ctx context.Context, disposalID string, action domain.WorkflowAction, req dto.TransitionRequest, actorID string) (*domain.AssetDisposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizeAction(ctx, action, actorID); err != nil {
		return nil, err
	}
	if (action == domain.ActionReject || action == domain.ActionCancel) && req.Notes == "" {
		return nil, fmt.Errorf("%w: a reason is required to %s a disposal", apperrors.ErrMissingJustification, action)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	disposal, err := s.assetRepo.FindDisposalByIDForUpdate(ctx, tx, disposalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock disposal", slog.String("error", err.Error()), slog.String("disposal_id", disposalID))
		}
		return nil, err
	}

	next, ok := domain.NextStatus(disposal.Status, action)
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a disposal in status %s",
			apperrors.ErrInvalidStateTransition, action, disposal.Status)
	}
	disposal.Status = next

	now := time.Now().UTC()
	switch action {
	case domain.ActionApprove, domain.ActionReject:
		disposal.ApprovedBy = &actorID
		disposal.ApprovedAt = &now
		disposal.ApprovalNotes = req.Notes
	case domain.ActionComplete:
		if err := s.completeDisposal(ctx, tx, disposal, actorID); err != nil {
			return nil, err
		}
	}

	disposal.LastUpdatedAt = now
	disposal.LastUpdatedBy = actorID

	if err := s.assetRepo.UpdateDisposalInTx(ctx, tx, *disposal); err != nil {
		logger.Error("Failed to update disposal", slog.String("error", err.Error()), slog.String("disposal_id", disposalID))
		return nil, err
	}

	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit disposal transition: %w", err)
	}

	logger.Info("Disposal transitioned",
		slog.String("disposal_id", disposal.DisposalID),
		slog.String("action", string(action)),
		slog.String("status", string(disposal.Status)),
	)
	if s.notifier != nil {
		s.notifier.DocumentTransitioned(ctx, "asset_disposal", disposal.DisposalID, action, actorID)
	}
	return disposal, nil
}

// completeDisposal posts the gain/loss journal and marks the asset
// disposed, inside the caller's transaction.
func (s *assetService) completeDisposal(ctx context.Context, tx pgx.Tx, disposal *domain.AssetDisposal, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, disposal.AssetID)
	if err != nil {
		return err
	}
	if asset.Status != domain.AssetActive {
		return fmt.Errorf("%w: asset %s is already %s", apperrors.ErrValidation, asset.Number, asset.Status)
	}

	proceedsCoa := ""
	if disposal.ProceedsCoaID != nil {
		proceedsCoa = *disposal.ProceedsCoaID
	}
	event := domain.AssetDisposed{
		DisposalID:     disposal.DisposalID,
		AssetID:        asset.AssetID,
		AssetName:      asset.Name,
		Proceeds:       disposal.SalePrice,
		AccumulatedDep: asset.AccumulatedDep,
		OriginalCost:   asset.PurchaseCost,
		ProceedsCoaID:  proceedsCoa,
		AccumCoaID:     asset.AccumCoaID,
		AssetCoaID:     asset.AssetCoaID,
		GainCoaID:      s.accounts.DisposalGainCoaID,
		LossCoaID:      s.accounts.DisposalLossCoaID,
		Date:           time.Now().UTC(),
	}
	if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
		logger.Error("Disposal posting failed, completion rolled back", slog.String("error", err.Error()), slog.String("disposal_id", disposal.DisposalID))
		return err
	}

	asset.Status = domain.AssetDisposedStatus
	asset.LastUpdatedAt = time.Now().UTC()
	asset.LastUpdatedBy = actorID
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to mark asset disposed", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return err
	}
	return nil
}

// CreateTransfer creates a draft transfer document.
func (s *assetService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, actorID string) (*domain.AssetTransfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	if req.FromBranchID == req.ToBranchID {
		return nil, fmt.Errorf("%w: transfer source and destination branches must differ", apperrors.ErrValidation)
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.AssetActive {
		return nil, fmt.Errorf("%w: asset %s is %s", apperrors.ErrValidation, asset.Number, asset.Status)
	}
	if asset.BranchID != req.FromBranchID {
		return nil, fmt.Errorf("%w: asset %s is located at branch %s, not %s",
			apperrors.ErrValidation, asset.Number, asset.BranchID, req.FromBranchID)
	}

	number, err := s.numbering.NextNumber(ctx, TransferNumberPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transfer number: %w", err)
	}

	transfer := domain.AssetTransfer{
		TransferID:   uuid.NewString(),
		Number:       number,
		AssetID:      req.AssetID,
		FromBranchID: req.FromBranchID,
		ToBranchID:   req.ToBranchID,
		Notes:        req.Notes,
		Status:       domain.StatusDraft,
		RequestedBy:  actorID,
		AuditFields:  domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	if err := s.assetRepo.SaveTransfer(ctx, transfer); err != nil {
		logger.Error("Failed to save transfer", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Transfer created", slog.String("transfer_id", transfer.TransferID), slog.String("number", number))
	return &transfer, nil
}

// TransitionTransfer applies a workflow action to a transfer document.
// Completing moves the asset's branch and posts the clearing journal in
// one database transaction.
func (s *assetService) TransitionTransfer(ctx context.Context, transferID string, action domain.WorkflowAction, req dto.TransitionRequest, actorID string) (*domain.AssetTransfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizeAction(ctx, action, actorID); err != nil {
		return nil, err
	}
	if (action == domain.ActionReject || action == domain.ActionCancel) && req.Notes == "" {
		return nil, fmt.Errorf("%w: a reason is required to %s a transfer", apperrors.ErrMissingJustification, action)
	}

	tx, err := s.assetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.assetRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	transfer, err := s.assetRepo.FindTransferByIDForUpdate(ctx, tx, transferID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		}
		return nil, err
	}

	next, ok := domain.NextStatus(transfer.Status, action)
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a transfer in status %s",
			apperrors.ErrInvalidStateTransition, action, transfer.Status)
	}
	transfer.Status = next

	now := time.Now().UTC()
	switch action {
	case domain.ActionApprove, domain.ActionReject:
		transfer.ApprovedBy = &actorID
		transfer.ApprovedAt = &now
		transfer.ApprovalNotes = req.Notes
	case domain.ActionComplete:
		if err := s.completeTransfer(ctx, tx, transfer, actorID); err != nil {
			return nil, err
		}
	}

	transfer.LastUpdatedAt = now
	transfer.LastUpdatedBy = actorID

	if err := s.assetRepo.UpdateTransferInTx(ctx, tx, *transfer); err != nil {
		logger.Error("Failed to update transfer", slog.String("error", err.Error()), slog.String("transfer_id", transferID))
		return nil, err
	}

	if err := s.assetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transfer transition: %w", err)
	}

	logger.Info("Transfer transitioned",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("action", string(action)),
		slog.String("status", string(transfer.Status)),
	)
	if s.notifier != nil {
		s.notifier.DocumentTransitioned(ctx, "asset_transfer", transfer.TransferID, action, actorID)
	}
	return transfer, nil
}

// completeTransfer posts the clearing journal and moves the asset's
// branch, inside the caller's transaction.
func (s *assetService) completeTransfer(ctx context.Context, tx pgx.Tx, transfer *domain.AssetTransfer, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	asset, err := s.assetRepo.FindAssetByIDForUpdate(ctx, tx, transfer.AssetID)
	if err != nil {
		return err
	}
	if asset.Status != domain.AssetActive {
		return fmt.Errorf("%w: asset %s is %s", apperrors.ErrValidation, asset.Number, asset.Status)
	}
	if asset.BranchID != transfer.FromBranchID {
		return fmt.Errorf("%w: asset %s has moved to branch %s since the transfer was requested",
			apperrors.ErrConflict, asset.Number, asset.BranchID)
	}

	// A fully depreciated asset carries no book value; the branch still
	// moves, there is just nothing to clear through the ledger.
	if bookValue := asset.BookValue(); bookValue.IsPositive() {
		event := domain.AssetTransferred{
			TransferID:    transfer.TransferID,
			AssetID:       asset.AssetID,
			AssetName:     asset.Name,
			BookValue:     bookValue,
			InClearCoaID:  s.accounts.TransferInCoaID,
			OutClearCoaID: s.accounts.TransferOutCoaID,
			FromBranchID:  transfer.FromBranchID,
			ToBranchID:    transfer.ToBranchID,
			Date:          time.Now().UTC(),
		}
		if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
			logger.Error("Transfer posting failed, completion rolled back", slog.String("error", err.Error()), slog.String("transfer_id", transfer.TransferID))
			return err
		}
	} else {
		logger.Info("Transfer of fully depreciated asset, no clearing journal posted",
			slog.String("transfer_id", transfer.TransferID), slog.String("asset_id", asset.AssetID))
	}

	asset.BranchID = transfer.ToBranchID
	asset.LastUpdatedAt = time.Now().UTC()
	asset.LastUpdatedBy = actorID
	if err := s.assetRepo.UpdateAssetInTx(ctx, tx, *asset); err != nil {
		logger.Error("Failed to move asset branch", slog.String("error", err.Error()), slog.String("asset_id", asset.AssetID))
		return err
	}
	return nil
}

// authorizeAction maps workflow actions to the capability they require.
func (s *assetService) authorizeAction(ctx context.Context, action domain.WorkflowAction, actorID string) error {
	switch action {
	case domain.ActionApprove, domain.ActionReject, domain.ActionComplete:
		return s.authz.Authorize(ctx, actorID, domain.CapApproveDocuments)
	default:
		return s.authz.Authorize(ctx, actorID, domain.CapPostJournals)
	}
}

// GetAssetByID retrieves an asset by ID.
func (s *assetService) GetAssetByID(ctx context.Context, assetID string, actorID string) (*domain.Asset, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find asset", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		}
		return nil, err
	}
	return asset, nil
}

// ListAssets retrieves a paginated list of assets.
func (s *assetService) ListAssets(ctx context.Context, params dto.ListAssetsParams, actorID string) (*dto.ListAssetsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	assets, nextToken, err := s.assetRepo.ListAssets(ctx, params.Status, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list assets", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return &dto.ListAssetsResponse{
		Assets:    dto.ToAssetResponses(assets),
		NextToken: nextToken,
	}, nil
}

// GetDisposalByID retrieves a disposal document by ID.
func (s *assetService) GetDisposalByID(ctx context.Context, disposalID string, actorID string) (*domain.AssetDisposal, error) {
	return s.assetRepo.FindDisposalByID(ctx, disposalID)
}

// GetTransferByID retrieves a transfer document by ID.
func (s *assetService) GetTransferByID(ctx context.Context, transferID string, actorID string) (*domain.AssetTransfer, error) {
	return s.assetRepo.FindTransferByID(ctx, transferID)
}

// GetDepreciationHistory retrieves recorded depreciation entries, oldest first.
func (s *assetService) GetDepreciationHistory(ctx context.Context, assetID string, actorID string) ([]domain.AssetDepreciation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.assetRepo.FindAssetByID(ctx, assetID); err != nil {
		return nil, err
	}

	entries, err := s.assetRepo.FindDepreciationsByAssetID(ctx, assetID)
	if err != nil {
		logger.Error("Failed to list depreciation entries", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		return nil, err
	}
	return entries, nil
}
