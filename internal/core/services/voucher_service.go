package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/middleware"
	"github.com/nusankara/erp_backoffice/internal/utils"
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

// VoucherNumberPrefix is the document number prefix for voucher requests.
const VoucherNumberPrefix = "VR"

// voucherService drives voucher requests through the shared approval
// workflow. Approval can realize the voucher as a posted cash/bank
// transaction inside the same database transaction.
type voucherService struct {
	voucherRepo  portsrepo.VoucherRepositoryWithTx
	cashBankRepo portsrepo.CashBankRepositoryFacade
	poster       portssvc.JournalPosterSvc
	authz        portssvc.AuthorizationSvcFacade
	numbering    portssvc.NumberingSvcFacade
	notifier     portssvc.NotifierSvc
}

// NewVoucherService creates a new voucher workflow service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryWithTx, cashBankRepo portsrepo.CashBankRepositoryFacade, poster portssvc.JournalPosterSvc, authz portssvc.AuthorizationSvcFacade, numbering portssvc.NumberingSvcFacade, notifier portssvc.NotifierSvc) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:  voucherRepo,
		cashBankRepo: cashBankRepo,
		poster:       poster,
		authz:        authz,
		numbering:    numbering,
		notifier:     notifier,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher creates a new voucher request in draft status.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, actorID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	amount, err := utils.ParseIDRAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: voucher amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	amount = accounting.RoundAmount(amount)

	number, err := s.numbering.NextNumber(ctx, VoucherNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate voucher number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate voucher number: %w", err)
	}

	voucher := domain.VoucherRequest{
		VoucherID:    uuid.NewString(),
		Number:       number,
		Type:         req.Type,
		Amount:       amount,
		Description:  req.Description,
		Status:       domain.StatusDraft,
		RequestedBy:  actorID,
		AccountCoaID: req.AccountCoaID,
		OffsetCoaID:  req.OffsetCoaID,
		AuditFields:  domain.NewAuditFields(actorID, time.Now().UTC()),
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Voucher created", slog.String("voucher_id", voucher.VoucherID), slog.String("number", number))
	return &voucher, nil
}

// Submit moves a draft voucher to pending approval.
func (s *voucherService) Submit(ctx context.Context, voucherID string, actorID string) (*domain.VoucherRequest, error) {
	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}
	return s.transition(ctx, voucherID, domain.ActionSubmit, actorID, func(v *domain.VoucherRequest) error {
		return nil
	})
}

// Approve approves a pending voucher, optionally realizing it as a posted
// cash/bank transaction in the same database transaction.
func (s *voucherService) Approve(ctx context.Context, voucherID string, req dto.ApproveVoucherRequest, actorID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapApproveDocuments); err != nil {
		return nil, err
	}

	return s.transitionInTx(ctx, voucherID, domain.ActionApprove, actorID, func(tx pgx.Tx, v *domain.VoucherRequest) error {
		now := time.Now().UTC()
		v.ApprovedBy = &actorID
		v.ApprovedAt = &now
		v.ApprovalNotes = req.Notes

		if !req.AutoCreateTransaction {
			return nil
		}

		accountCoa := v.AccountCoaID
		if req.AccountCoaID != nil {
			accountCoa = req.AccountCoaID
		}
		offsetCoa := v.OffsetCoaID
		if req.OffsetCoaID != nil {
			offsetCoa = req.OffsetCoaID
		}
		if accountCoa == nil || *accountCoa == "" {
			return fmt.Errorf("%w: cash/bank account for voucher realization", apperrors.ErrMissingAccountMapping)
		}
		if offsetCoa == nil || *offsetCoa == "" {
			return fmt.Errorf("%w: offset account for voucher realization", apperrors.ErrMissingAccountMapping)
		}

		number, err := s.numbering.NextNumber(ctx, CashBankNumberPrefix)
		if err != nil {
			return fmt.Errorf("failed to generate transaction number: %w", err)
		}

		trxType := domain.CashOut
		if v.Type == domain.VoucherReceipt {
			trxType = domain.CashIn
		}
		trx := domain.CashBankTransaction{
			TransactionID: uuid.NewString(),
			Number:        number,
			Type:          trxType,
			Date:          now,
			Amount:        v.Amount,
			Description:   fmt.Sprintf("Realization of voucher %s: %s", v.Number, v.Description),
			AccountCoaID:  *accountCoa,
			OffsetCoaID:   offsetCoa,
			Status:        domain.CashBankPostedStatus,
			AuditFields:   domain.NewAuditFields(actorID, now),
		}

		if err := s.cashBankRepo.SaveTransactionInTx(ctx, tx, trx); err != nil {
			logger.Error("Failed to save realizing transaction", slog.String("error", err.Error()), slog.String("voucher_id", v.VoucherID))
			return err
		}

		event := domain.CashBankPosted{
			TransactionID: trx.TransactionID,
			Number:        trx.Number,
			Type:          trx.Type,
			Amount:        trx.Amount,
			AccountCoaID:  trx.AccountCoaID,
			OffsetCoaID:   trx.OffsetCoaID,
			Date:          trx.Date,
			Description:   trx.Description,
		}
		if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
			logger.Error("Posting failed, voucher approval rolled back", slog.String("error", err.Error()), slog.String("voucher_id", v.VoucherID))
			return err
		}

		v.TransactionID = &trx.TransactionID
		return nil
	})
}

// Reject rejects a pending voucher; the reason is mandatory.
func (s *voucherService) Reject(ctx context.Context, voucherID string, reason string, actorID string) (*domain.VoucherRequest, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrMissingJustification)
	}
	if err := s.authz.Authorize(ctx, actorID, domain.CapApproveDocuments); err != nil {
		return nil, err
	}
	return s.transition(ctx, voucherID, domain.ActionReject, actorID, func(v *domain.VoucherRequest) error {
		now := time.Now().UTC()
		v.ApprovedBy = &actorID
		v.ApprovedAt = &now
		v.ApprovalNotes = reason
		return nil
	})
}

// Cancel cancels a draft or approved voucher; the reason is mandatory.
func (s *voucherService) Cancel(ctx context.Context, voucherID string, reason string, actorID string) (*domain.VoucherRequest, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", apperrors.ErrMissingJustification)
	}
	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}
	return s.transition(ctx, voucherID, domain.ActionCancel, actorID, func(v *domain.VoucherRequest) error {
		v.ApprovalNotes = reason
		return nil
	})
}

// transition runs a workflow action without extra in-transaction work.
func (s *voucherService) transition(ctx context.Context, voucherID string, action domain.WorkflowAction, actorID string, mutate func(*domain.VoucherRequest) error) (*domain.VoucherRequest, error) {
	return s.transitionInTx(ctx, voucherID, action, actorID, func(_ pgx.Tx, v *domain.VoucherRequest) error {
		return mutate(v)
	})
}

// transitionInTx locks the voucher, validates the workflow edge, applies
// the mutation, persists, commits, and notifies. Terminal states have no
// outgoing edges, so a second approval fails the edge check.
func (s *voucherService) transitionInTx(ctx context.Context, voucherID string, action domain.WorkflowAction, actorID string, mutate func(pgx.Tx, *domain.VoucherRequest) error) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.voucherRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.voucherRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	voucher, err := s.voucherRepo.FindVoucherByIDForUpdate(ctx, tx, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		}
		return nil, err
	}

	next, ok := domain.NextStatus(voucher.Status, action)
	if !ok {
		return nil, fmt.Errorf("%w: cannot %s a voucher in status %s",
			apperrors.ErrInvalidStateTransition, action, voucher.Status)
	}
	voucher.Status = next

	if err := mutate(tx, voucher); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = actorID

	if err := s.voucherRepo.UpdateVoucherInTx(ctx, tx, *voucher); err != nil {
		logger.Error("Failed to update voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		return nil, err
	}

	if err := s.voucherRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit voucher transition: %w", err)
	}

	logger.Info("Voucher transitioned",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("action", string(action)),
		slog.String("status", string(voucher.Status)),
	)
	if s.notifier != nil {
		s.notifier.DocumentTransitioned(ctx, "voucher", voucher.VoucherID, action, actorID)
	}
	return voucher, nil
}

// GetVoucherByID retrieves a voucher request by ID.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string, actorID string) (*domain.VoucherRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		}
		return nil, err
	}
	return voucher, nil
}

// ListVouchers retrieves a paginated list of voucher requests.
func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams, actorID string) (*dto.ListVouchersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, params.Status, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list vouchers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}

	responses := make([]dto.VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = dto.ToVoucherResponse(&vouchers[i])
	}
	return &dto.ListVouchersResponse{
		Vouchers:  responses,
		NextToken: nextToken,
	}, nil
}
