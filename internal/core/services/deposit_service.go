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
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

// DepositNumberPrefix is the document number prefix for deposits.
const DepositNumberPrefix = "DP"

// depositService is the only write path to deposit balances. Every
// mutation locks the deposit row, updates the balance columns, appends
// exactly one log entry, and posts the ledger effect, all in one
// database transaction.
type depositService struct {
	depositRepo portsrepo.DepositRepositoryWithTx
	poster      portssvc.JournalPosterSvc
	authz       portssvc.AuthorizationSvcFacade
	numbering   portssvc.NumberingSvcFacade
}

// NewDepositService creates a new deposit service.
func NewDepositService(depositRepo portsrepo.DepositRepositoryWithTx, poster portssvc.JournalPosterSvc, authz portssvc.AuthorizationSvcFacade, numbering portssvc.NumberingSvcFacade) portssvc.DepositSvcFacade {
	return &depositService{
		depositRepo: depositRepo,
		poster:      poster,
		authz:       authz,
		numbering:   numbering,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

// OpenDeposit creates a new zero-balance deposit.
func (s *depositService) OpenDeposit(ctx context.Context, req dto.OpenDepositRequest, actorID string) (*domain.Deposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	number, err := s.numbering.NextNumber(ctx, DepositNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate deposit number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate deposit number: %w", err)
	}

	now := time.Now().UTC()
	deposit := domain.Deposit{
		DepositID: uuid.NewString(),
		Number:    number,
		Owner: domain.OwnerRef{
			Type: req.OwnerType,
			ID:   req.OwnerID,
		},
		Total:       decimal.Zero,
		Used:        decimal.Zero,
		Remaining:   decimal.Zero,
		LinkedCoaID: req.LinkedCoaID,
		Status:      domain.DepositActive,
		AuditFields: domain.NewAuditFields(actorID, now),
	}

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		logger.Error("Failed to save deposit", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Deposit opened", slog.String("deposit_id", deposit.DepositID), slog.String("number", number))
	return &deposit, nil
}

// Fund increases total and remaining by a positive amount and posts the
// funding journal in the same transaction.
func (s *depositService) Fund(ctx context.Context, depositID string, req dto.FundDepositRequest, actorID string) (*domain.Deposit, error) {
	amount, err := utils.ParseIDRAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: funding amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	amount = accounting.RoundAmount(amount)

	return s.mutate(ctx, depositID, actorID, func(deposit *domain.Deposit) (domain.DepositLog, domain.PostingEvent, error) {
		deposit.Total = deposit.Total.Add(amount)
		deposit.Remaining = deposit.Remaining.Add(amount)
		log := domain.DepositLog{
			Type:   domain.DepositLogAdd,
			Amount: amount,
			Note:   req.Note,
		}
		event := domain.DepositFunded{
			DepositID:    deposit.DepositID,
			Number:       deposit.Number,
			Owner:        deposit.Owner.Type,
			Amount:       amount,
			DepositCoaID: deposit.LinkedCoaID,
			PaymentCoaID: req.PaymentCoaID,
			Date:         time.Now().UTC(),
			Note:         req.Note,
		}
		return log, event, nil
	})
}

// Consume increases used and decreases remaining.
func (s *depositService) Consume(ctx context.Context, depositID string, req dto.ConsumeDepositRequest, actorID string) (*domain.Deposit, error) {
	amount, err := utils.ParseIDRAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: consumption amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	amount = accounting.RoundAmount(amount)

	return s.mutate(ctx, depositID, actorID, func(deposit *domain.Deposit) (domain.DepositLog, domain.PostingEvent, error) {
		if deposit.Remaining.LessThan(amount) {
			return domain.DepositLog{}, nil, fmt.Errorf("%w: remaining %s, requested %s",
				apperrors.ErrInsufficientBalance, deposit.Remaining.String(), amount.String())
		}
		deposit.Used = deposit.Used.Add(amount)
		deposit.Remaining = deposit.Remaining.Sub(amount)
		log := domain.DepositLog{
			Type:   domain.DepositLogUse,
			Amount: amount.Neg(),
			Note:   req.Note,
		}
		event := domain.DepositReduced{
			DepositID:    deposit.DepositID,
			Number:       deposit.Number,
			Owner:        deposit.Owner.Type,
			Amount:       amount,
			DepositCoaID: deposit.LinkedCoaID,
			PaymentCoaID: req.SettlementCoaID,
			Date:         time.Now().UTC(),
			Note:         req.Note,
		}
		return log, event, nil
	})
}

// Adjust applies a signed correction to total and remaining. The note is
// mandatory; its absence fails with apperrors.ErrMissingJustification.
func (s *depositService) Adjust(ctx context.Context, depositID string, req dto.AdjustDepositRequest, actorID string) (*domain.Deposit, error) {
	if req.Note == "" {
		return nil, fmt.Errorf("%w: adjustment note is required", apperrors.ErrMissingJustification)
	}
	amount, err := utils.ParseIDRAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: adjustment amount must be non-zero", apperrors.ErrInvalidAmount)
	}
	amount = accounting.RoundAmount(amount)

	return s.mutate(ctx, depositID, actorID, func(deposit *domain.Deposit) (domain.DepositLog, domain.PostingEvent, error) {
		newRemaining := deposit.Remaining.Add(amount)
		if newRemaining.IsNegative() {
			return domain.DepositLog{}, nil, fmt.Errorf("%w: adjustment would leave remaining at %s",
				apperrors.ErrInsufficientBalance, newRemaining.String())
		}
		deposit.Total = deposit.Total.Add(amount)
		deposit.Remaining = newRemaining

		log := domain.DepositLog{
			Type:   domain.DepositLogAdjustment,
			Amount: amount,
			Note:   req.Note,
		}
		var event domain.PostingEvent
		if amount.IsPositive() {
			event = domain.DepositFunded{
				DepositID:    deposit.DepositID,
				Number:       deposit.Number,
				Owner:        deposit.Owner.Type,
				Amount:       amount,
				DepositCoaID: deposit.LinkedCoaID,
				PaymentCoaID: req.PaymentCoaID,
				Date:         time.Now().UTC(),
				Note:         req.Note,
			}
		} else {
			event = domain.DepositReduced{
				DepositID:    deposit.DepositID,
				Number:       deposit.Number,
				Owner:        deposit.Owner.Type,
				Amount:       amount.Neg(),
				DepositCoaID: deposit.LinkedCoaID,
				PaymentCoaID: req.PaymentCoaID,
				Date:         time.Now().UTC(),
				Note:         req.Note,
			}
		}
		return log, event, nil
	})
}

// Close marks an active deposit closed. No journal is posted; the balance
// columns stay as they are for audit.
func (s *depositService) Close(ctx context.Context, depositID string, reason string, actorID string) (*domain.Deposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	tx, err := s.depositRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.depositRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	deposit, err := s.depositRepo.FindDepositByIDForUpdate(ctx, tx, depositID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock deposit for close", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		}
		return nil, err
	}
	if deposit.Status == domain.DepositClosed {
		return nil, fmt.Errorf("%w: deposit %s", apperrors.ErrAlreadyClosed, deposit.Number)
	}

	now := time.Now().UTC()
	deposit.Status = domain.DepositClosed
	deposit.LastUpdatedAt = now
	deposit.LastUpdatedBy = actorID

	if err := s.depositRepo.UpdateDepositInTx(ctx, tx, *deposit); err != nil {
		logger.Error("Failed to close deposit", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}

	entry := domain.DepositLog{
		LogID:     uuid.NewString(),
		DepositID: deposit.DepositID,
		Type:      domain.DepositLogClose,
		Amount:    decimal.Zero,
		Note:      reason,
		CreatedAt: now,
		CreatedBy: actorID,
	}
	if err := s.depositRepo.AppendLogInTx(ctx, tx, entry); err != nil {
		logger.Error("Failed to append close log", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}

	if err := s.depositRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit deposit close: %w", err)
	}

	logger.Info("Deposit closed", slog.String("deposit_id", deposit.DepositID), slog.String("number", deposit.Number))
	return deposit, nil
}

// mutate runs one balance mutation: authorize, lock, apply, verify the
// remaining = total - used invariant, append the log, post the journal,
// commit. A failure at any step rolls everything back.
func (s *depositService) mutate(ctx context.Context, depositID string, actorID string, apply func(*domain.Deposit) (domain.DepositLog, domain.PostingEvent, error)) (*domain.Deposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapMutateBalances); err != nil {
		return nil, err
	}

	tx, err := s.depositRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.depositRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	deposit, err := s.depositRepo.FindDepositByIDForUpdate(ctx, tx, depositID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock deposit", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		}
		return nil, err
	}
	if deposit.Status == domain.DepositClosed {
		return nil, fmt.Errorf("%w: deposit %s", apperrors.ErrAlreadyClosed, deposit.Number)
	}

	entry, event, err := apply(deposit)
	if err != nil {
		return nil, err
	}
	if !deposit.Reconciles() {
		return nil, fmt.Errorf("%w: deposit %s no longer reconciles after mutation", apperrors.ErrInternal, deposit.Number)
	}

	now := time.Now().UTC()
	deposit.LastUpdatedAt = now
	deposit.LastUpdatedBy = actorID

	if err := s.depositRepo.UpdateDepositInTx(ctx, tx, *deposit); err != nil {
		logger.Error("Failed to update deposit", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}

	entry.LogID = uuid.NewString()
	entry.DepositID = deposit.DepositID
	entry.CreatedAt = now
	entry.CreatedBy = actorID
	if err := s.depositRepo.AppendLogInTx(ctx, tx, entry); err != nil {
		logger.Error("Failed to append deposit log", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}

	if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
		logger.Error("Posting failed, rolling back deposit mutation", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}

	if err := s.depositRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit deposit mutation: %w", err)
	}

	logger.Info("Deposit mutated",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("log_type", string(entry.Type)),
		slog.String("amount", entry.Amount.String()),
	)
	return deposit, nil
}

// GetDepositByID retrieves a deposit by ID.
func (s *depositService) GetDepositByID(ctx context.Context, depositID string, actorID string) (*domain.Deposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find deposit", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		}
		return nil, err
	}
	return deposit, nil
}

// ListDeposits retrieves a paginated list of deposits.
func (s *depositService) ListDeposits(ctx context.Context, params dto.ListDepositsParams, actorID string) (*dto.ListDepositsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	deposits, nextToken, err := s.depositRepo.ListDeposits(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list deposits", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}

	responses := make([]dto.DepositResponse, len(deposits))
	for i := range deposits {
		responses[i] = dto.ToDepositResponse(&deposits[i])
	}
	return &dto.ListDepositsResponse{
		Deposits:  responses,
		NextToken: nextToken,
	}, nil
}

// GetDepositLogs retrieves the mutation ledger of a deposit, oldest first.
func (s *depositService) GetDepositLogs(ctx context.Context, depositID string, actorID string) ([]domain.DepositLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.depositRepo.FindDepositByID(ctx, depositID); err != nil {
		return nil, err
	}

	logs, err := s.depositRepo.FindLogsByDepositID(ctx, depositID)
	if err != nil {
		logger.Error("Failed to list deposit logs", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, err
	}
	return logs, nil
}
