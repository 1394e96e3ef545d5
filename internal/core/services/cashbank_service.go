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

// CashBankNumberPrefix is the document number prefix for cash/bank transactions.
const CashBankNumberPrefix = "CB"

const dateLayout = "2006-01-02"

// cashBankService creates and posts cash/bank transactions.
type cashBankService struct {
	cashBankRepo portsrepo.CashBankRepositoryWithTx
	poster       portssvc.JournalPosterSvc
	authz        portssvc.AuthorizationSvcFacade
	numbering    portssvc.NumberingSvcFacade
}

// NewCashBankService creates a new cash/bank transaction service.
func NewCashBankService(cashBankRepo portsrepo.CashBankRepositoryWithTx, poster portssvc.JournalPosterSvc, authz portssvc.AuthorizationSvcFacade, numbering portssvc.NumberingSvcFacade) portssvc.CashBankSvcFacade {
	return &cashBankService{
		cashBankRepo: cashBankRepo,
		poster:       poster,
		authz:        authz,
		numbering:    numbering,
	}
}

var _ portssvc.CashBankSvcFacade = (*cashBankService)(nil)

// CreateTransaction persists a draft transaction. When a breakdown is
// present its detail total must equal the transaction amount exactly.
func (s *cashBankService) CreateTransaction(ctx context.Context, req dto.CreateCashBankRequest, actorID string) (*domain.CashBankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	amount, err := utils.ParseIDRAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	amount = accounting.RoundAmount(amount)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	if len(req.Details) == 0 && (req.OffsetCoaID == nil || *req.OffsetCoaID == "") {
		return nil, fmt.Errorf("%w: either an offset account or a detail breakdown is required", apperrors.ErrValidation)
	}

	details := make([]domain.CashBankDetail, len(req.Details))
	for i, d := range req.Details {
		detailAmount, err := utils.ParseIDRAmount(d.Amount)
		if err != nil {
			return nil, err
		}
		details[i] = domain.CashBankDetail{
			DetailID:    uuid.NewString(),
			CoaID:       d.CoaID,
			Amount:      accounting.RoundAmount(detailAmount),
			Description: d.Description,
		}
	}

	trx := domain.CashBankTransaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Date:          date,
		Amount:        amount,
		Description:   req.Description,
		AccountCoaID:  req.AccountCoaID,
		OffsetCoaID:   req.OffsetCoaID,
		Details:       details,
		Status:        domain.CashBankDraft,
		AuditFields:   domain.NewAuditFields(actorID, time.Now().UTC()),
	}
	if len(details) > 0 && !trx.DetailTotal().Equal(amount) {
		return nil, fmt.Errorf("%w: detail total %s does not equal amount %s",
			apperrors.ErrValidation, trx.DetailTotal().String(), amount.String())
	}

	number, err := s.numbering.NextNumber(ctx, CashBankNumberPrefix)
	if err != nil {
		logger.Error("Failed to generate transaction number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate transaction number: %w", err)
	}
	trx.Number = number

	if err := s.cashBankRepo.SaveTransaction(ctx, trx); err != nil {
		logger.Error("Failed to save cash/bank transaction", slog.String("error", err.Error()), slog.String("number", number))
		return nil, err
	}

	logger.Info("Cash/bank transaction created", slog.String("transaction_id", trx.TransactionID), slog.String("number", number))
	return &trx, nil
}

// PostTransaction emits the balanced journal for a draft transaction and
// marks it posted in one database transaction.
func (s *cashBankService) PostTransaction(ctx context.Context, transactionID string, actorID string) (*domain.CashBankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	tx, err := s.cashBankRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.cashBankRepo.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	trx, err := s.cashBankRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to lock transaction for posting", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if trx.Status != domain.CashBankDraft {
		return nil, fmt.Errorf("%w: transaction %s is already %s", apperrors.ErrConflict, trx.Number, trx.Status)
	}

	event := domain.CashBankPosted{
		TransactionID: trx.TransactionID,
		Number:        trx.Number,
		Type:          trx.Type,
		Amount:        trx.Amount,
		AccountCoaID:  trx.AccountCoaID,
		OffsetCoaID:   trx.OffsetCoaID,
		Details:       trx.Details,
		Date:          trx.Date,
		Description:   trx.Description,
	}
	if _, err := s.poster.PostInTx(ctx, tx, event, actorID); err != nil {
		logger.Error("Posting failed, transaction stays draft", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	if err := s.cashBankRepo.UpdateTransactionStatusInTx(ctx, tx, trx.TransactionID, domain.CashBankPostedStatus, actorID); err != nil {
		logger.Error("Failed to mark transaction posted", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	if err := s.cashBankRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit posting: %w", err)
	}

	trx.Status = domain.CashBankPostedStatus
	logger.Info("Cash/bank transaction posted", slog.String("transaction_id", trx.TransactionID), slog.String("number", trx.Number))
	return trx, nil
}

// GetTransactionByID retrieves a transaction with its detail lines.
func (s *cashBankService) GetTransactionByID(ctx context.Context, transactionID string, actorID string) (*domain.CashBankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	trx, err := s.cashBankRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return trx, nil
}

// ListTransactions retrieves a paginated list of transactions.
func (s *cashBankService) ListTransactions(ctx context.Context, params dto.ListCashBankParams, actorID string) (*dto.ListCashBankResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, nextToken, err := s.cashBankRepo.ListTransactions(ctx, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListCashBankResponse{
		Transactions: dto.ToCashBankResponses(txns),
		NextToken:    nextToken,
	}, nil
}
