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
)

// accountService manages the chart of accounts. Balances are never written
// here; only the journal poster mutates them.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	authz       portssvc.AuthorizationSvcFacade
}

// NewAccountService creates a new chart of accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, authz portssvc.AuthorizationSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		authz:       authz,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with a zero opening balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
	}

	if req.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	account := domain.ChartOfAccount{
		CoaID:           uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		ParentAccountID: req.ParentAccountID,
		Description:     req.Description,
		IsActive:        true,
		Balance:         decimal.Zero,
		AuditFields:     domain.NewAuditFields(actorID, now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, err
	}

	logger.Info("Account created", slog.String("coa_id", account.CoaID), slog.String("code", account.Code))
	return &account, nil
}

// UpdateAccount updates the mutable details of an account.
func (s *accountService) UpdateAccount(ctx context.Context, coaID string, req dto.UpdateAccountRequest, actorID string) (*domain.ChartOfAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, coaID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = req.ParentAccountID
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = actorID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("coa_id", coaID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("coa_id", coaID))
	return account, nil
}

// DeactivateAccount marks an account inactive. Postings to inactive accounts
// are rejected by the journal poster.
func (s *accountService) DeactivateAccount(ctx context.Context, coaID string, actorID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authz.Authorize(ctx, actorID, domain.CapPostJournals); err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, coaID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrConflict, coaID)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, coaID, actorID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("coa_id", coaID))
		return err
	}

	logger.Info("Account deactivated", slog.String("coa_id", coaID))
	return nil
}

// GetAccountByID retrieves an account by its identifier.
func (s *accountService) GetAccountByID(ctx context.Context, coaID string, actorID string) (*domain.ChartOfAccount, error) {
	return s.accountRepo.FindAccountByID(ctx, coaID)
}

// GetAccountByCode resolves an account code to the account.
func (s *accountService) GetAccountByCode(ctx context.Context, code string, actorID string) (*domain.ChartOfAccount, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

// ListAccounts retrieves a page of accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams, actorID string) (*dto.ListAccountsResponse, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return &dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(accounts)}, nil
}
