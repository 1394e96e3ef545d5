package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account by its identifier.
	GetAccountByID(ctx context.Context, coaID string, actorID string) (*domain.ChartOfAccount, error)

	// GetAccountByCode resolves an account code (e.g. "1210.01") to the account.
	GetAccountByCode(ctx context.Context, code string, actorID string) (*domain.ChartOfAccount, error)

	// ListAccounts retrieves a paginated list of accounts ordered by code.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams, actorID string) (*dto.ListAccountsResponse, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount persists a new account; duplicate codes fail with apperrors.ErrDuplicate.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.ChartOfAccount, error)

	// UpdateAccount updates an account's mutable details.
	UpdateAccount(ctx context.Context, coaID string, req dto.UpdateAccountRequest, actorID string) (*domain.ChartOfAccount, error)

	// DeactivateAccount marks an account inactive; its balance and history are retained.
	DeactivateAccount(ctx context.Context, coaID string, actorID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
