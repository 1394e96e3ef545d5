package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// DepositReaderSvc defines read operations for deposit balances
type DepositReaderSvc interface {
	// GetDepositByID retrieves a deposit by ID.
	GetDepositByID(ctx context.Context, depositID string, actorID string) (*domain.Deposit, error)

	// ListDeposits retrieves a paginated list of deposits.
	ListDeposits(ctx context.Context, params dto.ListDepositsParams, actorID string) (*dto.ListDepositsResponse, error)

	// GetDepositLogs retrieves the mutation ledger of a deposit, oldest first.
	GetDepositLogs(ctx context.Context, depositID string, actorID string) ([]domain.DepositLog, error)
}

// DepositMutatorSvc is the only write path to deposit balances. Every
// operation runs in one database transaction that also appends the
// mutation log entry and posts the journal effect; a posting failure
// rolls the whole mutation back.
type DepositMutatorSvc interface {
	// OpenDeposit creates a new zero-balance deposit for a customer or supplier.
	OpenDeposit(ctx context.Context, req dto.OpenDepositRequest, actorID string) (*domain.Deposit, error)

	// Fund increases total and remaining by a positive amount.
	Fund(ctx context.Context, depositID string, req dto.FundDepositRequest, actorID string) (*domain.Deposit, error)

	// Consume increases used and decreases remaining; fails with
	// apperrors.ErrInsufficientBalance when the amount exceeds remaining.
	Consume(ctx context.Context, depositID string, req dto.ConsumeDepositRequest, actorID string) (*domain.Deposit, error)

	// Adjust applies a signed correction to total and remaining; the note is mandatory.
	Adjust(ctx context.Context, depositID string, req dto.AdjustDepositRequest, actorID string) (*domain.Deposit, error)

	// Close marks an active deposit closed and appends a zero-amount log entry.
	Close(ctx context.Context, depositID string, reason string, actorID string) (*domain.Deposit, error)
}

// DepositSvcFacade combines all deposit-related service interfaces
type DepositSvcFacade interface {
	DepositReaderSvc
	DepositMutatorSvc
}
