package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// CashBankReaderSvc defines read operations for cash/bank transactions
type CashBankReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its detail lines.
	GetTransactionByID(ctx context.Context, transactionID string, actorID string) (*domain.CashBankTransaction, error)

	// ListTransactions retrieves a paginated list of transactions.
	ListTransactions(ctx context.Context, params dto.ListCashBankParams, actorID string) (*dto.ListCashBankResponse, error)
}

// CashBankWriterSvc creates and posts cash/bank transactions.
type CashBankWriterSvc interface {
	// CreateTransaction persists a draft transaction with a generated number.
	CreateTransaction(ctx context.Context, req dto.CreateCashBankRequest, actorID string) (*domain.CashBankTransaction, error)

	// PostTransaction emits the balanced journal for a draft transaction and
	// marks it posted, in one database transaction.
	PostTransaction(ctx context.Context, transactionID string, actorID string) (*domain.CashBankTransaction, error)
}

// CashBankSvcFacade combines all cash/bank-related service interfaces
type CashBankSvcFacade interface {
	CashBankReaderSvc
	CashBankWriterSvc
}
