package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// VoucherReader defines read operations for voucher requests
type VoucherReader interface {
	// FindVoucherByID retrieves a specific voucher request.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.VoucherRequest, error)

	// ListVouchers retrieves a paginated list of voucher requests, optionally filtered by status.
	ListVouchers(ctx context.Context, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.VoucherRequest, *string, error)

	// NumberExists reports whether a voucher number is already taken.
	NumberExists(ctx context.Context, number string) (bool, error)
}

// VoucherWriter defines write operations for voucher requests
type VoucherWriter interface {
	// SaveVoucher persists a new voucher request in draft status.
	SaveVoucher(ctx context.Context, voucher domain.VoucherRequest) error
}

// VoucherTransactionSupport defines operations used inside workflow transitions
type VoucherTransactionSupport interface {
	// FindVoucherByIDForUpdate selects the voucher row and locks it for update.
	FindVoucherByIDForUpdate(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.VoucherRequest, error)

	// UpdateVoucherInTx writes the voucher's status and approval fields inside the transaction.
	UpdateVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.VoucherRequest) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
	VoucherTransactionSupport
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction capabilities
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
