package services

import (
	"context"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// VoucherReaderSvc defines read operations for voucher requests
type VoucherReaderSvc interface {
	// GetVoucherByID retrieves a voucher request by ID.
	GetVoucherByID(ctx context.Context, voucherID string, actorID string) (*domain.VoucherRequest, error)

	// ListVouchers retrieves a paginated list of voucher requests.
	ListVouchers(ctx context.Context, params dto.ListVouchersParams, actorID string) (*dto.ListVouchersResponse, error)
}

// VoucherWorkflowSvc drives voucher requests through the approval workflow.
// Transitions not present in the workflow graph fail with
// apperrors.ErrInvalidStateTransition; approval actions require the
// APPROVE_DOCUMENTS capability.
type VoucherWorkflowSvc interface {
	// CreateVoucher creates a new voucher request in draft status.
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, actorID string) (*domain.VoucherRequest, error)

	// Submit moves a draft voucher to pending approval.
	Submit(ctx context.Context, voucherID string, actorID string) (*domain.VoucherRequest, error)

	// Approve approves a pending voucher, optionally auto-creating and
	// posting the realizing cash/bank transaction in the same transaction.
	Approve(ctx context.Context, voucherID string, req dto.ApproveVoucherRequest, actorID string) (*domain.VoucherRequest, error)

	// Reject rejects a pending voucher; the reason is mandatory.
	Reject(ctx context.Context, voucherID string, reason string, actorID string) (*domain.VoucherRequest, error)

	// Cancel cancels a draft or approved voucher; the reason is mandatory.
	Cancel(ctx context.Context, voucherID string, reason string, actorID string) (*domain.VoucherRequest, error)
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWorkflowSvc
}
