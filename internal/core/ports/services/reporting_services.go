package services

import (
	"context"
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// ReportingSvcFacade provides read-only financial report generation.
type ReportingSvcFacade interface {
	// TrialBalance lists every active account's running balance on its
	// normal side, with column totals.
	TrialBalance(ctx context.Context, actorID string) (*domain.TrialBalanceReport, error)

	// ProfitAndLoss aggregates revenue and expense journal movement for the
	// period [from, to].
	ProfitAndLoss(ctx context.Context, from, to time.Time, actorID string) (*domain.ProfitAndLossReport, error)
}
