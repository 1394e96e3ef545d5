package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenDepositRequest defines the data needed to open a new deposit balance.
type OpenDepositRequest struct {
	OwnerType   domain.OwnerType `json:"ownerType" binding:"required,oneof=CUSTOMER SUPPLIER"`
	OwnerID     string           `json:"ownerID" binding:"required"`
	LinkedCoaID string           `json:"linkedCoaID" binding:"required"` // Deposit liability/advance account
}

// FundDepositRequest adds money to a deposit. Amount is an
// Indonesian-formatted string, e.g. "1.000.000,50".
type FundDepositRequest struct {
	Amount       string `json:"amount" binding:"required,idr_amount"`
	PaymentCoaID string `json:"paymentCoaID" binding:"required"` // Cash/bank account the funds moved through
	Note         string `json:"note"`
}

// ConsumeDepositRequest uses part of a deposit's remaining balance.
// SettlementCoaID is the account the consumption settles against, e.g.
// a receivable being paid down from a customer deposit.
type ConsumeDepositRequest struct {
	Amount          string `json:"amount" binding:"required,idr_amount"`
	SettlementCoaID string `json:"settlementCoaID" binding:"required"`
	Note            string `json:"note"`
}

// AdjustDepositRequest applies a signed correction; the note is mandatory.
type AdjustDepositRequest struct {
	Amount       string `json:"amount" binding:"required,idr_amount"` // May be negative, e.g. "-50.000,00"
	PaymentCoaID string `json:"paymentCoaID" binding:"required"`
	Note         string `json:"note" binding:"required"`
}

// CloseDepositRequest closes an active deposit.
type CloseDepositRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// DepositResponse defines the data returned for a deposit balance.
type DepositResponse struct {
	DepositID   string               `json:"depositID"`
	Number      string               `json:"number"`
	Owner       domain.OwnerRef      `json:"owner"`
	Total       decimal.Decimal      `json:"total"`
	Used        decimal.Decimal      `json:"used"`
	Remaining   decimal.Decimal      `json:"remaining"`
	LinkedCoaID string               `json:"linkedCoaID"`
	Status      domain.DepositStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	CreatedBy   string               `json:"createdBy"`
}

// DepositLogResponse defines the data returned for one mutation log entry.
type DepositLogResponse struct {
	LogID     string                `json:"logID"`
	Type      domain.DepositLogType `json:"type"`
	Amount    decimal.Decimal       `json:"amount"`
	Note      string                `json:"note"`
	CreatedAt time.Time             `json:"createdAt"`
	CreatedBy string                `json:"createdBy"`
}

// ListDepositsParams defines query parameters for listing deposits.
type ListDepositsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListDepositsResponse wraps a page of deposits.
type ListDepositsResponse struct {
	Deposits  []DepositResponse `json:"deposits"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToDepositResponse converts a domain.Deposit to DepositResponse DTO
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:   d.DepositID,
		Number:      d.Number,
		Owner:       d.Owner,
		Total:       d.Total,
		Used:        d.Used,
		Remaining:   d.Remaining,
		LinkedCoaID: d.LinkedCoaID,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDepositLogResponses converts a slice of domain.DepositLog to DTOs.
func ToDepositLogResponses(logs []domain.DepositLog) []DepositLogResponse {
	responses := make([]DepositLogResponse, len(logs))
	for i, entry := range logs {
		responses[i] = DepositLogResponse{
			LogID:     entry.LogID,
			Type:      entry.Type,
			Amount:    entry.Amount,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
			CreatedBy: entry.CreatedBy,
		}
	}
	return responses
}
