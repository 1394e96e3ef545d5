package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashBankDetailRequest is one breakdown line of a cash/bank transaction.
// A negative amount flips the line to the opposite posting side.
type CashBankDetailRequest struct {
	CoaID       string `json:"coaID" binding:"required"`
	Amount      string `json:"amount" binding:"required,idr_amount"`
	Description string `json:"description"`
}

// CreateCashBankRequest defines the data needed to create a cash/bank
// transaction. Either an offset account or a detail breakdown must be
// given; when details are present their total must equal the amount.
type CreateCashBankRequest struct {
	Type         domain.CashBankType     `json:"type" binding:"required,oneof=CASH_IN CASH_OUT BANK_IN BANK_OUT"`
	Date         string                  `json:"date" binding:"required"` // YYYY-MM-DD
	Amount       string                  `json:"amount" binding:"required,idr_amount"`
	AccountCoaID string                  `json:"accountCoaID" binding:"required"`
	OffsetCoaID  *string                 `json:"offsetCoaID"`
	Description  string                  `json:"description"`
	Details      []CashBankDetailRequest `json:"details" binding:"omitempty,dive"`
}

// CashBankDetailResponse is one breakdown line of a stored transaction.
type CashBankDetailResponse struct {
	DetailID    string          `json:"detailID"`
	CoaID       string          `json:"coaID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// CashBankResponse defines the data returned for a cash/bank transaction.
type CashBankResponse struct {
	TransactionID string                   `json:"transactionID"`
	Number        string                   `json:"number"`
	Type          domain.CashBankType      `json:"type"`
	Date          time.Time                `json:"date"`
	Amount        decimal.Decimal          `json:"amount"`
	AccountCoaID  string                   `json:"accountCoaID"`
	OffsetCoaID   *string                  `json:"offsetCoaID,omitempty"`
	Description   string                   `json:"description,omitempty"`
	Status        domain.CashBankStatus    `json:"status"`
	Details       []CashBankDetailResponse `json:"details,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ListCashBankParams defines query parameters for listing cash/bank transactions.
type ListCashBankParams struct {
	Type      *domain.CashBankType   `form:"type"`
	Status    *domain.CashBankStatus `form:"status"`
	Limit     int                    `form:"limit,default=20"`
	NextToken *string                `form:"nextToken"`
}

// ListCashBankResponse wraps a page of cash/bank transactions.
type ListCashBankResponse struct {
	Transactions []CashBankResponse `json:"transactions"`
	NextToken    *string            `json:"nextToken,omitempty"`
}

// ToCashBankResponse converts a domain.CashBankTransaction to its DTO.
func ToCashBankResponse(t *domain.CashBankTransaction) CashBankResponse {
	details := make([]CashBankDetailResponse, 0, len(t.Details))
	for _, d := range t.Details {
		details = append(details, CashBankDetailResponse{
			DetailID:    d.DetailID,
			CoaID:       d.CoaID,
			Amount:      d.Amount,
			Description: d.Description,
		})
	}
	return CashBankResponse{
		TransactionID: t.TransactionID,
		Number:        t.Number,
		Type:          t.Type,
		Date:          t.Date,
		Amount:        t.Amount,
		AccountCoaID:  t.AccountCoaID,
		OffsetCoaID:   t.OffsetCoaID,
		Description:   t.Description,
		Status:        t.Status,
		Details:       details,
		CreatedAt:     t.CreatedAt,
	}
}

// ToCashBankResponses converts a slice of domain transactions.
func ToCashBankResponses(txns []domain.CashBankTransaction) []CashBankResponse {
	out := make([]CashBankResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToCashBankResponse(&txns[i]))
	}
	return out
}
