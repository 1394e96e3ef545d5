package dto

import (
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// CreateAccountRequest defines the payload for creating a chart of account entry.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required"`
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID *string            `json:"parentAccountID"`
	Description     string             `json:"description"`
}

// UpdateAccountRequest defines the fields that may change after creation.
// Code and account type are immutable once journal lines reference the account.
type UpdateAccountRequest struct {
	Name            *string `json:"name"`
	ParentAccountID *string `json:"parentAccountID"`
	Description     *string `json:"description"`
}

// AccountResponse defines the data returned for a chart of account entry.
type AccountResponse struct {
	CoaID           string             `json:"coaID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	ParentAccountID *string            `json:"parentAccountID,omitempty"`
	Description     string             `json:"description,omitempty"`
	IsActive        bool               `json:"isActive"`
	Balance         string             `json:"balance"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.ChartOfAccount) AccountResponse {
	return AccountResponse{
		CoaID:           a.CoaID,
		Code:            a.Code,
		Name:            a.Name,
		AccountType:     a.AccountType,
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		Balance:         a.Balance.String(),
		CreatedAt:       a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.ChartOfAccount) []AccountResponse {
	rs := make([]AccountResponse, len(accounts))
	for i := range accounts {
		rs[i] = ToAccountResponse(&accounts[i])
	}
	return rs
}
