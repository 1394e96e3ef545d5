package dto

import (
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one account row of the trial balance.
type TrialBalanceRowResponse struct {
	CoaID       string             `json:"coaID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
}

// TrialBalanceResponse wraps the trial balance rows and column totals.
type TrialBalanceResponse struct {
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
	Balanced    bool                      `json:"balanced"`
}

// ProfitAndLossParams defines query parameters for the profit and loss report.
type ProfitAndLossParams struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// ProfitAndLossLineResponse is the net movement of one account over the period.
type ProfitAndLossLineResponse struct {
	CoaID     string          `json:"coaID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// ProfitAndLossResponse wraps the profit and loss report for a period.
type ProfitAndLossResponse struct {
	Revenue       []ProfitAndLossLineResponse `json:"revenue"`
	Expenses      []ProfitAndLossLineResponse `json:"expenses"`
	TotalRevenue  decimal.Decimal             `json:"totalRevenue"`
	TotalExpenses decimal.Decimal             `json:"totalExpenses"`
	NetProfit     decimal.Decimal             `json:"netProfit"`
}

// ToTrialBalanceResponse converts a domain.TrialBalanceReport to its DTO.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = TrialBalanceRowResponse{
			CoaID:       row.CoaID,
			Code:        row.Code,
			Name:        row.Name,
			AccountType: row.AccountType,
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	return TrialBalanceResponse{
		Rows:        rows,
		TotalDebit:  report.TotalDebit,
		TotalCredit: report.TotalCredit,
		Balanced:    report.Balanced(),
	}
}

// ToProfitAndLossResponse converts a domain.ProfitAndLossReport to its DTO.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		Revenue:       toProfitAndLossLines(report.Revenue),
		Expenses:      toProfitAndLossLines(report.Expenses),
		TotalRevenue:  report.TotalRevenue,
		TotalExpenses: report.TotalExpenses,
		NetProfit:     report.NetProfit,
	}
}

func toProfitAndLossLines(lines []domain.ProfitAndLossLine) []ProfitAndLossLineResponse {
	responses := make([]ProfitAndLossLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ProfitAndLossLineResponse{
			CoaID:     line.CoaID,
			Code:      line.Code,
			Name:      line.Name,
			NetAmount: line.NetAmount,
		}
	}
	return responses
}
