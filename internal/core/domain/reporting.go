package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account's running balance placed on its normal side.
// Debit-normal accounts (asset, expense) report positive balances in the
// Debit column; credit-normal accounts in the Credit column. A negative
// balance flips to the opposite column so both stay non-negative.
type TrialBalanceRow struct {
	CoaID       string          `json:"coaID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every active account's balance with column totals.
// TotalDebit equals TotalCredit whenever the ledger itself balances.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// Balanced reports whether the debit and credit columns agree.
func (r TrialBalanceReport) Balanced() bool {
	return r.TotalDebit.Equal(r.TotalCredit)
}

// ProfitAndLossLine is the net movement of one revenue or expense account
// over the report period. Revenue nets credits minus debits; expenses net
// debits minus credits, so both are normally positive.
type ProfitAndLossLine struct {
	CoaID     string          `json:"coaID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// ProfitAndLossReport aggregates revenue and expense movement for a period.
type ProfitAndLossReport struct {
	Revenue       []ProfitAndLossLine `json:"revenue"`
	Expenses      []ProfitAndLossLine `json:"expenses"`
	TotalRevenue  decimal.Decimal     `json:"totalRevenue"`
	TotalExpenses decimal.Decimal     `json:"totalExpenses"`
	NetProfit     decimal.Decimal     `json:"netProfit"`
}
