package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/middleware"
)

// reportingAccountPageSize is the page size used when walking the chart of
// accounts for the trial balance.
const reportingAccountPageSize = 200

// reportingService builds financial reports from persisted account balances
// and posted journal lines. It never writes; the journal poster is the only
// balance mutator.
type reportingService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance lists every active account's running balance on its normal
// side. A negative balance flips to the opposite column so both columns stay
// non-negative; the column totals agree whenever the ledger balances.
func (s *reportingService) TrialBalance(ctx context.Context, actorID string) (*domain.TrialBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report := &domain.TrialBalanceReport{
		Rows:        make([]domain.TrialBalanceRow, 0),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	offset := 0
	for {
		accounts, err := s.accountRepo.ListAccounts(ctx, reportingAccountPageSize, offset)
		if err != nil {
			logger.Error("Failed to list accounts for trial balance", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to list accounts for trial balance: %w", err)
		}

		for _, account := range accounts {
			if !account.IsActive && account.Balance.IsZero() {
				continue
			}
			row := trialBalanceRow(account)
			report.Rows = append(report.Rows, row)
			report.TotalDebit = report.TotalDebit.Add(row.Debit)
			report.TotalCredit = report.TotalCredit.Add(row.Credit)
		}

		if len(accounts) < reportingAccountPageSize {
			break
		}
		offset += len(accounts)
	}

	logger.Info("Trial balance generated",
		slog.Int("row_count", len(report.Rows)),
		slog.Bool("balanced", report.Balanced()))
	return report, nil
}

// trialBalanceRow places an account's balance on its normal side.
func trialBalanceRow(account domain.ChartOfAccount) domain.TrialBalanceRow {
	row := domain.TrialBalanceRow{
		CoaID:       account.CoaID,
		Code:        account.Code,
		Name:        account.Name,
		AccountType: account.AccountType,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	}

	debitNormal := account.AccountType == domain.AccountTypeAsset || account.AccountType == domain.AccountTypeExpense
	balance := account.Balance
	if balance.IsNegative() {
		debitNormal = !debitNormal
		balance = balance.Neg()
	}
	if debitNormal {
		row.Debit = balance
	} else {
		row.Credit = balance
	}
	return row
}

// ProfitAndLoss aggregates revenue and expense journal movement for the
// period [from, to]. Revenue nets credits minus debits, expenses net debits
// minus credits, and net profit is total revenue minus total expenses.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time, actorID string) (*domain.ProfitAndLossReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines, err := s.journalRepo.FindLinesByPeriod(ctx, from, to)
	if err != nil {
		logger.Error("Failed to load journal lines for profit and loss",
			slog.String("error", err.Error()),
			slog.Time("from", from),
			slog.Time("to", to))
		return nil, fmt.Errorf("failed to load journal lines for profit and loss: %w", err)
	}

	// Net movement per account touched in the period: debits positive,
	// credits negative.
	netByAccount := make(map[string]decimal.Decimal)
	for _, line := range lines {
		netByAccount[line.CoaID] = netByAccount[line.CoaID].Add(line.Debit).Sub(line.Credit)
	}

	coaIDs := make([]string, 0, len(netByAccount))
	for coaID := range netByAccount {
		coaIDs = append(coaIDs, coaID)
	}

	accounts := map[string]domain.ChartOfAccount{}
	if len(coaIDs) > 0 {
		accounts, err = s.accountRepo.FindAccountsByIDs(ctx, coaIDs)
		if err != nil {
			logger.Error("Failed to load accounts for profit and loss", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load accounts for profit and loss: %w", err)
		}
	}

	report := &domain.ProfitAndLossReport{
		Revenue:       make([]domain.ProfitAndLossLine, 0),
		Expenses:      make([]domain.ProfitAndLossLine, 0),
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for coaID, net := range netByAccount {
		account, ok := accounts[coaID]
		if !ok {
			continue
		}
		switch account.AccountType {
		case domain.AccountTypeRevenue:
			line := domain.ProfitAndLossLine{
				CoaID:     account.CoaID,
				Code:      account.Code,
				Name:      account.Name,
				NetAmount: net.Neg(),
			}
			report.Revenue = append(report.Revenue, line)
			report.TotalRevenue = report.TotalRevenue.Add(line.NetAmount)
		case domain.AccountTypeExpense:
			line := domain.ProfitAndLossLine{
				CoaID:     account.CoaID,
				Code:      account.Code,
				Name:      account.Name,
				NetAmount: net,
			}
			report.Expenses = append(report.Expenses, line)
			report.TotalExpenses = report.TotalExpenses.Add(line.NetAmount)
		}
	}

	sort.Slice(report.Revenue, func(i, j int) bool { return report.Revenue[i].Code < report.Revenue[j].Code })
	sort.Slice(report.Expenses, func(i, j int) bool { return report.Expenses[i].Code < report.Expenses[j].Code })

	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)

	logger.Info("Profit and loss generated",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}
