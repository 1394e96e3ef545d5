package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.ReportingSvcFacade
	actorID         string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockJournalRepo)
	suite.actorID = uuid.NewString()
}

func reportAccount(code string, accountType domain.AccountType, balance string) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		CoaID:       uuid.NewString(),
		Code:        code,
		Name:        "Account " + code,
		AccountType: accountType,
		IsActive:    true,
		Balance:     decimal.RequireFromString(balance),
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ColumnsBalance() {
	accounts := []domain.ChartOfAccount{
		reportAccount("1110.01", domain.AccountTypeAsset, "750000"),
		reportAccount("2110.01", domain.AccountTypeLiability, "500000"),
		reportAccount("3110.01", domain.AccountTypeEquity, "250000"),
	}
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.AnythingOfType("int"), 0).Return(accounts, nil).Once()

	report, err := suite.service.TrialBalance(context.Background(), suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 3)
	suite.True(report.Rows[0].Debit.Equal(decimal.RequireFromString("750000")))
	suite.True(report.Rows[0].Credit.IsZero())
	suite.True(report.Rows[1].Credit.Equal(decimal.RequireFromString("500000")))
	suite.True(report.TotalDebit.Equal(decimal.RequireFromString("750000")))
	suite.True(report.TotalCredit.Equal(decimal.RequireFromString("750000")))
	suite.True(report.Balanced())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_NegativeBalanceFlipsColumn() {
	// An overdrawn bank account (debit-normal, negative balance) reports in
	// the credit column.
	accounts := []domain.ChartOfAccount{
		reportAccount("1110.02", domain.AccountTypeAsset, "-125000"),
	}
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.AnythingOfType("int"), 0).Return(accounts, nil).Once()

	report, err := suite.service.TrialBalance(context.Background(), suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].Debit.IsZero())
	suite.True(report.Rows[0].Credit.Equal(decimal.RequireFromString("125000")))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_SkipsSettledInactiveAccounts() {
	settled := reportAccount("1190.99", domain.AccountTypeAsset, "0")
	settled.IsActive = false
	accounts := []domain.ChartOfAccount{
		settled,
		reportAccount("1110.01", domain.AccountTypeAsset, "100000"),
	}
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.AnythingOfType("int"), 0).Return(accounts, nil).Once()

	report, err := suite.service.TrialBalance(context.Background(), suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal("1110.01", report.Rows[0].Code)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RepoError() {
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, mock.AnythingOfType("int"), 0).Return(nil, errors.New("db down")).Once()

	report, err := suite.service.TrialBalance(context.Background(), suite.actorID)

	suite.Require().Error(err)
	suite.Nil(report)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_AggregatesPeriodMovement() {
	revenue := reportAccount("4110.01", domain.AccountTypeRevenue, "0")
	expense := reportAccount("6110.01", domain.AccountTypeExpense, "0")
	cash := reportAccount("1110.01", domain.AccountTypeAsset, "0")

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	lines := []domain.JournalLine{
		{CoaID: cash.CoaID, Debit: amount("1000000"), Credit: decimal.Zero},
		{CoaID: revenue.CoaID, Debit: decimal.Zero, Credit: amount("1000000")},
		{CoaID: expense.CoaID, Debit: amount("400000"), Credit: decimal.Zero},
		{CoaID: cash.CoaID, Debit: decimal.Zero, Credit: amount("400000")},
		// A partial revenue reversal nets against the period's revenue.
		{CoaID: revenue.CoaID, Debit: amount("100000"), Credit: decimal.Zero},
		{CoaID: cash.CoaID, Debit: decimal.Zero, Credit: amount("100000")},
	}
	suite.mockJournalRepo.On("FindLinesByPeriod", mock.Anything, from, to).Return(lines, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.ChartOfAccount{
		revenue.CoaID: revenue,
		expense.CoaID: expense,
		cash.CoaID:    cash,
	}, nil).Once()

	report, err := suite.service.ProfitAndLoss(context.Background(), from, to, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 1)
	suite.Require().Len(report.Expenses, 1)
	suite.True(report.Revenue[0].NetAmount.Equal(decimal.RequireFromString("900000")))
	suite.True(report.Expenses[0].NetAmount.Equal(decimal.RequireFromString("400000")))
	suite.True(report.TotalRevenue.Equal(decimal.RequireFromString("900000")))
	suite.True(report.TotalExpenses.Equal(decimal.RequireFromString("400000")))
	suite.True(report.NetProfit.Equal(decimal.RequireFromString("500000")))
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_EmptyPeriod() {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	suite.mockJournalRepo.On("FindLinesByPeriod", mock.Anything, from, to).Return([]domain.JournalLine{}, nil).Once()

	report, err := suite.service.ProfitAndLoss(context.Background(), from, to, suite.actorID)

	suite.Require().NoError(err)
	suite.Empty(report.Revenue)
	suite.Empty(report.Expenses)
	suite.True(report.NetProfit.IsZero())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs")
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
