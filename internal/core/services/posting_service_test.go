package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/core/services"
	"github.com/nusankara/erp_backoffice/internal/utils/accounting"
)

// --- Mock JournalRepository (based on JournalRepositoryWithTx) ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) FindLinesByReference(ctx context.Context, reference string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, reference)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	return lines, args.Error(1)
}

func (m *MockJournalRepository) FindLinesBySource(ctx context.Context, sourceType domain.SourceType, sourceID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, sourceType, sourceID)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	return lines, args.Error(1)
}

func (m *MockJournalRepository) ListReferences(ctx context.Context, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return lines, token, args.Error(2)
}

func (m *MockJournalRepository) FindLinesByPeriod(ctx context.Context, from, to time.Time) ([]domain.JournalLine, error) {
	args := m.Called(ctx, from, to)
	var lines []domain.JournalLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.JournalLine)
	}
	return lines, args.Error(1)
}

func (m *MockJournalRepository) InsertLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	args := m.Called(ctx, tx, lines)
	return args.Error(0)
}

// --- Mock AccountRepository (based on AccountRepositoryFacade) ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, coaID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, coaID)
	var account *domain.ChartOfAccount
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.ChartOfAccount)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, code)
	var account *domain.ChartOfAccount
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.ChartOfAccount)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, coaIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, coaIDs)
	var accounts map[string]domain.ChartOfAccount
	if args.Get(0) != nil {
		accounts = args.Get(0).(map[string]domain.ChartOfAccount)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx, limit, offset)
	var accounts []domain.ChartOfAccount
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.ChartOfAccount)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, coaID string, userID string, now time.Time) error {
	args := m.Called(ctx, coaID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, coaIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, tx, coaIDs)
	var accounts map[string]domain.ChartOfAccount
	if args.Get(0) != nil {
		accounts = args.Get(0).(map[string]domain.ChartOfAccount)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
	actorID         string
	inserted        []domain.JournalLine
	balanceChanges  map[string]decimal.Decimal
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo, nil)
	suite.actorID = uuid.NewString()
	suite.inserted = nil
	suite.balanceChanges = nil
}

// armAccounts makes every account in the map lockable and captures the
// inserted lines and balance deltas for assertions.
func (suite *JournalServiceTestSuite) armAccounts(accounts map[string]domain.ChartOfAccount) {
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).Return(accounts, nil).Once()
	suite.mockJournalRepo.On("InsertLinesInTx", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			suite.inserted = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, suite.actorID, mock.Anything).
		Run(func(args mock.Arguments) {
			suite.balanceChanges = args.Get(2).(map[string]decimal.Decimal)
		}).Return(nil).Once()
}

func account(coaID string, accountType domain.AccountType) domain.ChartOfAccount {
	return domain.ChartOfAccount{CoaID: coaID, AccountType: accountType}
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sideOf returns (debit, credit) of the captured line for one account.
func (suite *JournalServiceTestSuite) sideOf(coaID string) (decimal.Decimal, decimal.Decimal) {
	for _, line := range suite.inserted {
		if line.CoaID == coaID {
			return line.Debit, line.Credit
		}
	}
	suite.FailNowf("line not found", "no journal line for account %s", coaID)
	return decimal.Zero, decimal.Zero
}

// --- Deposit event Tests ---
func (suite *JournalServiceTestSuite) TestPostInTx_SupplierDepositFunded() {
	ctx := context.Background()
	depositCoa := uuid.NewString()
	paymentCoa := uuid.NewString()
	event := domain.DepositFunded{
		DepositID:    uuid.NewString(),
		Number:       "DP-20250101-0001",
		Owner:        domain.OwnerSupplier,
		Amount:       amount("1000000.50"),
		DepositCoaID: depositCoa,
		PaymentCoaID: paymentCoa,
		Date:         time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		depositCoa: account(depositCoa, domain.AccountTypeAsset),
		paymentCoa: account(paymentCoa, domain.AccountTypeAsset),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	suite.Len(lines, 2)
	suite.NoError(accounting.ValidateBalanced(suite.inserted))

	// A supplier deposit is an advance: Dr advance, Cr cash/bank.
	dr, _ := suite.sideOf(depositCoa)
	_, cr := suite.sideOf(paymentCoa)
	suite.True(dr.Equal(amount("1000000.50")))
	suite.True(cr.Equal(amount("1000000.50")))

	// Both are asset accounts, so the deltas mirror the sides.
	suite.True(suite.balanceChanges[depositCoa].Equal(amount("1000000.50")))
	suite.True(suite.balanceChanges[paymentCoa].Equal(amount("-1000000.50")))
}

func (suite *JournalServiceTestSuite) TestPostInTx_CustomerDepositFunded() {
	ctx := context.Background()
	depositCoa := uuid.NewString()
	paymentCoa := uuid.NewString()
	event := domain.DepositFunded{
		DepositID:    uuid.NewString(),
		Number:       "DP-20250101-0002",
		Owner:        domain.OwnerCustomer,
		Amount:       amount("200000"),
		DepositCoaID: depositCoa,
		PaymentCoaID: paymentCoa,
		Date:         time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		depositCoa: account(depositCoa, domain.AccountTypeLiability),
		paymentCoa: account(paymentCoa, domain.AccountTypeAsset),
	})

	_, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)

	// A customer deposit is a liability: Dr cash/bank, Cr liability.
	dr, _ := suite.sideOf(paymentCoa)
	_, cr := suite.sideOf(depositCoa)
	suite.True(dr.Equal(amount("200000")))
	suite.True(cr.Equal(amount("200000")))

	// Crediting a liability increases its balance.
	suite.True(suite.balanceChanges[depositCoa].Equal(amount("200000")))
	suite.True(suite.balanceChanges[paymentCoa].Equal(amount("200000")))
}

func (suite *JournalServiceTestSuite) TestPostInTx_MissingDepositAccountMapping() {
	ctx := context.Background()
	event := domain.DepositFunded{
		DepositID:    uuid.NewString(),
		Owner:        domain.OwnerCustomer,
		Amount:       amount("100"),
		PaymentCoaID: uuid.NewString(),
	}

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccountMapping)
	suite.Nil(lines)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "InsertLinesInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostInTx_UnknownAccountAfterLock() {
	ctx := context.Background()
	depositCoa := uuid.NewString()
	paymentCoa := uuid.NewString()
	event := domain.DepositFunded{
		DepositID:    uuid.NewString(),
		Owner:        domain.OwnerSupplier,
		Amount:       amount("100"),
		DepositCoaID: depositCoa,
		PaymentCoaID: paymentCoa,
	}
	// Lock succeeds but only returns one of the two accounts.
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]domain.ChartOfAccount{depositCoa: account(depositCoa, domain.AccountTypeAsset)}, nil).Once()

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccountMapping)
	suite.Nil(lines)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "InsertLinesInTx", mock.Anything, mock.Anything, mock.Anything)
}

// --- Cash/bank event Tests ---
func (suite *JournalServiceTestSuite) TestPostInTx_CashBankWithoutDetailsNeedsOffset() {
	ctx := context.Background()
	event := domain.CashBankPosted{
		TransactionID: uuid.NewString(),
		Number:        "CB-20250101-0001",
		Type:          domain.CashIn,
		Amount:        amount("500000"),
		AccountCoaID:  uuid.NewString(),
	}

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccountMapping)
	suite.Nil(lines)
}

func (suite *JournalServiceTestSuite) TestPostInTx_CashBankNegativeDetailFlipsSide() {
	ctx := context.Background()
	bankCoa := uuid.NewString()
	revenueCoa := uuid.NewString()
	taxCoa := uuid.NewString()
	event := domain.CashBankPosted{
		TransactionID: uuid.NewString(),
		Number:        "CB-20250101-0002",
		Type:          domain.CashIn,
		Amount:        amount("890000"),
		AccountCoaID:  bankCoa,
		Details: []domain.CashBankDetail{
			{CoaID: revenueCoa, Amount: amount("1000000"), Description: "service revenue"},
			{CoaID: taxCoa, Amount: amount("-110000"), Description: "withheld tax"},
		},
		Date: time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		bankCoa:    account(bankCoa, domain.AccountTypeAsset),
		revenueCoa: account(revenueCoa, domain.AccountTypeRevenue),
		taxCoa:     account(taxCoa, domain.AccountTypeAsset),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	suite.Len(lines, 3)
	suite.NoError(accounting.ValidateBalanced(suite.inserted))

	bankDr, _ := suite.sideOf(bankCoa)
	_, revenueCr := suite.sideOf(revenueCoa)
	taxDr, _ := suite.sideOf(taxCoa)
	suite.True(bankDr.Equal(amount("890000")))
	suite.True(revenueCr.Equal(amount("1000000")))
	// The negative detail lands on the same side as the main account.
	suite.True(taxDr.Equal(amount("110000")))
}

// --- Asset disposal event Tests ---
func (suite *JournalServiceTestSuite) TestPostInTx_DisposalAtGain() {
	ctx := context.Background()
	proceedsCoa := uuid.NewString()
	accumCoa := uuid.NewString()
	assetCoa := uuid.NewString()
	gainCoa := uuid.NewString()
	event := domain.AssetDisposed{
		DisposalID:     uuid.NewString(),
		AssetID:        uuid.NewString(),
		AssetName:      "Delivery truck",
		Proceeds:       amount("3000000"),
		AccumulatedDep: amount("8000000"),
		OriginalCost:   amount("10000000"),
		ProceedsCoaID:  proceedsCoa,
		AccumCoaID:     accumCoa,
		AssetCoaID:     assetCoa,
		GainCoaID:      gainCoa,
		LossCoaID:      uuid.NewString(),
		Date:           time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		proceedsCoa: account(proceedsCoa, domain.AccountTypeAsset),
		accumCoa:    account(accumCoa, domain.AccountTypeAsset),
		assetCoa:    account(assetCoa, domain.AccountTypeAsset),
		gainCoa:     account(gainCoa, domain.AccountTypeRevenue),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	suite.Len(lines, 4)
	suite.NoError(accounting.ValidateBalanced(suite.inserted))

	proceedsDr, _ := suite.sideOf(proceedsCoa)
	accumDr, _ := suite.sideOf(accumCoa)
	_, assetCr := suite.sideOf(assetCoa)
	_, gainCr := suite.sideOf(gainCoa)
	suite.True(proceedsDr.Equal(amount("3000000")))
	suite.True(accumDr.Equal(amount("8000000")))
	suite.True(assetCr.Equal(amount("10000000")))
	// Gain = 3,000,000 - (10,000,000 - 8,000,000)
	suite.True(gainCr.Equal(amount("1000000")))
	suite.True(suite.balanceChanges[gainCoa].Equal(amount("1000000")))
}

func (suite *JournalServiceTestSuite) TestPostInTx_ScrapDisposalAtLoss() {
	ctx := context.Background()
	accumCoa := uuid.NewString()
	assetCoa := uuid.NewString()
	lossCoa := uuid.NewString()
	event := domain.AssetDisposed{
		DisposalID:     uuid.NewString(),
		AssetID:        uuid.NewString(),
		AssetName:      "Old forklift",
		Proceeds:       decimal.Zero,
		AccumulatedDep: amount("7500000"),
		OriginalCost:   amount("9000000"),
		AccumCoaID:     accumCoa,
		AssetCoaID:     assetCoa,
		GainCoaID:      uuid.NewString(),
		LossCoaID:      lossCoa,
		Date:           time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		accumCoa: account(accumCoa, domain.AccountTypeAsset),
		assetCoa: account(assetCoa, domain.AccountTypeAsset),
		lossCoa:  account(lossCoa, domain.AccountTypeExpense),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	// No proceeds line for a scrap, so accum + loss against cost.
	suite.Len(lines, 3)
	suite.NoError(accounting.ValidateBalanced(suite.inserted))

	lossDr, _ := suite.sideOf(lossCoa)
	suite.True(lossDr.Equal(amount("1500000")))
	suite.True(suite.balanceChanges[lossCoa].Equal(amount("1500000")))
}

func (suite *JournalServiceTestSuite) TestPostInTx_DisposalGainWithoutGainAccount() {
	ctx := context.Background()
	event := domain.AssetDisposed{
		DisposalID:     uuid.NewString(),
		AssetID:        uuid.NewString(),
		AssetName:      "Server rack",
		Proceeds:       amount("5000000"),
		AccumulatedDep: amount("2000000"),
		OriginalCost:   amount("4000000"),
		ProceedsCoaID:  uuid.NewString(),
		AccumCoaID:     uuid.NewString(),
		AssetCoaID:     uuid.NewString(),
		LossCoaID:      uuid.NewString(),
	}

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccountMapping)
	suite.Nil(lines)
}

// --- Asset transfer event Tests ---
func (suite *JournalServiceTestSuite) TestPostInTx_TransferTagsBranchPerLine() {
	ctx := context.Background()
	inCoa := uuid.NewString()
	outCoa := uuid.NewString()
	event := domain.AssetTransferred{
		TransferID:    uuid.NewString(),
		AssetID:       uuid.NewString(),
		AssetName:     "CNC machine",
		BookValue:     amount("42000000"),
		InClearCoaID:  inCoa,
		OutClearCoaID: outCoa,
		FromBranchID:  "BR-JKT",
		ToBranchID:    "BR-SBY",
		Date:          time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		inCoa:  account(inCoa, domain.AccountTypeAsset),
		outCoa: account(outCoa, domain.AccountTypeAsset),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	suite.Len(lines, 2)
	for _, line := range suite.inserted {
		suite.Require().NotNil(line.BranchID)
		if line.CoaID == inCoa {
			suite.Equal("BR-SBY", *line.BranchID)
		} else {
			suite.Equal("BR-JKT", *line.BranchID)
		}
	}
}

func (suite *JournalServiceTestSuite) TestPostInTx_TransferWithoutBookValueRejected() {
	ctx := context.Background()
	event := domain.AssetTransferred{
		TransferID:    uuid.NewString(),
		AssetID:       uuid.NewString(),
		AssetName:     "Written-off forklift",
		BookValue:     decimal.Zero,
		InClearCoaID:  uuid.NewString(),
		OutClearCoaID: uuid.NewString(),
		FromBranchID:  "BR-JKT",
		ToBranchID:    "BR-SBY",
		Date:          time.Now().UTC(),
	}

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(lines)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "InsertLinesInTx", mock.Anything, mock.Anything, mock.Anything)
}

// --- Purchase return event Tests ---
func (suite *JournalServiceTestSuite) TestPostInTx_PurchaseReturn() {
	ctx := context.Background()
	payableCoa := uuid.NewString()
	inventoryCoa := uuid.NewString()
	event := domain.PurchaseReturned{
		ReturnID:       uuid.NewString(),
		Number:         "PR-20250101-0001",
		SupplierID:     uuid.NewString(),
		Amount:         amount("2500000"),
		PayableCoaID:   payableCoa,
		InventoryCoaID: inventoryCoa,
		BranchID:       "BR-JKT",
		Date:           time.Now().UTC(),
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		payableCoa:   account(payableCoa, domain.AccountTypeLiability),
		inventoryCoa: account(inventoryCoa, domain.AccountTypeAsset),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	suite.Len(lines, 2)
	suite.NoError(accounting.ValidateBalanced(suite.inserted))

	payableDr, _ := suite.sideOf(payableCoa)
	_, inventoryCr := suite.sideOf(inventoryCoa)
	suite.True(payableDr.Equal(amount("2500000")))
	suite.True(inventoryCr.Equal(amount("2500000")))
	// Debiting a liability and crediting an asset both shrink the balance.
	suite.True(suite.balanceChanges[payableCoa].Equal(amount("-2500000")))
	suite.True(suite.balanceChanges[inventoryCoa].Equal(amount("-2500000")))
	for _, line := range suite.inserted {
		suite.Require().NotNil(line.BranchID)
		suite.Equal("BR-JKT", *line.BranchID)
	}
}

// --- Line stamping Tests ---
func (suite *JournalServiceTestSuite) TestPostInTx_StampsSharedPostingFields() {
	ctx := context.Background()
	expenseCoa := uuid.NewString()
	accumCoa := uuid.NewString()
	eventDate := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	event := domain.AssetDepreciated{
		DepreciationID: uuid.NewString(),
		AssetID:        uuid.NewString(),
		AssetName:      "Delivery truck",
		Amount:         amount("250000"),
		ExpenseCoaID:   expenseCoa,
		AccumCoaID:     accumCoa,
		Date:           eventDate,
		PeriodLabel:    "2025-01",
	}
	suite.armAccounts(map[string]domain.ChartOfAccount{
		expenseCoa: account(expenseCoa, domain.AccountTypeExpense),
		accumCoa:   account(accumCoa, domain.AccountTypeAsset),
	})

	lines, err := suite.service.PostInTx(ctx, nil, event, suite.actorID)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	reference := lines[0].Reference
	suite.NotEmpty(reference)
	for _, line := range lines {
		suite.Equal(reference, line.Reference)
		suite.NotEmpty(line.LineID)
		suite.Equal(domain.JournalAssetDepreciation, line.JournalType)
		suite.Equal(domain.SourceAssetDepreciation, line.SourceType)
		suite.Equal(event.DepreciationID, line.SourceID)
		suite.True(line.Date.Equal(eventDate))
		suite.Equal(suite.actorID, line.CreatedBy)
	}
}

// --- GetPosting Tests ---
func (suite *JournalServiceTestSuite) TestGetPosting_EmptyReferenceIsNotFound() {
	ctx := context.Background()
	reference := uuid.NewString()

	suite.mockJournalRepo.On("FindLinesByReference", ctx, reference).Return([]domain.JournalLine{}, nil).Once()

	lines, err := suite.service.GetPosting(ctx, reference, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(lines)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
