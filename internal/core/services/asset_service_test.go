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
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// --- Mock AssetRepository (based on AssetRepositoryWithTx) ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockAssetRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAssetRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	var asset *domain.Asset
	if args.Get(0) != nil {
		asset = args.Get(0).(*domain.Asset)
	}
	return asset, args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, status *domain.AssetStatus, limit int, nextToken *string) ([]domain.Asset, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var assets []domain.Asset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.Asset)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return assets, token, args.Error(2)
}

func (m *MockAssetRepository) FindDepreciationByPeriod(ctx context.Context, assetID string, year int, month int) (*domain.AssetDepreciation, error) {
	args := m.Called(ctx, assetID, year, month)
	var entry *domain.AssetDepreciation
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.AssetDepreciation)
	}
	return entry, args.Error(1)
}

func (m *MockAssetRepository) FindDepreciationsByAssetID(ctx context.Context, assetID string) ([]domain.AssetDepreciation, error) {
	args := m.Called(ctx, assetID)
	var entries []domain.AssetDepreciation
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AssetDepreciation)
	}
	return entries, args.Error(1)
}

func (m *MockAssetRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) SaveAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) FindAssetByIDForUpdate(ctx context.Context, tx pgx.Tx, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, tx, assetID)
	var asset *domain.Asset
	if args.Get(0) != nil {
		asset = args.Get(0).(*domain.Asset)
	}
	return asset, args.Error(1)
}

func (m *MockAssetRepository) UpdateAssetInTx(ctx context.Context, tx pgx.Tx, asset domain.Asset) error {
	args := m.Called(ctx, tx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) InsertDepreciationInTx(ctx context.Context, tx pgx.Tx, entry domain.AssetDepreciation) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockAssetRepository) FindDisposalByID(ctx context.Context, disposalID string) (*domain.AssetDisposal, error) {
	args := m.Called(ctx, disposalID)
	var disposal *domain.AssetDisposal
	if args.Get(0) != nil {
		disposal = args.Get(0).(*domain.AssetDisposal)
	}
	return disposal, args.Error(1)
}

func (m *MockAssetRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.AssetTransfer, error) {
	args := m.Called(ctx, transferID)
	var transfer *domain.AssetTransfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*domain.AssetTransfer)
	}
	return transfer, args.Error(1)
}

func (m *MockAssetRepository) SaveDisposal(ctx context.Context, disposal domain.AssetDisposal) error {
	args := m.Called(ctx, disposal)
	return args.Error(0)
}

func (m *MockAssetRepository) SaveTransfer(ctx context.Context, transfer domain.AssetTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

func (m *MockAssetRepository) FindDisposalByIDForUpdate(ctx context.Context, tx pgx.Tx, disposalID string) (*domain.AssetDisposal, error) {
	args := m.Called(ctx, tx, disposalID)
	var disposal *domain.AssetDisposal
	if args.Get(0) != nil {
		disposal = args.Get(0).(*domain.AssetDisposal)
	}
	return disposal, args.Error(1)
}

func (m *MockAssetRepository) FindTransferByIDForUpdate(ctx context.Context, tx pgx.Tx, transferID string) (*domain.AssetTransfer, error) {
	args := m.Called(ctx, tx, transferID)
	var transfer *domain.AssetTransfer
	if args.Get(0) != nil {
		transfer = args.Get(0).(*domain.AssetTransfer)
	}
	return transfer, args.Error(1)
}

func (m *MockAssetRepository) UpdateDisposalInTx(ctx context.Context, tx pgx.Tx, disposal domain.AssetDisposal) error {
	args := m.Called(ctx, tx, disposal)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.AssetTransfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

// --- Test Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockAssetRepository
	mockPoster    *MockJournalPoster
	mockAuthz     *MockAuthorizationService
	mockNumbering *MockNumberingService
	mockNotifier  *MockNotifier
	service       portssvc.AssetSvcFacade
	actorID       string
	accounts      services.LedgerAccounts
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAssetRepository)
	suite.mockPoster = new(MockJournalPoster)
	suite.mockAuthz = new(MockAuthorizationService)
	suite.mockNumbering = new(MockNumberingService)
	suite.mockNotifier = new(MockNotifier)
	suite.actorID = uuid.NewString()
	suite.accounts = services.LedgerAccounts{
		DisposalGainCoaID: uuid.NewString(),
		DisposalLossCoaID: uuid.NewString(),
		TransferInCoaID:   uuid.NewString(),
		TransferOutCoaID:  uuid.NewString(),
	}
	suite.service = services.NewAssetService(suite.mockRepo, suite.mockPoster, suite.mockAuthz, suite.mockNumbering, suite.mockNotifier, suite.accounts)
	suite.mockNotifier.On("DocumentTransitioned", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (suite *AssetServiceTestSuite) armTx() {
	suite.mockRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *AssetServiceTestSuite) activeAsset() *domain.Asset {
	return &domain.Asset{
		AssetID:          uuid.NewString(),
		Number:           "AST-20250101-0001",
		Name:             "Delivery truck",
		BranchID:         "BR-JKT",
		PurchaseCost:     decimal.RequireFromString("130000000"),
		SalvageValue:     decimal.RequireFromString("10000000"),
		UsefulLifeMonths: 48,
		PurchaseDate:     time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		UsageDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:           domain.AssetActive,
		AssetCoaID:       uuid.NewString(),
		AccumCoaID:       uuid.NewString(),
		ExpenseCoaID:     uuid.NewString(),
		AccumulatedDep:   decimal.Zero,
	}
}

// --- RegisterAsset Tests ---
func (suite *AssetServiceTestSuite) TestRegisterAsset_PostsAcquisitionAtomically() {
	ctx := context.Background()
	req := dto.RegisterAssetRequest{
		Name:             "Delivery truck",
		BranchID:         "BR-JKT",
		PurchaseCost:     "130.000.000",
		SalvageValue:     "10.000.000",
		UsefulLifeMonths: 48,
		PurchaseDate:     "2024-12-15",
		UsageDate:        "2025-01-01",
		AssetCoaID:       uuid.NewString(),
		AccumCoaID:       uuid.NewString(),
		ExpenseCoaID:     uuid.NewString(),
		PaymentCoaID:     uuid.NewString(),
	}

	suite.mockAuthz.allowAll()
	suite.mockNumbering.On("NextNumber", ctx, "AST").Return("AST-20250101-0009", nil).Once()
	suite.armTx()
	suite.mockRepo.On("SaveAssetInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Number == "AST-20250101-0009" &&
			a.Status == domain.AssetActive &&
			a.AccumulatedDep.IsZero() &&
			a.PurchaseCost.Equal(decimal.RequireFromString("130000000"))
	})).Return(nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(event domain.PostingEvent) bool {
		acquired, ok := event.(domain.AssetAcquired)
		return ok && acquired.Cost.Equal(decimal.RequireFromString("130000000")) &&
			acquired.CreditCoaID == req.PaymentCoaID
	}), suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	asset, err := suite.service.RegisterAsset(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.AssetActive, asset.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPoster.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestRegisterAsset_SalvageAboveCost() {
	ctx := context.Background()
	req := dto.RegisterAssetRequest{
		Name:             "Overvalued scrap",
		BranchID:         "BR-JKT",
		PurchaseCost:     "1.000.000",
		SalvageValue:     "1.000.000,01",
		UsefulLifeMonths: 12,
		PurchaseDate:     "2025-01-01",
		UsageDate:        "2025-01-01",
	}

	suite.mockAuthz.allowAll()

	asset, err := suite.service.RegisterAsset(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(asset)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AssetServiceTestSuite) TestRegisterAsset_UsageBeforePurchase() {
	ctx := context.Background()
	req := dto.RegisterAssetRequest{
		Name:             "Time traveler",
		BranchID:         "BR-JKT",
		PurchaseCost:     "1.000.000",
		UsefulLifeMonths: 12,
		PurchaseDate:     "2025-02-01",
		UsageDate:        "2025-01-01",
	}

	suite.mockAuthz.allowAll()

	_, err := suite.service.RegisterAsset(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Depreciate Tests ---
func (suite *AssetServiceTestSuite) TestDepreciate_StraightLineMonth() {
	ctx := context.Background()
	asset := suite.activeAsset()
	req := dto.DepreciateAssetRequest{PeriodYear: 2025, PeriodMonth: 1}

	suite.mockAuthz.allowAll()
	suite.mockRepo.On("FindDepreciationByPeriod", ctx, asset.AssetID, 2025, 1).Return(nil, apperrors.ErrNotFound).Once()
	suite.armTx()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()
	// (130,000,000 - 10,000,000) / 48 = 2,500,000 per month.
	suite.mockRepo.On("InsertDepreciationInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(entry domain.AssetDepreciation) bool {
		return entry.Amount.Equal(decimal.RequireFromString("2500000")) &&
			entry.AccumulatedTotal.Equal(decimal.RequireFromString("2500000")) &&
			entry.BookValue.Equal(decimal.RequireFromString("127500000")) &&
			entry.PeriodYear == 2025 && entry.PeriodMonth == 1
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateAssetInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		return a.AccumulatedDep.Equal(decimal.RequireFromString("2500000"))
	})).Return(nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(event domain.PostingEvent) bool {
		dep, ok := event.(domain.AssetDepreciated)
		return ok && dep.Amount.Equal(decimal.RequireFromString("2500000")) && dep.PeriodLabel == "2025-01"
	}), suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.Depreciate(ctx, asset.AssetID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.True(entry.Amount.Equal(decimal.RequireFromString("2500000")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDepreciate_DuplicatePeriod() {
	ctx := context.Background()
	asset := suite.activeAsset()
	existing := &domain.AssetDepreciation{DepreciationID: uuid.NewString()}

	suite.mockAuthz.allowAll()
	suite.mockRepo.On("FindDepreciationByPeriod", ctx, asset.AssetID, 2025, 1).Return(existing, nil).Once()

	entry, err := suite.service.Depreciate(ctx, asset.AssetID, dto.DepreciateAssetRequest{PeriodYear: 2025, PeriodMonth: 1}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *AssetServiceTestSuite) TestDepreciate_FinalPeriodCapped() {
	ctx := context.Background()
	asset := suite.activeAsset()
	// 47 months recorded, 1,500,000 short of the depreciable base.
	asset.AccumulatedDep = decimal.RequireFromString("118500000")

	suite.mockAuthz.allowAll()
	suite.mockRepo.On("FindDepreciationByPeriod", ctx, asset.AssetID, 2028, 12).Return(nil, apperrors.ErrNotFound).Once()
	suite.armTx()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()
	suite.mockRepo.On("InsertDepreciationInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(entry domain.AssetDepreciation) bool {
		return entry.Amount.Equal(decimal.RequireFromString("1500000")) &&
			entry.BookValue.Equal(decimal.RequireFromString("10000000"))
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateAssetInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		// Accumulated depreciation never exceeds cost minus salvage.
		return a.AccumulatedDep.Equal(decimal.RequireFromString("120000000"))
	})).Return(nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.Anything, suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.Depreciate(ctx, asset.AssetID, dto.DepreciateAssetRequest{PeriodYear: 2028, PeriodMonth: 12}, suite.actorID)

	suite.Require().NoError(err)
	suite.True(entry.Amount.Equal(decimal.RequireFromString("1500000")))
}

func (suite *AssetServiceTestSuite) TestDepreciate_FullyDepreciated() {
	ctx := context.Background()
	asset := suite.activeAsset()
	asset.AccumulatedDep = decimal.RequireFromString("120000000")

	suite.mockAuthz.allowAll()
	suite.mockRepo.On("FindDepreciationByPeriod", ctx, asset.AssetID, 2029, 1).Return(nil, apperrors.ErrNotFound).Once()
	suite.armTx()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()

	entry, err := suite.service.Depreciate(ctx, asset.AssetID, dto.DepreciateAssetRequest{PeriodYear: 2029, PeriodMonth: 1}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestDepreciate_PeriodBeforeUsageDate() {
	ctx := context.Background()
	asset := suite.activeAsset()

	suite.mockAuthz.allowAll()
	suite.mockRepo.On("FindDepreciationByPeriod", ctx, asset.AssetID, 2024, 12).Return(nil, apperrors.ErrNotFound).Once()
	suite.armTx()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()

	_, err := suite.service.Depreciate(ctx, asset.AssetID, dto.DepreciateAssetRequest{PeriodYear: 2024, PeriodMonth: 12}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Disposal workflow Tests ---
func (suite *AssetServiceTestSuite) TestTransitionDisposal_CompletePostsAndMarksDisposed() {
	ctx := context.Background()
	asset := suite.activeAsset()
	asset.AccumulatedDep = decimal.RequireFromString("80000000")
	proceedsCoa := uuid.NewString()
	disposal := &domain.AssetDisposal{
		DisposalID:    uuid.NewString(),
		Number:        "AD-20250101-0001",
		AssetID:       asset.AssetID,
		Type:          domain.DisposalSale,
		SalePrice:     decimal.RequireFromString("60000000"),
		ProceedsCoaID: &proceedsCoa,
		Status:        domain.StatusApproved,
	}

	suite.mockAuthz.On("Authorize", mock.Anything, suite.actorID, domain.CapApproveDocuments).Return(nil).Once()
	suite.armTx()
	suite.mockRepo.On("FindDisposalByIDForUpdate", mock.Anything, mock.Anything, disposal.DisposalID).Return(disposal, nil).Once()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(event domain.PostingEvent) bool {
		disposed, ok := event.(domain.AssetDisposed)
		return ok &&
			disposed.Proceeds.Equal(decimal.RequireFromString("60000000")) &&
			disposed.AccumulatedDep.Equal(decimal.RequireFromString("80000000")) &&
			disposed.OriginalCost.Equal(decimal.RequireFromString("130000000")) &&
			disposed.GainCoaID == suite.accounts.DisposalGainCoaID &&
			disposed.LossCoaID == suite.accounts.DisposalLossCoaID
	}), suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("UpdateAssetInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Status == domain.AssetDisposedStatus
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateDisposalInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(d domain.AssetDisposal) bool {
		return d.Status == domain.StatusCompleted
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.TransitionDisposal(ctx, disposal.DisposalID, domain.ActionComplete, dto.TransitionRequest{}, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPoster.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestTransitionDisposal_ApproveTwice() {
	ctx := context.Background()
	disposal := &domain.AssetDisposal{
		DisposalID: uuid.NewString(),
		AssetID:    uuid.NewString(),
		Status:     domain.StatusApproved,
	}

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindDisposalByIDForUpdate", mock.Anything, mock.Anything, disposal.DisposalID).Return(disposal, nil).Once()

	updated, err := suite.service.TransitionDisposal(ctx, disposal.DisposalID, domain.ActionApprove, dto.TransitionRequest{}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestTransitionDisposal_RejectRequiresReason() {
	ctx := context.Background()

	suite.mockAuthz.allowAll()

	updated, err := suite.service.TransitionDisposal(ctx, uuid.NewString(), domain.ActionReject, dto.TransitionRequest{}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingJustification)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

// --- Transfer workflow Tests ---
func (suite *AssetServiceTestSuite) TestCreateTransfer_WrongSourceBranch() {
	ctx := context.Background()
	asset := suite.activeAsset()
	req := dto.CreateTransferRequest{
		AssetID:      asset.AssetID,
		FromBranchID: "BR-SBY",
		ToBranchID:   "BR-MDN",
	}

	suite.mockAuthz.allowAll()
	suite.mockRepo.On("FindAssetByID", ctx, asset.AssetID).Return(asset, nil).Once()

	transfer, err := suite.service.CreateTransfer(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(transfer)
}

func (suite *AssetServiceTestSuite) TestTransitionTransfer_CompleteMovesBranch() {
	ctx := context.Background()
	asset := suite.activeAsset()
	asset.AccumulatedDep = decimal.RequireFromString("30000000")
	transfer := &domain.AssetTransfer{
		TransferID:   uuid.NewString(),
		Number:       "AT-20250101-0001",
		AssetID:      asset.AssetID,
		FromBranchID: "BR-JKT",
		ToBranchID:   "BR-SBY",
		Status:       domain.StatusApproved,
	}

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindTransferByIDForUpdate", mock.Anything, mock.Anything, transfer.TransferID).Return(transfer, nil).Once()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(event domain.PostingEvent) bool {
		moved, ok := event.(domain.AssetTransferred)
		return ok && moved.BookValue.Equal(decimal.RequireFromString("100000000")) &&
			moved.FromBranchID == "BR-JKT" && moved.ToBranchID == "BR-SBY"
	}), suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("UpdateAssetInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		return a.BranchID == "BR-SBY"
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateTransferInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.AssetTransfer) bool {
		return t.Status == domain.StatusCompleted
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.TransitionTransfer(ctx, transfer.TransferID, domain.ActionComplete, dto.TransitionRequest{}, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestTransitionTransfer_FullyDepreciatedAssetSkipsPosting() {
	ctx := context.Background()
	asset := suite.activeAsset()
	asset.SalvageValue = decimal.Zero
	asset.AccumulatedDep = asset.PurchaseCost
	transfer := &domain.AssetTransfer{
		TransferID:   uuid.NewString(),
		Number:       "AT-20250101-0002",
		AssetID:      asset.AssetID,
		FromBranchID: "BR-JKT",
		ToBranchID:   "BR-SBY",
		Status:       domain.StatusApproved,
	}

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindTransferByIDForUpdate", mock.Anything, mock.Anything, transfer.TransferID).Return(transfer, nil).Once()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()
	suite.mockRepo.On("UpdateAssetInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Asset) bool {
		return a.BranchID == "BR-SBY"
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateTransferInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(t domain.AssetTransfer) bool {
		return t.Status == domain.StatusCompleted
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.TransitionTransfer(ctx, transfer.TransferID, domain.ActionComplete, dto.TransitionRequest{}, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.mockPoster.AssertNotCalled(suite.T(), "PostInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestTransitionTransfer_AssetMovedSinceRequest() {
	ctx := context.Background()
	asset := suite.activeAsset()
	asset.BranchID = "BR-MDN"
	transfer := &domain.AssetTransfer{
		TransferID:   uuid.NewString(),
		AssetID:      asset.AssetID,
		FromBranchID: "BR-JKT",
		ToBranchID:   "BR-SBY",
		Status:       domain.StatusApproved,
	}

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindTransferByIDForUpdate", mock.Anything, mock.Anything, transfer.TransferID).Return(transfer, nil).Once()
	suite.mockRepo.On("FindAssetByIDForUpdate", mock.Anything, mock.Anything, asset.AssetID).Return(asset, nil).Once()

	updated, err := suite.service.TransitionTransfer(ctx, transfer.TransferID, domain.ActionComplete, dto.TransitionRequest{}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
