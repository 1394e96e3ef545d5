package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/core/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// --- Mock VoucherRepository (based on VoucherRepositoryWithTx) ---
type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *MockVoucherRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockVoucherRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.VoucherRequest, error) {
	args := m.Called(ctx, voucherID)
	var voucher *domain.VoucherRequest
	if args.Get(0) != nil {
		voucher = args.Get(0).(*domain.VoucherRequest)
	}
	return voucher, args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.VoucherRequest, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	var vouchers []domain.VoucherRequest
	if args.Get(0) != nil {
		vouchers = args.Get(0).([]domain.VoucherRequest)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return vouchers, token, args.Error(2)
}

func (m *MockVoucherRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.VoucherRequest) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByIDForUpdate(ctx context.Context, tx pgx.Tx, voucherID string) (*domain.VoucherRequest, error) {
	args := m.Called(ctx, tx, voucherID)
	var voucher *domain.VoucherRequest
	if args.Get(0) != nil {
		voucher = args.Get(0).(*domain.VoucherRequest)
	}
	return voucher, args.Error(1)
}

func (m *MockVoucherRepository) UpdateVoucherInTx(ctx context.Context, tx pgx.Tx, voucher domain.VoucherRequest) error {
	args := m.Called(ctx, tx, voucher)
	return args.Error(0)
}

// --- Mock CashBankRepository (based on CashBankRepositoryFacade) ---
type MockCashBankRepository struct {
	mock.Mock
}

var _ portsrepo.CashBankRepositoryFacade = (*MockCashBankRepository)(nil)

func (m *MockCashBankRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashBankTransaction, error) {
	args := m.Called(ctx, transactionID)
	var trx *domain.CashBankTransaction
	if args.Get(0) != nil {
		trx = args.Get(0).(*domain.CashBankTransaction)
	}
	return trx, args.Error(1)
}

func (m *MockCashBankRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.CashBankTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var trxs []domain.CashBankTransaction
	if args.Get(0) != nil {
		trxs = args.Get(0).([]domain.CashBankTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return trxs, token, args.Error(2)
}

func (m *MockCashBankRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockCashBankRepository) SaveTransaction(ctx context.Context, trx domain.CashBankTransaction) error {
	args := m.Called(ctx, trx)
	return args.Error(0)
}

func (m *MockCashBankRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.CashBankTransaction, error) {
	args := m.Called(ctx, tx, transactionID)
	var trx *domain.CashBankTransaction
	if args.Get(0) != nil {
		trx = args.Get(0).(*domain.CashBankTransaction)
	}
	return trx, args.Error(1)
}

func (m *MockCashBankRepository) UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.CashBankStatus, userID string) error {
	args := m.Called(ctx, tx, transactionID, status, userID)
	return args.Error(0)
}

func (m *MockCashBankRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, trx domain.CashBankTransaction) error {
	args := m.Called(ctx, tx, trx)
	return args.Error(0)
}

// --- Test Suite ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockVoucherRepository
	mockCashBank  *MockCashBankRepository
	mockPoster    *MockJournalPoster
	mockAuthz     *MockAuthorizationService
	mockNumbering *MockNumberingService
	mockNotifier  *MockNotifier
	service       portssvc.VoucherSvcFacade
	actorID       string
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVoucherRepository)
	suite.mockCashBank = new(MockCashBankRepository)
	suite.mockPoster = new(MockJournalPoster)
	suite.mockAuthz = new(MockAuthorizationService)
	suite.mockNumbering = new(MockNumberingService)
	suite.mockNotifier = new(MockNotifier)
	suite.actorID = uuid.NewString()
	suite.service = services.NewVoucherService(suite.mockRepo, suite.mockCashBank, suite.mockPoster, suite.mockAuthz, suite.mockNumbering, suite.mockNotifier)
	suite.mockNotifier.On("DocumentTransitioned", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
}

func (suite *VoucherServiceTestSuite) armTx() {
	suite.mockRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.mockRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func pendingVoucher(amount string) *domain.VoucherRequest {
	accountCoa := uuid.NewString()
	offsetCoa := uuid.NewString()
	return &domain.VoucherRequest{
		VoucherID:    uuid.NewString(),
		Number:       "VR-20250101-0001",
		Type:         domain.VoucherPayment,
		Amount:       decimal.RequireFromString(amount),
		Description:  "Office supplies",
		Status:       domain.StatusPendingApproval,
		RequestedBy:  uuid.NewString(),
		AccountCoaID: &accountCoa,
		OffsetCoaID:  &offsetCoa,
	}
}

// --- CreateVoucher Tests ---
func (suite *VoucherServiceTestSuite) TestCreateVoucher_RoundsAmount() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		Type:        domain.VoucherPayment,
		Amount:      "1.250.000,505",
		Description: "Office supplies",
	}

	suite.mockAuthz.allowAll()
	suite.mockNumbering.On("NextNumber", ctx, "VR").Return("VR-20250101-0002", nil).Once()
	suite.mockRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.VoucherRequest) bool {
		return v.Status == domain.StatusDraft &&
			v.Amount.Equal(decimal.RequireFromString("1250000.51")) &&
			v.Number == "VR-20250101-0002" &&
			v.RequestedBy == suite.actorID
	})).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, voucher.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_ZeroAmount() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{Type: domain.VoucherPayment, Amount: "0", Description: "Nothing"}

	suite.mockAuthz.allowAll()

	voucher, err := suite.service.CreateVoucher(ctx, req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Nil(voucher)
	suite.mockNumbering.AssertNotCalled(suite.T(), "NextNumber", mock.Anything, mock.Anything)
}

// --- Approve Tests ---
func (suite *VoucherServiceTestSuite) TestApprove_RealizesPaymentAsCashOut() {
	ctx := context.Background()
	voucher := pendingVoucher("1250000.51")
	req := dto.ApproveVoucherRequest{Notes: "budget confirmed", AutoCreateTransaction: true}

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockNumbering.On("NextNumber", ctx, "CB").Return("CB-20250102-0001", nil).Once()
	suite.mockCashBank.On("SaveTransactionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(trx domain.CashBankTransaction) bool {
		return trx.Type == domain.CashOut &&
			trx.Status == domain.CashBankPostedStatus &&
			trx.Amount.Equal(voucher.Amount) &&
			trx.AccountCoaID == *voucher.AccountCoaID &&
			strings.Contains(trx.Description, "Realization of voucher VR-20250101-0001")
	})).Return(nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(event domain.PostingEvent) bool {
		posted, ok := event.(domain.CashBankPosted)
		return ok && posted.Type == domain.CashOut && posted.Amount.Equal(voucher.Amount)
	}), suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("UpdateVoucherInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(v domain.VoucherRequest) bool {
		return v.Status == domain.StatusApproved && v.TransactionID != nil && v.ApprovedBy != nil && *v.ApprovedBy == suite.actorID
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.Approve(ctx, voucher.VoucherID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, updated.Status)
	suite.Require().NotNil(updated.TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCashBank.AssertExpectations(suite.T())
	suite.mockPoster.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestApprove_ReceiptRealizesAsCashIn() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")
	voucher.Type = domain.VoucherReceipt
	req := dto.ApproveVoucherRequest{AutoCreateTransaction: true}

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockNumbering.On("NextNumber", ctx, "CB").Return("CB-20250102-0002", nil).Once()
	suite.mockCashBank.On("SaveTransactionInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(trx domain.CashBankTransaction) bool {
		return trx.Type == domain.CashIn
	})).Return(nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.Anything, suite.actorID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockRepo.On("UpdateVoucherInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := suite.service.Approve(ctx, voucher.VoucherID, req, suite.actorID)

	suite.Require().NoError(err)
	suite.mockCashBank.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestApprove_WithoutAutoCreateSkipsRealization() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")
	voucher.AccountCoaID = nil
	voucher.OffsetCoaID = nil

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockRepo.On("UpdateVoucherInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(v domain.VoucherRequest) bool {
		return v.Status == domain.StatusApproved && v.TransactionID == nil
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.Approve(ctx, voucher.VoucherID, dto.ApproveVoucherRequest{Notes: "pay later"}, suite.actorID)

	suite.Require().NoError(err)
	suite.Nil(updated.TransactionID)
	suite.mockCashBank.AssertNotCalled(suite.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPoster.AssertNotCalled(suite.T(), "PostInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestApprove_MissingAccountMapping() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")
	voucher.AccountCoaID = nil

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()

	updated, err := suite.service.Approve(ctx, voucher.VoucherID, dto.ApproveVoucherRequest{AutoCreateTransaction: true}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingAccountMapping)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestApprove_AlreadyApproved() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")
	voucher.Status = domain.StatusApproved

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()

	updated, err := suite.service.Approve(ctx, voucher.VoucherID, dto.ApproveVoucherRequest{}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVoucherInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestApprove_PostingFailureRollsBack() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockNumbering.On("NextNumber", ctx, "CB").Return("CB-20250102-0003", nil).Once()
	suite.mockCashBank.On("SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPoster.On("PostInTx", mock.Anything, mock.Anything, mock.Anything, suite.actorID).Return(nil, apperrors.ErrMissingAccountMapping).Once()

	updated, err := suite.service.Approve(ctx, voucher.VoucherID, dto.ApproveVoucherRequest{AutoCreateTransaction: true}, suite.actorID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

// --- Reject / Cancel Tests ---
func (suite *VoucherServiceTestSuite) TestReject_RequiresReason() {
	ctx := context.Background()

	updated, err := suite.service.Reject(ctx, uuid.NewString(), "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingJustification)
	suite.Nil(updated)
	suite.mockAuthz.AssertNotCalled(suite.T(), "Authorize", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestReject_StampsApprover() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockRepo.On("UpdateVoucherInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(v domain.VoucherRequest) bool {
		return v.Status == domain.StatusRejected && v.ApprovalNotes == "no budget line"
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.Reject(ctx, voucher.VoucherID, "no budget line", suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, updated.Status)
}

func (suite *VoucherServiceTestSuite) TestCancel_DraftWithReason() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")
	voucher.Status = domain.StatusDraft

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockRepo.On("UpdateVoucherInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(v domain.VoucherRequest) bool {
		return v.Status == domain.StatusCancelled
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.Cancel(ctx, voucher.VoucherID, "duplicate request", suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, updated.Status)
}

func (suite *VoucherServiceTestSuite) TestCancel_RequiresReason() {
	ctx := context.Background()

	_, err := suite.service.Cancel(ctx, uuid.NewString(), "", suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingJustification)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestSubmit_MovesDraftToPending() {
	ctx := context.Background()
	voucher := pendingVoucher("500000")
	voucher.Status = domain.StatusDraft

	suite.mockAuthz.allowAll()
	suite.armTx()
	suite.mockRepo.On("FindVoucherByIDForUpdate", mock.Anything, mock.Anything, voucher.VoucherID).Return(voucher, nil).Once()
	suite.mockRepo.On("UpdateVoucherInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(v domain.VoucherRequest) bool {
		return v.Status == domain.StatusPendingApproval
	})).Return(nil).Once()
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := suite.service.Submit(ctx, voucher.VoucherID, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingApproval, updated.Status)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
