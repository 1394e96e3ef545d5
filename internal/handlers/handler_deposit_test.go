package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/handlers"
	"github.com/nusankara/erp_backoffice/internal/middleware"
)

// --- Mock DepositService ---
type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) GetDepositByID(ctx context.Context, depositID string, actorID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositService) ListDeposits(ctx context.Context, params dto.ListDepositsParams, actorID string) (*dto.ListDepositsResponse, error) {
	args := m.Called(ctx, params, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDepositsResponse), args.Error(1)
}

func (m *MockDepositService) GetDepositLogs(ctx context.Context, depositID string, actorID string) ([]domain.DepositLog, error) {
	args := m.Called(ctx, depositID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepositLog), args.Error(1)
}

func (m *MockDepositService) OpenDeposit(ctx context.Context, req dto.OpenDepositRequest, actorID string) (*domain.Deposit, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositService) Fund(ctx context.Context, depositID string, req dto.FundDepositRequest, actorID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositService) Consume(ctx context.Context, depositID string, req dto.ConsumeDepositRequest, actorID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositService) Adjust(ctx context.Context, depositID string, req dto.AdjustDepositRequest, actorID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

func (m *MockDepositService) Close(ctx context.Context, depositID string, reason string, actorID string) (*domain.Deposit, error) {
	args := m.Called(ctx, depositID, reason, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deposit), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DepositSvcFacade = (*MockDepositService)(nil)

// --- Test Suite ---
type DepositHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockDepositService *MockDepositService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *DepositHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "erp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DepositHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidations()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDepositService = new(MockDepositService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDepositRoutes(v1, suite.mockDepositService)
}

func (suite *DepositHandlerTestSuite) doRequest(method, url, body, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DepositHandlerTestSuite) TestFundDeposit_Success() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	updated := &domain.Deposit{
		DepositID: depositID,
		Number:    "DP-20250101-0001",
		Owner:     domain.OwnerRef{Type: domain.OwnerCustomer, ID: uuid.NewString()},
		Total:     decimal.RequireFromString("1000000.50"),
		Used:      decimal.Zero,
		Remaining: decimal.RequireFromString("1000000.50"),
		Status:    domain.DepositActive,
	}

	suite.mockDepositService.On("Fund",
		mock.Anything,
		depositID,
		mock.MatchedBy(func(req dto.FundDepositRequest) bool {
			return req.Amount == "1.000.000,50" && req.PaymentCoaID != ""
		}),
		actorID,
	).Return(updated, nil).Once()

	body := fmt.Sprintf(`{"amount":"1.000.000,50","paymentCoaID":"%s","note":"initial funding"}`, uuid.NewString())
	w := suite.doRequest(http.MethodPost, "/api/v1/deposits/"+depositID+"/fund", body, actorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DepositResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(depositID, resp.DepositID)
	suite.True(resp.Total.Equal(decimal.RequireFromString("1000000.50")))
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *DepositHandlerTestSuite) TestFundDeposit_MalformedAmountRejectedAtBinding() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	// US-formatted amount fails the idr_amount binding before the service runs.
	body := fmt.Sprintf(`{"amount":"1,000,000.50","paymentCoaID":"%s"}`, uuid.NewString())
	w := suite.doRequest(http.MethodPost, "/api/v1/deposits/"+depositID+"/fund", body, actorID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDepositService.AssertNotCalled(suite.T(), "Fund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepositHandlerTestSuite) TestConsumeDeposit_InsufficientBalance() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockDepositService.On("Consume", mock.Anything, depositID, mock.Anything, actorID).
		Return(nil, fmt.Errorf("%w: consuming 50.000,01 exceeds remaining 50.000,00", apperrors.ErrInsufficientBalance)).Once()

	body := fmt.Sprintf(`{"amount":"50.000,01","settlementCoaID":"%s"}`, uuid.NewString())
	w := suite.doRequest(http.MethodPost, "/api/v1/deposits/"+depositID+"/consume", body, actorID)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *DepositHandlerTestSuite) TestAdjustDeposit_MissingNoteRejectedAtBinding() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	body := fmt.Sprintf(`{"amount":"-50.000,00","paymentCoaID":"%s"}`, uuid.NewString())
	w := suite.doRequest(http.MethodPost, "/api/v1/deposits/"+depositID+"/adjust", body, actorID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDepositService.AssertNotCalled(suite.T(), "Adjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepositHandlerTestSuite) TestCloseDeposit_AlreadyClosed() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockDepositService.On("Close", mock.Anything, depositID, "contract ended", actorID).
		Return(nil, fmt.Errorf("%w: deposit DP-20250101-0001", apperrors.ErrAlreadyClosed)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/deposits/"+depositID+"/close", `{"reason":"contract ended"}`, actorID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *DepositHandlerTestSuite) TestGetDepositLogs_Success() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	logs := []domain.DepositLog{
		{LogID: uuid.NewString(), DepositID: depositID, Type: domain.DepositLogAdd, Amount: decimal.RequireFromString("1000000.50")},
		{LogID: uuid.NewString(), DepositID: depositID, Type: domain.DepositLogUse, Amount: decimal.RequireFromString("-250000")},
	}
	suite.mockDepositService.On("GetDepositLogs", mock.Anything, depositID, actorID).Return(logs, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/deposits/"+depositID+"/logs", "", actorID)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.DepositLogResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal(domain.DepositLogAdd, resp[0].Type)
	suite.mockDepositService.AssertExpectations(suite.T())
}

func (suite *DepositHandlerTestSuite) TestGetDeposit_NotFound() {
	depositID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockDepositService.On("GetDepositByID", mock.Anything, depositID, actorID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/deposits/"+depositID, "", actorID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DepositHandlerTestSuite) TestFundDeposit_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/deposits/"+uuid.NewString()+"/fund", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDepositService.AssertNotCalled(suite.T(), "Fund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestDepositHandler(t *testing.T) {
	suite.Run(t, new(DepositHandlerTestSuite))
}
