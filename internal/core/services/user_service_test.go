package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/core/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/utils"
)

// --- Mock UserRepository (based on UserRepositoryFacade) ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, username string, passwordHash string) error {
	args := m.Called(ctx, user, username, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string, expiry *time.Time) error {
	args := m.Called(ctx, userID, hash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) FindCredentialsByUsername(ctx context.Context, username string) (*domain.User, string, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *MockUserRepository) FindRefreshTokenHash(ctx context.Context, userID string) (*string, *time.Time, error) {
	args := m.Called(ctx, userID)
	var hash *string
	if args.Get(0) != nil {
		hash = args.Get(0).(*string)
	}
	var expiry *time.Time
	if args.Get(1) != nil {
		expiry = args.Get(1).(*time.Time)
	}
	return hash, expiry, args.Error(2)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "warehouse.staff",
		Password: "password123",
		Name:     "Warehouse Staff",
		Role:     domain.RoleStaff,
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == req.Name && user.Role == domain.RoleStaff && user.UserID != ""
	}), req.Username, mock.MatchedBy(func(hash string) bool {
		// The stored hash must never be the raw password.
		return hash != "" && hash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(req.Name, created.Name)
	suite.Equal(domain.RoleStaff, created.Role)
	suite.NotEmpty(created.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "taken",
		Password: "password123",
		Name:     "Someone Else",
		Role:     domain.RoleStaff,
	}
	existing := &domain.User{UserID: uuid.NewString(), Name: "First Claimant"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "save.fails",
		Password: "password123",
		Name:     "Save Fails",
		Role:     domain.RoleReadOnly,
	}
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), req.Username, mock.AnythingOfType("string")).Return(expectedErr).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Nil(created)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, Name: "Found User"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	expected := &domain.User{UserID: uuid.NewString(), Name: "Login User", Role: domain.RoleStaff}

	suite.mockUserRepo.On("FindCredentialsByUsername", ctx, "login.user").Return(expected, hash, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "login.user", password)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Name: "Login User"}

	suite.mockUserRepo.On("FindCredentialsByUsername", ctx, "login.user").Return(stored, hash, nil).Once()

	user, authErr := suite.service.AuthenticateUser(ctx, "login.user", "a-guess")

	suite.Require().Error(authErr)
	suite.ErrorIs(authErr, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindCredentialsByUsername", ctx, "nobody").Return(nil, "", apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "nobody", "irrelevant")

	// An unknown username is indistinguishable from a wrong password.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

// --- UpdateUser Tests ---
func (suite *UserServiceTestSuite) TestUpdateUser_SelfRename() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Name: "Old Name", Role: domain.RoleStaff}
	newName := "New Name"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Twice()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID && user.Name == newName && user.Role == domain.RoleStaff
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &newName}, userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserWithoutManageRights() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	targetID := uuid.NewString()
	requester := &domain.User{UserID: requesterID, Role: domain.RoleStaff}
	newName := "Hijacked"

	suite.mockUserRepo.On("FindUserByID", ctx, requesterID).Return(requester, nil).Once()

	updated, err := suite.service.UpdateUser(ctx, targetID, dto.UpdateUserRequest{Name: &newName}, requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RoleChangeRequiresManageRights() {
	ctx := context.Background()
	userID := uuid.NewString()
	requester := &domain.User{UserID: userID, Role: domain.RoleApprover}
	ownerRole := domain.RoleOwner

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(requester, nil).Once()

	// Self-update, but promoting one's own role is still gated.
	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &ownerRole}, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OwnerChangesRole() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	targetID := uuid.NewString()
	owner := &domain.User{UserID: ownerID, Role: domain.RoleOwner}
	target := &domain.User{UserID: targetID, Name: "Promotee", Role: domain.RoleStaff}
	approverRole := domain.RoleApprover

	suite.mockUserRepo.On("FindUserByID", ctx, ownerID).Return(owner, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(target, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == targetID && user.Role == domain.RoleApprover && user.LastUpdatedBy == ownerID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, targetID, dto.UpdateUserRequest{Role: &approverRole}, ownerID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleApprover, updated.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---
func (suite *UserServiceTestSuite) TestDeleteUser_OtherUserForbidden() {
	ctx := context.Background()
	requesterID := uuid.NewString()
	targetID := uuid.NewString()
	requester := &domain.User{UserID: requesterID, Role: domain.RoleStaff}

	suite.mockUserRepo.On("FindUserByID", ctx, requesterID).Return(requester, nil).Once()

	err := suite.service.DeleteUser(ctx, targetID, requesterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Refresh token Tests ---
func (suite *UserServiceTestSuite) TestUpdateRefreshToken_StoresHashAndExpiry() {
	ctx := context.Background()
	userID := uuid.NewString()
	hash := "sha256-of-the-token"
	expiry := time.Now().UTC().Add(24 * time.Hour)

	suite.mockUserRepo.On("UpdateRefreshTokenHash", ctx, userID, mock.MatchedBy(func(h *string) bool {
		return h != nil && *h == hash
	}), mock.MatchedBy(func(t *time.Time) bool {
		return t != nil && t.Equal(expiry)
	})).Return(nil).Once()

	err := suite.service.UpdateRefreshToken(ctx, userID, hash, expiry)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken_NilsBothColumns() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateRefreshTokenHash", ctx, userID, (*string)(nil), (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
