package services

import (
	"context"
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"github.com/nusankara/erp_backoffice/internal/dto"
)

// UserReaderSvc provides read access to user accounts.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListUsers pages through users with limit/offset.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc mutates user accounts and their refresh token state.
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	// UpdateUser applies the changes in req; requestingUserID is the actor
	// recorded on the row.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)
	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	// ClearRefreshToken revokes the user's refresh token on logout.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc handles account removal.
type UserLifecycleSvc interface {
	// DeleteUser soft-deletes the account.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc verifies credentials and refresh token state.
type UserAuthSvc interface {
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
	GetRefreshTokenDetails(ctx context.Context, userID string) (*string, *time.Time, error)
}

// UserSvcFacade is the full user service surface handed to handlers.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
