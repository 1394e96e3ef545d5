package repositories

import (
	"context"
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their login username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User, username string, passwordHash string) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshTokenHash stores the hash and expiry of a user's refresh token.
	UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string, expiry *time.Time) error
}

// UserAuthReader defines read operations the authentication flow needs
type UserAuthReader interface {
	// FindCredentialsByUsername retrieves the user and stored password hash for login.
	FindCredentialsByUsername(ctx context.Context, username string) (*domain.User, string, error)

	// FindRefreshTokenHash retrieves the stored refresh token hash and expiry for a user.
	FindRefreshTokenHash(ctx context.Context, userID string) (*string, *time.Time, error)
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserAuthReader
	UserLifecycleManager
}
