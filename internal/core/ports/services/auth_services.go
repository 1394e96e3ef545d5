package services

import (
	"context"
	"time"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and verifies access and refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken checks a raw refresh token against the
	// user's stored hash and expiry, returning the user when it matches.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade covers the Google sign-in flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString produces the CSRF state parameter for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL builds the consent-screen URL for the given state.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken trades an authorization code for an OAuth token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo fetches the Google profile behind an access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken verifies an ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
