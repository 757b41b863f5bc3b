package ports

import (
	"context"
	"time"

	"github.com/funews/news-management-system/internal/core/domain"
)

// TokenPair bundles an access token with its single-use refresh credential.
type TokenPair struct {
	Token        string
	RefreshToken string
}

type AuthService interface {
	// Login authenticates an email/password pair and issues a token pair.
	// Returns domain.ErrInvalidCredentials for a bad pair and
	// domain.ErrAccessDenied when the stored role is outside {Admin, Staff}.
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.Identity, error)
	// Refresh exchanges a refresh credential for a new token pair. The
	// credential is single-use; an unknown or already-used one yields
	// domain.ErrInvalidRefreshToken.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// RefreshTokenStore persists refresh credentials between issue and exchange.
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	// Take atomically retrieves and invalidates the credential, enforcing
	// single use. Returns domain.ErrInvalidRefreshToken when absent.
	Take(ctx context.Context, token string) (*domain.Identity, error)
}
