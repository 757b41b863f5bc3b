package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/funews/news-management-system/internal/api/metrics"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

const refreshTokenBytes = 32

// AuthConfig carries the credential-verifier settings.
type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	Audience   string
	TokenTTL   time.Duration
	RefreshTTL time.Duration

	// AdminEmail/AdminPassword form the configured admin override: a login
	// matching both yields a synthetic Admin identity with id 0, bypassing
	// the account store entirely.
	AdminEmail    string
	AdminPassword string
}

// AuthService implements login and refresh-token rotation.
type AuthService struct {
	repo    ports.AccountRepository
	refresh ports.RefreshTokenStore
	cfg     AuthConfig
}

func NewAuthService(repo ports.AccountRepository, refresh ports.RefreshTokenStore, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{repo: repo, refresh: refresh, cfg: cfg}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.Identity, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	identity, err := s.authenticate(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccessDenied):
			metrics.LoginsTotal.WithLabelValues("access_denied").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return nil, nil, err
	}

	pair, err := s.issue(ctx, *identity)
	if err != nil {
		return nil, nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return pair, identity, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if refreshToken == "" {
		metrics.TokenRefreshTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidRefreshToken
	}

	identity, err := s.refresh.Take(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			metrics.TokenRefreshTotal.WithLabelValues("invalid").Inc()
		}
		return nil, err
	}

	pair, err := s.issue(ctx, *identity)
	if err != nil {
		return nil, err
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	return pair, nil
}

// authenticate resolves an email/password pair to an identity. The configured
// admin override is checked first with constant-time comparison; everything
// else goes through the account store and bcrypt.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	if s.cfg.AdminEmail != "" &&
		subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.AdminEmail)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1 {
		return &domain.Identity{ID: 0, Email: s.cfg.AdminEmail, Role: domain.RoleAdmin}, nil
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Only Admin and Staff may authenticate; reject anything else with a
	// failure distinct from bad credentials.
	if !account.AccountRole.Valid() {
		return nil, domain.ErrAccessDenied
	}

	return &domain.Identity{
		ID:    account.AccountID,
		Email: account.AccountEmail,
		Role:  account.AccountRole,
	}, nil
}

// issue signs an access token for the identity and persists a fresh
// single-use refresh credential.
func (s *AuthService) issue(ctx context.Context, identity domain.Identity) (*ports.TokenPair, error) {
	token, err := s.generateToken(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := s.refresh.Save(ctx, refreshToken, identity, s.cfg.RefreshTTL); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &ports.TokenPair{Token: token, RefreshToken: refreshToken}, nil
}

func (s *AuthService) generateToken(identity domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(identity.ID, 10),
		"email": identity.Email,
		"role":  int(identity.Role),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"iss":   s.cfg.Issuer,
		"aud":   s.cfg.Audience,
		"exp":   now.Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// HashPassword is the single place passwords are hashed before storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
