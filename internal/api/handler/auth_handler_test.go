package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/api/handler"
	"github.com/funews/news-management-system/internal/core/domain"
	"github.com/funews/news-management-system/internal/core/ports"
)

type stubAuthService struct {
	loginPair   *ports.TokenPair
	loginErr    error
	refreshPair *ports.TokenPair
	refreshErr  error

	gotEmail    string
	gotPassword string
	gotRefresh  string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*ports.TokenPair, *domain.Identity, error) {
	s.gotEmail, s.gotPassword = email, password
	if s.loginErr != nil {
		return nil, nil, s.loginErr
	}
	return s.loginPair, &domain.Identity{ID: 7, Email: email, Role: domain.RoleStaff}, nil
}

func (s *stubAuthService) Refresh(_ context.Context, refreshToken string) (*ports.TokenPair, error) {
	s.gotRefresh = refreshToken
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return s.refreshPair, nil
}

var _ ports.AuthService = (*stubAuthService)(nil)

func newAuthEcho(svc *stubAuthService) *echo.Echo {
	e := newTestEcho()
	h := handler.NewAuthHandler(svc)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/refresh", h.Refresh)
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{loginPair: &ports.TokenPair{Token: "jwt-abc", RefreshToken: "refresh-xyz"}}
	e := newAuthEcho(svc)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"staff@funews.example","password":"s3cret-pass"}`, "")

	env := assertEnvelope(t, rec, http.StatusOK, "Login successful.")
	var data struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Token != "jwt-abc" || data.RefreshToken != "refresh-xyz" {
		t.Fatalf("unexpected token pair: %+v", data)
	}
	if svc.gotEmail != "staff@funews.example" || svc.gotPassword != "s3cret-pass" {
		t.Fatalf("credentials not forwarded: %q / %q", svc.gotEmail, svc.gotPassword)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	e := newAuthEcho(svc)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"staff@funews.example","password":"wrong"}`, "")

	assertEnvelope(t, rec, http.StatusUnauthorized, "Invalid email or password.")
}

func TestAuthHandler_Login_AccessDenied(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrAccessDenied}
	e := newAuthEcho(svc)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"lecturer@funews.example","password":"pass-1234"}`, "")

	assertEnvelope(t, rec, http.StatusForbidden, "Access denied. Only Admin and Staff can login.")
}

// A malformed address is just a credential that matches no account: it must
// reach the service and come back as the uniform 401, not a validation 400.
func TestAuthHandler_Login_MalformedEmail(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	e := newAuthEcho(svc)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/login",
		`{"email":"not-an-email","password":"pass"}`, "")

	assertEnvelope(t, rec, http.StatusUnauthorized, "Invalid email or password.")
	if svc.gotEmail != "not-an-email" {
		t.Fatalf("email not forwarded to service: %q", svc.gotEmail)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	svc := &stubAuthService{refreshPair: &ports.TokenPair{Token: "jwt-2", RefreshToken: "refresh-2"}}
	e := newAuthEcho(svc)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/refresh",
		`{"refreshToken":"refresh-1"}`, "")

	assertEnvelope(t, rec, http.StatusOK, "Token refreshed.")
	if svc.gotRefresh != "refresh-1" {
		t.Fatalf("refresh credential not forwarded: %q", svc.gotRefresh)
	}
}

func TestAuthHandler_Refresh_Invalid(t *testing.T) {
	svc := &stubAuthService{refreshErr: domain.ErrInvalidRefreshToken}
	e := newAuthEcho(svc)

	rec := doRequest(t, e, http.MethodPost, "/api/auth/refresh",
		`{"refreshToken":"already-used"}`, "")

	assertEnvelope(t, rec, http.StatusUnauthorized, "Invalid refresh token.")
}
