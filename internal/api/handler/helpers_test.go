package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/funews/news-management-system/internal/api"
	"github.com/funews/news-management-system/internal/api/handler"
	"github.com/funews/news-management-system/internal/api/middleware"
	"github.com/funews/news-management-system/internal/core/domain"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "news-management-system"
	testAudience = "news-management-clients"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

func authMiddleware() echo.MiddlewareFunc {
	return middleware.Auth(middleware.Config{
		JWTSecret: testSecret,
		Issuer:    testIssuer,
		Audience:  testAudience,
	})
}

func bearerToken(t *testing.T, identity domain.Identity) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(identity.ID, 10),
		"email": identity.Email,
		"role":  int(identity.Role),
		"iat":   now.Unix(),
		"iss":   testIssuer,
		"aud":   testAudience,
		"exp":   now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

type envelope struct {
	Message    string          `json:"message"`
	StatusCode string          `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantCode int, wantMessage string) envelope {
	t.Helper()
	if rec.Code != wantCode {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, wantCode, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Message != wantMessage {
		t.Fatalf("message = %q, want %q", env.Message, wantMessage)
	}
	if want := strconv.Itoa(wantCode); env.StatusCode != want {
		t.Fatalf("statusCode = %q, want %q", env.StatusCode, want)
	}
	return env
}
