package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/core/domain"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// Config carries the token-verification settings. Issuer and audience are
// matched exactly and expiry is checked with zero clock-skew leeway.
type Config struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

// Auth validates the bearer token and injects the identity into the context.
// Every failure (missing header, malformed token, wrong signer, expired,
// unknown role) maps to 401; nothing panics past this boundary.
func Auth(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims,
				func(token *jwt.Token) (interface{}, error) {
					if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
						return nil, jwt.ErrTokenSignatureInvalid
					}
					return []byte(cfg.JWTSecret), nil
				},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithIssuer(cfg.Issuer),
				jwt.WithAudience(cfg.Audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			identity, err := identityFromClaims(claims)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(identityKey, *identity)
			return next(c)
		}
	}
}

// IdentityFromContext returns the identity injected by Auth. The second
// return is false when the middleware did not run on this route.
func IdentityFromContext(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// identityFromClaims rebuilds the identity from verified claims. The role
// claim must parse into the closed {Admin, Staff} set; any other value is
// rejected here, at the verification boundary.
func identityFromClaims(claims jwt.MapClaims) (*domain.Identity, error) {
	sub, err := claims.GetSubject()
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, err
	}

	rawRole, ok := claims["role"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	role, err := domain.ParseRole(int(rawRole))
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	return &domain.Identity{ID: id, Email: email, Role: role}, nil
}
