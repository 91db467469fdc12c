package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserVerifier checks that a user id extracted from a token still refers to a
// live (non-deleted) account. The user domain package implements it.
type UserVerifier interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Skipper reports whether a request bypasses authentication.
type Skipper func(c echo.Context) bool

// DefaultSkipper exempts the liveness endpoint and the auth endpoints that
// issue tokens in the first place.
func DefaultSkipper(c echo.Context) bool {
	path := c.Request().URL.Path
	if path == "/" || strings.HasPrefix(path, "/health") {
		return true
	}
	return path == "/api/auth/register" || path == "/api/auth/login"
}

// Middleware returns echo middleware that authenticates requests with a
// bearer access token. On success the user id is placed on the request
// context; every failure maps to 401.
func Middleware(issuer *TokenIssuer, users UserVerifier, skip Skipper) echo.MiddlewareFunc {
	if skip == nil {
		skip = DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip(c) {
				return next(c)
			}

			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := issuer.Parse(parts[1])
			if err != nil {
				if err == ErrTokenExpired {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Type != TokenTypeAccess {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token type")
			}

			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			exists, err := users.UserExists(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "user lookup failed")
			}
			if !exists {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}

			ctx := WithUserID(c.Request().Context(), userID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// MustUserID returns the authenticated user id or panics. Handlers behind
// Middleware can rely on it being present; the recovery middleware turns a
// violation into a 500.
func MustUserID(c echo.Context) uuid.UUID {
	id, ok := UserIDFromContext(c.Request().Context())
	if !ok {
		panic("auth: no user on request context")
	}
	return id
}
