package middleware

import (
	"context"
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"studyhub/internal/auth"
	apperrors "studyhub/internal/errors"
	"studyhub/internal/metrics"
	"studyhub/internal/model"
)

// TokenHeader carries the session token on protected requests.
const TokenHeader = "x-access-token"

const (
	claimsKey = "claims"
	userKey   = "user"
)

// UserFinder loads the user a verified token names.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
}

// Authorize returns the middleware chain guarding protected routes. Every
// rejection produces the same 401 body; the reason only reaches metrics.
func Authorize(tokens *auth.JWTService, users UserFinder, m *metrics.Metrics) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + TokenHeader,
		ContextKey:  claimsKey,
		ParseTokenFunc: func(_ echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			if c.Request().Header.Get(TokenHeader) == "" {
				m.AuthFailure(metrics.AuthMissingToken)
			} else {
				m.AuthFailure(metrics.AuthInvalidToken)
			}
			return unauthorized()
		},
	})
	return []echo.MiddlewareFunc{verify, loadUser(users, m)}
}

func loadUser(users UserFinder, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*auth.Claims)
			if !ok {
				m.AuthFailure(metrics.AuthInvalidToken)
				return unauthorized()
			}
			c.Set(claimsKey, nil)

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					m.AuthFailure(metrics.AuthUnknownUser)
					return unauthorized()
				}
				httpErr := apperrors.MapErrorToHTTP(apperrors.Store("load user", err))
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Authorize, or nil on public routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userKey).(*model.User)
	return user
}

func unauthorized() error {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
	return echo.NewHTTPError(http.StatusUnauthorized, httpErr.ToErrorResponse())
}
