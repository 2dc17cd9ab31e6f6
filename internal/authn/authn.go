// Package authn is the authentication gate in front of user-scoped routes.
//
// A request passes only when the x-auth header carries a token that verifies
// and is still listed on its user. Everything else is answered with an empty
// 401 and the handler never runs.
package authn

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"trainingdiary/internal/auth"
	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/model"
	"trainingdiary/internal/service"
)

// HeaderAuth carries the token on requests and on register/login responses.
const HeaderAuth = "x-auth"

const (
	claimsKey = "authn.claims"
	tokenKey  = "authn.token"
	userKey   = "authn.user"
)

// TokenVerifier verifies a raw token. *auth.TokenService implements it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// VerifyToken checks the signature and purpose of the x-auth token and stores
// its claims on the context.
func VerifyToken(tokens TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + HeaderAuth,
		ContextKey:  claimsKey,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := tokens.Verify(raw)
			if err != nil {
				return nil, err
			}
			if claims.Access != model.AccessAuth {
				return nil, apperrors.ErrInvalidToken
			}
			c.Set(tokenKey, raw)
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.NoContent(http.StatusUnauthorized)
		},
	})
}

// RequireUser resolves the verified claims to a user still holding the token.
// It must run after VerifyToken.
func RequireUser(users service.UserService, log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(*auth.Claims)
			token, _ := c.Get(tokenKey).(string)
			if !ok || token == "" {
				return c.NoContent(http.StatusUnauthorized)
			}

			ctx := c.Request().Context()
			user, err := users.Resolve(ctx, claims.UserID, token)
			if err != nil {
				if !errors.Is(err, apperrors.ErrUnauthorized) {
					log.Error(ctx, "resolve user", "user_id", claims.UserID, "error", err)
				}
				return c.NoContent(http.StatusUnauthorized)
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// Required chains VerifyToken and RequireUser.
func Required(tokens TokenVerifier, users service.UserService, log logging.Logger) echo.MiddlewareFunc {
	verify := VerifyToken(tokens)
	require := RequireUser(users, log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(require(next))
	}
}

// CurrentUser returns the user resolved by the gate, or nil on public routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userKey).(*model.User)
	return user
}

// CurrentToken returns the raw token the request was authenticated with.
func CurrentToken(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}
