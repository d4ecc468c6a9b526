package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"securehub/internal/auth"
	"securehub/internal/repository"
)

const identityContextKey = "identity"

// BearerAuth verifies the Authorization bearer token's signature and expiry.
// A missing token and an invalid one are rejected with distinct messages, both
// as 401.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		ErrorHandler: func(c echo.Context, err error) error {
			message := "Token is not valid"
			if errors.Is(err, echojwt.ErrJWTMissing) {
				message = "No token, authorization denied"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, message)
		},
	})
}

// LoadIdentity resolves the verified token's subject against the user store and
// attaches the caller's Identity to the request context. A subject that no
// longer exists is treated as an invalid token, not as a distinct error.
func LoadIdentity(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return invalidToken()
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return invalidToken()
			}
			subject, ok := claims["user_id"].(string)
			if !ok {
				return invalidToken()
			}
			userID, err := uuid.Parse(subject)
			if err != nil {
				return invalidToken()
			}

			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil {
				return invalidToken()
			}

			c.Set(identityContextKey, auth.NewIdentity(user))
			return next(c)
		}
	}
}

// RequireAdmin rejects callers without the admin flag. It relies on the
// identity attached by LoadIdentity and never re-verifies the token.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}
		return next(c)
	}
}

// IdentityFrom returns the authenticated caller attached to the request.
func IdentityFrom(c echo.Context) (auth.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(auth.Identity)
	return identity, ok
}

func invalidToken() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
}
