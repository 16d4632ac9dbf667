package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ticketboom/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *firebase.AuthClient
}

func NewAuthMiddleware(authClient *firebase.AuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// Authenticate verifies the bearer ID token and stores the caller's uid,
// email and verification state in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		email, _ := token.Claims["email"].(string)
		verified, _ := token.Claims["email_verified"].(bool)

		c.Set("uid", token.UID)
		c.Set("email", email)
		c.Set("emailVerified", verified)

		return next(c)
	}
}

// RequireVerifiedEmail gates routes that the web app only exposes to users
// whose address has been confirmed.
func (m *AuthMiddleware) RequireVerifiedEmail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		verified, _ := c.Get("emailVerified").(bool)
		if !verified {
			return echo.NewHTTPError(http.StatusForbidden, "E-mail address must be verified")
		}
		return next(c)
	}
}
