package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AdminMiddleware struct {
	adminEmails []string
}

func NewAdminMiddleware(adminEmails []string) *AdminMiddleware {
	return &AdminMiddleware{
		adminEmails: adminEmails,
	}
}

// AdminOnly admits only the configured administrator identities. Runs after
// Authenticate.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, _ := c.Get("email").(string)
		verified, _ := c.Get("emailVerified").(bool)

		if email == "" || !verified || !m.isAdmin(email) {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}

		return next(c)
	}
}

func (m *AdminMiddleware) isAdmin(email string) bool {
	for _, admin := range m.adminEmails {
		if admin == email {
			return true
		}
	}
	return false
}
