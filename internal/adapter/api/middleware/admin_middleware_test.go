package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAdminOnly(t *testing.T, m *AdminMiddleware, email string, verified bool) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/tickets/x/premium", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
	}
	c.Set("emailVerified", verified)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return m.AdminOnly(next)(c)
}

func TestAdminOnly(t *testing.T) {
	m := NewAdminMiddleware([]string{"admin@example.com"})

	assert.NoError(t, runAdminOnly(t, m, "admin@example.com", true))

	cases := []struct {
		name     string
		email    string
		verified bool
	}{
		{"no identity", "", false},
		{"unverified admin", "admin@example.com", false},
		{"verified non-admin", "user@example.com", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := runAdminOnly(t, m, tc.email, tc.verified)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusForbidden, httpErr.Code)
		})
	}
}

func TestAdminOnlyEmptyList(t *testing.T) {
	m := NewAdminMiddleware(nil)
	err := runAdminOnly(t, m, "admin@example.com", true)
	require.Error(t, err)
}
