package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dinesh-manogaran/Career-Compass/internal/middleware"
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		name       string
		hasSession bool
		view       middleware.View
		want       middleware.Decision
	}{
		{"anonymous on entry", false, middleware.ViewEntry, middleware.DecisionAllow},
		{"authenticated on entry", true, middleware.ViewEntry, middleware.DecisionRedirectDashboard},
		{"anonymous on dashboard", false, middleware.ViewDashboard, middleware.DecisionRedirectEntry},
		{"authenticated on dashboard", true, middleware.ViewDashboard, middleware.DecisionAllow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, middleware.Decide(tc.hasSession, tc.view))
		})
	}
}

func newGuardedApp(store session.Store) *fiber.App {
	app := fiber.New()
	app.Get("/", middleware.EntryGuard(store), func(c *fiber.Ctx) error {
		return c.SendString("entry")
	})
	app.Get("/dashboard", middleware.DashboardGuard(store), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})
	return app
}

func TestDashboardGuardRedirectsAnonymous(t *testing.T) {
	app := newGuardedApp(session.NewMemoryStore())

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestEntryGuardRedirectsAuthenticated(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set("tok"))
	app := newGuardedApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestGuardsAllowTheRightUser(t *testing.T) {
	store := session.NewMemoryStore()
	app := newGuardedApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, store.Set("tok"))
	resp, err = app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
