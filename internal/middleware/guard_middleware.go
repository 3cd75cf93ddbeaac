package middleware

import (
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/gofiber/fiber/v2"
)

// View identifies which of the two client views is being entered.
type View int

const (
	ViewEntry View = iota
	ViewDashboard
)

// Decision is what the route guard wants done before the view renders.
type Decision int

const (
	DecisionAllow Decision = iota
	DecisionRedirectEntry
	DecisionRedirectDashboard
)

// Decide is the route guard as a pure function: an authenticated user never
// sees the entry view, an unauthenticated one never sees the dashboard.
func Decide(hasSession bool, view View) Decision {
	switch view {
	case ViewEntry:
		if hasSession {
			return DecisionRedirectDashboard
		}
	case ViewDashboard:
		if !hasSession {
			return DecisionRedirectEntry
		}
	}
	return DecisionAllow
}

// EntryGuard keeps already-authenticated users off the entry view. The
// redirect happens before the handler runs, so the login form never flashes.
func EntryGuard(store session.Store) fiber.Handler {
	return guard(store, ViewEntry)
}

// DashboardGuard keeps unauthenticated users off the protected view.
func DashboardGuard(store session.Store) fiber.Handler {
	return guard(store, ViewDashboard)
}

func guard(store session.Store, view View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch Decide(store.Has(), view) {
		case DecisionRedirectEntry:
			return c.Redirect("/", fiber.StatusFound)
		case DecisionRedirectDashboard:
			return c.Redirect("/dashboard", fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}
