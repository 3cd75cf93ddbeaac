package handler

import (
	"github.com/dinesh-manogaran/Career-Compass/internal/middleware"
	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/dinesh-manogaran/Career-Compass/internal/usecase"
	"github.com/dinesh-manogaran/Career-Compass/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthHandler exposes the entry view and the auth flow around it.
type AuthHandler struct {
	auth  *usecase.AuthController
	store session.Store
}

func NewAuthHandler(auth *usecase.AuthController, store session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, store: store}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", middleware.EntryGuard(h.store), h.EntryView)

	group := app.Group("/auth")
	group.Post("/mode", h.SwitchMode)
	group.Post("/submit", h.Submit)
	group.Post("/forgot-password", h.ForgotPassword)
	group.Post("/logout", h.Logout)
}

func (h *AuthHandler) EntryView(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.auth.Snapshot(),
	})
}

func (h *AuthHandler) SwitchMode(c *fiber.Ctx) error {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	h.auth.SwitchMode(usecase.AuthMode(req.Mode))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.auth.Snapshot(),
	})
}

// Submit runs the current mode's flow. A successful login or signup chain
// lands on the dashboard; anything else re-renders the entry view with its
// message.
func (h *AuthHandler) Submit(c *fiber.Ctx) error {
	var creds model.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if h.auth.Submit(c.UserContext(), creds) {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.auth.Snapshot(),
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: h.auth.ForgotPassword(),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear session on logout")
	}
	return c.Redirect("/", fiber.StatusFound)
}
