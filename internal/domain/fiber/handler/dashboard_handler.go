package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/dinesh-manogaran/Career-Compass/internal/dto"
	"github.com/dinesh-manogaran/Career-Compass/internal/middleware"
	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/dinesh-manogaran/Career-Compass/internal/session"
	"github.com/dinesh-manogaran/Career-Compass/internal/usecase"
	"github.com/dinesh-manogaran/Career-Compass/internal/util"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler exposes the protected view: the match analyzer and the
// career Q&A section.
type DashboardHandler struct {
	match *usecase.MatchController
	query *usecase.QueryController
	store session.Store
}

func NewDashboardHandler(match *usecase.MatchController, query *usecase.QueryController, store session.Store) *DashboardHandler {
	return &DashboardHandler{match: match, query: query, store: store}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/dashboard", middleware.DashboardGuard(h.store))
	group.Get("/", h.View)
	group.Post("/files", h.UploadFiles)
	group.Post("/analyze", middleware.RateLimiter(1, 4*time.Second), h.Analyze)
	group.Post("/query", h.Ask)
	group.Post("/query/clear", h.ClearQuery)
}

func (h *DashboardHandler) View(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: dto.DashboardViewDTO{
			Match: h.match.Snapshot(),
			Query: h.query.Snapshot(),
		},
	})
}

// UploadFiles fills one or both file slots from a multipart form. Each slot
// is validated independently; an oversized file empties its slot and the
// other slot is untouched.
func (h *DashboardHandler) UploadFiles(c *fiber.Ctx) error {
	received := false
	var rejections []error

	// One rejected slot must not stop the other from being processed.
	if fh, err := c.FormFile("jd_file"); err == nil {
		received = true
		if err := h.selectSlot(fh, h.match.SelectJobDescription); err != nil {
			rejections = append(rejections, err)
		}
	}
	if fh, err := c.FormFile("resume_file"); err == nil {
		received = true
		if err := h.selectSlot(fh, h.match.SelectResume); err != nil {
			rejections = append(rejections, err)
		}
	}

	if !received {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jd_file or resume_file is required",
		})
	}
	if len(rejections) > 0 {
		return h.slotRejection(c, rejections)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.match.Snapshot(),
	})
}

func (h *DashboardHandler) selectSlot(fh *multipart.FileHeader, selectFn func(*model.UploadedDocument) error) error {
	// The size rule is checked on the header before the body is read, so an
	// oversized upload is never buffered in full.
	doc := &model.UploadedDocument{Name: fh.Filename, SizeBytes: fh.Size}
	if doc.TooLarge() {
		return selectFn(doc)
	}

	file, err := fh.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	doc.Data, err = io.ReadAll(file)
	if err != nil {
		return err
	}
	return selectFn(doc)
}

func (h *DashboardHandler) slotRejection(c *fiber.Ctx, errs []error) error {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		var tooLarge *usecase.ErrFileTooLarge
		if !errors.As(err, &tooLarge) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot read uploaded file",
			}, err)
		}
		messages = append(messages, tooLarge.Error())
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: strings.Join(messages, " "),
	})
}

// Analyze runs one analysis attempt. A lost session sends the user back to
// the entry view instead of rendering an inline error.
func (h *DashboardHandler) Analyze(c *fiber.Ctx) error {
	if redirect := h.match.Analyze(c.UserContext()); redirect {
		return c.Redirect("/", fiber.StatusFound)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.match.Snapshot(),
	})
}

func (h *DashboardHandler) Ask(c *fiber.Ctx) error {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	h.query.Ask(c.UserContext(), req.Question)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.query.Snapshot(),
	})
}

func (h *DashboardHandler) ClearQuery(c *fiber.Ctx) error {
	h.query.Clear()
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: h.query.Snapshot(),
	})
}
