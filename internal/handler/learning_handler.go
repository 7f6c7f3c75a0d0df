package handler

import (
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/labstack/echo/v4"
)

// LearningHandler handles the learning content page
type LearningHandler struct {
	learningService *service.LearningService
}

// NewLearningHandler creates a new LearningHandler
func NewLearningHandler(learningService *service.LearningService) *LearningHandler {
	return &LearningHandler{learningService: learningService}
}

// Show handles GET /learning
func (h *LearningHandler) Show(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	page := h.learningService.Page(c.Request().Context())
	sess.SetLearning(page.Items)
	return render(c, pageLearning, pageLearning, page.Notice, page)
}

// Create handles POST /learning
func (h *LearningHandler) Create(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	var form view.LearningForm
	if err := c.Bind(&form); err != nil {
		return NewValidationError(c, "Invalid form", nil)
	}

	page := h.learningService.Create(c.Request().Context(), form, sess.Learning())
	sess.SetLearning(page.Items)
	// the code is never echoed back
	page.Form.Code = ""
	return render(c, pageLearning, pageLearning, page.Notice, page)
}
