package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/labstack/echo/v4"
)

// GoalHandler handles savings goals
type GoalHandler struct {
	goalsService *service.GoalsService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalsService *service.GoalsService) *GoalHandler {
	return &GoalHandler{goalsService: goalsService}
}

// Show handles GET /goals
func (h *GoalHandler) Show(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	page := h.goalsService.Page(c.Request().Context())
	sess.SetGoals(page.Goals)
	return render(c, pageGoals, pageGoals, page.Notice, page)
}

// Create handles POST /goals
func (h *GoalHandler) Create(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	var form view.GoalForm
	if err := c.Bind(&form); err != nil {
		return NewValidationError(c, "Invalid form", nil)
	}

	page := h.goalsService.Create(c.Request().Context(), form, sess.Goals())
	sess.SetGoals(page.Goals)
	return render(c, pageGoals, pageGoals, page.Notice, page)
}

// Contribute handles POST /goals/:id/contribute
func (h *GoalHandler) Contribute(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	goalID, ok := parseID(c, "id")
	if !ok {
		return invalidIDError(c, "id")
	}
	monthIndex, err := strconv.Atoi(c.FormValue("month_index"))
	if err != nil || monthIndex < 1 {
		return NewValidationError(c, "Invalid month_index", []ValidationError{{Field: "month_index", Message: "Must be a positive integer"}})
	}

	page, err := h.goalsService.Contribute(c.Request().Context(), goalID, monthIndex, sess.Goals())
	sess.SetGoals(page.Goals)

	switch {
	case errors.Is(err, domain.ErrSlotContributed):
		return renderStatus(c, http.StatusConflict, pageGoals, pageGoals, page.Notice, page)
	case errors.Is(err, domain.ErrSlotNotFound):
		return renderStatus(c, http.StatusNotFound, pageGoals, pageGoals, page.Notice, page)
	case err != nil:
		return err
	}
	return render(c, pageGoals, pageGoals, page.Notice, page)
}
