package handler

import (
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/middleware"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/session"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Show handles GET /dashboard
func (h *DashboardHandler) Show(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	page := h.dashboardService.Page(c.Request().Context(), sess.Totals())
	sess.SetTotals(page.Totals)
	return render(c, pageDashboard, pageDashboard, page.Notice, page)
}

// CreateTransaction handles POST /dashboard/transactions
func (h *DashboardHandler) CreateTransaction(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	var form view.TransactionForm
	if err := c.Bind(&form); err != nil {
		return NewValidationError(c, "Invalid form", nil)
	}

	page := h.dashboardService.SubmitTransaction(c.Request().Context(), form, sess.Totals())
	sess.SetTotals(page.Totals)
	return render(c, pageDashboard, pageDashboard, page.Notice, page)
}

// requireSession returns the browser session set by the session middleware
func requireSession(c echo.Context) (*session.Session, error) {
	sess := middleware.GetSession(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return sess, nil
}
