package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every page handler the router needs
type Handlers struct {
	Dashboard    *DashboardHandler
	Transactions *TransactionHandler
	Bills        *BillHandler
	Goals        *GoalHandler
	Learning     *LearningHandler
	Advisor      *AdvisorHandler
	WebSocket    *WebSocketHandler
}

// RegisterRoutes sets up every page route. pageMiddleware runs on all pages
// (session, rate limiting); health and static assets skip it.
func RegisterRoutes(e *echo.Echo, h Handlers, pageMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", Health)
	e.StaticFS("/static", StaticFS())

	pages := e.Group("", pageMiddleware...)

	pages.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/dashboard")
	})

	pages.GET("/dashboard", h.Dashboard.Show)
	pages.POST("/dashboard/transactions", h.Dashboard.CreateTransaction)

	pages.GET("/transactions", h.Transactions.Show)
	pages.GET("/transactions/next", h.Transactions.Next)
	pages.GET("/transactions/prev", h.Transactions.Prev)
	pages.GET("/transactions/chart.png", h.Transactions.Chart)

	pages.GET("/bills", h.Bills.Show)
	pages.POST("/bills", h.Bills.Create)
	pages.POST("/bills/:id/paid", h.Bills.MarkPaid)
	pages.POST("/bills/:id/delete", h.Bills.Delete)
	pages.DELETE("/bills/:id", h.Bills.Delete)

	pages.GET("/goals", h.Goals.Show)
	pages.POST("/goals", h.Goals.Create)
	pages.POST("/goals/:id/contribute", h.Goals.Contribute)

	pages.GET("/learning", h.Learning.Show)
	pages.POST("/learning", h.Learning.Create)

	pages.GET("/advisor", h.Advisor.Show)
	pages.POST("/advisor/open", h.Advisor.Open)
	pages.POST("/advisor/messages", h.Advisor.Say)
	pages.GET("/advisor/ws", h.WebSocket.HandleWS)
}

// Health handles GET /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
