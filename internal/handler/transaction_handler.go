package handler

import (
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles the transaction history and its chart
type TransactionHandler struct {
	transactionsService *service.TransactionsService
	chartWidth          int
	chartHeight         int
}

// NewTransactionHandler creates a new TransactionHandler drawing charts of
// chartWidth x chartHeight pixels
func NewTransactionHandler(transactionsService *service.TransactionsService, chartWidth, chartHeight int) *TransactionHandler {
	return &TransactionHandler{
		transactionsService: transactionsService,
		chartWidth:          chartWidth,
		chartHeight:         chartHeight,
	}
}

// transactionsBody is the content of the transactions page
type transactionsBody struct {
	Table       view.TransactionTable
	ChartWidth  int
	ChartHeight int
}

// Show handles GET /transactions. Opening the page starts at the first page.
func (h *TransactionHandler) Show(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	table, state := h.transactionsService.LoadPage(c.Request().Context(), domain.NewPagerState(), domain.FirstPage)
	sess.SetPager(state)
	return h.render(c, table)
}

// Next handles GET /transactions/next
func (h *TransactionHandler) Next(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	table, state := h.transactionsService.Next(c.Request().Context(), sess.Pager())
	sess.SetPager(state)
	return h.render(c, table)
}

// Prev handles GET /transactions/prev
func (h *TransactionHandler) Prev(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}

	table, state := h.transactionsService.Prev(c.Request().Context(), sess.Pager())
	sess.SetPager(state)
	return h.render(c, table)
}

func (h *TransactionHandler) render(c echo.Context, table view.TransactionTable) error {
	return render(c, pageTransactions, pageTransactions, nil, transactionsBody{
		Table:       table,
		ChartWidth:  h.chartWidth,
		ChartHeight: h.chartHeight,
	})
}

// Chart handles GET /transactions/chart.png
func (h *TransactionHandler) Chart(c echo.Context) error {
	png, err := h.transactionsService.RenderChart(c.Request().Context(), h.chartWidth, h.chartHeight)
	if err != nil {
		log.Error().Err(err).Msg("Failed to render chart")
		return NewInternalError(c, "Failed to render chart")
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Blob(http.StatusOK, "image/png", png)
}
