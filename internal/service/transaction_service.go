package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dafibh/finai/finai-web/internal/chart"
	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/rs/zerolog"
)

// TransactionsService handles the history table, its pager and the chart
type TransactionsService struct {
	transactionRepo domain.TransactionRepository
	location        *time.Location
	logger          zerolog.Logger
}

// NewTransactionsService creates a new TransactionsService. Timestamps are
// displayed in loc.
func NewTransactionsService(transactionRepo domain.TransactionRepository, loc *time.Location, logger zerolog.Logger) *TransactionsService {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionsService{
		transactionRepo: transactionRepo,
		location:        loc,
		logger:          logger.With().Str("component", "transactions").Logger(),
	}
}

// LoadPage requests page and returns the table with the pager state the
// server confirmed. If the request fails the table is empty and state is
// returned unchanged.
func (s *TransactionsService) LoadPage(ctx context.Context, state domain.PagerState, page int) (view.TransactionTable, domain.PagerState) {
	p, err := s.transactionRepo.GetPage(ctx, page)
	if err != nil || p == nil {
		s.logger.Warn().Err(err).Int("page", page).Msg("Failed to load transactions")
		return view.TransactionTable{
			Rows:       []view.TransactionRow{},
			Page:       state.Page,
			TotalPages: state.TotalPages,
			PageInfo:   view.PageInfo(state.Page, state.TotalPages),
		}, state
	}

	table := view.Transactions(*p, s.location)
	return table, state.Confirm(p.Page, p.TotalPages)
}

// Next loads the page after the current one
func (s *TransactionsService) Next(ctx context.Context, state domain.PagerState) (view.TransactionTable, domain.PagerState) {
	return s.LoadPage(ctx, state, state.NextPage())
}

// Prev loads the page before the current one, never going below the first
func (s *TransactionsService) Prev(ctx context.Context, state domain.PagerState) (view.TransactionTable, domain.PagerState) {
	return s.LoadPage(ctx, state, state.PrevPage())
}

// RenderChart fetches the chart series and returns it drawn as PNG.
// A failed fetch draws an empty canvas.
func (s *TransactionsService) RenderChart(ctx context.Context, width, height int) ([]byte, error) {
	var series chart.Series
	data, err := s.transactionRepo.GetChartData(ctx)
	if err != nil || data == nil {
		s.logger.Warn().Err(err).Msg("Failed to load chart data")
	} else {
		series = chart.Window(*data)
	}

	var buf bytes.Buffer
	if err := chart.EncodePNG(&buf, chart.Render(series, width, height)); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
