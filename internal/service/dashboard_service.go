package service

import (
	"context"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/rs/zerolog"
)

// DashboardPage is everything the dashboard renders
type DashboardPage struct {
	// Totals is nil until a summary has been loaded once
	Totals *view.TotalsView
	Form   view.TransactionForm
	Notice *view.Notice
}

// DashboardService handles the dashboard: totals and the new transaction form
type DashboardService struct {
	summaryRepo     domain.SummaryRepository
	transactionRepo domain.TransactionRepository
	logger          zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	summaryRepo domain.SummaryRepository,
	transactionRepo domain.TransactionRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		summaryRepo:     summaryRepo,
		transactionRepo: transactionRepo,
		logger:          logger.With().Str("component", "dashboard").Logger(),
	}
}

// LoadSummary fetches the totals. Failures are not shown to the user:
// the result is nil and the caller keeps whatever it rendered before.
func (s *DashboardService) LoadSummary(ctx context.Context) *view.TotalsView {
	totals, err := s.summaryRepo.GetSummary(ctx)
	if err != nil || totals == nil {
		s.logger.Debug().Err(err).Msg("Summary unavailable")
		return nil
	}
	v := view.Totals(*totals)
	return &v
}

// Page loads the dashboard. last is the previously rendered totals, kept when
// the summary cannot be loaded.
func (s *DashboardService) Page(ctx context.Context, last *view.TotalsView) DashboardPage {
	totals := s.LoadSummary(ctx)
	if totals == nil {
		totals = last
	}
	return DashboardPage{Totals: totals}
}

// SubmitTransaction creates a transaction. On success the totals come from
// the create response itself and the form is cleared; on failure the form is
// returned as submitted and the totals stay at last.
func (s *DashboardService) SubmitTransaction(ctx context.Context, form view.TransactionForm, last *view.TotalsView) DashboardPage {
	totals, err := s.transactionRepo.Create(ctx, form.Request())
	if err != nil {
		s.logger.Info().Err(err).Str("type", form.Type).Msg("Transaction rejected")
		return DashboardPage{Totals: last, Form: form, Notice: view.ErrorNotice(err)}
	}

	page := DashboardPage{Totals: last, Notice: view.InfoNotice(NoticeTransactionAdded)}
	if totals != nil {
		v := view.Totals(*totals)
		page.Totals = &v
	}
	return page
}
