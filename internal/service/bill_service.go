package service

import (
	"context"
	"time"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/rs/zerolog"
)

// BillsPage is everything the bills page renders
type BillsPage struct {
	Bills   view.BillsView
	Form    view.BillForm
	Periods []string
	Notice  *view.Notice
}

// BillsService handles the bills list, bill creation and the paid/delete actions
type BillsService struct {
	billRepo domain.BillRepository
	now      func() time.Time
	logger   zerolog.Logger
}

// NewBillsService creates a new BillsService. now supplies the default date
// of the create form; nil means time.Now.
func NewBillsService(billRepo domain.BillRepository, now func() time.Time, logger zerolog.Logger) *BillsService {
	if now == nil {
		now = time.Now
	}
	return &BillsService{
		billRepo: billRepo,
		now:      now,
		logger:   logger.With().Str("component", "bills").Logger(),
	}
}

// DefaultForm is the create form as first shown: dated today
func (s *BillsService) DefaultForm() view.BillForm {
	return view.BillForm{Date: s.now().Format("2006-01-02")}
}

// Page loads both bill buckets with a fresh create form
func (s *BillsService) Page(ctx context.Context) BillsPage {
	page := s.load(ctx)
	page.Form = s.DefaultForm()
	return page
}

func (s *BillsService) load(ctx context.Context) BillsPage {
	page := BillsPage{Periods: domain.BillPeriods}
	buckets, err := s.billRepo.GetAll(ctx)
	if err != nil || buckets == nil {
		s.logger.Warn().Err(err).Msg("Failed to load bills")
		page.Bills = view.BillsView{Upcoming: []view.BillCard{}, All: []view.BillCard{}}
		return page
	}
	page.Bills = view.Bills(*buckets)
	return page
}

// Create adds a bill. Success reloads the list with every form field empty;
// failure keeps last and the form as submitted.
func (s *BillsService) Create(ctx context.Context, form view.BillForm, last view.BillsView) BillsPage {
	if err := s.billRepo.Create(ctx, form.Request()); err != nil {
		s.logger.Info().Err(err).Msg("Bill rejected")
		return BillsPage{Bills: last, Form: form, Periods: domain.BillPeriods, Notice: view.ErrorNotice(err)}
	}

	page := s.load(ctx)
	page.Notice = view.InfoNotice(NoticeBillAdded)
	return page
}

// MarkPaid asks for confirmation, then marks the bill paid and reloads.
// Returns domain.ErrNotConfirmed without any request when declined.
func (s *BillsService) MarkPaid(ctx context.Context, id int64, confirmer Confirmer, last view.BillsView) (BillsPage, error) {
	return s.confirmed(ctx, PromptMarkPaid, confirmer, last, NoticeMarkedPaid, func() error {
		return s.billRepo.MarkPaid(ctx, id)
	})
}

// Delete asks for confirmation, then deletes the bill and reloads.
// Returns domain.ErrNotConfirmed without any request when declined.
func (s *BillsService) Delete(ctx context.Context, id int64, confirmer Confirmer, last view.BillsView) (BillsPage, error) {
	return s.confirmed(ctx, PromptDeleteBill, confirmer, last, NoticeDeleted, func() error {
		return s.billRepo.Delete(ctx, id)
	})
}

func (s *BillsService) confirmed(
	ctx context.Context,
	prompt string,
	confirmer Confirmer,
	last view.BillsView,
	success string,
	mutate func() error,
) (BillsPage, error) {
	failed := BillsPage{Bills: last, Form: s.DefaultForm(), Periods: domain.BillPeriods}

	if confirmer == nil || !confirmer.Confirm(prompt) {
		return failed, domain.ErrNotConfirmed
	}

	if err := mutate(); err != nil {
		s.logger.Info().Err(err).Str("action", prompt).Msg("Bill action rejected")
		failed.Notice = view.ErrorNotice(err)
		return failed, nil
	}

	page := s.Page(ctx)
	page.Notice = view.InfoNotice(success)
	return page, nil
}
