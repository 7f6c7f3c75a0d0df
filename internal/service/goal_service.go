package service

import (
	"context"
	"fmt"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/rs/zerolog"
)

// GoalsPage is everything the goals page renders
type GoalsPage struct {
	Goals  []view.GoalCard
	Form   view.GoalForm
	Notice *view.Notice
}

// GoalsService handles savings goals and their monthly contributions
type GoalsService struct {
	goalRepo domain.GoalRepository
	logger   zerolog.Logger
}

// NewGoalsService creates a new GoalsService
func NewGoalsService(goalRepo domain.GoalRepository, logger zerolog.Logger) *GoalsService {
	return &GoalsService{
		goalRepo: goalRepo,
		logger:   logger.With().Str("component", "goals").Logger(),
	}
}

// Page loads every goal card
func (s *GoalsService) Page(ctx context.Context) GoalsPage {
	goals, err := s.goalRepo.GetAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load goals")
		return GoalsPage{Goals: []view.GoalCard{}}
	}
	return GoalsPage{Goals: view.Goals(goals)}
}

// Create adds a goal and reloads. Failure keeps last and the form as submitted.
func (s *GoalsService) Create(ctx context.Context, form view.GoalForm, last []view.GoalCard) GoalsPage {
	if err := s.goalRepo.Create(ctx, form.Request()); err != nil {
		s.logger.Info().Err(err).Msg("Goal rejected")
		return GoalsPage{Goals: last, Form: form, Notice: view.ErrorNotice(err)}
	}

	page := s.Page(ctx)
	page.Notice = view.InfoNotice(NoticeGoalAdded)
	return page
}

// Contribute marks one month of a goal as contributed. The slot must be one
// of the rendered cards in last; disabled or unknown slots are rejected with
// no request. Success reloads without a notice.
func (s *GoalsService) Contribute(ctx context.Context, goalID int64, monthIndex int, last []view.GoalCard) (GoalsPage, error) {
	slot, ok := view.FindSlot(last, goalID, monthIndex)
	if !ok {
		err := fmt.Errorf("goal %d month %d: %w", goalID, monthIndex, domain.ErrSlotNotFound)
		return GoalsPage{Goals: last, Notice: &view.Notice{Level: view.NoticeError, Message: "Unknown month"}}, err
	}
	if slot.Disabled {
		err := fmt.Errorf("goal %d month %d: %w", goalID, monthIndex, domain.ErrSlotContributed)
		return GoalsPage{Goals: last, Notice: &view.Notice{Level: view.NoticeError, Message: "Already contributed"}}, err
	}

	if err := s.goalRepo.Contribute(ctx, slot.GoalID, slot.MonthIndex); err != nil {
		s.logger.Info().Err(err).Int64("goal_id", goalID).Int("month_index", monthIndex).Msg("Contribution rejected")
		return GoalsPage{Goals: last, Notice: view.ErrorNotice(err)}, nil
	}

	return s.Page(ctx), nil
}
