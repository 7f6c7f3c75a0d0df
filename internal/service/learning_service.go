package service

import (
	"context"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/rs/zerolog"
)

// LearningPage is everything the learning page renders
type LearningPage struct {
	Items  []view.LearningCard
	Form   view.LearningForm
	Notice *view.Notice
}

// LearningService handles the learning content list
type LearningService struct {
	learningRepo domain.LearningRepository
	logger       zerolog.Logger
}

// NewLearningService creates a new LearningService
func NewLearningService(learningRepo domain.LearningRepository, logger zerolog.Logger) *LearningService {
	return &LearningService{
		learningRepo: learningRepo,
		logger:       logger.With().Str("component", "learning").Logger(),
	}
}

// Page loads the learning cards. A failed load is not shown to the user.
func (s *LearningService) Page(ctx context.Context) LearningPage {
	items, err := s.learningRepo.GetAll(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Learning content unavailable")
		return LearningPage{Items: []view.LearningCard{}}
	}
	return LearningPage{Items: view.Learning(items)}
}

// Create adds a learning entry and reloads. The server checks the code;
// failure keeps last and the form as submitted.
func (s *LearningService) Create(ctx context.Context, form view.LearningForm, last []view.LearningCard) LearningPage {
	if err := s.learningRepo.Create(ctx, form.Request()); err != nil {
		s.logger.Info().Err(err).Msg("Learning content rejected")
		return LearningPage{Items: last, Form: form, Notice: view.ErrorNotice(err)}
	}

	page := s.Page(ctx)
	page.Notice = view.InfoNotice(NoticeContentAdded)
	return page
}
