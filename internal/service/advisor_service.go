package service

import (
	"github.com/dafibh/finai/finai-web/internal/advisor"
	"github.com/rs/zerolog"
)

// AdvisorPage is everything the advisor page renders
type AdvisorPage struct {
	State advisor.State
	Mode  advisor.Mode
	Lines []advisor.Line
	Modes []advisor.Mode
}

// AdvisorService drives a browser's local advisor chat. It makes no network calls.
type AdvisorService struct {
	logger zerolog.Logger
}

// NewAdvisorService creates a new AdvisorService
func NewAdvisorService(logger zerolog.Logger) *AdvisorService {
	return &AdvisorService{logger: logger.With().Str("component", "advisor").Logger()}
}

// Page snapshots the chat
func (s *AdvisorService) Page(chat *advisor.Chat) AdvisorPage {
	return AdvisorPage{
		State: chat.State(),
		Mode:  chat.Mode(),
		Lines: chat.Lines(),
		Modes: []advisor.Mode{advisor.ModePersonal, advisor.ModeTrading},
	}
}

// Open opens the chat in the named mode
func (s *AdvisorService) Open(chat *advisor.Chat, mode string) error {
	m, err := advisor.ParseMode(mode)
	if err != nil {
		return err
	}
	if err := chat.Open(m); err != nil {
		return err
	}
	s.logger.Debug().Str("mode", mode).Msg("Advisor chat opened")
	return nil
}

// Say submits a user message and returns the lines appended
func (s *AdvisorService) Say(chat *advisor.Chat, msg string) ([]advisor.Line, error) {
	return chat.Submit(msg)
}
