package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/dafibh/finai/finai-web/internal/service"
	"github.com/dafibh/finai/finai-web/internal/view"
	"github.com/dafibh/finai/finai-web/internal/websocket"
	"github.com/labstack/echo/v4"
)

// AdvisorHandler handles the advisor chat over plain HTML forms. Changes are
// also pushed to the session's websocket connections so open tabs stay in step.
type AdvisorHandler struct {
	advisorService *service.AdvisorService
	publisher      websocket.EventPublisher
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(advisorService *service.AdvisorService, publisher websocket.EventPublisher) *AdvisorHandler {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &AdvisorHandler{
		advisorService: advisorService,
		publisher:      publisher,
	}
}

// Show handles GET /advisor
func (h *AdvisorHandler) Show(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	return render(c, pageAdvisor, pageAdvisor, nil, h.advisorService.Page(sess.Chat()))
}

// Open handles POST /advisor/open
func (h *AdvisorHandler) Open(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	chat := sess.Chat()

	if err := h.advisorService.Open(chat, c.FormValue("mode")); err != nil {
		notice := &view.Notice{Level: view.NoticeError, Message: "Unknown chat mode"}
		return renderStatus(c, http.StatusBadRequest, pageAdvisor, pageAdvisor, notice, h.advisorService.Page(chat))
	}

	page := h.advisorService.Page(chat)
	h.publisher.Publish(sess.ID, websocket.ChatOpened(page.Mode, page.Lines))
	return render(c, pageAdvisor, pageAdvisor, nil, page)
}

// Say handles POST /advisor/messages
func (h *AdvisorHandler) Say(c echo.Context) error {
	sess, err := requireSession(c)
	if err != nil {
		return err
	}
	chat := sess.Chat()

	added, err := h.advisorService.Say(chat, c.FormValue("message"))
	if errors.Is(err, domain.ErrChatClosed) {
		notice := &view.Notice{Level: view.NoticeError, Message: "Open a chat first"}
		return renderStatus(c, http.StatusConflict, pageAdvisor, pageAdvisor, notice, h.advisorService.Page(chat))
	}
	if err != nil {
		return err
	}

	if len(added) > 0 {
		h.publisher.Publish(sess.ID, websocket.ChatMessage(added))
	}
	return render(c, pageAdvisor, pageAdvisor, nil, h.advisorService.Page(chat))
}
