// Package advisor is the local advisor chat. It never leaves the process:
// every reply is the same placeholder text.
package advisor

import (
	"fmt"
	"sync"

	"github.com/dafibh/finai/finai-web/internal/domain"
)

// Mode selects which advisor persona the chat is opened with
type Mode string

const (
	ModePersonal Mode = "personal"
	ModeTrading  Mode = "trading"
)

// ParseMode validates a mode coming from a form or a websocket frame
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePersonal, ModeTrading:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownChatMode, s)
	}
}

// State is the chat lifecycle state
type State string

const (
	StateClosed State = "closed"
	StateOpen   State = "open"
)

// PlaceholderReply is appended after every user message
const PlaceholderReply = "Advisor: This is a placeholder reply. Integrate LLM for real answers."

// Line is one entry of the chat log
type Line struct {
	Text  string
	Intro bool
}

// Chat is a two-state machine: closed, or open in a mode.
// It is safe for concurrent use; the HTML form and the websocket may drive
// the same chat.
type Chat struct {
	mu     sync.Mutex
	state  State
	mode   Mode
	lines  []Line
	submit func(msg string) []Line
}

// NewChat returns a closed chat
func NewChat() *Chat {
	return &Chat{state: StateClosed}
}

// Open moves the chat to open(mode), replacing the log with the intro line.
// The submit handler is assigned, so opening again never stacks handlers.
func (c *Chat) Open(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateOpen
	c.mode = mode
	c.lines = []Line{{Text: introText(mode), Intro: true}}
	c.submit = c.appendExchange
	return nil
}

// Submit appends the user's message and the placeholder reply. An empty
// message is ignored. Returns the lines appended.
func (c *Chat) Submit(msg string) ([]Line, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpen || c.submit == nil {
		return nil, domain.ErrChatClosed
	}
	if msg == "" {
		return nil, nil
	}
	return c.submit(msg), nil
}

// appendExchange must be called with mu held
func (c *Chat) appendExchange(msg string) []Line {
	added := []Line{
		{Text: "You: " + msg},
		{Text: PlaceholderReply},
	}
	c.lines = append(c.lines, added...)
	return added
}

// State returns the current state
func (c *Chat) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mode returns the open mode, empty while closed
func (c *Chat) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Lines returns a copy of the log
func (c *Chat) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func introText(mode Mode) string {
	return fmt.Sprintf("Chat mode: %s. This is a mock chat.", mode)
}
