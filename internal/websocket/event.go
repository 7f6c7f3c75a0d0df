package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/finai/finai-web/internal/advisor"
)

// EventType represents the type of event sent to the browser
type EventType string

const (
	EventTypeOpened  EventType = "chat.opened"
	EventTypeMessage EventType = "chat.message"
	EventTypeError   EventType = "chat.error"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, payload, timestamp }
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type and payload
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// OpenedPayload is sent when a chat (re)opens: the whole log is replaced
type OpenedPayload struct {
	Mode  advisor.Mode `json:"mode"`
	Lines []string     `json:"lines"`
}

// MessagePayload carries lines appended to the log
type MessagePayload struct {
	Lines []string `json:"lines"`
}

// ErrorPayload explains why a frame was not applied
type ErrorPayload struct {
	Message string `json:"message"`
}

// ChatOpened creates a chat.opened event
func ChatOpened(mode advisor.Mode, lines []advisor.Line) Event {
	return NewEvent(EventTypeOpened, OpenedPayload{Mode: mode, Lines: lineTexts(lines)})
}

// ChatMessage creates a chat.message event
func ChatMessage(lines []advisor.Line) Event {
	return NewEvent(EventTypeMessage, MessagePayload{Lines: lineTexts(lines)})
}

// ChatError creates a chat.error event
func ChatError(message string) Event {
	return NewEvent(EventTypeError, ErrorPayload{Message: message})
}

func lineTexts(lines []advisor.Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

// Action names what a browser frame asks for
type Action string

const (
	ActionOpen Action = "open"
	ActionSay  Action = "say"
)

// ErrInvalidFrame is returned for frames that cannot be decoded
var ErrInvalidFrame = errors.New("invalid frame")

// Frame is a message received from the browser
type Frame struct {
	Action Action `json:"action"`
	Mode   string `json:"mode,omitempty"`
	Text   string `json:"text,omitempty"`
}

// ParseFrame decodes a browser frame
func ParseFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	switch f.Action {
	case ActionOpen, ActionSay:
		return f, nil
	default:
		return Frame{}, fmt.Errorf("%w: unknown action %q", ErrInvalidFrame, f.Action)
	}
}

// Apply runs a frame against chat. The returned event is meant for every
// connection of the session, unless it is a chat.error, which only goes back
// to the sender. A nil event means nothing changed.
func Apply(chat *advisor.Chat, f Frame) *Event {
	switch f.Action {
	case ActionOpen:
		mode, err := advisor.ParseMode(f.Mode)
		if err == nil {
			err = chat.Open(mode)
		}
		if err != nil {
			ev := ChatError("Unknown chat mode")
			return &ev
		}
		ev := ChatOpened(mode, chat.Lines())
		return &ev

	case ActionSay:
		added, err := chat.Submit(f.Text)
		if err != nil {
			ev := ChatError("Open a chat first")
			return &ev
		}
		if len(added) == 0 {
			return nil
		}
		ev := ChatMessage(added)
		return &ev
	}

	ev := ChatError("Unknown action")
	return &ev
}
