package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dafibh/finai/finai-web/internal/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	before := time.Now()
	evt := NewEvent(EventTypeMessage, MessagePayload{Lines: []string{"a"}})
	after := time.Now()

	assert.Equal(t, EventTypeMessage, evt.Type)
	assert.True(t, !evt.Timestamp.Before(before.UTC()) && !evt.Timestamp.After(after.UTC()))
}

func TestEvent_ToJSON(t *testing.T) {
	evt := ChatOpened(advisor.ModeTrading, []advisor.Line{{Text: "Chat mode: trading. This is a mock chat.", Intro: true}})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "chat.opened", decoded["type"])
	payload := decoded["payload"].(map[string]interface{})
	assert.Equal(t, "trading", payload["mode"])
	assert.Len(t, payload["lines"], 1)
	assert.Contains(t, decoded, "timestamp")
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Frame
		wantErr bool
	}{
		{name: "open", input: `{"action":"open","mode":"personal"}`, want: Frame{Action: ActionOpen, Mode: "personal"}},
		{name: "say", input: `{"action":"say","text":"hello"}`, want: Frame{Action: ActionSay, Text: "hello"}},
		{name: "unknown action", input: `{"action":"close"}`, wantErr: true},
		{name: "not json", input: `hello`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrame([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFrame)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_OpenThenSay(t *testing.T) {
	chat := advisor.NewChat()

	opened := Apply(chat, Frame{Action: ActionOpen, Mode: "personal"})
	require.NotNil(t, opened)
	assert.Equal(t, EventTypeOpened, opened.Type)

	msg := Apply(chat, Frame{Action: ActionSay, Text: "budget tips?"})
	require.NotNil(t, msg)
	assert.Equal(t, EventTypeMessage, msg.Type)
	assert.Equal(t, MessagePayload{Lines: []string{"You: budget tips?", advisor.PlaceholderReply}}, msg.Payload)
}

func TestApply_Errors(t *testing.T) {
	chat := advisor.NewChat()

	ev := Apply(chat, Frame{Action: ActionSay, Text: "hi"})
	require.NotNil(t, ev)
	assert.Equal(t, EventTypeError, ev.Type, "saying before opening is rejected")

	ev = Apply(chat, Frame{Action: ActionOpen, Mode: "crypto"})
	require.NotNil(t, ev)
	assert.Equal(t, EventTypeError, ev.Type)
	assert.Equal(t, advisor.StateClosed, chat.State())
}

func TestApply_EmptyMessageIsNoop(t *testing.T) {
	chat := advisor.NewChat()
	Apply(chat, Frame{Action: ActionOpen, Mode: "trading"})

	assert.Nil(t, Apply(chat, Frame{Action: ActionSay}))
	assert.Len(t, chat.Lines(), 1)
}
