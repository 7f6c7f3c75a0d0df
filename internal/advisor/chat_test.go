package advisor

import (
	"sync"
	"testing"

	"github.com/dafibh/finai/finai-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_StartsClosed(t *testing.T) {
	c := NewChat()

	assert.Equal(t, StateClosed, c.State())
	assert.Empty(t, c.Lines())

	_, err := c.Submit("hello")
	assert.ErrorIs(t, err, domain.ErrChatClosed)
}

func TestChat_OpenReplacesLog(t *testing.T) {
	c := NewChat()
	require.NoError(t, c.Open(ModePersonal))
	_, err := c.Submit("first")
	require.NoError(t, err)

	require.NoError(t, c.Open(ModeTrading))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Intro)
	assert.Contains(t, lines[0].Text, "trading")
	assert.Equal(t, ModeTrading, c.Mode())
}

func TestChat_ReopenDoesNotDuplicateReplies(t *testing.T) {
	c := NewChat()
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Open(ModePersonal))
	}

	added, err := c.Submit("how much should I save?")
	require.NoError(t, err)

	assert.Equal(t, []Line{
		{Text: "You: how much should I save?"},
		{Text: PlaceholderReply},
	}, added)
	assert.Len(t, c.Lines(), 3, "intro plus exactly one exchange")
}

func TestChat_EmptyMessageIgnored(t *testing.T) {
	c := NewChat()
	require.NoError(t, c.Open(ModePersonal))

	added, err := c.Submit("")

	require.NoError(t, err)
	assert.Nil(t, added)
	assert.Len(t, c.Lines(), 1)
}

func TestChat_UnknownMode(t *testing.T) {
	c := NewChat()

	err := c.Open(Mode("crypto"))

	assert.ErrorIs(t, err, domain.ErrUnknownChatMode)
	assert.Equal(t, StateClosed, c.State())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("trading")
	require.NoError(t, err)
	assert.Equal(t, ModeTrading, m)

	_, err = ParseMode("")
	assert.ErrorIs(t, err, domain.ErrUnknownChatMode)
}

func TestChat_ConcurrentSubmit(t *testing.T) {
	c := NewChat()
	require.NoError(t, c.Open(ModeTrading))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Submit("ping")
		}()
	}
	wg.Wait()

	assert.Len(t, c.Lines(), 1+20*2)
}
