package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerState_PrevNeverBelowFirstPage(t *testing.T) {
	tests := []struct {
		name     string
		state    PagerState
		expected int
	}{
		{"first page", PagerState{Page: 1}, 1},
		{"zero value", PagerState{}, 1},
		{"negative page", PagerState{Page: -3}, 1},
		{"second page", PagerState{Page: 2}, 1},
		{"fifth page", PagerState{Page: 5}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.PrevPage())
		})
	}
}

func TestPagerState_NextPage(t *testing.T) {
	assert.Equal(t, 2, NewPagerState().NextPage())
	assert.Equal(t, 8, PagerState{Page: 7, TotalPages: 7}.NextPage())
}

func TestPagerState_ConfirmUsesServerValues(t *testing.T) {
	state := NewPagerState()

	next := state.Confirm(3, 4)

	assert.Equal(t, PagerState{Page: 3, TotalPages: 4}, next)
	assert.Equal(t, 1, state.Page, "receiver must not change")
}

func TestNoticeMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"server message", &APIError{Status: 400, Message: "Invalid amount"}, "Invalid amount"},
		{"wrapped server message", fmt.Errorf("create bill: %w", &APIError{Status: 403, Message: "Invalid code"}), "Invalid code"},
		{"api error without message", &APIError{Status: 403}, GenericErrorMessage},
		{"transport failure", fmt.Errorf("%w: connection refused", ErrTransport), GenericErrorMessage},
		{"plain error", errors.New("boom"), GenericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NoticeMessage(tt.err))
		})
	}
}
