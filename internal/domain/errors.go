package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrTransport       = errors.New("finance API request failed")
	ErrNotOK           = errors.New("finance API returned a non-ok status")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotConfirmed    = errors.New("action not confirmed")
	ErrSlotContributed = errors.New("month already contributed")
	ErrSlotNotFound    = errors.New("contribution slot not found")
	ErrChatClosed      = errors.New("chat is closed")
	ErrUnknownChatMode = errors.New("unknown chat mode")
)

// GenericErrorMessage is shown when a failed mutation carries no server message
const GenericErrorMessage = "Error"

// APIError is an application-level failure reported by the finance API
// through a success=false body
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("finance API rejected request (status %d)", e.Status)
	}
	return fmt.Sprintf("finance API rejected request (status %d): %s", e.Status, e.Message)
}

// NoticeMessage returns the text a user sees for a failed mutation:
// the server-supplied message when there is one, otherwise the generic fallback
func NoticeMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericErrorMessage
}
