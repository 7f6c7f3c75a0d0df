package websocket

import "github.com/google/uuid"

// EventPublisher pushes chat events to a session's open connections
type EventPublisher interface {
	Publish(sessionID uuid.UUID, event Event)
}

var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting to the session
func (h *Hub) Publish(sessionID uuid.UUID, event Event) {
	h.Broadcast(sessionID, event)
}

// NoOpPublisher is a publisher that does nothing (for tests, or with the websocket disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(sessionID uuid.UUID, event Event) {}
