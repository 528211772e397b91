package websocket

// EventPublisher defines the interface for publishing change events for a user
type EventPublisher interface {
	// Publish delivers an event to everything listening for the user
	Publish(userID int32, event Event)
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the user's clients
func (h *Hub) Publish(userID int32, event Event) {
	h.Broadcast(userID, event)
}

// NoOpPublisher is a publisher that does nothing (for testing or when WebSocket is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(userID int32, event Event) {}

// FanoutPublisher forwards every event to each of its publishers in order
type FanoutPublisher []EventPublisher

func (f FanoutPublisher) Publish(userID int32, event Event) {
	for _, p := range f {
		p.Publish(userID, event)
	}
}
