package websocket

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entity names the kind of record an event is about
type Entity string

const (
	EntityTransaction Entity = "transaction"
	EntityReference   Entity = "reference"
)

// Action names what happened to the entity
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionSeeded  Action = "seeded"
)

// Event is the change notification pushed to WebSocket clients and the
// AMQP exchange. Type is "<entity>.<action>" and doubles as the routing key.
// ID is shared by every delivery of the same event.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Entity    Entity      `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent stamps a new event for entity and action
func NewEvent(entity Entity, action Action, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      string(entity) + "." + string(action),
		Entity:    entity,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionCreated(tx interface{}) Event {
	return NewEvent(EntityTransaction, ActionCreated, tx)
}

func TransactionUpdated(tx interface{}) Event {
	return NewEvent(EntityTransaction, ActionUpdated, tx)
}

// TransactionDeleted carries only the id of the removed row
func TransactionDeleted(ref interface{}) Event {
	return NewEvent(EntityTransaction, ActionDeleted, ref)
}

// ReferenceSeeded is sent to the admin who loaded the catalog
func ReferenceSeeded(result interface{}) Event {
	return NewEvent(EntityReference, ActionSeeded, result)
}
