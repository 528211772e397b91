package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	userIDs []int32
	events  []Event
}

func (r *recordingPublisher) Publish(userID int32, event Event) {
	r.userIDs = append(r.userIDs, userID)
	r.events = append(r.events, event)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1", 1)
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish(1, TransactionCreated(map[string]interface{}{"id": 42}))

	assert.Len(t, client.received(), 1)
}

func TestNoOpPublisher_Publish(t *testing.T) {
	var publisher EventPublisher = &NoOpPublisher{}

	assert.NotPanics(t, func() {
		publisher.Publish(1, TransactionCreated(nil))
	})
}

func TestFanoutPublisher_Publish(t *testing.T) {
	first := &recordingPublisher{}
	second := &recordingPublisher{}
	fanout := FanoutPublisher{first, second}

	fanout.Publish(7, TransactionDeleted(map[string]interface{}{"id": 3}))

	for _, p := range []*recordingPublisher{first, second} {
		require.Len(t, p.events, 1)
		assert.Equal(t, int32(7), p.userIDs[0])
		assert.Equal(t, "transaction.deleted", p.events[0].Type)
	}
}
