package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{"id": 1, "content": "Papelería"}

	before := time.Now().UTC()
	evt := NewEvent(EntityTransaction, ActionCreated, payload)

	assert.Equal(t, "transaction.created", evt.Type)
	assert.Equal(t, EntityTransaction, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.NotEmpty(t, evt.ID)
	assert.WithinDuration(t, before, evt.Timestamp, time.Second)
	assert.Equal(t, time.UTC, evt.Timestamp.Location())
}

func TestNewEvent_UniqueIDs(t *testing.T) {
	a := TransactionCreated(nil)
	b := TransactionCreated(nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		event  Event
		want   string
		entity Entity
	}{
		{TransactionCreated(nil), "transaction.created", EntityTransaction},
		{TransactionUpdated(nil), "transaction.updated", EntityTransaction},
		{TransactionDeleted(nil), "transaction.deleted", EntityTransaction},
		{ReferenceSeeded(nil), "reference.seeded", EntityReference},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Type)
			assert.Equal(t, tt.entity, tt.event.Entity)
		})
	}
}

func TestEvent_ToJSON(t *testing.T) {
	evt := TransactionDeleted(map[string]interface{}{"id": 9})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, evt.ID, decoded["id"])
	assert.Equal(t, "transaction.deleted", decoded["type"])
	assert.Equal(t, "transaction", decoded["entity"])
	assert.Equal(t, float64(9), decoded["payload"].(map[string]interface{})["id"])
	assert.Contains(t, decoded, "timestamp")
}
