package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient captures sent messages
type mockClient struct {
	id       string
	userID   int32
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	full     bool
}

func newMockClient(id string, userID int32) *mockClient {
	return &mockClient{id: id, userID: userID}
}

func (m *mockClient) ID() string    { return m.id }
func (m *mockClient) UserID() int32 { return m.userID }

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.full {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) received() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.messages))
	copy(out, m.messages)
	return out
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	a1 := newMockClient("a1", 1)
	a2 := newMockClient("a2", 1)
	b := newMockClient("b", 2)

	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)

	assert.Equal(t, 2, hub.ClientCount(1))
	assert.Equal(t, 1, hub.ClientCount(2))
	assert.Equal(t, 0, hub.ClientCount(99))
	assert.Equal(t, 3, hub.TotalClientCount())

	hub.Unregister(a1)
	assert.Equal(t, 1, hub.ClientCount(1))

	hub.Unregister(a2)
	hub.Unregister(b)
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_BroadcastOnlyReachesOwner(t *testing.T) {
	hub := NewHub()
	owner1 := newMockClient("owner-1", 1)
	owner2 := newMockClient("owner-2", 1)
	other := newMockClient("other", 2)
	hub.Register(owner1)
	hub.Register(owner2)
	hub.Register(other)

	hub.Broadcast(1, TransactionCreated(map[string]interface{}{"id": 42}))

	require.Len(t, owner1.received(), 1)
	assert.Len(t, owner2.received(), 1)
	assert.Empty(t, other.received())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(owner1.received()[0], &decoded))
	assert.Equal(t, "transaction.created", decoded["type"])
}

func TestHub_BroadcastDropsFailingClients(t *testing.T) {
	hub := NewHub()
	healthy := newMockClient("healthy", 1)
	slow := newMockClient("slow", 1)
	slow.full = true
	hub.Register(healthy)
	hub.Register(slow)

	hub.Broadcast(1, TransactionDeleted(map[string]interface{}{"id": 1}))

	assert.Len(t, healthy.received(), 1)
	assert.True(t, slow.isClosed())
	assert.Equal(t, 1, hub.ClientCount(1))
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()
	const n = 50

	clients := make([]*mockClient, n)
	for i := range clients {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i), int32(i%5))
	}

	var wg sync.WaitGroup
	for i := range clients {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}
	wg.Wait()
	assert.Equal(t, n, hub.TotalClientCount())

	for i := range clients {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			hub.Broadcast(int32(idx%5), TransactionUpdated(map[string]interface{}{"id": idx}))
		}(i)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_UnregisterUnknownAndEmptyBroadcast(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Unregister(newMockClient("ghost", 1))
		hub.Broadcast(999, TransactionCreated(nil))
	})
}

func TestHub_CloseAll(t *testing.T) {
	hub := NewHub()
	a := newMockClient("a", 1)
	b := newMockClient("b", 2)
	hub.Register(a)
	hub.Register(b)

	hub.CloseAll()

	assert.True(t, a.isClosed())
	assert.True(t, b.isClosed())
	assert.Equal(t, 0, hub.TotalClientCount())
}
