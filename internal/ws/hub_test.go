package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishQueuesEncodedEvent(t *testing.T) {
	h := NewHub()
	h.Publish(map[string]interface{}{
		"type":   EventStockUpdate,
		"action": "product_created",
	})

	select {
	case msg := <-h.Broadcast:
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, EventStockUpdate, got["type"])
		assert.Equal(t, "product_created", got["action"])
	case <-time.After(time.Second):
		t.Fatal("event was not queued")
	}
}

func TestHub_PublishDropsUnencodable(t *testing.T) {
	h := NewHub()
	h.Publish(map[string]interface{}{"type": "bad", "ch": make(chan int)})

	select {
	case <-h.Broadcast:
		t.Fatal("unencodable event should be dropped")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 0, h.ClientCount())
}
