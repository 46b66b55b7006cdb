// Package realtime fans Redis pub/sub notifications out to websocket
// subscribers. Each subscriber holds an unsubscribe handle; dropping it tears
// the subscription down when the owning connection goes away.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Topics double as the Redis channel names the publisher writes to.
const (
	PendingCountTopic = `pending-count`
	SystemLogTopic    = `system-logs`
)

type Hub struct {
	client *redis.Client

	mu     sync.Mutex
	nextId int
	topics map[string]map[int]chan []byte
}

func NewHub(client *redis.Client) *Hub {
	return &Hub{
		client: client,
		topics: make(map[string]map[int]chan []byte),
	}
}

// Run blocks reading the given channels until the context is cancelled.
func (h *Hub) Run(ctx context.Context, channels ...string) {
	pubsub := h.client.Subscribe(ctx, channels...)
	defer pubsub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-pubsub.Channel():
			if !ok {
				return
			}
			h.broadcast(message.Channel, []byte(message.Payload))
		}
	}
}

// Subscribe registers for a topic. The returned function unsubscribes; after
// it returns the channel is closed and no further messages arrive.
func (h *Hub) Subscribe(topic string) (<-chan []byte, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[int]chan []byte)
	}

	id := h.nextId
	h.nextId++

	ch := make(chan []byte, 16)
	h.topics[topic][id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if subscriber, ok := h.topics[topic][id]; ok {
			delete(h.topics[topic], id)
			close(subscriber)
		}
	}

	return ch, unsubscribe
}

func (h *Hub) broadcast(topic string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, subscriber := range h.topics[topic] {
		select {
		case subscriber <- payload:
		default:
			// slow consumer, drop the notification rather than block the loop
			slog.Warn(`Dropping realtime message`, `topic`, topic, `subscriber`, id)
		}
	}
}
