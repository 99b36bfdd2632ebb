package mq

import (
	"context"
	"encoding/json"
	"log"

	"mercato/rdx"
)

// Event is a domain notification published to Redis for interested
// consumers (order stream, audit log, search indexer).
type Event struct {
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Payload    any    `json:"payload,omitempty"`
}

const channel = "store-events"

// Emit publishes an event; failures are logged, never propagated to the
// request path.
func Emit(ctx context.Context, name, entityType, entityID string, payload any) {
	data, err := json.Marshal(Event{Name: name, EntityType: entityType, EntityID: entityID, Payload: payload})
	if err != nil {
		log.Printf("[mq] marshal %s: %v", name, err)
		return
	}
	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[mq] publish %s: %v", name, err)
	}
}

// Subscribe returns a channel of decoded events. The caller owns the
// subscription lifetime via ctx.
func Subscribe(ctx context.Context) <-chan Event {
	out := make(chan Event, 16)
	sub := rdx.Conn.Subscribe(ctx, channel)
	go func() {
		defer close(out)
		defer sub.Close()
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("[mq] decode event: %v", err)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
