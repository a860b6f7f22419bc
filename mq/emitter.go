package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nutriva/rdx"
)

const orderChannel = "order-events"

// OrderEvent is published when an order is placed. The rewards worker
// consumes it to accrue loyalty points.
type OrderEvent struct {
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// EmitOrderPlaced publishes the event to Redis. A publish failure is logged
// and dropped; order placement does not depend on the bus.
func EmitOrderPlaced(ctx context.Context, event OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[mq] marshal order event: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, orderChannel, data).Err(); err != nil {
		log.Printf("[mq] publish order event: %v", err)
	}
}

// SubscribeOrders returns a channel of decoded order events. Malformed
// payloads are logged and skipped. Cancelling ctx closes the subscription
// and with it the returned channel.
func SubscribeOrders(ctx context.Context) <-chan OrderEvent {
	sub := rdx.Conn.Subscribe(ctx, orderChannel)
	out := make(chan OrderEvent)

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var event OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[mq] bad order event payload: %v", err)
				continue
			}
			out <- event
		}
	}()

	return out
}
