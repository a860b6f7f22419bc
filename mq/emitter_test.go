package mq

import (
	"context"
	"testing"
	"time"
)

func TestSubscribeOrdersStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := SubscribeOrders(ctx)

	cancel()

	// Cancellation must close the subscription, ending the event channel so
	// consumers ranging over it can exit.
	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("expected channel close after cancel, got an event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event channel still open after ctx cancel")
	}
}
