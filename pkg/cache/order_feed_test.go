package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOrderFeedChannel(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	if got := OrderFeedChannel(id); got != "order-feed:11111111-1111-1111-1111-111111111111" {
		t.Errorf("OrderFeedChannel() = %q", got)
	}
}

func TestOrderFeed_PublishSubscribe(t *testing.T) {
	rc, _ := newMiniredisClient(t)
	feed := NewOrderFeed(rc)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	vendor, supplier, stranger := uuid.New(), uuid.New(), uuid.New()
	vendorSub, err := feed.Subscribe(ctx, vendor)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer vendorSub.Close()
	strangerSub, err := feed.Subscribe(ctx, stranger)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer strangerSub.Close()

	if err := feed.Publish(ctx, []byte(`{"type":"order.placed"}`), vendor, supplier); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msg, err := vendorSub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	if msg.Channel != OrderFeedChannel(vendor) || msg.Payload != `{"type":"order.placed"}` {
		t.Errorf("unexpected message: %+v", msg)
	}

	select {
	case m := <-strangerSub.Channel():
		t.Errorf("stranger received %+v", m)
	case <-time.After(100 * time.Millisecond):
	}
}
