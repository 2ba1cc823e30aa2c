package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sevakart/marketplace/pkg/app"
	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/pkg/config"
	"github.com/sevakart/marketplace/pkg/logger"
	inventoryEvents "github.com/sevakart/marketplace/services/inventory/domain/events"
	orderEvents "github.com/sevakart/marketplace/services/order/domain/events"
)

func newTestApp(t *testing.T) *app.Application {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return &app.Application{
		Config: &config.Config{AutoReorderEnabled: true, AutoReorderQuantity: 5},
		Logger: logger.Nop(),
		Redis:  cache.WrapClient(rdb),
	}
}

func newMessage(t *testing.T, v any) *message.Message {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return message.NewMessage(uuid.NewString(), payload)
}

func TestHandleOrderEvent_FansOutToRecipients(t *testing.T) {
	a := newTestApp(t)
	feed := cache.NewOrderFeed(a.Redis)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	vendor, supplier := uuid.New(), uuid.New()
	sub, err := feed.Subscribe(ctx, supplier)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	msg := newMessage(t, orderEvents.OrderEvent{
		EventID:     uuid.New(),
		Type:        orderEvents.TopicOrderPlaced,
		OrderID:     uuid.New(),
		VendorID:    vendor,
		SupplierIDs: []uuid.UUID{supplier},
		Status:      "ordered",
	})
	if err := handleOrderEvent(a, feed)(ctx, msg); err != nil {
		t.Fatalf("handler: %v", err)
	}

	got, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("ReceiveMessage: %v", err)
	}
	if got.Payload != string(msg.Payload) {
		t.Errorf("payload = %s", got.Payload)
	}
}

func TestHandleOrderEvent_RejectsMalformedPayload(t *testing.T) {
	a := newTestApp(t)
	msg := message.NewMessage(uuid.NewString(), []byte("{"))
	if err := handleOrderEvent(a, cache.NewOrderFeed(a.Redis))(context.Background(), msg); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHandleStockChanged_IgnoresWithoutCriticalTransition(t *testing.T) {
	a := newTestApp(t)
	handler := handleStockChanged(a)

	tests := []struct {
		name     string
		status   string
		previous string
	}{
		{"still critical", "critical", "critical"},
		{"became low", "low", "good"},
		{"recovered", "good", "critical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := newMessage(t, inventoryEvents.StockChangedEvent{
				ItemID: uuid.New(), VendorID: uuid.New(), Name: "Onion",
				Status: tt.status, PreviousStatus: tt.previous,
			})
			if err := handler(context.Background(), msg); err != nil {
				t.Fatalf("handler: %v", err)
			}
		})
	}
}

func TestHandleStockChanged_NoTemporal(t *testing.T) {
	a := newTestApp(t)
	msg := newMessage(t, inventoryEvents.StockChangedEvent{
		ItemID: uuid.New(), VendorID: uuid.New(), Name: "Onion", Status: "critical", PreviousStatus: "low",
	})
	// Without a Temporal client the event is acknowledged and dropped.
	if err := handleStockChanged(a)(context.Background(), msg); err != nil {
		t.Fatalf("handler: %v", err)
	}
}

func TestHandleProductDeleted_DropsCacheEntry(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	pc := cache.NewProductCache(a.Redis)
	id := uuid.New()
	if err := pc.Set(ctx, &cache.CachedProduct{ID: id, SupplierID: uuid.New(), Name: "Onion"}); err != nil {
		t.Fatal(err)
	}

	msg := newMessage(t, map[string]any{"product_id": id, "supplier_id": uuid.New()})
	if err := handleProductDeleted(a)(ctx, msg); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if _, err := pc.Get(ctx, id); err == nil {
		t.Error("expected cache miss after delete")
	}
}
