package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/services/catalog/domain/events"
)

func TestProductEvent_JSONFieldNames(t *testing.T) {
	evt := events.ProductEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  uuid.New(),
		SupplierID: uuid.New(),
		Name:       "Tomatoes",
		Price:      decimal.RequireFromString("42.50"),
		Category:   "Vegetables",
		Stock:      12,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "product_id", "supplier_id", "name", "price", "category", "stock", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	// decimal encodes as a string to keep precision
	if raw["price"] != "42.5" {
		t.Errorf("price: got %v, want \"42.5\"", raw["price"])
	}
}

func TestProductTopics(t *testing.T) {
	for topic, want := range map[string]string{
		events.TopicProductCreated: "product.created",
		events.TopicProductUpdated: "product.updated",
		events.TopicProductDeleted: "product.deleted",
	} {
		if topic != want {
			t.Errorf("expected %q, got %q", want, topic)
		}
	}
}
