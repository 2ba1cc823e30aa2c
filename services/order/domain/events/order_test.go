package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestOrderEvent_Recipients(t *testing.T) {
	vendor, supA, supB := uuid.New(), uuid.New(), uuid.New()
	e := OrderEvent{VendorID: vendor, SupplierIDs: []uuid.UUID{supA, supB}}

	got := e.Recipients()
	if len(got) != 3 || got[0] != vendor || got[1] != supA || got[2] != supB {
		t.Errorf("Recipients() = %v", got)
	}
}

func TestOrderEvent_JSON(t *testing.T) {
	e := OrderEvent{
		Type:    TopicOrderStatusChanged,
		OrderID: uuid.New(),
		Status:  "shipped",
		Total:   decimal.RequireFromString("180.00"),
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["total"] != "180" {
		t.Errorf("total = %v, want decimal string", m["total"])
	}
	if _, ok := m["previous_status"]; ok {
		t.Error("empty previous_status should be omitted")
	}
}
