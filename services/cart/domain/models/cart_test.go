package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func snap(name string, price int64) Snapshot {
	return Snapshot{Name: name, Price: decimal.NewFromInt(price), Unit: "kg", SupplierID: uuid.New()}
}

func TestCart_AddMergesByProductID(t *testing.T) {
	var c Cart
	rice, dal := uuid.New(), uuid.New()

	c.Add(rice, snap("Rice", 60), 1)
	c.Add(dal, snap("Dal", 110), 2)
	c.Add(rice, snap("Rice (renamed)", 99), 3)

	if c.Count() != 2 {
		t.Fatalf("expected 2 lines, got %d", c.Count())
	}
	if c.Items[0].Quantity != 4 {
		t.Errorf("expected merged quantity 4, got %d", c.Items[0].Quantity)
	}
	// The first snapshot is kept on merge.
	if c.Items[0].Name != "Rice" || !c.Items[0].Price.Equal(decimal.NewFromInt(60)) {
		t.Errorf("snapshot changed on merge: %+v", c.Items[0].Snapshot)
	}
	if want := decimal.NewFromInt(4*60 + 2*110); !c.Total().Equal(want) {
		t.Errorf("total: got %s, want %s", c.Total(), want)
	}
}

func TestCart_SetQuantity(t *testing.T) {
	var c Cart
	id := uuid.New()
	c.Add(id, snap("Onions", 30), 5)

	tests := []struct {
		name        string
		productID   uuid.UUID
		qty         int
		wantChanged bool
		wantLines   int
		wantQty     int
	}{
		{"set exactly", id, 2, true, 1, 2},
		{"absent product is ignored", uuid.New(), 9, false, 1, 2},
		{"zero removes", id, 0, true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if changed := c.SetQuantity(tt.productID, tt.qty); changed != tt.wantChanged {
				t.Fatalf("changed: got %v, want %v", changed, tt.wantChanged)
			}
			if c.Count() != tt.wantLines {
				t.Fatalf("lines: got %d, want %d", c.Count(), tt.wantLines)
			}
			if tt.wantLines > 0 && c.Items[0].Quantity != tt.wantQty {
				t.Fatalf("quantity: got %d, want %d", c.Items[0].Quantity, tt.wantQty)
			}
		})
	}
}

func TestCart_RemoveAndClear(t *testing.T) {
	var c Cart
	a, b := uuid.New(), uuid.New()
	c.Add(a, snap("A", 1), 1)
	c.Add(b, snap("B", 2), 1)

	c.Remove(uuid.New())
	if c.Count() != 2 {
		t.Fatal("removing an absent product must not change the cart")
	}
	c.Remove(a)
	if c.Count() != 1 || c.Items[0].ProductID != b {
		t.Fatalf("unexpected cart after remove: %+v", c.Items)
	}
	c.Clear()
	if !c.IsEmpty() || !c.Total().IsZero() {
		t.Fatal("expected empty cart with zero total")
	}
}

func TestCart_CloneIsIndependent(t *testing.T) {
	var c Cart
	id := uuid.New()
	c.Add(id, snap("Ghee", 500), 1)

	clone := c.Clone()
	c.SetQuantity(id, 7)

	if clone.Items[0].Quantity != 1 {
		t.Fatalf("clone shares item storage: %d", clone.Items[0].Quantity)
	}
}
