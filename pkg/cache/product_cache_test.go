package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func newMiniredisClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return WrapClient(rdb), mr
}

func TestProductCache_SetGetDelete(t *testing.T) {
	rc, mr := newMiniredisClient(t)
	c := NewProductCache(rc)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	want := &CachedProduct{
		ID:           uuid.New(),
		SupplierID:   uuid.New(),
		Name:         "Turmeric Powder",
		Price:        decimal.RequireFromString("180.25"),
		Unit:         "packet",
		Category:     "Spices",
		SupplierName: "Spice Route",
		Stock:        7,
		CreatedAt:    now,
		UpdatedAt:    now.Add(time.Hour),
	}

	if _, err := c.Get(ctx, want.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil before Set, got %v", err)
	}

	if err := c.Set(ctx, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if ttl := mr.TTL("product:" + want.ID.String()); ttl != ProductCacheTTL {
		t.Errorf("TTL: got %v, want %v", ttl, ProductCacheTTL)
	}

	got, err := c.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != want.ID || got.SupplierID != want.SupplierID || got.Name != want.Name {
		t.Errorf("identity fields mismatch: %+v", got)
	}
	if !got.Price.Equal(want.Price) || got.Stock != want.Stock || got.Unit != want.Unit {
		t.Errorf("value fields mismatch: %+v", got)
	}
	if !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("UpdatedAt: got %v, want %v", got.UpdatedAt, want.UpdatedAt)
	}

	if err := c.Delete(ctx, want.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := c.Get(ctx, want.ID); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil after Delete, got %v", err)
	}
}

func TestProductCache_CorruptEntry(t *testing.T) {
	rc, mr := newMiniredisClient(t)
	c := NewProductCache(rc)
	id := uuid.New()

	mr.HSet("product:"+id.String(), "id", "not-a-uuid")

	if _, err := c.Get(context.Background(), id); err == nil || errors.Is(err, redis.Nil) {
		t.Fatalf("expected parse error, got %v", err)
	}
}
