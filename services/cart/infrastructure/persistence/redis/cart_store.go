package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/services/cart/domain/models"
)

const cartKeyPrefix = "cart"

// CartStore implements repositories.CartStore as one Redis hash per vendor.
// Key format: "cart:{vendorID}", field "{vendorID}_{productID}".
type CartStore struct {
	client *cache.RedisClient
	ttl    time.Duration
}

// NewCartStore returns a CartStore whose snapshots expire ttl after the last
// write. A zero ttl keeps them forever.
func NewCartStore(client *cache.RedisClient, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

// cartRecord is the JSON value stored per field.
type cartRecord struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Quantity     int             `json:"quantity"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Unit         string          `json:"unit"`
	Category     string          `json:"category"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Stock        int             `json:"stock"`
	Image        *string         `json:"image,omitempty"`
	Position     int             `json:"position"`
}

// Load returns the stored snapshot ordered by position. A missing key yields
// an empty slice.
func (s *CartStore) Load(ctx context.Context, vendorID uuid.UUID) ([]models.CartItem, error) {
	vals, err := s.client.Client().HGetAll(ctx, key(vendorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cart load: %w", err)
	}

	records := make([]cartRecord, 0, len(vals))
	for field, raw := range vals {
		var rec cartRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("cart decode %s: %w", field, err)
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Position < records[j].Position })

	items := make([]models.CartItem, len(records))
	for i, rec := range records {
		items[i] = models.CartItem{
			ProductID: rec.ProductID,
			Quantity:  rec.Quantity,
			Snapshot: models.Snapshot{
				Name:         rec.Name,
				Price:        rec.Price,
				Unit:         rec.Unit,
				Category:     rec.Category,
				SupplierID:   rec.SupplierID,
				SupplierName: rec.SupplierName,
				Stock:        rec.Stock,
				Image:        rec.Image,
			},
		}
	}
	return items, nil
}

// Save replaces the vendor's snapshot with items in a single MULTI/EXEC.
func (s *CartStore) Save(ctx context.Context, vendorID uuid.UUID, items []models.CartItem) error {
	k := key(vendorID)
	pipe := s.client.Client().TxPipeline()
	pipe.Del(ctx, k)

	if len(items) > 0 {
		fields := make([]any, 0, len(items)*2)
		for pos, it := range items {
			raw, err := json.Marshal(cartRecord{
				ProductID:    it.ProductID,
				Quantity:     it.Quantity,
				Name:         it.Name,
				Price:        it.Price,
				Unit:         it.Unit,
				Category:     it.Category,
				SupplierID:   it.SupplierID,
				SupplierName: it.SupplierName,
				Stock:        it.Stock,
				Image:        it.Image,
				Position:     pos,
			})
			if err != nil {
				return fmt.Errorf("cart encode: %w", err)
			}
			fields = append(fields, field(vendorID, it.ProductID), string(raw))
		}
		pipe.HSet(ctx, k, fields...)
		if s.ttl > 0 {
			pipe.Expire(ctx, k, s.ttl)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

func key(vendorID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", cartKeyPrefix, vendorID)
}

func field(vendorID, productID uuid.UUID) string {
	return vendorID.String() + "_" + productID.String()
}
