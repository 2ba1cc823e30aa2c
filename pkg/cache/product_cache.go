package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash.
type CachedProduct struct {
	ID           uuid.UUID
	SupplierID   uuid.UUID
	Name         string
	Price        decimal.Decimal
	Unit         string
	Category     string
	SupplierName string
	Stock        int
	Image        string // empty when the product has no image
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductCache provides structured read/write operations for product cache entries.
// Key format: "product:{productID}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a new ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID uuid.UUID) (*CachedProduct, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(productID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	p := &CachedProduct{
		Name:         vals["name"],
		Unit:         vals["unit"],
		Category:     vals["category"],
		SupplierName: vals["supplier_name"],
		Image:        vals["image"],
	}
	if p.ID, err = uuid.Parse(vals["id"]); err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	if p.SupplierID, err = uuid.Parse(vals["supplier_id"]); err != nil {
		return nil, fmt.Errorf("cache parse supplier_id: %w", err)
	}
	if p.Price, err = decimal.NewFromString(vals["price"]); err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	if p.Stock, err = strconv.Atoi(vals["stock"]); err != nil {
		return nil, fmt.Errorf("cache parse stock: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, vals["created_at"]); err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, vals["updated_at"]); err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}
	return p, nil
}

// Set writes a cached product as a Redis hash with ProductCacheTTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	key := c.key(p.ID)
	pipe := c.client.Client().TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"id", p.ID.String(),
		"supplier_id", p.SupplierID.String(),
		"name", p.Name,
		"price", p.Price.String(),
		"unit", p.Unit,
		"category", p.Category,
		"supplier_name", p.SupplierName,
		"stock", strconv.Itoa(p.Stock),
		"image", p.Image,
		"created_at", p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product.
func (c *ProductCache) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{productID}"
func (c *ProductCache) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
