package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/services/catalog/domain/models"
	"github.com/sevakart/marketplace/services/catalog/infrastructure/persistence/memory"
)

// countingRepo records calls that tests assert on.
type countingRepo struct {
	*memory.ProductRepository
	mu    sync.Mutex
	saves int
	gets  int
}

func (r *countingRepo) Save(ctx context.Context, p *models.Product) error {
	if err := r.ProductRepository.Save(ctx, p); err != nil {
		return err
	}
	r.mu.Lock()
	r.saves++
	r.mu.Unlock()
	return nil
}

func (r *countingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.Lock()
	r.gets++
	r.mu.Unlock()
	return r.ProductRepository.GetByID(ctx, id)
}

type memProductCache struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*pkgcache.CachedProduct
	set     chan struct{}
}

func newMemProductCache() *memProductCache {
	return &memProductCache{entries: map[uuid.UUID]*pkgcache.CachedProduct{}, set: make(chan struct{}, 8)}
}

func (c *memProductCache) Get(_ context.Context, id uuid.UUID) (*pkgcache.CachedProduct, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		return e, nil
	}
	return nil, redis.Nil
}

func (c *memProductCache) Set(_ context.Context, p *pkgcache.CachedProduct) error {
	c.mu.Lock()
	c.entries[p.ID] = p
	c.mu.Unlock()
	c.set <- struct{}{}
	return nil
}

func (c *memProductCache) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func (c *memProductCache) has(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}
