package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ProductCache is a read-through cache for product documents.
// Key format: product:<id>, value is the JSON-encoded product.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

// Get returns the cached product, or an error on a miss or a decode failure.
func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("product cache get: %w", err)
	}

	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("product cache decode: %w", err)
	}
	return &p, nil
}

// Set stores the product for the configured TTL.
func (c *ProductCache) Set(ctx context.Context, p *domain.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(p.ID), data, c.ttl).Err()
}

func (c *ProductCache) key(id string) string {
	return fmt.Sprintf("product:%s", id)
}
