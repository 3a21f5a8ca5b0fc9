package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ozstore/storefront-api/internal/api/metrics"
	"github.com/ozstore/storefront-api/internal/core/domain"
	"github.com/ozstore/storefront-api/internal/core/ports"
)

// categories is the fixed set the storefront exposes.
var categories = []string{"Shirts", "Pants"}

// ProductCache abstracts the read-through product cache (Redis).
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, p *domain.Product) error
}

// CatalogService serves read-only product lookups and the add-to-cart stock
// guard. A nil cache disables caching entirely.
type CatalogService struct {
	repo  ports.ProductRepository
	cache ProductCache
	log   zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache ProductCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

// GetProduct returns the product with the given id, consulting the cache
// first. Cache failures degrade to a direct store read.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache != nil {
		if p, err := s.cache.Get(ctx, id); err == nil && p != nil {
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return p, nil
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			s.log.Warn().Err(err).Str("product_id", id).Msg("failed to cache product")
		}
	}
	return p, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.FindBySlug(ctx, slug)
}

// Categories returns the fixed category names.
func (s *CatalogService) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// CheckStock re-fetches the authoritative stock count, bypassing the cache,
// and fails when the requested quantity exceeds it. No reservation happens
// here; stock is only decremented at fulfillment.
func (s *CatalogService) CheckStock(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrOutOfStock
	}

	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if quantity > p.CountInStock {
		s.log.Debug().Str("product_id", productID).Int("requested", quantity).Int("in_stock", p.CountInStock).Msg("stock check rejected")
		return domain.ErrOutOfStock
	}
	return nil
}
