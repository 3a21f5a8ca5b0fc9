package ports

import (
	"context"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

// ProductRepository defines read-only access to the product catalog.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
}
