package ports

import (
	"context"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

// CatalogService defines read-only catalog use cases plus the add-to-cart
// stock guard.
type CatalogService interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Categories() []string
	// CheckStock re-fetches the authoritative stock count and returns
	// domain.ErrOutOfStock when the requested quantity exceeds it. It is a
	// guard, not a reservation: no stock is decremented.
	CheckStock(ctx context.Context, productID string, quantity int) error
}
