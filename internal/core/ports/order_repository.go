package ports

import (
	"context"
	"time"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. All operations
// are single-document create/patch calls; the store's own atomicity is the
// only write-ordering guarantee relied upon.
type OrderRepository interface {
	// Create inserts a new order and returns its assigned id.
	Create(ctx context.Context, o *domain.Order) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// FindByUser returns every order whose user reference equals userID,
	// newest first.
	FindByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
	// SetPaid patches the order to paid with the given payment result. The
	// patch matches only documents that are still unpaid or already carry the
	// same transaction id, so a racing retry cannot overwrite a different
	// payment record. Returns false when nothing matched.
	SetPaid(ctx context.Context, id string, result domain.PaymentResult, paidAt time.Time) (bool, error)
}
