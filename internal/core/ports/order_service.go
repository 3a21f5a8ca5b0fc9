package ports

import (
	"context"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

// OrderItemInput is one cart line submitted at checkout.
type OrderItemInput struct {
	Name     string
	Quantity int
	Image    string
	Price    float64
}

// ShippingAddressInput holds the checkout destination.
type ShippingAddressInput struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	Country    string
}

// CreateOrderInput carries the cart payload. It intentionally has no user
// field: ownership always comes from the verified identity.
type CreateOrderInput struct {
	Items           []OrderItemInput
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalPrice      float64
	ShippingAddress ShippingAddressInput
	PaymentMethod   string
}

// PaymentConfirmation is the payload reported back by the payment provider
// after a successful capture.
type PaymentConfirmation struct {
	TransactionID string
	Status        string
	Email         string
}

// OrderService defines the order lifecycle use cases. Every method takes the
// verified identity of the requester; the auth gate guarantees it is present.
type OrderService interface {
	Create(ctx context.Context, ident domain.Identity, in CreateOrderInput) (string, error)
	Get(ctx context.Context, ident domain.Identity, id string) (*domain.Order, error)
	History(ctx context.Context, ident domain.Identity) ([]*domain.Order, error)
	// ListAll returns every order in the store; callers must gate it behind
	// the admin guard.
	ListAll(ctx context.Context) ([]*domain.Order, error)
	MarkPaid(ctx context.Context, ident domain.Identity, id string, conf PaymentConfirmation) (*domain.Order, error)
}
