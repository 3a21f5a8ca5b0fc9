package domain

import (
	"errors"
	"math"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidTotal = errors.New("order totals do not add up")
var ErrPaymentConflict = errors.New("order already paid with a different transaction")
var ErrEmptyOrder = errors.New("order has no items")

// ErrStoreUnavailable wraps failures talking to the document store. The
// service layer never retries; callers see the failure as-is.
var ErrStoreUnavailable = errors.New("document store unavailable")

// priceTolerance absorbs float rounding when checking the total invariant.
const priceTolerance = 0.005

// OrderItem is a denormalized snapshot of a product at order-creation time.
// It deliberately carries no product reference so historical orders stay
// stable when the live product changes.
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Image    string  `json:"image" bson:"image"`
	Price    float64 `json:"price" bson:"price"`
}

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	FullName   string `json:"full_name" bson:"full_name"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Country    string `json:"country" bson:"country"`
}

// PaymentResult records the outcome reported by the external payment provider.
type PaymentResult struct {
	TransactionID string `json:"id" bson:"transaction_id"`
	Status        string `json:"status" bson:"status"`
	Email         string `json:"email_address" bson:"email_address"`
}

// Order is the checkout aggregate. UserID is set once from the authenticated
// identity and never changes; IsPaid/PaidAt and IsDelivered/DeliveredAt are
// paired — the boolean is true iff the timestamp is set.
type Order struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	UserID          string          `json:"user_id" bson:"user_id"`
	UserName        string          `json:"user_name" bson:"user_name"`
	OrderItems      []OrderItem     `json:"order_items" bson:"order_items"`
	ItemsPrice      float64         `json:"items_price" bson:"items_price"`
	ShippingPrice   float64         `json:"shipping_price" bson:"shipping_price"`
	TaxPrice        float64         `json:"tax_price" bson:"tax_price"`
	TotalPrice      float64         `json:"total_price" bson:"total_price"`
	ShippingAddress ShippingAddress `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod   string          `json:"payment_method" bson:"payment_method"`
	PaymentResult   PaymentResult   `json:"payment_result" bson:"payment_result"`
	IsPaid          bool            `json:"is_paid" bson:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	IsDelivered     bool            `json:"is_delivered" bson:"is_delivered"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty" bson:"delivered_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
}

// TotalsConsistent reports whether total_price equals the sum of the item,
// shipping, and tax components. The store does not enforce this; the creator
// must.
func (o *Order) TotalsConsistent() bool {
	return math.Abs(o.ItemsPrice+o.ShippingPrice+o.TaxPrice-o.TotalPrice) <= priceTolerance
}

// OwnedBy reports whether the given identity may operate on this order.
// Administrators may operate on any order.
func (o *Order) OwnedBy(ident Identity) bool {
	return ident.IsAdmin || o.UserID == ident.ID
}
