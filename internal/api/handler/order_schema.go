package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type orderItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

type shippingAddressRequest struct {
	FullName   string `json:"full_name"   validate:"required"`
	Address    string `json:"address"     validate:"required"`
	City       string `json:"city"        validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"     validate:"required"`
}

type createOrderRequest struct {
	OrderItems      []orderItemRequest     `json:"order_items"      validate:"required,min=1,dive"`
	ItemsPrice      float64                `json:"items_price"      validate:"required,gt=0"`
	ShippingPrice   float64                `json:"shipping_price"   validate:"gte=0"`
	TaxPrice        float64                `json:"tax_price"        validate:"gte=0"`
	TotalPrice      float64                `json:"total_price"      validate:"required,gt=0"`
	ShippingAddress shippingAddressRequest `json:"shipping_address" validate:"required"`
	PaymentMethod   string                 `json:"payment_method"   validate:"required"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// paymentConfirmationRequest mirrors the payload the payment provider's
// client widget reports after capture. The id field is the provider's
// transaction id.
type paymentConfirmationRequest struct {
	TransactionID string `json:"id"            validate:"required"`
	Status        string `json:"status"`
	Email         string `json:"email_address" validate:"required,email"`
}

type messageResponse struct {
	Message string `json:"message"`
}
