package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ozstore/storefront-api/internal/core/domain"
	"github.com/ozstore/storefront-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for the order lifecycle.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /v1/orders.
//
// @Summary      Create an order from the submitted cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Cart payload"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	items := make([]ports.OrderItemInput, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, ports.OrderItemInput{
			Name:     it.Name,
			Quantity: it.Quantity,
			Image:    it.Image,
			Price:    it.Price,
		})
	}

	id, err := h.service.Create(c.Request().Context(), ident, ports.CreateOrderInput{
		Items:         items,
		ItemsPrice:    req.ItemsPrice,
		ShippingPrice: req.ShippingPrice,
		TaxPrice:      req.TaxPrice,
		TotalPrice:    req.TotalPrice,
		ShippingAddress: ports.ShippingAddressInput{
			FullName:   req.ShippingAddress.FullName,
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createOrderResponse{ID: id})
}

// Get handles GET /v1/orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// History handles GET /v1/orders/history — all orders owned by the requester.
//
// @Summary      List the requester's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders/history [get]
func (h *OrderHandler) History(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.History(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles GET /v1/orders — every order, admin only.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// MarkPaid handles PUT /v1/orders/:id/pay.
//
// @Summary      Mark an order paid with the provider's confirmation
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Order id"
// @Param        body  body      paymentConfirmationRequest  true  "Payment confirmation"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/orders/{id}/pay [put]
func (h *OrderHandler) MarkPaid(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req paymentConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	// Fields map by name: status→status, email→email. The legacy storefront
	// wrote status from the email field and vice versa; that was a bug, not a
	// contract.
	_, err = h.service.MarkPaid(c.Request().Context(), ident, c.Param("id"), ports.PaymentConfirmation{
		TransactionID: req.TransactionID,
		Status:        req.Status,
		Email:         req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "order paid"})
}
