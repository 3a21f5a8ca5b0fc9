package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ozstore/storefront-api/internal/core/ports"
)

// CatalogHandler serves the public, read-only product surface.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type availabilityResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Available bool   `json:"available"`
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// GetBySlug handles GET /v1/products/slug/:slug.
//
// @Summary      Get a product by slug
// @Tags         products
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /v1/products/slug/{slug} [get]
func (h *CatalogHandler) GetBySlug(c echo.Context) error {
	product, err := h.service.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Categories handles GET /v1/products/categories.
//
// @Summary      List the fixed category names
// @Tags         products
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/products/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Categories())
}

// Availability handles GET /v1/products/:id/availability?quantity=n — the
// add-to-cart stock guard. Read-only: nothing is reserved or decremented.
//
// @Summary      Check whether the requested quantity is in stock
// @Tags         products
// @Produce      json
// @Param        id        path      string  true  "Product id"
// @Param        quantity  query     int     true  "Requested quantity"
// @Success      200       {object}  availabilityResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /v1/products/{id}/availability [get]
func (h *CatalogHandler) Availability(c echo.Context) error {
	qty, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil || qty <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be a positive integer")
	}

	id := c.Param("id")
	if err := h.service.CheckStock(c.Request().Context(), id, qty); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, availabilityResponse{
		ProductID: id,
		Quantity:  qty,
		Available: true,
	})
}
