package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/infrastructure/logger"
	"github.com/marketplace/core/internal/ports"
)

// ProductHandler handles product-related requests
type ProductHandler struct {
	productService ports.ProductService
	logger         *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService ports.ProductService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListProducts handles listing the full product collection
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.ListProducts(c.Request().Context())
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		return translateError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles getting a product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productService.GetProduct(c.Request().Context(), id)
	if err != nil {
		if !isNotFound(err) {
			h.logger.Error("Get product failed", "error", err, "product_id", id)
		}
		return translateError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// ListBySeller handles listing a seller's products. No products is a valid,
// empty result.
func (h *ProductHandler) ListBySeller(c echo.Context) error {
	sellerID := c.Param("sellerId")

	products, err := h.productService.ListBySeller(c.Request().Context(), sellerID)
	if err != nil {
		h.logger.Error("List products by seller failed", "error", err, "seller_id", sellerID)
		return translateError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	product, err := h.productService.CreateProduct(c.Request().Context(), fields)
	if err != nil {
		h.logger.Error("Create product failed", "error", err)
		return translateError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles product updates. The claimed seller must come from
// the request body and match the stored owner.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	fields, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	principal := entities.Principal{}
	if s, ok := fields["sellerId"].(string); ok {
		principal.SellerID = s
	}

	product, err := h.productService.UpdateProduct(c.Request().Context(), id, principal, fields)
	if err != nil {
		if !isNotFound(err) && !isForbidden(err) {
			h.logger.Error("Update product failed", "error", err, "product_id", id)
		}
		return translateError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles product deletion. The claimed seller comes from the
// body sellerId or, when absent, the x-seller-id header.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	fields, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	principal := claimedSeller(c, fields)

	if err := h.productService.DeleteProduct(c.Request().Context(), id, principal); err != nil {
		if !isNotFound(err) && !isForbidden(err) {
			h.logger.Error("Delete product failed", "error", err, "product_id", id)
		}
		return translateError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "product deleted successfully"})
}
