package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketplace/core/internal/infrastructure/logger"
	"github.com/marketplace/core/internal/ports"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orderService ports.OrderService
	logger       *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService ports.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// ListByUser handles listing a user's orders. No orders is a valid, empty
// result.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID := c.Param("userId")

	orders, err := h.orderService.ListOrdersByUser(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("List orders by user failed", "error", err, "user_id", userID)
		return translateError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// CreateOrder handles order creation
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), fields)
	if err != nil {
		h.logger.Error("Create order failed", "error", err)
		return translateError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}
