package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/infrastructure/logger"
	"github.com/marketplace/core/internal/ports"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo ports.OrderRepository
	logger    *logger.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo ports.OrderRepository, appLogger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    appLogger,
		now:       time.Now,
	}
}

// ListOrdersByUser returns the user's orders. An empty result is valid.
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// CreateOrder builds an order from the caller's fields and persists it. The
// prefixed identifier and creation timestamp are server-assigned.
func (s *OrderService) CreateOrder(ctx context.Context, fields map[string]any) (*entities.Order, error) {
	order := entities.OrderFromMap(fields)
	order.ID = entities.OrderIDPrefix + uuid.NewString()
	order.CreatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.orderRepo.Append(ctx, &order); err != nil {
		return nil, err
	}

	s.logger.Info("Order created", "order_id", order.ID, "user_id", order.UserID)
	return &order, nil
}
