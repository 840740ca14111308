package repository

import (
	"context"

	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/ports"
)

// OrderRepositoryImpl implements the OrderRepository interface on top of the
// document store.
type OrderRepositoryImpl struct {
	store ports.DocumentStore
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(store ports.DocumentStore) ports.OrderRepository {
	return &OrderRepositoryImpl{store: store}
}

func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	matches := []entities.Order{}
	for _, o := range doc.Orders {
		if o.UserID == userID {
			matches = append(matches, o)
		}
	}
	return matches, nil
}

func (r *OrderRepositoryImpl) Append(ctx context.Context, order *entities.Order) error {
	return r.store.Update(ctx, func(doc *entities.Document) error {
		for _, o := range doc.Orders {
			if o.ID == order.ID {
				return entities.ErrDuplicateID
			}
		}
		doc.Orders = append(doc.Orders, *order)
		return nil
	})
}
