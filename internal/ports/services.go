package ports

import (
	"context"

	"github.com/marketplace/core/internal/domain/entities"
)

// ProductService defines the product use cases exposed over HTTP. Create and
// update take the raw decoded JSON body: callers may send arbitrary fields
// and the service decides which ones the server owns.
type ProductService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (*entities.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entities.Product, error)
	CreateProduct(ctx context.Context, fields map[string]any) (*entities.Product, error)
	UpdateProduct(ctx context.Context, id string, principal entities.Principal, fields map[string]any) (*entities.Product, error)
	DeleteProduct(ctx context.Context, id string, principal entities.Principal) error
}

// OrderService defines the order use cases exposed over HTTP.
type OrderService interface {
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	CreateOrder(ctx context.Context, fields map[string]any) (*entities.Order, error)
}
