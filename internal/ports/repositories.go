package ports

import (
	"context"

	"github.com/marketplace/core/internal/domain/entities"
)

// DocumentStore is the capability handed to repositories for reading and
// rewriting the persisted database document. Update serializes the whole
// load-transform-save sequence behind a single writer, so two concurrent
// mutations cannot drop each other's changes.
type DocumentStore interface {
	Load(ctx context.Context) (*entities.Document, error)
	Save(ctx context.Context, doc *entities.Document) error
	Update(ctx context.Context, fn func(doc *entities.Document) error) error
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entities.Product, error)
	Append(ctx context.Context, product *entities.Product) error
	Replace(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	Append(ctx context.Context, order *entities.Order) error
}
