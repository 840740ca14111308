package repository

import (
	"context"

	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/ports"
)

// ProductRepositoryImpl implements the ProductRepository interface on top of
// the document store.
type ProductRepositoryImpl struct {
	store ports.DocumentStore
}

// NewProductRepository creates a new product repository
func NewProductRepository(store ports.DocumentStore) ports.ProductRepository {
	return &ProductRepositoryImpl{store: store}
}

func (r *ProductRepositoryImpl) List(ctx context.Context) ([]entities.Product, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Product, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			return &doc.Products[i], nil
		}
	}
	return nil, entities.ErrProductNotFound
}

func (r *ProductRepositoryImpl) ListBySeller(ctx context.Context, sellerID string) ([]entities.Product, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	matches := []entities.Product{}
	for _, p := range doc.Products {
		if p.SellerID == sellerID {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (r *ProductRepositoryImpl) Append(ctx context.Context, product *entities.Product) error {
	return r.store.Update(ctx, func(doc *entities.Document) error {
		for _, p := range doc.Products {
			if p.ID == product.ID {
				return entities.ErrDuplicateID
			}
		}
		doc.Products = append(doc.Products, *product)
		return nil
	})
}

func (r *ProductRepositoryImpl) Replace(ctx context.Context, product *entities.Product) error {
	return r.store.Update(ctx, func(doc *entities.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == product.ID {
				doc.Products[i] = *product
				return nil
			}
		}
		return entities.ErrProductNotFound
	})
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(doc *entities.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
				return nil
			}
		}
		return entities.ErrProductNotFound
	})
}
