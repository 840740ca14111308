package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marketplace/core/internal/domain/entities"
	"github.com/marketplace/core/internal/infrastructure/logger"
	"github.com/marketplace/core/internal/ports"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo ports.ProductRepository
	logger      *logger.Logger
	now         func() time.Time
}

// NewProductService creates a new product service
func NewProductService(productRepo ports.ProductRepository, appLogger *logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      appLogger,
		now:         time.Now,
	}
}

// ListProducts returns the full product collection, unfiltered.
func (s *ProductService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListBySeller returns the seller's products. An empty result is valid.
func (s *ProductService) ListBySeller(ctx context.Context, sellerID string) ([]entities.Product, error) {
	return s.productRepo.ListBySeller(ctx, sellerID)
}

// CreateProduct builds a product from the caller's fields and persists it.
// The identifier, rating and creation timestamp are server-assigned: any
// caller-supplied values for them are discarded, the rating is forced to the
// default regardless of what was sent.
func (s *ProductService) CreateProduct(ctx context.Context, fields map[string]any) (*entities.Product, error) {
	product := entities.ProductFromMap(fields)
	product.ID = uuid.NewString()
	product.Rating = entities.DefaultRating
	product.CreatedAt = s.now().UTC().Format(time.RFC3339)
	product.UpdatedAt = ""

	if err := s.productRepo.Append(ctx, &product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created", "product_id", product.ID, "seller_id", product.SellerID)
	return &product, nil
}

// UpdateProduct merges the caller's fields over the stored record. The
// identifier stays the path identifier no matter what the body says, the
// seller identifier is immutable, and the update timestamp is stamped by the
// server. The claimed principal must match the stored owner.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, principal entities.Principal, fields map[string]any) (*entities.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if principal.SellerID != existing.SellerID {
		s.logger.Warn("Product update rejected",
			"product_id", id,
			"owner_seller_id", existing.SellerID,
			"claimed_seller_id", principal.SellerID,
		)
		return nil, entities.ErrSellerMismatch
	}

	incoming := entities.ProductFromMap(fields)
	updated := *existing
	if updated.Extra == nil {
		updated.Extra = make(map[string]any)
	}
	for k, v := range incoming.Extra {
		updated.Extra[k] = v
	}
	if _, ok := fields["rating"]; ok {
		updated.Rating = incoming.Rating
	}
	updated.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.productRepo.Replace(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", "product_id", updated.ID, "seller_id", updated.SellerID)
	return &updated, nil
}

// DeleteProduct removes a product after checking the claimed principal
// against the stored owner.
func (s *ProductService) DeleteProduct(ctx context.Context, id string, principal entities.Principal) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if principal.SellerID != existing.SellerID {
		s.logger.Warn("Product delete rejected",
			"product_id", id,
			"owner_seller_id", existing.SellerID,
			"claimed_seller_id", principal.SellerID,
		)
		return entities.ErrSellerMismatch
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Product deleted", "product_id", id, "seller_id", existing.SellerID)
	return nil
}
