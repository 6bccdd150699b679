package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines read access to the product catalog.
type CatalogUsecase interface {
	QueryProducts(ctx context.Context, query entity.CatalogQuery) []entity.Product
	// GetProduct returns domainerrors.ErrProductNotFound for unknown ids.
	GetProduct(ctx context.Context, id entity.ProductID) (entity.Product, error)
	Categories(ctx context.Context) []entity.Category
}
