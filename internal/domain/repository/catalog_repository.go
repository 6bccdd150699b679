package repository

import "storefront/internal/domain/entity"

// CatalogRepository serves the read-only product seed.
type CatalogRepository interface {
	// All returns the products in seed order. Callers must not modify the slice.
	All() []entity.Product

	// FindByID returns the product with id, or false.
	FindByID(id entity.ProductID) (entity.Product, bool)

	// Categories returns the closed category enum in display order, without CategoryAll.
	Categories() []entity.Category
}
