package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase defines the wishlist operations.
type WishlistUsecase interface {
	// ToggleWishlist reports whether the product is wishlisted afterwards.
	ToggleWishlist(ctx context.Context, product entity.Product) bool
	IsInWishlist(ctx context.Context, productID entity.ProductID) bool
	GetWishlist(ctx context.Context) entity.Wishlist
}
