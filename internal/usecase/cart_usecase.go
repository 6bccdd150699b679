// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase defines the cart operations. None of them fail: unknown keys are no-ops.
type CartUsecase interface {
	AddToCart(ctx context.Context, product entity.Product, size string) entity.CartLine
	RemoveFromCart(ctx context.Context, productID entity.ProductID, size string) bool
	UpdateQuantity(ctx context.Context, productID entity.ProductID, size string, delta int) (entity.CartLine, bool)
	GetCart(ctx context.Context) entity.Cart
	CartTotal(ctx context.Context) decimal.Decimal
	CartCount(ctx context.Context) int
}
