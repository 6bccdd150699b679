package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// cartService implements the CartUsecase interface on top of the engine.
type cartService struct {
	engine *Engine
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(engine *Engine, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		engine: engine,
		logger: logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// AddToCart bumps the (product, size) line or appends a new one holding a copy of
// the product's current display fields.
func (srv *cartService) AddToCart(ctx context.Context, product entity.Product, size string) entity.CartLine {
	var line entity.CartLine
	srv.engine.mutate(ctx, "add_to_cart", func(s *entity.State) bool {
		line = s.Cart.Add(product, size)

		return true
	})

	srv.log(ctx).Debug("Added to cart",
		slog.String("product_id", product.ID.String()),
		slog.String("size", size),
		slog.Int("quantity", line.Quantity),
	)

	return line
}

func (srv *cartService) RemoveFromCart(ctx context.Context, productID entity.ProductID, size string) bool {
	removed := srv.engine.mutate(ctx, "remove_from_cart", func(s *entity.State) bool {
		return s.Cart.Remove(productID, size)
	})

	srv.log(ctx).Debug("Remove from cart",
		slog.String("product_id", productID.String()),
		slog.String("size", size),
		slog.Bool("removed", removed),
	)

	return removed
}

// UpdateQuantity applies delta with a floor of one. Lines are only ever removed
// through RemoveFromCart.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID entity.ProductID, size string, delta int) (entity.CartLine, bool) {
	var (
		line  entity.CartLine
		found bool
	)
	srv.engine.mutate(ctx, "update_quantity", func(s *entity.State) bool {
		before, ok := s.Cart.Find(productID, size)
		if !ok {
			return false
		}
		line, found = s.Cart.UpdateQuantity(productID, size, delta)

		return line.Quantity != before.Quantity
	})

	return line, found
}

func (srv *cartService) GetCart(ctx context.Context) entity.Cart {
	var cart entity.Cart
	srv.engine.view(func(s *entity.State) {
		cart = s.Cart.Clone()
	})

	return cart
}

// CartTotal is in the base currency.
func (srv *cartService) CartTotal(ctx context.Context) decimal.Decimal {
	var total decimal.Decimal
	srv.engine.view(func(s *entity.State) {
		total = s.Cart.Total()
	})

	return total
}

func (srv *cartService) CartCount(ctx context.Context) int {
	var count int
	srv.engine.view(func(s *entity.State) {
		count = s.Cart.Count()
	})

	return count
}
