package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

type wishlistService struct {
	engine *Engine
	logger *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(engine *Engine, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		engine: engine,
		logger: logger,
	}
}

func (srv *wishlistService) ToggleWishlist(ctx context.Context, product entity.Product) bool {
	var member bool
	srv.engine.mutate(ctx, "toggle_wishlist", func(s *entity.State) bool {
		member = s.Wishlist.Toggle(product)

		return true
	})

	requestLogger(ctx, srv.logger).Debug("Wishlist toggled",
		slog.String("product_id", product.ID.String()),
		slog.Bool("in_wishlist", member),
	)

	return member
}

func (srv *wishlistService) IsInWishlist(ctx context.Context, productID entity.ProductID) bool {
	var member bool
	srv.engine.view(func(s *entity.State) {
		member = s.Wishlist.Contains(productID)
	})

	return member
}

func (srv *wishlistService) GetWishlist(ctx context.Context) entity.Wishlist {
	var wishlist entity.Wishlist
	srv.engine.view(func(s *entity.State) {
		wishlist = s.Wishlist.Clone()
	})

	return wishlist
}
