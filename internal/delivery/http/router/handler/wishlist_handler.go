package handler

import (
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ToggleWishlistRequest is the body of POST /wishlist/toggle.
type ToggleWishlistRequest struct {
	ProductID entity.ProductID `json:"productId" validate:"required"`
}

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	wishlist usecase.WishlistUsecase
	catalog  usecase.CatalogUsecase
	currency usecase.CurrencyUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlist usecase.WishlistUsecase, catalog usecase.CatalogUsecase, currency usecase.CurrencyUsecase) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		catalog:  catalog,
		currency: currency,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	items := h.wishlist.GetWishlist(ctx).Items

	return response.OK(c, map[string]any{
		"count": len(items),
		"items": productViews(ctx, h.currency, items),
	}, "")
}

// Toggle handles POST /wishlist/toggle
func (h *WishlistHandler) Toggle(c echo.Context) error {
	var input ToggleWishlistRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	product, err := h.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	member := h.wishlist.ToggleWishlist(ctx, product)

	message := "Removed from wishlist"
	if member {
		message = "Added to wishlist"
	}

	wishlist := h.wishlist.GetWishlist(ctx)

	return response.OK(c, map[string]any{
		"productId":  product.ID,
		"inWishlist": member,
		"count":      wishlist.Len(),
	}, message)
}

// Contains handles GET /wishlist/:productId
func (h *WishlistHandler) Contains(c echo.Context) error {
	id := entity.ProductID(c.Param("productId"))

	return response.OK(c, map[string]any{
		"productId":  id,
		"inWishlist": h.wishlist.IsInWishlist(c.Request().Context(), id),
	}, "")
}
