package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddCartLineRequest is the body of POST /cart/lines.
type AddCartLineRequest struct {
	ProductID entity.ProductID `json:"productId" validate:"required"`
	Size      string           `json:"size" validate:"required,max=32"`
}

// UpdateCartLineRequest is the body of PATCH /cart/lines/:productId/:size.
type UpdateCartLineRequest struct {
	Delta int `json:"delta"`
}

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	cart     usecase.CartUsecase
	catalog  usecase.CatalogUsecase
	currency usecase.CurrencyUsecase
	logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase, currency usecase.CurrencyUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:     cart,
		catalog:  catalog,
		currency: currency,
		logger:   logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.OK(c, cartView(c.Request().Context(), h.cart, h.currency), "")
}

// AddLine handles POST /cart/lines. Adding an existing (product, size) bumps its quantity.
func (h *CartHandler) AddLine(c echo.Context) error {
	var input AddCartLineRequest
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

	h.cart.AddToCart(ctx, product, input.Size)

	return response.Success(c, http.StatusCreated, cartView(ctx, h.cart, h.currency), "Added to cart")
}

// UpdateLine handles PATCH /cart/lines/:productId/:size. Quantities never drop below one.
func (h *CartHandler) UpdateLine(c echo.Context) error {
	var input UpdateCartLineRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(err)
	}

	ctx := c.Request().Context()
	h.cart.UpdateQuantity(ctx, entity.ProductID(c.Param("productId")), c.Param("size"), input.Delta)

	return response.OK(c, cartView(ctx, h.cart, h.currency), "")
}

// RemoveLine handles DELETE /cart/lines/:productId/:size. Unknown lines are ignored.
func (h *CartHandler) RemoveLine(c echo.Context) error {
	ctx := c.Request().Context()
	h.cart.RemoveFromCart(ctx, entity.ProductID(c.Param("productId")), c.Param("size"))

	return response.OK(c, cartView(ctx, h.cart, h.currency), "")
}
