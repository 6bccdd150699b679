package handler

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves product listings.
type CatalogHandler struct {
	catalog  usecase.CatalogUsecase
	currency usecase.CurrencyUsecase
	logger   *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase, currency usecase.CurrencyUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog:  catalog,
		currency: currency,
		logger:   logger,
	}
}

// ListProducts handles GET /catalog/products?category=&collection=&q=&sort=
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query entity.CatalogQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(err)
	}

	ctx := c.Request().Context()
	products := h.catalog.QueryProducts(ctx, query)

	return response.OK(c, map[string]any{
		"query":    query.Normalized(),
		"count":    len(products),
		"products": productViews(ctx, h.currency, products),
	}, "")
}

// GetProduct handles GET /catalog/products/:id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalog.GetProduct(ctx, entity.ProductID(c.Param("id")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ProductView{
		Product:        product,
		FormattedPrice: h.currency.FormatDisplayPrice(ctx, product.BasePrice),
	}, "")
}

// ListCategories handles GET /catalog/categories. "All" always comes first.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories := append([]entity.Category{entity.CategoryAll}, h.catalog.Categories(c.Request().Context())...)

	return response.OK(c, map[string]any{"categories": categories}, "")
}
