package handler

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
)

// ProductView is a catalog product with its price in the display currency.
type ProductView struct {
	entity.Product

	FormattedPrice string `json:"formattedPrice"`
}

// CartLineView renders a cart line. Item prices are shown in the base currency.
type CartLineView struct {
	entity.CartLine

	LineID            string `json:"lineId"`
	FormattedPrice    string `json:"formattedPrice"`
	FormattedSubtotal string `json:"formattedSubtotal"`
}

// CartView is the cart drawer: lines, item count and the total in the display currency.
type CartView struct {
	Lines          []CartLineView      `json:"lines"`
	Count          int                 `json:"count"`
	Total          decimal.Decimal     `json:"total"`
	FormattedTotal string              `json:"formattedTotal"`
	Currency       entity.CurrencyCode `json:"currency"`
}

func productViews(ctx context.Context, currency usecase.CurrencyUsecase, products []entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product:        p,
			FormattedPrice: currency.FormatDisplayPrice(ctx, p.BasePrice),
		})
	}

	return views
}

func cartView(ctx context.Context, cart usecase.CartUsecase, currency usecase.CurrencyUsecase) CartView {
	snapshot := cart.GetCart(ctx)
	total := snapshot.Total()

	lines := make([]CartLineView, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		lines = append(lines, CartLineView{
			CartLine:          l,
			LineID:            l.Key(),
			FormattedPrice:    currency.FormatBasePrice(ctx, l.Price),
			FormattedSubtotal: currency.FormatBasePrice(ctx, l.Subtotal()),
		})
	}

	return CartView{
		Lines:          lines,
		Count:          snapshot.Count(),
		Total:          total,
		FormattedTotal: currency.FormatDisplayPrice(ctx, total),
		Currency:       currency.GetCurrency(ctx).Selected,
	}
}
