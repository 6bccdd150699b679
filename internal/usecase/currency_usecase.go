package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CurrencyUsecase defines display currency selection, conversion and formatting.
type CurrencyUsecase interface {
	// SetCurrency stores code as is. Unknown codes convert at rate 1.
	SetCurrency(ctx context.Context, code entity.CurrencyCode)
	GetCurrency(ctx context.Context) entity.CurrencyState
	SupportedCurrencies(ctx context.Context) []entity.CurrencyCode

	ConvertPrice(ctx context.Context, amount decimal.Decimal) decimal.Decimal
	// FormatDisplayPrice converts amount into the selected currency and renders it.
	FormatDisplayPrice(ctx context.Context, amount decimal.Decimal) string
	// FormatBasePrice renders amount in the base currency, ignoring the selection.
	FormatBasePrice(ctx context.Context, amount decimal.Decimal) string

	// RefreshRates starts a background fetch and returns at once. The channel is
	// closed when the fetch has been applied or abandoned.
	RefreshRates(ctx context.Context) <-chan struct{}
}
