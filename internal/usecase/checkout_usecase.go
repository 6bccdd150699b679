package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CheckoutLine is a cart line with its prices rendered in the base currency.
type CheckoutLine struct {
	entity.CartLine

	FormattedPrice    string `json:"formattedPrice"`
	FormattedSubtotal string `json:"formattedSubtotal"`
}

// CheckoutSummary is the order review. Amounts are in the base currency; the
// formatted fields are converted into the display currency.
type CheckoutSummary struct {
	Lines     []CheckoutLine      `json:"lines"`
	ItemCount int                 `json:"itemCount"`
	Currency  entity.CurrencyCode `json:"currency"`

	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`

	FormattedSubtotal string `json:"formattedSubtotal"`
	FormattedShipping string `json:"formattedShipping"`
	FormattedTotal    string `json:"formattedTotal"`
}

// OrderConfirmation is returned by a simulated order placement.
type OrderConfirmation struct {
	OrderID        string          `json:"orderId"`
	Email          string          `json:"email,omitempty"`
	ShipTo         entity.Address  `json:"shipTo"`
	ItemCount      int             `json:"itemCount"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
	AddressSaved   bool            `json:"addressSaved"`
}

// CheckoutUsecase defines the checkout operations. Nothing is charged or stored as an order.
type CheckoutUsecase interface {
	Summary(ctx context.Context) CheckoutSummary
	// PlaceOrder returns ErrCartEmpty or ErrInvalidPostalCode when the order cannot be placed.
	PlaceOrder(ctx context.Context, shipTo entity.Address) (*OrderConfirmation, error)
}
