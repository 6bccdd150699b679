package service

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PriceFormatter renders an amount that is already denominated in code.
type PriceFormatter interface {
	Format(amount decimal.Decimal, code entity.CurrencyCode) string
}
