// Package service declares ports to collaborators outside the engine.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// RateSource fetches live exchange rates keyed by a base currency.
type RateSource interface {
	// FetchRates returns multipliers relative to base. Any transport or decoding
	// problem is returned as an error and no partial table is produced.
	FetchRates(ctx context.Context, base entity.CurrencyCode) (entity.RateTable, error)
}
