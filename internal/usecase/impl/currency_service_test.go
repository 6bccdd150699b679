package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitRefresh(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("rate refresh did not finish")
	}
}

func TestCurrencyService_ConvertAndFormat(t *testing.T) {
	tests := []struct {
		code        entity.CurrencyCode
		amount      string
		wantDisplay string
	}{
		{code: "EUR", amount: "65", wantDisplay: "€65.00"},
		{code: "USD", amount: "65", wantDisplay: "$70.85"},
		{code: "GBP", amount: "100", wantDisplay: "£85.00"},
		{code: "JPY", amount: "65", wantDisplay: "¥10,595"},
		{code: "CNY", amount: "65", wantDisplay: "CN¥507.00"},
		{code: "XYZ", amount: "5", wantDisplay: "XYZ 5.00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			sf := newStorefront(t)
			ctx := context.Background()
			amount := decimal.RequireFromString(tt.amount)

			sf.currency.SetCurrency(ctx, tt.code)

			assert.Equal(t, tt.wantDisplay, sf.currency.FormatDisplayPrice(ctx, amount))
			assert.Equal(t, "€"+amount.StringFixed(2), sf.currency.FormatBasePrice(ctx, amount))
		})
	}
}

func TestCurrencyService_UnknownCodeConvertsAtOne(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	sf.currency.SetCurrency(ctx, "XYZ")

	assert.True(t, sf.currency.ConvertPrice(ctx, decimal.NewFromInt(42)).Equal(decimal.NewFromInt(42)))
	assert.Equal(t, entity.CurrencyCode("XYZ"), sf.currency.GetCurrency(ctx).Selected)
}

func TestCurrencyService_SelectionPersists(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	sf.currency.SetCurrency(ctx, "JPY")

	restarted := sf.restart(t)

	state := restarted.currency.GetCurrency(ctx)
	assert.Equal(t, entity.CurrencyCode("JPY"), state.Selected)
	assert.True(t, state.Rates["JPY"].Equal(decimal.NewFromInt(163)))
}

func TestCurrencyService_SupportedCurrencies(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	supported := sf.currency.SupportedCurrencies(ctx)
	assert.Equal(t, []entity.CurrencyCode{"EUR", "USD", "GBP", "JPY", "CNY"}, supported)

	supported[0] = "XXX"
	assert.Equal(t, entity.CurrencyCode("EUR"), sf.currency.SupportedCurrencies(ctx)[0])
}

func TestCurrencyService_RefreshRates_Merges(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	sf.rates.EXPECT().
		FetchRates(mock.Anything, entity.CurrencyCode("EUR")).
		Return(entity.RateTable{
			"EUR": decimal.RequireFromString("0.5"),
			"USD": decimal.RequireFromString("1.2"),
			"CHF": decimal.RequireFromString("0.95"),
		}, nil).
		Once()

	waitRefresh(t, sf.currency.RefreshRates(ctx))

	rates := sf.currency.GetCurrency(ctx).Rates
	assert.True(t, rates["EUR"].Equal(decimal.NewFromInt(1)), "base rate stays pinned")
	assert.True(t, rates["USD"].Equal(decimal.RequireFromString("1.2")))
	assert.True(t, rates["CHF"].Equal(decimal.RequireFromString("0.95")))
	assert.True(t, rates["GBP"].Equal(decimal.RequireFromString("0.85")), "unfetched codes are kept")

	sf.currency.SetCurrency(ctx, "USD")
	assert.Equal(t, "$120.00", sf.currency.FormatDisplayPrice(ctx, decimal.NewFromInt(100)))
}

func TestCurrencyService_RefreshRates_FailureKeepsTable(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	before := sf.currency.GetCurrency(ctx)

	sf.rates.EXPECT().
		FetchRates(mock.Anything, entity.CurrencyCode("EUR")).
		Return(nil, errors.New("dial tcp: connection refused")).
		Once()

	waitRefresh(t, sf.currency.RefreshRates(ctx))

	assert.Equal(t, before, sf.currency.GetCurrency(ctx))
}

func TestCurrencyService_RefreshRates_DoesNotBlock(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	release := make(chan struct{})

	sf.rates.EXPECT().
		FetchRates(mock.Anything, entity.CurrencyCode("EUR")).
		RunAndReturn(func(context.Context, entity.CurrencyCode) (entity.RateTable, error) {
			<-release

			return entity.RateTable{"USD": decimal.RequireFromString("1.5")}, nil
		}).
		Once()

	done := sf.currency.RefreshRates(ctx)

	// The engine keeps serving while the fetch is in flight.
	sf.cart.AddToCart(ctx, product(t, sf.catalog, "1"), "S")
	assert.Equal(t, 1, sf.cart.CartCount(ctx))
	assert.True(t, sf.currency.GetCurrency(ctx).Rates["USD"].Equal(decimal.RequireFromString("1.09")))

	close(release)
	waitRefresh(t, done)

	assert.True(t, sf.currency.GetCurrency(ctx).Rates["USD"].Equal(decimal.RequireFromString("1.5")))
}

func TestCurrencyService_RefreshRates_OutlivesCallerContext(t *testing.T) {
	sf := newStorefront(t)
	ctx, cancel := context.WithCancel(context.Background())

	var fetchCtx context.Context
	sf.rates.EXPECT().
		FetchRates(mock.Anything, entity.CurrencyCode("EUR")).
		RunAndReturn(func(c context.Context, _ entity.CurrencyCode) (entity.RateTable, error) {
			fetchCtx = c

			return entity.RateTable{"USD": decimal.RequireFromString("1.1")}, nil
		}).
		Once()

	cancel()
	waitRefresh(t, sf.currency.RefreshRates(ctx))

	require.NotNil(t, fetchCtx)
	assert.NoError(t, fetchCtx.Err())
	_, hasDeadline := fetchCtx.Deadline()
	assert.False(t, hasDeadline, "no timeout unless one is configured")
}

func TestCurrencyService_RefreshRates_ConfiguredTimeout(t *testing.T) {
	cfg := newTestConfig()
	cfg.Currency.FetchTimeout = 20 * time.Millisecond
	sf := newStorefrontOn(t, newStorefront(t).store, cfg)
	ctx := context.Background()
	before := sf.currency.GetCurrency(ctx).Rates

	sf.rates.EXPECT().
		FetchRates(mock.Anything, entity.CurrencyCode("EUR")).
		RunAndReturn(func(c context.Context, _ entity.CurrencyCode) (entity.RateTable, error) {
			<-c.Done()

			return nil, c.Err()
		}).
		Once()

	waitRefresh(t, sf.currency.RefreshRates(ctx))

	assert.Equal(t, before, sf.currency.GetCurrency(ctx).Rates)
}
