package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddToCart_MergesSameKey(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	top := product(t, sf.catalog, "1")

	sf.cart.AddToCart(ctx, top, "S")
	line := sf.cart.AddToCart(ctx, top, "S")

	cart := sf.cart.GetCart(ctx)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "1-S", cart.Lines[0].Key())
}

func TestCartService_RemoveThenAddStartsAtOne(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	top := product(t, sf.catalog, "1")

	for range 4 {
		sf.cart.AddToCart(ctx, top, "S")
	}
	require.True(t, sf.cart.RemoveFromCart(ctx, "1", "S"))

	line := sf.cart.AddToCart(ctx, top, "S")
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1, sf.cart.CartCount(ctx))
}

func TestCartService_AddToCart_SizesAreSeparateLines(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	top := product(t, sf.catalog, "1")

	sf.cart.AddToCart(ctx, top, "S")
	sf.cart.AddToCart(ctx, top, "M")
	sf.cart.AddToCart(ctx, top, "S")

	cart := sf.cart.GetCart(ctx)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "S", cart.Lines[0].Size)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "M", cart.Lines[1].Size)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCartService_AddToCart_SnapshotsPrice(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	top := product(t, sf.catalog, "1")

	sf.cart.AddToCart(ctx, top, "S")

	repriced := top
	repriced.BasePrice = decimal.NewFromInt(80)
	repriced.Name = "Renamed"
	sf.cart.AddToCart(ctx, repriced, "S")

	cart := sf.cart.GetCart(ctx)
	require.Len(t, cart.Lines, 1)
	assert.True(t, cart.Lines[0].Price.Equal(decimal.NewFromInt(65)))
	assert.Equal(t, top.Name, cart.Lines[0].Name)
}

func TestCartService_CountAndTotal(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	top := product(t, sf.catalog, "1")
	skirt := product(t, sf.catalog, "2")

	for range 2 {
		sf.cart.AddToCart(ctx, top, "S")
	}
	for range 3 {
		sf.cart.AddToCart(ctx, skirt, "M")
	}

	assert.Equal(t, 5, sf.cart.CartCount(ctx))
	// 2 x 65 + 3 x 55
	assert.True(t, sf.cart.CartTotal(ctx).Equal(decimal.NewFromInt(295)))
}

func TestCartService_EmptyCart(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	assert.Equal(t, 0, sf.cart.CartCount(ctx))
	assert.True(t, sf.cart.CartTotal(ctx).IsZero())
	assert.Empty(t, sf.cart.GetCart(ctx).Lines)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name  string
		adds  int
		delta int
		want  int
	}{
		{name: "increment", adds: 1, delta: 1, want: 2},
		{name: "decrement", adds: 3, delta: -1, want: 2},
		{name: "clamps at one", adds: 1, delta: -1, want: 1},
		{name: "large decrement clamps", adds: 2, delta: -10, want: 1},
		{name: "zero delta", adds: 2, delta: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := newStorefront(t)
			ctx := context.Background()
			boots := product(t, sf.catalog, "7")

			for range tt.adds {
				sf.cart.AddToCart(ctx, boots, "38")
			}

			line, found := sf.cart.UpdateQuantity(ctx, boots.ID, "38", tt.delta)

			require.True(t, found)
			assert.Equal(t, tt.want, line.Quantity)
			assert.Equal(t, tt.want, sf.cart.CartCount(ctx))
		})
	}
}

func TestCartService_AbsentKeysAreNoOps(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	top := product(t, sf.catalog, "1")
	sf.cart.AddToCart(ctx, top, "S")
	before := sf.cart.GetCart(ctx)

	_, found := sf.cart.UpdateQuantity(ctx, "1", "XL", 1)
	assert.False(t, found)
	assert.False(t, sf.cart.RemoveFromCart(ctx, "404", "S"))
	assert.False(t, sf.cart.RemoveFromCart(ctx, "1", "M"))

	assert.Equal(t, before, sf.cart.GetCart(ctx))
}

func TestCartService_RemoveKeepsOrder(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	for _, id := range []entity.ProductID{"3", "1", "8"} {
		sf.cart.AddToCart(ctx, product(t, sf.catalog, id), "M")
	}

	assert.True(t, sf.cart.RemoveFromCart(ctx, "1", "M"))

	cart := sf.cart.GetCart(ctx)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, entity.ProductID("3"), cart.Lines[0].ProductID)
	assert.Equal(t, entity.ProductID("8"), cart.Lines[1].ProductID)
}

func TestCartService_PersistsAcrossRestart(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	sf.cart.AddToCart(ctx, product(t, sf.catalog, "5"), "S")
	sf.cart.AddToCart(ctx, product(t, sf.catalog, "5"), "S")
	sf.cart.AddToCart(ctx, product(t, sf.catalog, "6"), "One Size")
	want := sf.cart.GetCart(ctx)

	restarted := sf.restart(t)

	assert.Equal(t, want, restarted.cart.GetCart(ctx))
	assert.Equal(t, 3, restarted.cart.CartCount(ctx))
}
