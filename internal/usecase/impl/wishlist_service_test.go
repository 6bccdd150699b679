package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_ToggleTwiceRestores(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	belt := product(t, sf.catalog, "6")
	sf.wishlist.ToggleWishlist(ctx, product(t, sf.catalog, "2"))
	before := sf.wishlist.GetWishlist(ctx)

	assert.True(t, sf.wishlist.ToggleWishlist(ctx, belt))
	assert.True(t, sf.wishlist.IsInWishlist(ctx, belt.ID))

	assert.False(t, sf.wishlist.ToggleWishlist(ctx, belt))
	assert.False(t, sf.wishlist.IsInWishlist(ctx, belt.ID))

	assert.Equal(t, before, sf.wishlist.GetWishlist(ctx))
}

func TestWishlistService_KeepsInsertionOrder(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()

	sf.wishlist.ToggleWishlist(ctx, product(t, sf.catalog, "7"))
	sf.wishlist.ToggleWishlist(ctx, product(t, sf.catalog, "2"))
	sf.wishlist.ToggleWishlist(ctx, product(t, sf.catalog, "4"))
	sf.wishlist.ToggleWishlist(ctx, product(t, sf.catalog, "2"))

	items := sf.wishlist.GetWishlist(ctx).Items
	require.Len(t, items, 2)
	assert.Equal(t, "7", items[0].ID.String())
	assert.Equal(t, "4", items[1].ID.String())
}

func TestWishlistService_PersistsAcrossRestart(t *testing.T) {
	sf := newStorefront(t)
	ctx := context.Background()
	sf.wishlist.ToggleWishlist(ctx, product(t, sf.catalog, "5"))

	restarted := sf.restart(t)

	assert.True(t, restarted.wishlist.IsInWishlist(ctx, "5"))
	assert.False(t, restarted.wishlist.IsInWishlist(ctx, "1"))
}
