package impl

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID.String())
	}

	return out
}

func TestQueryCatalog(t *testing.T) {
	seed := newTestCatalog(t).All()

	tests := []struct {
		name  string
		query entity.CatalogQuery
		want  []string
	}{
		{
			name:  "defaults sort newest first",
			query: entity.CatalogQuery{},
			want:  []string{"7", "5", "1", "8", "6", "4", "3", "2"},
		},
		{
			name:  "unknown sort falls back to newest",
			query: entity.CatalogQuery{Category: entity.CategoryAll, Sort: "cheapest"},
			want:  []string{"7", "5", "1", "8", "6", "4", "3", "2"},
		},
		{
			name:  "category with price low",
			query: entity.CatalogQuery{Category: "Tops", Sort: entity.SortPriceLow},
			want:  []string{"3", "1"},
		},
		{
			name:  "price high",
			query: entity.CatalogQuery{Sort: entity.SortPriceHigh},
			want:  []string{"7", "5", "4", "8", "1", "2", "3", "6"},
		},
		{
			name:  "new arrivals",
			query: entity.CatalogQuery{Collection: entity.CollectionNewArrivals},
			want:  []string{"7", "5", "1"},
		},
		{
			name:  "best sellers",
			query: entity.CatalogQuery{Collection: entity.CollectionBestSellers},
			want:  []string{"2"},
		},
		{
			name:  "unknown collection is ignored",
			query: entity.CatalogQuery{Category: "Shoes", Collection: "sale"},
			want:  []string{"7", "8"},
		},
		{
			name:  "search is case insensitive on name",
			query: entity.CatalogQuery{Search: "LACE"},
			want:  []string{"2"},
		},
		{
			name:  "search does not match category",
			query: entity.CatalogQuery{Search: "shoes"},
			want:  []string{},
		},
		{
			name:  "filters combine",
			query: entity.CatalogQuery{Category: "Sets", Collection: entity.CollectionNewArrivals, Search: "dress"},
			want:  []string{"5"},
		},
		{
			name:  "category is case sensitive",
			query: entity.CatalogQuery{Category: "tops"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(QueryCatalog(seed, tt.query)))
		})
	}
}

func TestQueryCatalog_StableOnEqualPrices(t *testing.T) {
	products := []entity.Product{
		{ID: "a", BasePrice: decimal.NewFromInt(20)},
		{ID: "b", BasePrice: decimal.NewFromInt(10)},
		{ID: "c", BasePrice: decimal.NewFromInt(20)},
		{ID: "d", BasePrice: decimal.RequireFromString("10.00")},
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(QueryCatalog(products, entity.CatalogQuery{Sort: entity.SortPriceLow})))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(QueryCatalog(products, entity.CatalogQuery{Sort: entity.SortPriceHigh})))
}

func TestQueryCatalog_DoesNotTouchInput(t *testing.T) {
	seed := newTestCatalog(t).All()
	before := ids(seed)

	QueryCatalog(seed, entity.CatalogQuery{Sort: entity.SortPriceHigh})

	assert.Equal(t, before, ids(seed))
}

func TestQueryCatalog_NumericIDsOrderNumerically(t *testing.T) {
	products := []entity.Product{{ID: "9"}, {ID: "10"}, {ID: "2"}}

	assert.Equal(t, []string{"10", "9", "2"}, ids(QueryCatalog(products, entity.CatalogQuery{})))
}
