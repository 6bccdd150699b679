package entity

// SortMode selects the ordering of catalog query results.
type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
)

// ParseSortMode maps unknown or empty values to SortNewest.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceLow, SortPriceHigh:
		return SortMode(s)
	default:
		return SortNewest
	}
}

// CollectionTag is a secondary filter orthogonal to the category.
type CollectionTag string

const (
	CollectionNone        CollectionTag = ""
	CollectionNewArrivals CollectionTag = "new-arrivals"
	CollectionBestSellers CollectionTag = "best-sellers"
)

// Matches reports whether product belongs to the collection. Unknown tags match everything.
func (t CollectionTag) Matches(product Product) bool {
	switch t {
	case CollectionNewArrivals:
		return product.IsNew
	case CollectionBestSellers:
		return product.IsBestSeller
	default:
		return true
	}
}

// CatalogQuery is the full parameter set of a catalog listing. It is comparable
// and is used directly as a cache key.
type CatalogQuery struct {
	Category   Category      `json:"category" query:"category"`
	Collection CollectionTag `json:"collection" query:"collection"`
	Search     string        `json:"q" query:"q"`
	Sort       SortMode      `json:"sort" query:"sort"`
}

// Normalized fills defaults: an empty category means CategoryAll and unknown sorts
// fall back to SortNewest.
func (q CatalogQuery) Normalized() CatalogQuery {
	if q.Category == "" {
		q.Category = CategoryAll
	}
	q.Sort = ParseSortMode(string(q.Sort))

	return q
}
