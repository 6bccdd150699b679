package impl

import (
	"slices"
	"strings"

	"storefront/internal/domain/entity"
)

// QueryCatalog filters by category, then collection, then name search, and sorts
// the survivors. Filters combine with AND. Sorting is stable, so ties keep catalog order.
func QueryCatalog(products []entity.Product, query entity.CatalogQuery) []entity.Product {
	query = query.Normalized()
	needle := strings.ToLower(query.Search)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if query.Category != entity.CategoryAll && p.Category != query.Category {
			continue
		}
		if !query.Collection.Matches(p) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}

	slices.SortStableFunc(out, comparator(query.Sort))

	return out
}

func comparator(mode entity.SortMode) func(a, b entity.Product) int {
	switch mode {
	case entity.SortPriceLow:
		return func(a, b entity.Product) int {
			return a.BasePrice.Cmp(b.BasePrice)
		}
	case entity.SortPriceHigh:
		return func(a, b entity.Product) int {
			return b.BasePrice.Cmp(a.BasePrice)
		}
	default:
		// New arrivals first, then the most recently added id.
		return func(a, b entity.Product) int {
			if a.IsNew != b.IsNew {
				if a.IsNew {
					return -1
				}

				return 1
			}

			return b.ID.Compare(a.ID)
		}
	}
}
