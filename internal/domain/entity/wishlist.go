package entity

import "slices"

// Wishlist is a set of product snapshots keyed by product id, in insertion order.
type Wishlist struct {
	Items []Product `json:"items"`
}

// Contains reports whether productID is wishlisted.
func (w *Wishlist) Contains(productID ProductID) bool {
	return slices.ContainsFunc(w.Items, func(p Product) bool {
		return p.ID == productID
	})
}

// Toggle removes product when it is a member and appends it otherwise.
// It reports whether the product is a member afterwards.
func (w *Wishlist) Toggle(product Product) bool {
	i := slices.IndexFunc(w.Items, func(p Product) bool {
		return p.ID == product.ID
	})
	if i >= 0 {
		w.Items = slices.Delete(w.Items, i, i+1)

		return false
	}
	w.Items = append(w.Items, product)

	return true
}

// Len returns the number of wishlisted products.
func (w *Wishlist) Len() int {
	return len(w.Items)
}

// Clone returns a copy that shares no backing array with w.
func (w *Wishlist) Clone() Wishlist {
	return Wishlist{Items: slices.Clone(w.Items)}
}
