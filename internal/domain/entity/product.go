// Package entity contains the core business objects of the storefront.
package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductID identifies a catalog product. Catalog seeds may carry ids either as
// JSON numbers or as strings; both decode into the same textual form.
type ProductID string

// String returns the id in its textual form.
func (id ProductID) String() string {
	return string(id)
}

// Compare orders ids numerically when both are integers and lexically otherwise.
// It returns -1, 0 or +1.
func (id ProductID) Compare(other ProductID) int {
	a, errA := strconv.ParseInt(string(id), 10, 64)
	b, errB := strconv.ParseInt(string(other), 10, 64)
	if errA == nil && errB == nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(string(id), string(other))
}

// UnmarshalJSON accepts both `7` and `"7"`.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())

	return nil
}

// Category is a member of the catalog's closed category enum.
type Category string

// CategoryAll is the pseudo-category that disables category filtering.
const CategoryAll Category = "All"

// Product is an immutable catalog entry. Prices are denominated in the base currency.
type Product struct {
	ID           ProductID       `json:"id"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"price"`
	Category     Category        `json:"category"`
	Image        string          `json:"image"`
	HoverImage   string          `json:"hoverImage"`
	Description  string          `json:"description"`
	IsNew        bool            `json:"isNew,omitempty"`
	IsBestSeller bool            `json:"isBestSeller,omitempty"`
}
