package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// MinLineQuantity is the quantity floor of a cart line. Decrementing never goes below it;
// removal is always explicit.
const MinLineQuantity = 1

// CartLine is one row of the cart, keyed by (ProductID, Size).
// The product display fields are copied when the line is created and do not follow
// later catalog changes.
type CartLine struct {
	ProductID    ProductID       `json:"id"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Category     Category        `json:"category"`
	Image        string          `json:"image"`
	HoverImage   string          `json:"hoverImage"`
	Description  string          `json:"description"`
	IsNew        bool            `json:"isNew,omitempty"`
	IsBestSeller bool            `json:"isBestSeller,omitempty"`
}

// NewCartLine snapshots product into a line of quantity 1.
func NewCartLine(product Product, size string) CartLine {
	return CartLine{
		ProductID:    product.ID,
		Size:         size,
		Quantity:     MinLineQuantity,
		Name:         product.Name,
		Price:        product.BasePrice,
		Category:     product.Category,
		Image:        product.Image,
		HoverImage:   product.HoverImage,
		Description:  product.Description,
		IsNew:        product.IsNew,
		IsBestSeller: product.IsBestSeller,
	}
}

// Key renders the composite key as "<productId>-<size>".
func (l CartLine) Key() string {
	return l.ProductID.String() + "-" + l.Size
}

// Matches reports whether the line carries the given composite key.
func (l CartLine) Matches(productID ProductID, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// Subtotal is Price * Quantity in the base currency.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered set of cart lines. Lines keep insertion order and there is
// at most one line per (ProductID, Size).
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c *Cart) indexOf(productID ProductID, size string) int {
	return slices.IndexFunc(c.Lines, func(l CartLine) bool {
		return l.Matches(productID, size)
	})
}

// Find returns the line for the key, if present.
func (c *Cart) Find(productID ProductID, size string) (CartLine, bool) {
	i := c.indexOf(productID, size)
	if i < 0 {
		return CartLine{}, false
	}

	return c.Lines[i], true
}

// Add increments the existing line for (product.ID, size) or appends a new one.
func (c *Cart) Add(product Product, size string) CartLine {
	if i := c.indexOf(product.ID, size); i >= 0 {
		c.Lines[i].Quantity++

		return c.Lines[i]
	}

	line := NewCartLine(product, size)
	c.Lines = append(c.Lines, line)

	return line
}

// Remove deletes the line for the key and reports whether one existed.
func (c *Cart) Remove(productID ProductID, size string) bool {
	i := c.indexOf(productID, size)
	if i < 0 {
		return false
	}
	c.Lines = slices.Delete(c.Lines, i, i+1)

	return true
}

// UpdateQuantity applies delta to the line, clamped at MinLineQuantity.
// The second result is false when no line has the key.
func (c *Cart) UpdateQuantity(productID ProductID, size string, delta int) (CartLine, bool) {
	i := c.indexOf(productID, size)
	if i < 0 {
		return CartLine{}, false
	}
	c.Lines[i].Quantity = max(MinLineQuantity, c.Lines[i].Quantity+delta)

	return c.Lines[i], true
}

// Total sums Price * Quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}

	return total
}

// Count sums quantities over all lines.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clone returns a copy that shares no backing array with c.
func (c *Cart) Clone() Cart {
	return Cart{Lines: slices.Clone(c.Lines)}
}
