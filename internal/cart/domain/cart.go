package domain

import (
	"slices"

	catalog "github.com/dwikikusuma/shopcart/internal/catalog/domain"
	pricing "github.com/dwikikusuma/shopcart/internal/pricing/domain"
)

// LineItem is the view of one cart entry. It only carries the base product fields.
type LineItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

type shippable interface {
	ShippingCharge() float64
}

// Cart keeps product references in insertion order. It is not safe for
// concurrent use.
type Cart struct {
	items []catalog.Item
}

func New() *Cart {
	return &Cart{}
}

// Add appends item. Duplicate product IDs are allowed.
func (c *Cart) Add(item catalog.Item) {
	c.items = append(c.items, item)
}

// Remove drops the first item with the given product ID. Unknown IDs are ignored.
func (c *Cart) Remove(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.items = slices.Delete(c.items, idx, idx+1)
}

func (c *Cart) View() []LineItem {
	lines := make([]LineItem, 0, len(c.items))
	for _, it := range c.items {
		p := it.Base()
		lines = append(lines, LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  p.Quantity,
		})
	}
	return lines
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums price*quantity over all lines, adds each line's shipping charge once,
// then applies discounts in order. The result is not rounded.
func (c *Cart) Total(discounts ...pricing.Discount) float64 {
	var subtotal float64
	for _, it := range c.items {
		p := it.Base()
		subtotal += p.Price * float64(p.Quantity)
		if s, ok := it.(shippable); ok {
			subtotal += s.ShippingCharge()
		}
	}
	return pricing.Apply(subtotal, c.items, discounts...)
}

func (c *Cart) indexOf(productID string) int {
	for i, it := range c.items {
		if it.Base().ID == productID {
			return i
		}
	}
	return -1
}
