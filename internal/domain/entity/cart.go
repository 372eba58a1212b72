package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CartLine is one catalog item plus a chosen quantity within the active,
// unplaced order. The name and unit price are copied from the catalog entry
// when the line is created so a cart renders without further lookups.
type CartLine struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the active, unplaced selection. It keeps at most one line per
// catalog item and never retains a line with quantity below one; a line
// whose quantity reaches zero is removed. Insertion order is preserved for
// display.
type Cart struct {
	lines []CartLine
}

// Add increments the quantity for the given item by one, inserting a new
// line at quantity one when the item is not in the cart yet.
func (c *Cart) Add(item CatalogItem) {
	for i := range c.lines {
		if c.lines[i].ItemID == item.ID {
			c.lines[i].Quantity++

			return
		}
	}

	c.lines = append(c.lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	})
}

// ChangeQuantity adjusts the quantity of the given item by delta, clamping
// at zero. A line reaching zero is removed. Unknown items are ignored.
func (c *Cart) ChangeQuantity(itemID, delta int) {
	for i := range c.lines {
		if c.lines[i].ItemID != itemID {
			continue
		}

		qty := c.lines[i].Quantity + delta
		if qty < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = qty
		}

		return
	}
}

// Remove deletes the line for the given item unconditionally.
func (c *Cart) Remove(itemID int) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{}
	if len(c.lines) > 0 {
		clone.lines = make([]CartLine, len(c.lines))
		copy(clone.lines, c.lines)
	}

	return clone
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)

	return out
}

// DistinctLines returns the number of distinct items in the cart.
func (c *Cart) DistinctLines() int {
	return len(c.lines)
}

// Subtotal sums unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return subtotal
}

// Description renders the cart as a human-facing itemized string such as
// "2x Cutting Chai, 1x Masala Dosa". Orders snapshot this string so the
// history stays stable even if the catalog changes later.
func (c *Cart) Description() string {
	parts := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
	}

	return strings.Join(parts, ", ")
}
