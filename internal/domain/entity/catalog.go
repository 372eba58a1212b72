// Package entity contains the core business objects of the project.
package entity

import "github.com/shopspring/decimal"

// CatalogItem represents a purchasable menu entry. Items are defined at
// process start and never mutated afterwards.
type CatalogItem struct {
	ID       int             `json:"id"`       // The unique identifier of the menu entry.
	Name     string          `json:"name"`     // Display name.
	Price    decimal.Decimal `json:"price"`    // Unit price in rupees, non-negative.
	Category string          `json:"category"` // Menu section, e.g. "Drinks".
	Icon     string          `json:"icon"`     // Emoji shown next to the item.
	Featured bool            `json:"featured,omitempty"`
}

// Catalog is a read-only collection of menu items with ID lookup.
type Catalog struct {
	items []CatalogItem
	byID  map[int]CatalogItem
}

// NewCatalog builds a catalog from the given items. Later duplicates of an
// ID replace earlier ones.
func NewCatalog(items []CatalogItem) *Catalog {
	byID := make(map[int]CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &Catalog{items: items, byID: byID}
}

// Items returns the menu entries in their declared order.
func (c *Catalog) Items() []CatalogItem {
	out := make([]CatalogItem, len(c.items))
	copy(out, c.items)

	return out
}

// Find returns the item with the given ID.
func (c *Catalog) Find(id int) (CatalogItem, bool) {
	item, ok := c.byID[id]

	return item, ok
}

// DefaultMenu returns the canteen's standard menu.
func DefaultMenu() []CatalogItem {
	return []CatalogItem{
		{ID: 1, Name: "Classic Butter Croissant", Price: decimal.NewFromInt(45), Category: "Pastry", Icon: "🥐"},
		{ID: 2, Name: "Strawberry Cupcake", Price: decimal.NewFromInt(65), Category: "Sweets", Icon: "🧁"},
		{ID: 3, Name: "Artisan Sourdough", Price: decimal.NewFromInt(120), Category: "Breads", Icon: "🍞"},
		{ID: 4, Name: "Blueberry Muffin", Price: decimal.NewFromInt(55), Category: "Pastry", Icon: "🥯"},
		{ID: 5, Name: "Cutting Chai", Price: decimal.NewFromInt(15), Category: "Drinks", Icon: "☕"},
		{ID: 6, Name: "Veg Cheese Burger", Price: decimal.NewFromInt(85), Category: "Snacks", Icon: "🍔"},
		{ID: 7, Name: "Masala Dosa", Price: decimal.NewFromInt(70), Category: "Meals", Icon: "🍛"},
		{ID: 8, Name: "Cold Coffee", Price: decimal.NewFromInt(50), Category: "Drinks", Icon: "🥤"},
	}
}
