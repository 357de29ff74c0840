package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrDuplicateMenuItem = errors.New("duplicate menu item id")

// Catalog is the read-only menu keyed by selection number. Build it once at
// startup and pass it to whoever needs it.
type Catalog struct {
	items []MenuItem
	byID  map[int]int
}

// NewCatalog validates items and indexes them by ID.
func NewCatalog(items []MenuItem) (*Catalog, error) {
	sorted := make([]MenuItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{items: sorted, byID: make(map[int]int, len(sorted))}
	for i, item := range sorted {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateMenuItem, item.ID)
		}
		c.byID[item.ID] = i
	}
	return c, nil
}

// Lookup returns the catalog entry for a selection number. The pointer is
// shared with every Selection that refers to the entry and must be treated as
// read-only.
func (c *Catalog) Lookup(id int) (*MenuItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.items[idx], true
}

// Items returns a copy of the entries ordered by ID.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// DefaultMenu is the house menu the store is seeded with.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Ham and Cheese Toastie", Category: CategoryFood, Price: decimal.RequireFromString("6.23")},
		{ID: 2, Name: "Pizza", Category: CategoryFood, Price: decimal.RequireFromString("5.78")},
		{ID: 3, Name: "Chocolate Brownie", Category: CategoryFood, Price: decimal.RequireFromString("3.50")},
		{ID: 4, Name: "Tea", Category: CategoryDrink, Price: decimal.RequireFromString("3.65")},
		{ID: 5, Name: "Coffee", Category: CategoryDrink, Price: decimal.RequireFromString("4.64")},
		{ID: 6, Name: "Water", Category: CategoryDrink, Price: decimal.Zero},
	}
}
