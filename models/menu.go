package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMenuItem = errors.New("invalid menu item")

// MenuItem is one purchasable catalog entry. ID doubles as the number the
// customer types to select it.
type MenuItem struct {
	ID       int
	Name     string
	Category Category
	Price    decimal.Decimal
}

// Validate checks the invariants a catalog relies on.
func (m MenuItem) Validate() error {
	if m.ID < 1 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidMenuItem, m.ID)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: item %d has no name", ErrInvalidMenuItem, m.ID)
	}
	if !m.Category.Valid() {
		return fmt.Errorf("%w: item %d has unknown category %q", ErrInvalidMenuItem, m.ID, m.Category)
	}
	if m.Price.IsNegative() {
		return fmt.Errorf("%w: item %d has negative price %s", ErrInvalidMenuItem, m.ID, m.Price.StringFixed(2))
	}
	if !m.Price.Equal(m.Price.Round(2)) {
		return fmt.Errorf("%w: item %d price %s has more than two decimals", ErrInvalidMenuItem, m.ID, m.Price.String())
	}
	return nil
}

// IsFood reports whether the item is in the Food section.
func (m MenuItem) IsFood() bool {
	return m.Category == CategoryFood
}

func (m MenuItem) IsDrink() bool {
	return m.Category == CategoryDrink
}
