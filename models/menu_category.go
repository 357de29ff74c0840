package models

import "fmt"

// Category is the closed set of menu sections an item can belong to.
type Category string

const (
	CategoryFood  Category = "Food"
	CategoryDrink Category = "Drink"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryDrink:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory maps a stored category label back onto the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
