package models

import (
	"errors"
	"fmt"
)

var ErrInvalidSelection = errors.New("invalid selection")

// Order accumulates the selections made during one ordering session.
type Order struct {
	selections []Selection
}

func NewOrder() *Order {
	return &Order{}
}

// Add appends a new line. Repeated items stay on separate lines.
func (o *Order) Add(item *MenuItem, quantity int) (Selection, error) {
	if item == nil {
		return Selection{}, fmt.Errorf("%w: no menu item", ErrInvalidSelection)
	}
	if quantity < 1 {
		return Selection{}, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidSelection, quantity)
	}
	sel := Selection{Item: item, Quantity: quantity}
	o.selections = append(o.selections, sel)
	return sel, nil
}

// Selections returns the lines in insertion order. The slice is a copy.
func (o *Order) Selections() []Selection {
	out := make([]Selection, len(o.selections))
	copy(out, o.selections)
	return out
}

func (o *Order) Len() int {
	return len(o.selections)
}

func (o *Order) IsEmpty() bool {
	return len(o.selections) == 0
}
