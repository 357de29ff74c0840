package models

import "github.com/shopspring/decimal"

// Selection is one line of an order. Item points into the catalog, which
// outlives every order built against it.
type Selection struct {
	Item     *MenuItem
	Quantity int
}

// LineTotal is the unit price multiplied by the quantity.
func (s Selection) LineTotal() decimal.Decimal {
	if s.Item == nil {
		return decimal.Zero
	}
	return s.Item.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
