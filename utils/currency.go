package utils

import "github.com/shopspring/decimal"

// FormatCurrency renders an amount with a dollar sign and exactly two decimals.
// Example: 6.2 -> "$6.20"
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
