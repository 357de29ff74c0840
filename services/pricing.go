package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/ordering-system/models"
)

// ErrInvalidArgument is returned when a selection breaks the order model's
// invariants. It signals a programming or data error, not a user mistake.
var ErrInvalidArgument = errors.New("invalid argument")

// DiscountRule names the promotion tier that produced a quote's discount.
type DiscountRule string

const (
	RuleNone              DiscountRule = ""
	RuleFoodAndDrink      DiscountRule = "food_and_drink"
	RuleSubtotalThreshold DiscountRule = "subtotal_threshold"
)

// Quote is the priced result of an order.
type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Rule     DiscountRule
	Capped   bool
}

type basket struct {
	subtotal     decimal.Decimal
	hasFood      bool
	hasPaidDrink bool
}

type discountRule struct {
	name    DiscountRule
	rate    decimal.Decimal
	applies func(basket) bool
}

// PricingService computes order totals. Rules are evaluated top to bottom
// and the last one that applies sets the discount; they never stack.
type PricingService struct {
	rules         []discountRule
	maxDiscount   decimal.Decimal
	freeDrinkName string
}

func NewPricingService() *PricingService {
	threshold := decimal.RequireFromString("20.00")
	return &PricingService{
		rules: []discountRule{
			{
				name:    RuleFoodAndDrink,
				rate:    decimal.RequireFromString("0.10"),
				applies: func(b basket) bool { return b.hasFood && b.hasPaidDrink },
			},
			{
				name:    RuleSubtotalThreshold,
				rate:    decimal.RequireFromString("0.20"),
				applies: func(b basket) bool { return b.subtotal.GreaterThanOrEqual(threshold) },
			},
		},
		maxDiscount:   decimal.RequireFromString("6.00"),
		freeDrinkName: "Water",
	}
}

var defaultPricing = NewPricingService()

// ComputeTotal prices selections with the house rules and returns the
// payable total and the discount that was taken off.
func ComputeTotal(selections []models.Selection) (total, discount decimal.Decimal, err error) {
	q, err := defaultPricing.Price(selections)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return q.Total, q.Discount, nil
}

// Price returns the full breakdown for selections. The input is not modified.
func (s *PricingService) Price(selections []models.Selection) (Quote, error) {
	b, err := s.summarize(selections)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{Subtotal: b.subtotal, Discount: decimal.Zero, Rule: RuleNone}
	for _, rule := range s.rules {
		if rule.applies(b) {
			q.Discount = b.subtotal.Mul(rule.rate).Round(2)
			q.Rule = rule.name
		}
	}
	if q.Discount.GreaterThan(s.maxDiscount) {
		q.Discount = s.maxDiscount
		q.Capped = true
	}
	q.Total = q.Subtotal.Sub(q.Discount)
	return q, nil
}

func (s *PricingService) summarize(selections []models.Selection) (basket, error) {
	b := basket{subtotal: decimal.Zero}
	for i, sel := range selections {
		if sel.Item == nil {
			return basket{}, fmt.Errorf("%w: selection %d has no menu item", ErrInvalidArgument, i)
		}
		if sel.Quantity < 1 {
			return basket{}, fmt.Errorf("%w: selection %d (%s) has quantity %d", ErrInvalidArgument, i, sel.Item.Name, sel.Quantity)
		}
		if sel.Item.Price.IsNegative() {
			return basket{}, fmt.Errorf("%w: selection %d (%s) has negative price %s", ErrInvalidArgument, i, sel.Item.Name, sel.Item.Price.String())
		}

		b.subtotal = b.subtotal.Add(sel.LineTotal())
		if sel.Item.IsFood() {
			b.hasFood = true
		}
		// Only the house water is free; matched by name.
		if sel.Item.IsDrink() && sel.Item.Name != s.freeDrinkName {
			b.hasPaidDrink = true
		}
	}
	return b, nil
}
