package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/ordering-system/models"
	"github.com/yeremiapane/ordering-system/services"
	"github.com/yeremiapane/ordering-system/utils"
)

const (
	itemPrompt         = "\nEnter the number of the item you'd like to order (or type 'done' to finish):"
	invalidItemMessage = "Invalid input. Please enter a valid menu item number."
	invalidQtyMessage  = "Invalid quantity. Please enter a positive number."
)

var ErrSessionFinished = errors.New("ordering session already finished")

// View is what the controller needs from the console.
type View interface {
	DisplayWelcome()
	DisplayMenu(catalog *models.Catalog)
	GetInput(prompt string) (string, error)
	Message(text string)
	DisplayOrderSummary(selections []models.Selection, total, discount decimal.Decimal)
}

// OrderingController runs a single ordering session against a catalog.
type OrderingController struct {
	catalog   *models.Catalog
	view      View
	pricing   *services.PricingService
	order     *models.Order
	log       logrus.FieldLogger
	sessionID string
	finished  bool
}

func NewOrderingController(catalog *models.Catalog, view View, log logrus.FieldLogger) *OrderingController {
	sessionID := uuid.NewString()
	return &OrderingController{
		catalog:   catalog,
		view:      view,
		pricing:   services.NewPricingService(),
		order:     models.NewOrder(),
		log:       log.WithField("session_id", sessionID),
		sessionID: sessionID,
	}
}

func (oc *OrderingController) SessionID() string {
	return oc.sessionID
}

// Run shows the menu, collects selections until the customer types "done"
// or input ends, then prices the order and prints the summary.
func (oc *OrderingController) Run(ctx context.Context) (services.Quote, error) {
	if oc.finished {
		return services.Quote{}, ErrSessionFinished
	}
	oc.finished = true

	oc.log.Info("ordering session started")
	oc.view.DisplayWelcome()
	oc.view.DisplayMenu(oc.catalog)

	if err := oc.collect(ctx); err != nil {
		return services.Quote{}, err
	}

	selections := oc.order.Selections()
	quote, err := oc.pricing.Price(selections)
	if err != nil {
		oc.log.WithError(err).Error("failed to price order")
		return services.Quote{}, fmt.Errorf("failed to price order: %w", err)
	}

	oc.log.WithFields(logrus.Fields{
		"lines":    len(selections),
		"subtotal": quote.Subtotal.StringFixed(2),
		"discount": quote.Discount.StringFixed(2),
		"total":    quote.Total.StringFixed(2),
		"rule":     string(quote.Rule),
		"capped":   quote.Capped,
	}).Info("order priced")

	oc.view.DisplayOrderSummary(selections, quote.Total, quote.Discount)
	return quote, nil
}

func (oc *OrderingController) collect(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := oc.view.GetInput(itemPrompt)
		if errors.Is(err, io.EOF) {
			oc.log.Debug("input closed, finishing order")
			return nil
		}
		if errors.Is(err, utils.ErrInputTooLong) {
			oc.log.Debug("rejected oversized menu selection")
			oc.view.Message(invalidItemMessage)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read selection: %w", err)
		}
		if utils.IsDone(input) {
			return nil
		}

		item, ok := oc.lookup(input)
		if !ok {
			oc.log.WithField("input", input).Debug("rejected menu selection")
			oc.view.Message(invalidItemMessage)
			continue
		}

		qtyInput, err := oc.view.GetInput(fmt.Sprintf("How many %s(s) would you like to order?", item.Name))
		if errors.Is(err, io.EOF) {
			oc.log.Debug("input closed, finishing order")
			return nil
		}
		if errors.Is(err, utils.ErrInputTooLong) {
			oc.log.WithField("item_id", item.ID).Debug("rejected oversized quantity")
			oc.view.Message(invalidQtyMessage)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read quantity: %w", err)
		}

		qty, err := utils.ParseQuantity(qtyInput)
		if err != nil {
			oc.log.WithFields(logrus.Fields{"item_id": item.ID, "input": qtyInput}).Debug("rejected quantity")
			oc.view.Message(invalidQtyMessage)
			continue
		}

		if _, err := oc.order.Add(item, qty); err != nil {
			return err
		}
		oc.log.WithFields(logrus.Fields{"item_id": item.ID, "quantity": qty}).Debug("selection added")
		oc.view.Message(fmt.Sprintf("Added %d %s(s) to your order.", qty, item.Name))
	}
}

func (oc *OrderingController) lookup(input string) (*models.MenuItem, bool) {
	id, err := utils.ParseMenuNumber(input)
	if err != nil {
		return nil, false
	}
	return oc.catalog.Lookup(id)
}
