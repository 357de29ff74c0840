package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/ordering-system/controllers"
	"github.com/yeremiapane/ordering-system/models"
	"github.com/yeremiapane/ordering-system/services"
	"github.com/yeremiapane/ordering-system/utils"
	"github.com/yeremiapane/ordering-system/views"
)

const itemPrompt = "\nEnter the number of the item you'd like to order (or type 'done' to finish):\n"

func setupController(t *testing.T, input string) (*controllers.OrderingController, *bytes.Buffer) {
	t.Helper()
	catalog, err := models.NewCatalog(models.DefaultMenu())
	require.NoError(t, err)

	var out bytes.Buffer
	view := views.NewConsoleView(strings.NewReader(input), &out)
	return controllers.NewOrderingController(catalog, view, utils.NewDiscardLogger()), &out
}

func TestOrderingController_FullSession(t *testing.T) {
	ctrl, out := setupController(t, "2\n2\n5\n1\ndone\n")

	quote, err := ctrl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "16.20", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "1.62", quote.Discount.StringFixed(2))
	assert.Equal(t, "14.58", quote.Total.StringFixed(2))
	assert.Equal(t, services.RuleFoodAndDrink, quote.Rule)

	want := "Welcome to Ordering System!\n" +
		"Here is our menu:\n" +
		" 1|Ham and Cheese Toastie| Food| $6.23\n" +
		" 2|Pizza| Food| $5.78\n" +
		" 3|Chocolate Brownie| Food| $3.50\n" +
		" 4|Tea| Drink| $3.65\n" +
		" 5|Coffee| Drink| $4.64\n" +
		" 6|Water| Drink| $0.00\n" +
		itemPrompt +
		"How many Pizza(s) would you like to order?\n" +
		"Added 2 Pizza(s) to your order.\n" +
		itemPrompt +
		"How many Coffee(s) would you like to order?\n" +
		"Added 1 Coffee(s) to your order.\n" +
		itemPrompt +
		"\nYour order summary:\n" +
		"- Pizza x2 - $11.56\n" +
		"- Coffee x1 - $4.64\n" +
		"A discount of $1.62 has been applied.\n" +
		"Total: $14.58\n" +
		"Thank you for your order!\n"
	assert.Equal(t, want, out.String())
}

func TestOrderingController_RejectsBadInput(t *testing.T) {
	ctrl, out := setupController(t, "abc\n9\n2\n0\n2\nx\nDONE\n")

	quote, err := ctrl.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, quote.Total.IsZero())

	transcript := out.String()
	assert.Equal(t, 2, strings.Count(transcript, "Invalid input. Please enter a valid menu item number."))
	assert.Equal(t, 2, strings.Count(transcript, "Invalid quantity. Please enter a positive number."))
	assert.NotContains(t, transcript, "Added")
	assert.NotContains(t, transcript, "A discount of")
	assert.Contains(t, transcript, "Total: $0.00\n")
}

func TestOrderingController_OversizedLine(t *testing.T) {
	long := strings.Repeat("x", 70000)

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"at item prompt", long + "\n2\n1\ndone\n", "Invalid input. Please enter a valid menu item number."},
		{"at quantity prompt", "2\n" + long + "\n2\n1\ndone\n", "Invalid quantity. Please enter a positive number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, out := setupController(t, tt.input)

			quote, err := ctrl.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "5.78", quote.Total.StringFixed(2))

			transcript := out.String()
			assert.Equal(t, 1, strings.Count(transcript, tt.message))
			assert.Contains(t, transcript, "- Pizza x1 - $5.78\n")
			assert.Contains(t, transcript, "Total: $5.78\n")
			assert.NotContains(t, transcript, long[:100])
		})
	}
}

func TestOrderingController_DoneIsCaseInsensitive(t *testing.T) {
	ctrl, out := setupController(t, "6\n1\n  DoNe  \n4\n1\n")

	quote, err := ctrl.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, quote.Total.IsZero(), "water is free")
	assert.NotContains(t, out.String(), "Tea x1")
}

func TestOrderingController_EndOfInputFinishesOrder(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTotal string
	}{
		{name: "empty input", input: "", wantTotal: "0.00"},
		{name: "closed at quantity prompt", input: "4\n", wantTotal: "0.00"},
		{name: "closed after a selection", input: "4\n3\n", wantTotal: "10.95"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, out := setupController(t, tt.input)

			quote, err := ctrl.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, quote.Total.StringFixed(2))
			assert.Contains(t, out.String(), "Thank you for your order!")
		})
	}
}

func TestOrderingController_ThresholdDiscount(t *testing.T) {
	ctrl, out := setupController(t, "1\n2\n2\n1\n5\n1\ndone\n")

	quote, err := ctrl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "22.88", quote.Subtotal.StringFixed(2))
	assert.Equal(t, "4.58", quote.Discount.StringFixed(2))
	assert.Equal(t, "18.30", quote.Total.StringFixed(2))
	assert.Equal(t, services.RuleSubtotalThreshold, quote.Rule)
	assert.Contains(t, out.String(), "- Ham and Cheese Toastie x2 - $12.46\n")
}

func TestOrderingController_RunsOnce(t *testing.T) {
	ctrl, _ := setupController(t, "done\n")

	_, err := ctrl.Run(context.Background())
	require.NoError(t, err)

	_, err = ctrl.Run(context.Background())
	assert.ErrorIs(t, err, controllers.ErrSessionFinished)
}

func TestOrderingController_ContextCancelled(t *testing.T) {
	ctrl, out := setupController(t, "2\n1\ndone\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ctrl.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "Your order summary")
}

type brokenView struct {
	messages []string
}

func (v *brokenView) DisplayWelcome() {}
func (v *brokenView) DisplayMenu(*models.Catalog) {}
func (v *brokenView) Message(text string) { v.messages = append(v.messages, text) }
func (v *brokenView) GetInput(string) (string, error) { return "", errors.New("read /dev/stdin: bad file descriptor") }
func (v *brokenView) DisplayOrderSummary([]models.Selection, decimal.Decimal, decimal.Decimal) {
	v.messages = append(v.messages, "summary")
}

func TestOrderingController_ReadError(t *testing.T) {
	catalog, err := models.NewCatalog(models.DefaultMenu())
	require.NoError(t, err)
	view := &brokenView{}

	ctrl := controllers.NewOrderingController(catalog, view, utils.NewDiscardLogger())
	_, err = ctrl.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad file descriptor")
	assert.NotContains(t, view.messages, "summary")
	assert.NotEmpty(t, ctrl.SessionID())
}
