package views

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yeremiapane/ordering-system/models"
	"github.com/yeremiapane/ordering-system/utils"
)

// ConsoleView reads customer input line by line and renders the menu and the
// order summary as plain text.
type ConsoleView struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleView(in io.Reader, out io.Writer) *ConsoleView {
	return &ConsoleView{in: bufio.NewReader(in), out: out}
}

func (v *ConsoleView) DisplayWelcome() {
	v.Message("Welcome to Ordering System!")
}

// DisplayMenu lists every catalog entry in selection-number order.
func (v *ConsoleView) DisplayMenu(catalog *models.Catalog) {
	v.Message("Here is our menu:")
	for _, item := range catalog.Items() {
		fmt.Fprintf(v.out, " %d|%s| %s| %s\n", item.ID, item.Name, item.Category, utils.FormatCurrency(item.Price))
	}
}

// GetInput prints the prompt and returns the next trimmed line. It returns
// io.EOF once the input is exhausted. A line longer than
// utils.MaxInputLength is consumed whole and reported as
// utils.ErrInputTooLong.
func (v *ConsoleView) GetInput(prompt string) (string, error) {
	v.Message(prompt)

	var line []byte
	tooLong := false
	for {
		chunk, err := v.in.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(line) > utils.MaxInputLength {
				tooLong = true
				line = nil
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if !tooLong && len(line) == 0 {
				return "", io.EOF
			}
			break
		}
		if err != nil {
			return "", err
		}
		break
	}

	if tooLong {
		return "", utils.ErrInputTooLong
	}
	return strings.TrimSpace(string(line)), nil
}

func (v *ConsoleView) Message(text string) {
	fmt.Fprintln(v.out, text)
}

// DisplayOrderSummary prints each line, the discount when one applies and
// the total.
func (v *ConsoleView) DisplayOrderSummary(selections []models.Selection, total, discount decimal.Decimal) {
	v.Message("\nYour order summary:")
	for _, sel := range selections {
		fmt.Fprintf(v.out, "- %s x%d - %s\n", sel.Item.Name, sel.Quantity, utils.FormatCurrency(sel.LineTotal()))
	}

	if discount.IsPositive() {
		fmt.Fprintf(v.out, "A discount of %s has been applied.\n", utils.FormatCurrency(discount))
	}

	fmt.Fprintf(v.out, "Total: %s\n", utils.FormatCurrency(total))
	v.Message("Thank you for your order!")
}
