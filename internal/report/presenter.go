// Package report renders scoring responses for the console.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"laptop-price/pkg/api"
)

const (
	DefaultPriceColumn = "Scored Labels"
	DefaultCurrency    = "€"

	// PositionalPriceIndex is where the service has historically placed the
	// price: right after the nine echoed input columns. Used only when no
	// price column name is configured.
	PositionalPriceIndex = 9

	separator = "---------------------------"
	divider   = "====="
)

var (
	ErrPriceColumnMissing = errors.New("price column not present in response")
	ErrShapeMismatch      = errors.New("response column names, types and values differ in length")
)

// Options controls how the price cell is located and labelled.
type Options struct {
	// PriceColumn names the output column holding the prediction. Empty selects
	// the cell at PositionalPriceIndex.
	PriceColumn string
	Currency    string
}

// DefaultOptions returns the options used by the console client.
func DefaultOptions() Options {
	return Options{
		PriceColumn: DefaultPriceColumn,
		Currency:    DefaultCurrency,
	}
}

// Presenter writes responses to a console stream.
type Presenter struct {
	out   io.Writer
	opts  Options
	price *color.Color
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer, opts Options) *Presenter {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	return &Presenter{
		out:   out,
		opts:  opts,
		price: color.New(color.FgGreen, color.Bold),
	}
}

// Present dumps resp as indented JSON, then prints one "name (type): value"
// line per output column. The price cell is set apart by a divider and
// prefixed with the currency marker. Every column is printed even when the
// price cell cannot be found; that case is reported as ErrPriceColumnMissing.
func (p *Presenter) Present(resp *api.ScoreResponse) error {
	dump, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	fmt.Fprintf(p.out, "\n\n%s\n", separator)
	fmt.Fprintln(p.out, "Response:")
	fmt.Fprintln(p.out, string(dump))
	fmt.Fprintf(p.out, "\n\n%s\n", separator)

	if !resp.Consistent() {
		return ErrShapeMismatch
	}

	cells := resp.Cells()
	priceIdx := p.priceIndex(resp)

	for i, cell := range cells {
		if i == priceIdx {
			fmt.Fprintln(p.out, divider)
			p.price.Fprintf(p.out, "%s (%s): %s %s\n", cell.Name, cell.Type, p.opts.Currency, formatPrice(cell.Value))
			continue
		}
		fmt.Fprintf(p.out, "%s (%s): %s\n", cell.Name, cell.Type, cell.Value)
	}
	fmt.Fprintf(p.out, "\n\n%s\n", separator)

	if priceIdx < 0 || priceIdx >= len(cells) {
		return fmt.Errorf("%w: want %s, have %d columns", ErrPriceColumnMissing, p.priceLabel(), len(cells))
	}
	return nil
}

func (p *Presenter) priceIndex(resp *api.ScoreResponse) int {
	if p.opts.PriceColumn == "" {
		return PositionalPriceIndex
	}
	return resp.ColumnIndex(p.opts.PriceColumn)
}

func (p *Presenter) priceLabel() string {
	if p.opts.PriceColumn == "" {
		return fmt.Sprintf("column #%d", PositionalPriceIndex+1)
	}
	return fmt.Sprintf("%q", p.opts.PriceColumn)
}

// formatPrice rounds numeric predictions to cents and leaves anything else as sent.
func formatPrice(v string) string {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	return d.StringFixed(2)
}
