package commandcenter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is one portfolio position. Its three fields fully determine its
// contribution to a simulation; there is no hidden state. Tickers need
// not be unique: duplicates are independent positions aggregated
// additively.
type Holding struct {
	Ticker   string
	Quantity Quantity
	AvgCost  Money // cost basis per unit, used for profit only
}

// NormalizeTicker returns the canonical lookup key for a ticker:
// whitespace trimmed and uppercased.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Required record fields, named after the canonical table columns.
const (
	FieldTicker   = "Ticker"
	FieldQuantity = "Quantity"
	FieldAvgCost  = "Avg_Cost"
)

// Record is one raw row of portfolio input: field names mapped to their
// raw textual values. Fields beyond the three required ones are ignored.
type Record map[string]string

// SchemaError reports a raw record that cannot become a Holding: a
// required field is missing, or not numeric where a number is expected.
type SchemaError struct {
	Row    int    // zero-based index of the offending record
	Field  string // the field that failed
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d: field %q: %s", e.Row, e.Field, e.Reason)
}

// parseRecord validates one raw record and builds the Holding.
// Validation is schema-level only: zero or negative quantities and costs
// pass through, business judgment is the caller's.
func parseRecord(row int, rec Record, currency string) (Holding, error) {
	ticker, ok := rec[FieldTicker]
	if !ok {
		return Holding{}, &SchemaError{Row: row, Field: FieldTicker, Reason: "missing"}
	}
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return Holding{}, &SchemaError{Row: row, Field: FieldTicker, Reason: "empty"}
	}

	rawQty, ok := rec[FieldQuantity]
	if !ok {
		return Holding{}, &SchemaError{Row: row, Field: FieldQuantity, Reason: "missing"}
	}
	qty, err := ParseQuantity(strings.TrimSpace(rawQty))
	if err != nil {
		return Holding{}, &SchemaError{Row: row, Field: FieldQuantity, Reason: fmt.Sprintf("not a number: %q", rawQty)}
	}

	rawCost, ok := rec[FieldAvgCost]
	if !ok {
		return Holding{}, &SchemaError{Row: row, Field: FieldAvgCost, Reason: "missing"}
	}
	cost, err := decimal.NewFromString(strings.TrimSpace(rawCost))
	if err != nil {
		return Holding{}, &SchemaError{Row: row, Field: FieldAvgCost, Reason: fmt.Sprintf("not a number: %q", rawCost)}
	}

	return Holding{
		Ticker:   ticker,
		Quantity: qty,
		AvgCost:  M(cost, currency),
	}, nil
}

// CostBasis returns the total cost of the position: avg cost times quantity.
func (h Holding) CostBasis() Money {
	return h.AvgCost.Mul(h.Quantity)
}

// DefaultHoldings is the starting portfolio offered to a fresh session.
func DefaultHoldings(currency string) []Holding {
	row := func(ticker string, qty, cost float64) Holding {
		return Holding{Ticker: ticker, Quantity: Q(qty), AvgCost: M(cost, currency)}
	}
	return []Holding{
		row("FUBO", 1000, 5.00),
		row("NVDA", 50, 450.00),
		row("META", 20, 300.00),
		row("GOOGL", 100, 120.00),
		row("RKLB", 200, 4.50),
		row("SMR", 100, 6.00),
		row("FIG", 150, 10.00),
		row("BTC", 0.5, 40000.00),
		row("ETH", 5.0, 2500.00),
	}
}
