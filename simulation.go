package commandcenter

import "fmt"

// This file implements the simulation engine: a pure, deterministic fold
// over a portfolio snapshot, a set of resolved price quotes, and an
// adjustment spec. It has no suspension points and no side effects;
// concurrent passes are independent by construction.

// InvalidAdjustmentError reports a growth percentage that would imply a
// negative simulated price (below -100%), or a malformed growth vector.
type InvalidAdjustmentError struct {
	Ticker string // offending holding, "" for a pass-level failure
	Growth Percent
	Reason string
}

func (e *InvalidAdjustmentError) Error() string {
	if e.Ticker == "" {
		return fmt.Sprintf("invalid adjustment: %s", e.Reason)
	}
	return fmt.Sprintf("invalid adjustment on %s: %s", e.Ticker, e.Reason)
}

// adjustment modes.
type adjustmentMode int

const (
	uniformMode adjustmentMode = iota
	singleTargetMode
	perHoldingMode
)

// Adjustment is the growth assumption of one simulation pass. The three
// modes are mutually exclusive; uniform and single-target are normalized
// into the general per-holding form at the engine boundary, so the
// arithmetic itself never branches on mode.
type Adjustment struct {
	mode   adjustmentMode
	growth Percent
	target string
	perRow []Percent
}

// Uniform applies the same growth percentage to every holding.
func Uniform(g Percent) Adjustment {
	return Adjustment{mode: uniformMode, growth: g}
}

// SingleTarget applies the growth percentage to the holdings whose
// ticker matches (case-insensitive, trimmed); every other holding is
// simulated at zero growth.
func SingleTarget(ticker string, g Percent) Adjustment {
	return Adjustment{mode: singleTargetMode, growth: g, target: NormalizeTicker(ticker)}
}

// PerHolding supplies an independent growth percentage per holding, in
// snapshot row order. A shorter vector is padded with zero growth; a
// longer one is rejected, since it was necessarily built against a
// different snapshot.
func PerHolding(growths []Percent) Adjustment {
	perRow := make([]Percent, len(growths))
	copy(perRow, growths)
	return Adjustment{mode: perHoldingMode, perRow: perRow}
}

// validGrowth reports whether g keeps the simulated price non-negative.
func validGrowth(g Percent) bool { return g >= -100 }

// normalize expands the adjustment into one growth per snapshot row.
// Pass-level validation happens here; per-row isolation of invalid
// growths (per-holding mode only) is left to the simulation loop.
func (a Adjustment) normalize(holdings []Holding) ([]Percent, error) {
	switch a.mode {
	case uniformMode:
		if !validGrowth(a.growth) {
			return nil, &InvalidAdjustmentError{Growth: a.growth,
				Reason: fmt.Sprintf("uniform growth %s implies a negative price", a.growth)}
		}
		growths := make([]Percent, len(holdings))
		for i := range growths {
			growths[i] = a.growth
		}
		return growths, nil
	case singleTargetMode:
		if !validGrowth(a.growth) {
			return nil, &InvalidAdjustmentError{Ticker: a.target, Growth: a.growth,
				Reason: fmt.Sprintf("growth %s implies a negative price", a.growth)}
		}
		growths := make([]Percent, len(holdings))
		for i, h := range holdings {
			if NormalizeTicker(h.Ticker) == a.target {
				growths[i] = a.growth
			}
		}
		return growths, nil
	case perHoldingMode:
		if len(a.perRow) > len(holdings) {
			return nil, &InvalidAdjustmentError{
				Reason: fmt.Sprintf("%d growth values for %d holdings", len(a.perRow), len(holdings))}
		}
		growths := make([]Percent, len(holdings))
		copy(growths, a.perRow)
		return growths, nil
	default:
		return nil, &InvalidAdjustmentError{Reason: fmt.Sprintf("unknown adjustment mode %d", a.mode)}
	}
}

// SimulationResult is the projected outcome for one holding. It is
// rebuilt on every pass, never mutated in place.
type SimulationResult struct {
	Ticker         string
	Quantity       Quantity
	CurrentPrice   Money
	SimulatedPrice Money
	MarketValue    Money
	CostBasis      Money
	Profit         Money // at the simulated price
	CurrentProfit  Money // at the resolved price, before adjustment
	Growth         Percent
	Allocation     Percent // share of total simulated value
	PricedAtCost   bool    // no quote was available; priced at avg cost
	Err            error   // row-level failure, excluded from totals
}

// AggregateResult sums a simulation pass. An empty portfolio yields all
// zero totals and a zero ROI.
type AggregateResult struct {
	TotalValue  Money
	TotalCost   Money
	TotalProfit Money
	ROI         Percent
}

// Simulate computes the per-holding and aggregate outcome of one pass.
//
// Price policy: a missing or unavailable quote substitutes the holding's
// average cost as current price, so the position reads as break-even and
// totals stay meaningful; such rows carry PricedAtCost so callers can
// tell them from genuinely priced ones.
//
// A growth below -100% in per-holding mode fails only that row: it is
// flagged on the result, excluded from every total, and the rest of the
// pass proceeds. In uniform or single-target mode the same condition
// rejects the whole pass before any arithmetic.
func Simulate(holdings []Holding, quotes map[string]PriceQuote, adj Adjustment) ([]SimulationResult, AggregateResult, error) {
	growths, err := adj.normalize(holdings)
	if err != nil {
		return nil, AggregateResult{}, err
	}

	results := make([]SimulationResult, 0, len(holdings))
	var totalValue, totalCost Money

	for i, h := range holdings {
		g := growths[i]
		res := SimulationResult{
			Ticker:   NormalizeTicker(h.Ticker),
			Quantity: h.Quantity,
			Growth:   g,
		}

		quote, ok := quotes[res.Ticker]
		if !ok || quote.Unavailable {
			res.CurrentPrice = h.AvgCost
			res.PricedAtCost = true
		} else {
			res.CurrentPrice = quote.Price
		}

		if !validGrowth(g) {
			res.Err = &InvalidAdjustmentError{Ticker: res.Ticker, Growth: g,
				Reason: fmt.Sprintf("growth %s implies a negative price", g)}
			results = append(results, res)
			continue
		}

		res.SimulatedPrice = res.CurrentPrice.GrowBy(g)
		res.MarketValue = res.SimulatedPrice.Mul(h.Quantity)
		res.CostBasis = h.CostBasis()
		res.Profit = res.MarketValue.Sub(res.CostBasis)
		res.CurrentProfit = res.CurrentPrice.Mul(h.Quantity).Sub(res.CostBasis)

		totalValue = totalValue.Add(res.MarketValue)
		totalCost = totalCost.Add(res.CostBasis)
		results = append(results, res)
	}

	agg := AggregateResult{
		TotalValue:  totalValue,
		TotalCost:   totalCost,
		TotalProfit: totalValue.Sub(totalCost),
	}
	if !totalCost.IsZero() {
		agg.ROI = agg.TotalProfit.PercentOf(totalCost)
	}

	// Allocation shares need the final total, hence the second pass.
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		results[i].Allocation = results[i].MarketValue.PercentOf(totalValue)
	}

	return results, agg, nil
}
