// Package renderer turns simulation outcomes into markdown reports.
// It only formats: all figures are computed by the commandcenter package.
package renderer

import "commandcenter"

// growthCell renders a growth assumption, highlighting the zero case.
func growthCell(g commandcenter.Percent) string {
	return g.SignedString()
}

// priceSource is the per-row indicator distinguishing a live quote from
// the priced-at-cost fallback.
func priceSource(res commandcenter.SimulationResult) string {
	if res.PricedAtCost {
		return "at cost"
	}
	return "live"
}
