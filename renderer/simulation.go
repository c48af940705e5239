package renderer

import (
	"fmt"
	"strings"

	"commandcenter"
)

// SimulationMarkdown renders a full simulation pass: the per-holding
// breakdown, then the portfolio outcome with totals, ROI, and allocation.
func SimulationMarkdown(report *commandcenter.SimulationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Simulated Portfolio\n\n")

	if report.ResolverErr != nil {
		fmt.Fprintf(&b, "> price resolution degraded: %v\n\n", report.ResolverErr)
	}

	fmt.Fprintln(&b, "| Ticker | Growth | Price | Src | Sim. Price | Value | Profit | Share |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---:|---:|---:|---:|---:|")
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | — | — | — | — |\n",
				res.Ticker, growthCell(res.Growth), res.CurrentPrice, priceSource(res))
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			res.Ticker,
			growthCell(res.Growth),
			res.CurrentPrice,
			priceSource(res),
			res.SimulatedPrice,
			res.MarketValue,
			res.Profit.SignedString(),
			res.Allocation,
		)
	}

	fmt.Fprintf(&b, "\n## Portfolio Outcome\n\n")
	fmt.Fprintf(&b, "- Total Value: **%s**\n", report.Aggregate.TotalValue)
	fmt.Fprintf(&b, "- Total Cost: %s\n", report.Aggregate.TotalCost)
	fmt.Fprintf(&b, "- Total Profit: **%s**\n", report.Aggregate.TotalProfit.SignedString())
	fmt.Fprintf(&b, "- ROI: %s\n", report.Aggregate.ROI.SignedString())

	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(&b, "\n> %s excluded from totals: %v\n", res.Ticker, res.Err)
		}
	}
	return b.String()
}
