package renderer

import (
	"fmt"
	"strings"

	"commandcenter"
)

// HoldingsMarkdown renders the current portfolio table. When quotes are
// nil only the stored columns are shown; with quotes the current value
// and unrealized profit appear too.
func HoldingsMarkdown(holdings []commandcenter.Holding, quotes map[string]commandcenter.PriceQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")

	if quotes == nil {
		fmt.Fprintln(&b, "| # | Ticker | Quantity | Avg Cost | Cost Basis |")
		fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|")
		for i, h := range holdings {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				i, h.Ticker, h.Quantity, h.AvgCost, h.CostBasis())
		}
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Ticker | Quantity | Avg Cost | Price | Value | Profit |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|---:|---:|")
	var totalValue, totalCost commandcenter.Money
	for i, h := range holdings {
		price := h.AvgCost
		priceCell := fmt.Sprintf("%s (at cost)", price)
		if quote, ok := quotes[commandcenter.NormalizeTicker(h.Ticker)]; ok && !quote.Unavailable {
			price = quote.Price
			priceCell = price.String()
		}
		value := price.Mul(h.Quantity)
		cost := h.CostBasis()
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			i, h.Ticker, h.Quantity, h.AvgCost, priceCell, value, value.Sub(cost).SignedString())
		totalValue = totalValue.Add(value)
		totalCost = totalCost.Add(cost)
	}
	fmt.Fprintf(&b, "\nTotal Value: **%s** | Unrealized Profit: **%s**\n",
		totalValue, totalValue.Sub(totalCost).SignedString())
	return b.String()
}

// QuotesMarkdown renders the resolved quote per ticker, flagging the
// unavailable ones explicitly.
func QuotesMarkdown(tickers []string, quotes map[string]commandcenter.PriceQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Quotes\n\n")
	fmt.Fprintln(&b, "| Ticker | Price |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, t := range tickers {
		t = commandcenter.NormalizeTicker(t)
		quote, ok := quotes[t]
		if !ok || quote.Unavailable {
			fmt.Fprintf(&b, "| %s | unavailable |\n", t)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", t, quote.Price)
	}
	return b.String()
}
