// Package commandcenter provides the functions and types behind an
// interactive "what-if" portfolio simulator: a user maintains a list of
// holdings (ticker, quantity, average cost), a current price is resolved
// for each ticker, and growth assumptions are applied per asset or across
// the board to project value, profit, and allocation.
//
// The core functionalities include:
//   - Portfolio Store: an ordered, permissively validated set of holdings
//     with atomic load/replace semantics and copying snapshots.
//   - Price Resolution: a small Resolver contract producing a PriceQuote
//     (a finite non-negative price, or an explicit unavailable marker)
//     per ticker, with a live EODHD implementation included.
//   - Simulation Engine: a pure, deterministic computation turning a
//     portfolio snapshot, resolved quotes, and an adjustment spec into
//     per-holding results and aggregate totals.
//   - Data Round-Tripping: import and export of the canonical three
//     column table (Ticker, Quantity, Avg_Cost) in CSV form.
//
// This package serves as the foundational logic for the `pcc` command-line
// tool; all rendering and interaction live above it.
package commandcenter
