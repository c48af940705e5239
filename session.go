package commandcenter

import (
	"context"
	"sync/atomic"
)

// Session ties a portfolio store to a price resolver for the duration of
// an interactive run. It is the explicitly owned replacement for "the
// live portfolio" of the original tool: the presentation harness creates
// one, hands adjustments in, and renders the reports that come out.
type Session struct {
	store    *Store
	resolver Resolver
	pass     atomic.Uint64
}

// NewSession creates a session over the given store and resolver. A nil
// resolver behaves as UnavailableResolver: every holding is priced at
// its own cost.
func NewSession(store *Store, resolver Resolver) *Session {
	if resolver == nil {
		resolver = UnavailableResolver{}
	}
	return &Session{store: store, resolver: resolver}
}

// Store returns the session's portfolio store.
func (s *Session) Store() *Store { return s.store }

// SimulationReport is the outcome of one simulation pass.
type SimulationReport struct {
	Pass      uint64 // monotonically increasing, for last-result-wins callers
	Version   uint64 // store version the snapshot was taken at
	Currency  string
	Results   []SimulationResult
	Aggregate AggregateResult

	// ResolverErr carries a resolver failure (e.g. ErrResolverTimeout).
	// The pass still completes: affected tickers are priced at cost and
	// flagged, the error is surfaced here instead of aborting.
	ResolverErr error
}

// LoadPortfolio validates raw records and installs them as the session's
// portfolio. On failure the prior portfolio is untouched.
func (s *Session) LoadPortfolio(records []Record) error {
	return s.store.Load(records)
}

// RunSimulation takes a fresh snapshot, resolves a price per ticker, and
// simulates the requested adjustment. Aggregation only starts once price
// resolution has completed or definitively failed.
//
// Passes are independent: rapid successive calls do not share state, and
// a caller holding several reports keeps the one with the highest Pass.
func (s *Session) RunSimulation(ctx context.Context, adj Adjustment) (*SimulationReport, error) {
	report := &SimulationReport{
		Pass:     s.pass.Add(1),
		Version:  s.store.Version(),
		Currency: s.store.Currency(),
	}

	holdings := s.store.Snapshot()

	quotes, err := s.resolver.Resolve(ctx, Tickers(holdings))
	if err != nil {
		// Not swallowed, not fatal: the fallback policy prices the
		// unresolved tickers at cost and the error rides along.
		report.ResolverErr = err
	}

	results, agg, err := Simulate(holdings, quotes, adj)
	if err != nil {
		return nil, err
	}
	report.Results = results
	report.Aggregate = agg
	return report, nil
}
