package commandcenter

import (
	"fmt"
	"sync"
)

// Store owns the live set of holdings for a session. It is the only
// shared mutable state of the simulator: every mutation swaps the whole
// ordered set at once, so Snapshot never observes a half-applied change.
//
// The store is deliberately permissive. It rejects schema-level problems
// only (missing or non-numeric fields); duplicate tickers, zero and
// negative quantities are all legitimate rows.
type Store struct {
	mu       sync.RWMutex
	currency string
	holdings []Holding
	version  uint64
}

// NewStore returns an empty store whose cost figures are expressed in
// the given reporting currency ("USD" when empty).
func NewStore(currency string) *Store {
	if currency == "" {
		currency = "USD"
	}
	return &Store{currency: currency}
}

// Currency returns the store's reporting currency.
func (s *Store) Currency() string { return s.currency }

// Load validates all raw records and atomically replaces the holding
// set. On any validation failure nothing is applied and the prior
// holdings remain untouched; the returned SchemaError identifies the
// offending record and field.
func (s *Store) Load(records []Record) error {
	holdings := make([]Holding, 0, len(records))
	for i, rec := range records {
		h, err := parseRecord(i, rec, s.currency)
		if err != nil {
			return err
		}
		holdings = append(holdings, h)
	}
	s.Replace(holdings)
	return nil
}

// Replace atomically swaps the entire holding set. Tickers are
// normalized on the way in; insertion order is preserved.
func (s *Store) Replace(holdings []Holding) {
	next := make([]Holding, len(holdings))
	for i, h := range holdings {
		h.Ticker = NormalizeTicker(h.Ticker)
		next[i] = h
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holdings = next
	s.version++
}

// Snapshot returns a copy of the current ordered holdings. Simulation
// passes always operate on a snapshot, never on the live set.
func (s *Store) Snapshot() []Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make([]Holding, len(s.holdings))
	copy(snap, s.holdings)
	return snap
}

// Version returns a counter incremented by every mutation, letting
// callers tell one snapshot generation from another.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Len returns the number of holdings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.holdings)
}

// Add appends one holding.
func (s *Store) Add(h Holding) {
	h.Ticker = NormalizeTicker(h.Ticker)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holdings = append(s.holdings, h)
	s.version++
}

// Set replaces the holding at index i.
func (s *Store) Set(i int, h Holding) error {
	h.Ticker = NormalizeTicker(h.Ticker)
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.holdings) {
		return fmt.Errorf("no holding at index %d", i)
	}
	s.holdings[i] = h
	s.version++
	return nil
}

// Remove deletes the holding at index i, preserving the order of the rest.
func (s *Store) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.holdings) {
		return fmt.Errorf("no holding at index %d", i)
	}
	s.holdings = append(s.holdings[:i], s.holdings[i+1:]...)
	s.version++
	return nil
}

// Tickers returns the normalized tickers of the snapshot, deduplicated,
// in first-appearance order. This is the set handed to a price resolver.
func Tickers(holdings []Holding) []string {
	seen := make(map[string]struct{}, len(holdings))
	var tickers []string
	for _, h := range holdings {
		t := NormalizeTicker(h.Ticker)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tickers = append(tickers, t)
	}
	return tickers
}
