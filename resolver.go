package commandcenter

import (
	"context"
	"errors"
)

// ErrResolverTimeout reports that a resolver could not answer within its
// time bound. The simulator surfaces it per ticker as an unavailable
// quote instead of failing the whole pass.
var ErrResolverTimeout = errors.New("price resolver timed out")

// PriceQuote is the resolved current price for a ticker: either a finite
// non-negative price, or an explicit unavailable marker. Unavailable is
// a distinct case, never silently coerced to zero.
type PriceQuote struct {
	Ticker      string
	Price       Money
	Unavailable bool
}

// Quote builds an available quote.
func Quote(ticker string, price Money) PriceQuote {
	return PriceQuote{Ticker: NormalizeTicker(ticker), Price: price}
}

// NoQuote builds an unavailable quote.
func NoQuote(ticker string) PriceQuote {
	return PriceQuote{Ticker: NormalizeTicker(ticker), Unavailable: true}
}

// Resolver turns a set of tickers into current price quotes. The context
// bounds the resolution time. Implementations own their caching and
// retry policy; the simulator never retries. A resolver may answer fewer
// tickers than asked: missing entries count as unavailable.
type Resolver interface {
	Resolve(ctx context.Context, tickers []string) (map[string]PriceQuote, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, tickers []string) (map[string]PriceQuote, error)

func (f ResolverFunc) Resolve(ctx context.Context, tickers []string) (map[string]PriceQuote, error) {
	return f(ctx, tickers)
}

// FixedResolver resolves from a static ticker-to-price table. Tickers
// absent from the table come back unavailable.
type FixedResolver map[string]Money

func (r FixedResolver) Resolve(_ context.Context, tickers []string) (map[string]PriceQuote, error) {
	quotes := make(map[string]PriceQuote, len(tickers))
	for _, t := range tickers {
		t = NormalizeTicker(t)
		if price, ok := r[t]; ok {
			quotes[t] = Quote(t, price)
		} else {
			quotes[t] = NoQuote(t)
		}
	}
	return quotes, nil
}

// UnavailableResolver answers every ticker as unavailable. Combined with
// the fallback-to-cost policy it reproduces the no-live-data baseline
// where every position is priced at its own cost.
type UnavailableResolver struct{}

func (UnavailableResolver) Resolve(_ context.Context, tickers []string) (map[string]PriceQuote, error) {
	quotes := make(map[string]PriceQuote, len(tickers))
	for _, t := range tickers {
		t = NormalizeTicker(t)
		quotes[t] = NoQuote(t)
	}
	return quotes, nil
}
