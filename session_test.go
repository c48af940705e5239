package commandcenter

import (
	"context"
	"errors"
	"testing"
)

func TestSession_RunSimulation(t *testing.T) {
	store := NewStore("USD")
	store.Replace([]Holding{
		{Ticker: "NVDA", Quantity: Q(50), AvgCost: USD(450)},
		{Ticker: "GOOGL", Quantity: Q(100), AvgCost: USD(120)},
	})
	resolver := FixedResolver{"NVDA": USD(500), "GOOGL": USD(150)}
	session := NewSession(store, resolver)

	report, err := session.RunSimulation(context.Background(), Uniform(20))
	if err != nil {
		t.Fatalf("RunSimulation() error = %v", err)
	}
	if report.ResolverErr != nil {
		t.Errorf("ResolverErr = %v, want nil", report.ResolverErr)
	}
	if len(report.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(report.Results))
	}
	// 600*50 + 180*100
	if !report.Aggregate.TotalValue.Equal(USD(48000)) {
		t.Errorf("TotalValue = %v, want %v", report.Aggregate.TotalValue, USD(48000))
	}

	second, err := session.RunSimulation(context.Background(), Uniform(20))
	if err != nil {
		t.Fatalf("RunSimulation() error = %v", err)
	}
	if second.Pass <= report.Pass {
		t.Errorf("Pass = %d, want > %d for last-result-wins ordering", second.Pass, report.Pass)
	}
}

func TestSession_ResolverTimeoutSurfaced(t *testing.T) {
	store := NewStore("USD")
	store.Replace([]Holding{{Ticker: "NVDA", Quantity: Q(50), AvgCost: USD(450)}})

	timedOut := ResolverFunc(func(ctx context.Context, tickers []string) (map[string]PriceQuote, error) {
		return nil, ErrResolverTimeout
	})
	session := NewSession(store, timedOut)

	report, err := session.RunSimulation(context.Background(), Uniform(0))
	if err != nil {
		t.Fatalf("RunSimulation() error = %v, the pass must not abort", err)
	}
	if !errors.Is(report.ResolverErr, ErrResolverTimeout) {
		t.Errorf("ResolverErr = %v, want ErrResolverTimeout", report.ResolverErr)
	}
	// every ticker degrades to priced-at-cost
	if !report.Results[0].PricedAtCost {
		t.Error("PricedAtCost = false after resolver failure")
	}
	if !report.Results[0].MarketValue.Equal(USD(22500)) {
		t.Errorf("MarketValue = %v, want %v", report.Results[0].MarketValue, USD(22500))
	}
}

func TestSession_NilResolverPricesAtCost(t *testing.T) {
	store := NewStore("USD")
	store.Replace([]Holding{{Ticker: "FIG", Quantity: Q(150), AvgCost: USD(10)}})
	session := NewSession(store, nil)

	report, err := session.RunSimulation(context.Background(), Uniform(0))
	if err != nil {
		t.Fatalf("RunSimulation() error = %v", err)
	}
	res := report.Results[0]
	if !res.PricedAtCost || !res.Profit.IsZero() {
		t.Errorf("baseline should be break-even at cost, got %+v", res)
	}
}

func TestSession_LoadPortfolioPreservesPriorOnFailure(t *testing.T) {
	store := NewStore("USD")
	store.Replace([]Holding{{Ticker: "KEEP", Quantity: Q(1), AvgCost: USD(1)}})
	session := NewSession(store, nil)

	err := session.LoadPortfolio([]Record{{FieldTicker: "X", FieldQuantity: "oops", FieldAvgCost: "1"}})
	if err == nil {
		t.Fatal("LoadPortfolio() should fail on a non-numeric quantity")
	}
	if got := store.Snapshot(); len(got) != 1 || got[0].Ticker != "KEEP" {
		t.Errorf("prior portfolio not preserved: %v", got)
	}
}
