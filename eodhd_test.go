package commandcenter

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestAsPrice(t *testing.T) {
	cases := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float", 123.45, 123.45, false},
		{"string", "123.45", 123.45, false},
		{"comma decimal string", "1 234,5", 1234.5, false},
		{"na marker", "NA", 0, true},
		{"negative", -1.0, 0, true},
		{"nil", nil, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := asPrice(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("asPrice(%v) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("asPrice(%v) error = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("asPrice(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEODHDResolver_QuoteFromRealTimeItem(t *testing.T) {
	r := NewEODHDResolver("demo", time.Minute)

	var item any
	payload := `{"code":"NVDA.US","timestamp":1700000000,"close":495.22,"previousClose":489.5}`
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatal(err)
	}

	quote, err := r.quoteFrom(context.Background(), "NVDA", item)
	if err != nil {
		t.Fatalf("quoteFrom() error = %v", err)
	}
	if quote.Unavailable {
		t.Fatal("quote should be available")
	}
	if !quote.Price.Equal(USD(495.22)) {
		t.Errorf("Price = %v, want %v", quote.Price, USD(495.22))
	}
}

func TestEODHDResolver_QuoteFallsBackToPreviousClose(t *testing.T) {
	r := NewEODHDResolver("demo", time.Minute)

	var item any
	payload := `{"code":"NVDA.US","close":"NA","previousClose":"489,5"}`
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatal(err)
	}

	quote, err := r.quoteFrom(context.Background(), "NVDA", item)
	if err != nil {
		t.Fatalf("quoteFrom() error = %v", err)
	}
	if !quote.Price.Equal(USD(489.5)) {
		t.Errorf("Price = %v, want previous close %v", quote.Price, USD(489.5))
	}
}

func TestEODHDResolver_CacheServesWithoutFetching(t *testing.T) {
	r := NewEODHDResolver("demo", time.Minute)
	r.cache.SetDefault("NVDA", Quote("NVDA", USD(500)))

	// the live client is never touched when every ticker is cached
	r.live = nil
	quotes, err := r.Resolve(context.Background(), []string{"nvda"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !quotes["NVDA"].Price.Equal(USD(500)) {
		t.Errorf("cached quote = %+v", quotes["NVDA"])
	}
}

func TestResolvers(t *testing.T) {
	t.Run("fixed resolver marks unknown tickers unavailable", func(t *testing.T) {
		r := FixedResolver{"NVDA": USD(500)}
		quotes, err := r.Resolve(context.Background(), []string{"NVDA", "ZZZZ"})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if quotes["NVDA"].Unavailable {
			t.Error("NVDA should be available")
		}
		if !quotes["ZZZZ"].Unavailable {
			t.Error("ZZZZ should be unavailable")
		}
	})

	t.Run("unavailable resolver answers every ticker", func(t *testing.T) {
		quotes, err := UnavailableResolver{}.Resolve(context.Background(), []string{"A", "B"})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("len(quotes) = %d, want 2", len(quotes))
		}
		for ticker, quote := range quotes {
			if !quote.Unavailable {
				t.Errorf("%s should be unavailable", ticker)
			}
		}
	})
}
