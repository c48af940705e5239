package commandcenter

import (
	"errors"
	"testing"
)

func TestStore_LoadValidRecords(t *testing.T) {
	store := NewStore("USD")
	err := store.Load([]Record{
		{FieldTicker: " nvda ", FieldQuantity: "50", FieldAvgCost: "450.00"},
		{FieldTicker: "BTC", FieldQuantity: "0.5", FieldAvgCost: "40000", "Note": "ignored extra field"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	snap := store.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("len(Snapshot()) = %d, want 2", len(snap))
	}
	if snap[0].Ticker != "NVDA" {
		t.Errorf("Ticker = %q, want normalized %q", snap[0].Ticker, "NVDA")
	}
	if !snap[0].Quantity.Equal(Q(50)) {
		t.Errorf("Quantity = %v, want 50", snap[0].Quantity)
	}
	if !snap[1].AvgCost.Equal(USD(40000)) {
		t.Errorf("AvgCost = %v, want %v", snap[1].AvgCost, USD(40000))
	}
}

func TestStore_LoadSchemaErrors(t *testing.T) {
	cases := []struct {
		name  string
		rec   Record
		field string
	}{
		{"missing ticker", Record{FieldQuantity: "1", FieldAvgCost: "2"}, FieldTicker},
		{"blank ticker", Record{FieldTicker: "   ", FieldQuantity: "1", FieldAvgCost: "2"}, FieldTicker},
		{"missing quantity", Record{FieldTicker: "A", FieldAvgCost: "2"}, FieldQuantity},
		{"bad quantity", Record{FieldTicker: "A", FieldQuantity: "many", FieldAvgCost: "2"}, FieldQuantity},
		{"missing cost", Record{FieldTicker: "A", FieldQuantity: "1"}, FieldAvgCost},
		{"bad cost", Record{FieldTicker: "A", FieldQuantity: "1", FieldAvgCost: "$5"}, FieldAvgCost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewStore("USD")
			store.Replace([]Holding{{Ticker: "KEEP", Quantity: Q(1), AvgCost: USD(1)}})

			err := store.Load([]Record{
				{FieldTicker: "OK", FieldQuantity: "1", FieldAvgCost: "1"},
				tc.rec,
			})
			var schema *SchemaError
			if !errors.As(err, &schema) {
				t.Fatalf("Load() error = %v, want SchemaError", err)
			}
			if schema.Field != tc.field {
				t.Errorf("SchemaError.Field = %q, want %q", schema.Field, tc.field)
			}
			if schema.Row != 1 {
				t.Errorf("SchemaError.Row = %d, want 1", schema.Row)
			}
			// no partial load: the prior portfolio is intact
			snap := store.Snapshot()
			if len(snap) != 1 || snap[0].Ticker != "KEEP" {
				t.Errorf("Snapshot() = %v, want the prior single holding", snap)
			}
		})
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := NewStore("USD")
	store.Replace(DefaultHoldings("USD"))

	snap := store.Snapshot()
	snap[0].Ticker = "MUTATED"
	if store.Snapshot()[0].Ticker == "MUTATED" {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestStore_RowOperations(t *testing.T) {
	store := NewStore("USD")
	store.Add(Holding{Ticker: "a", Quantity: Q(1), AvgCost: USD(10)})
	store.Add(Holding{Ticker: "b", Quantity: Q(2), AvgCost: USD(20)})

	if err := store.Set(1, Holding{Ticker: "b", Quantity: Q(3), AvgCost: USD(25)}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !store.Snapshot()[1].Quantity.Equal(Q(3)) {
		t.Errorf("Set did not apply: %v", store.Snapshot()[1])
	}

	if err := store.Remove(0); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	snap := store.Snapshot()
	if len(snap) != 1 || snap[0].Ticker != "B" {
		t.Errorf("Snapshot() = %v, want only B", snap)
	}

	if err := store.Set(5, Holding{}); err == nil {
		t.Error("Set(5) on a 1-row store should fail")
	}
	if err := store.Remove(-1); err == nil {
		t.Error("Remove(-1) should fail")
	}
}

func TestStore_VersionTracksMutations(t *testing.T) {
	store := NewStore("USD")
	v0 := store.Version()
	store.Add(Holding{Ticker: "A", Quantity: Q(1), AvgCost: USD(1)})
	store.Replace(nil)
	if store.Version() != v0+2 {
		t.Errorf("Version() = %d, want %d", store.Version(), v0+2)
	}
}

func TestTickers_DeduplicatesInOrder(t *testing.T) {
	holdings := []Holding{
		{Ticker: "fubo"},
		{Ticker: "NVDA"},
		{Ticker: "FUBO"},
	}
	got := Tickers(holdings)
	want := []string{"FUBO", "NVDA"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
