package commandcenter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	gocache "github.com/patrickmn/go-cache"
)

const eodhd_api_key = "EODHD_API_KEY"

var eodhdApiFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+eodhd_api_key+"\". You can get one at https://eodhd.com/")

func eodhdApiKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *eodhdApiFlag == "" {
		*eodhdApiFlag = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiFlag
}

// EODHDResolver resolves current prices from the EODHD real-time API,
// falling back to the latest end-of-day close when the live quote is
// empty. Resolved quotes are cached in memory for a configurable
// freshness window; a stale-but-cached quote is served exactly like a
// fresh one.
type EODHDResolver struct {
	apiKey   string
	currency string
	exchange string // EODHD exchange suffix, e.g. "US"
	live     *http.Client
	eod      *http.Client // daily disk-cached, for the close fallback
	cache    *gocache.Cache
}

// NewEODHDResolver creates a resolver. An empty apiKey falls back to the
// -eodhd-api-key flag and then the EODHD_API_KEY environment variable.
// freshness is how long a resolved quote is served from memory.
func NewEODHDResolver(apiKey string, freshness time.Duration) *EODHDResolver {
	if apiKey == "" {
		apiKey = eodhdApiKey()
	}
	if freshness <= 0 {
		freshness = time.Minute
	}
	return &EODHDResolver{
		apiKey:   apiKey,
		currency: "USD",
		exchange: "US",
		live:     new(http.Client),
		eod:      daily(),
		cache:    gocache.New(freshness, 2*freshness),
	}
}

// symbol maps a normalized ticker to the EODHD symbol form.
func (r *EODHDResolver) symbol(ticker string) string {
	return ticker + "." + r.exchange
}

// Resolve answers one quote per requested ticker. Per-ticker fetch
// failures degrade to unavailable quotes; the collected errors are
// returned alongside the usable map so callers can surface them. A
// cancelled or expired context comes back as ErrResolverTimeout.
func (r *EODHDResolver) Resolve(ctx context.Context, tickers []string) (map[string]PriceQuote, error) {
	quotes := make(map[string]PriceQuote, len(tickers))

	var missing []string
	for _, t := range tickers {
		t = NormalizeTicker(t)
		if cached, ok := r.cache.Get(t); ok {
			quotes[t] = cached.(PriceQuote)
			continue
		}
		missing = append(missing, t)
	}
	if len(missing) == 0 {
		return quotes, nil
	}

	items, err := r.fetchRealTime(ctx, missing)
	if err != nil {
		for _, t := range missing {
			quotes[t] = NoQuote(t)
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return quotes, fmt.Errorf("%w: %v", ErrResolverTimeout, err)
		}
		return quotes, err
	}

	var errs error
	for _, t := range missing {
		quote, qerr := r.quoteFrom(ctx, t, items[t])
		if qerr != nil {
			errs = errors.Join(errs, fmt.Errorf("could not price %s: %w", t, qerr))
			quotes[t] = NoQuote(t)
			continue
		}
		quotes[t] = quote
		r.cache.SetDefault(t, quote)
	}
	return quotes, errs
}

// fetchRealTime performs one batched real-time request and indexes the
// response items by normalized ticker.
func (r *EODHDResolver) fetchRealTime(ctx context.Context, tickers []string) (map[string]any, error) {
	// https://eodhd.com/api/real-time/AAPL.US?s=MSFT.US,TSLA.US&fmt=json&api_token=demo
	first := r.symbol(tickers[0])
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", url.PathEscape(first), r.apiKey)
	if len(tickers) > 1 {
		symbols := make([]string, 0, len(tickers)-1)
		for _, t := range tickers[1:] {
			symbols = append(symbols, r.symbol(t))
		}
		addr += "&s=" + url.QueryEscape(strings.Join(symbols, ","))
	}

	var jobj any
	if err := jwget(ctx, r.live, addr, &jobj); err != nil {
		return nil, err
	}

	// a single symbol comes back as an object, several as a list.
	list, ok := jobj.([]any)
	if !ok {
		list = []any{jobj}
	}

	items := make(map[string]any, len(list))
	for _, item := range list {
		jval, err := jsonpath.Get("$.code", item)
		if err != nil {
			continue
		}
		code, ok := jval.(string)
		if !ok {
			continue
		}
		ticker := NormalizeTicker(strings.TrimSuffix(code, "."+r.exchange))
		items[ticker] = item
	}
	return items, nil
}

// quoteFrom extracts a price from one real-time item, trying the live
// close first, then the previous close, then the latest end-of-day
// close. The live feed returns "NA" for both when it has nothing.
func (r *EODHDResolver) quoteFrom(ctx context.Context, ticker string, item any) (PriceQuote, error) {
	if item != nil {
		for _, path := range []string{"$.close", "$.previousClose"} {
			jval, err := jsonpath.Get(path, item)
			if err != nil {
				continue
			}
			val, err := asPrice(jval)
			if err != nil {
				// "NA" or garbage on this field, try the next one
				continue
			}
			return Quote(ticker, M(val, r.currency)), nil
		}
		log.Printf("no usable real-time value for %s, falling back to end-of-day", ticker)
	}
	val, err := r.fetchLastClose(ctx, ticker)
	if err != nil {
		return PriceQuote{}, err
	}
	return Quote(ticker, M(val, r.currency)), nil
}

// fetchLastClose returns the most recent end-of-day close. The request
// goes through the daily disk cache, so it costs one API call per day.
func (r *EODHDResolver) fetchLastClose(ctx context.Context, ticker string) (float64, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	now := time.Now()
	from := now.AddDate(0, 0, -7).Format("2006-01-02")
	to := now.Format("2006-01-02")
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(r.symbol(ticker)), r.apiKey, from, to)

	type info struct {
		Date  string  `json:"date"`
		Close float64 `json:"close"`
	}
	content := make([]info, 0)
	if err := jwget(ctx, r.eod, addr, &content); err != nil {
		return math.NaN(), err
	}
	if len(content) == 0 {
		return math.NaN(), fmt.Errorf("no end-of-day prices for %s", ticker)
	}
	last := content[len(content)-1]
	if err := validPrice(last.Close); err != nil {
		return math.NaN(), err
	}
	return last.Close, nil
}

// asPrice coerces a JSON value into a finite non-negative price.
// The API sometimes returns numbers as strings, with comma decimals.
func asPrice(jval any) (float64, error) {
	val, ok := jval.(float64)
	if !ok {
		sval, ok := jval.(string)
		if !ok {
			return math.NaN(), fmt.Errorf("value is neither a float nor a string: %v", jval)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		var err error
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("value is an invalid string %q: %w", sval, err)
		}
	}
	if err := validPrice(val); err != nil {
		return math.NaN(), err
	}
	return val, nil
}

// validPrice enforces the PriceQuote contract: finite and non-negative.
func validPrice(val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("price %v is not finite", val)
	}
	if val < 0 {
		return fmt.Errorf("price %v is negative", val)
	}
	return nil
}
