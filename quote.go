package tradepulse

import (
	"errors"
	"fmt"
)

// BenchmarkTicker is the broad-market reference quoted alongside the
// holdings on every valuation pass.
const BenchmarkTicker = "^GSPC"

// QuoteProvider fetches the latest market price for one symbol.
type QuoteProvider interface {
	Quote(symbol string) (float64, error)
}

// Price is one quoted price. OK is false when the provider could not serve
// the symbol, in which case Value is zero by policy.
type Price struct {
	Value Money
	OK    bool
}

// PriceSnapshot carries the per-symbol quotes of a single valuation pass.
// It is ephemeral: fetched, consumed, never persisted.
type PriceSnapshot map[string]Price

// FetchPrices queries the provider for every symbol and the benchmark. A
// failed or non-positive quote degrades to an unavailable zero price instead
// of aborting; the joined error reports every failure for the caller to log.
func FetchPrices(provider QuoteProvider, symbols ...string) (PriceSnapshot, error) {
	snapshot := make(PriceSnapshot, len(symbols)+1)
	var errs []error
	for _, symbol := range append(symbols, BenchmarkTicker) {
		if _, done := snapshot[symbol]; done {
			continue
		}
		value, err := provider.Quote(symbol)
		if err == nil && value <= 0 {
			err = fmt.Errorf("no price for %q", symbol)
		}
		if err != nil {
			errs = append(errs, err)
			snapshot[symbol] = Price{Value: USD(0)}
			continue
		}
		snapshot[symbol] = Price{Value: USD(value), OK: true}
	}
	return snapshot, errors.Join(errs...)
}
