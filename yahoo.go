package tradepulse

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/piquette/finance-go/quote"
)

// YahooProvider fetches live prices from Yahoo Finance. The primary path is
// the quote API, the fallback digs the price out of the chart endpoint,
// which still answers for some symbols the quote API rejects.
type YahooProvider struct {
	client *http.Client
}

// NewYahooProvider returns a provider backed by the minute-grained response
// cache.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{client: cachedClient()}
}

// Quote implements the QuoteProvider interface, returning the latest market
// price for symbol in USD.
func (y *YahooProvider) Quote(symbol string) (float64, error) {
	q, err := quote.Get(symbol)
	if err == nil && q != nil && q.RegularMarketPrice > 0 {
		return q.RegularMarketPrice, nil
	}

	val, cerr := y.chartPrice(symbol)
	if cerr != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", symbol, errors.Join(err, cerr))
	}
	return val, nil
}

func (y *YahooProvider) chartPrice(symbol string) (float64, error) {
	addr := "https://query1.finance.yahoo.com/v8/finance/chart/" + url.PathEscape(symbol) + "?range=1d&interval=1d"
	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	if val <= 0 {
		return 0, fmt.Errorf("empty price for %s", symbol)
	}
	return val, nil
}
