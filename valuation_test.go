package tradepulse

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

// seedSnapshot quotes every seed position plus the benchmark.
func seedSnapshot() PriceSnapshot {
	return PriceSnapshot{
		"NVDA":          {Value: USD(190), OK: true},
		"NBIS":          {Value: USD(100), OK: true},
		"SMCI":          {Value: USD(30), OK: true},
		"PATH":          {Value: USD(11), OK: true},
		"QQQ":           {Value: USD(600), OK: true},
		BenchmarkTicker: {Value: USD(6400), OK: true},
	}
}

func TestCompute(t *testing.T) {
	v := Compute(Seed(), seedSnapshot(), DefaultRiskPolicy())

	// watchlist entries stay on the roster but off the holdings.
	wantTickers := []string{"ARM", "AVGO", "NBIS", "NVDA", "PATH", "QQQ", "SMCI"}
	if !slices.Equal(v.Tickers, wantTickers) {
		t.Errorf("Tickers = %v, want %v", v.Tickers, wantTickers)
	}
	wantLines := []string{"NBIS", "NVDA", "PATH", "QQQ", "SMCI"}
	var gotLines []string
	for _, l := range v.Lines {
		gotLines = append(gotLines, l.Ticker)
	}
	if !slices.Equal(gotLines, wantLines) {
		t.Errorf("Lines = %v, want %v", gotLines, wantLines)
	}

	// 264 + 286.14 + 98.89 + 199.80 + 201.33, no cash.
	if got, want := v.Total, USD(decimal.RequireFromString("1050.16")); !got.Equal(want) {
		t.Errorf("Total = %v, want %v", got, want)
	}
	if got, want := v.Gain, USD(decimal.RequireFromString("19.2855")); !got.Equal(want) {
		t.Errorf("Gain = %v, want %v", got, want)
	}
	if got, want := v.Return, Percent(5.016); !got.Equal(want) {
		t.Errorf("Return = %v, want %v", got, want)
	}
	if got, want := v.Buffer, USD(decimal.RequireFromString("550.16")); !got.Equal(want) {
		t.Errorf("Buffer = %v, want %v", got, want)
	}
	// above the starting capital, none of the risk budget is used.
	if got, want := v.RiskUsed, Percent(0); !got.Equal(want) {
		t.Errorf("RiskUsed = %v, want %v", got, want)
	}
	if got, want := v.Benchmark.Value, USD(6400); !v.Benchmark.OK || !got.Equal(want) {
		t.Errorf("Benchmark = %v (OK=%v), want %v", got, v.Benchmark.OK, want)
	}

	// per-line figures for the first holding.
	nbis := v.Lines[0]
	if got, want := nbis.MarketValue, USD(264); !got.Equal(want) {
		t.Errorf("NBIS MarketValue = %v, want %v", got, want)
	}
	if got, want := nbis.Gain, USD(decimal.RequireFromString("3.96")); !got.Equal(want) {
		t.Errorf("NBIS Gain = %v, want %v", got, want)
	}
	if got, want := nbis.Weight, Percent(264.0/1050.16*100); !got.Equal(want) {
		t.Errorf("NBIS Weight = %v, want %v", got, want)
	}

	// the weights of the holdings account for the whole value.
	var sum Percent
	for _, l := range v.Lines {
		sum += l.Weight
	}
	if !sum.Equal(100) {
		t.Errorf("sum of Weights = %v, want 100%%", sum)
	}
}

func TestComputeDeterministic(t *testing.T) {
	p, prices := Seed(), seedSnapshot()
	a := Compute(p, prices, DefaultRiskPolicy())
	b := Compute(p, prices, DefaultRiskPolicy())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Compute() = %+v, want the same result on identical inputs %+v", a, b)
	}
}

func TestComputeMissingQuote(t *testing.T) {
	prices := seedSnapshot()
	delete(prices, "SMCI")
	v := Compute(Seed(), prices, DefaultRiskPolicy())

	var smci Line
	for _, l := range v.Lines {
		if l.Ticker == "SMCI" {
			smci = l
		}
	}
	if smci.Ticker == "" {
		t.Fatalf("Lines = %v, want SMCI to stay listed", v.Lines)
	}
	if smci.Quoted {
		t.Errorf("Quoted = true, want false")
	}
	// valued at zero, the position reads as a full loss.
	if !smci.MarketValue.IsZero() {
		t.Errorf("MarketValue = %v, want 0", smci.MarketValue)
	}
	if got, want := smci.Gain, USD(decimal.RequireFromString("-199.9878")); !got.Equal(want) {
		t.Errorf("Gain = %v, want %v", got, want)
	}
	if got, want := v.Total, USD(decimal.RequireFromString("848.83")); !got.Equal(want) {
		t.Errorf("Total = %v, want %v", got, want)
	}
}

func TestComputeEmptyPortfolio(t *testing.T) {
	v := Compute(NewPortfolio(), PriceSnapshot{}, DefaultRiskPolicy())
	if len(v.Lines) != 0 {
		t.Errorf("Lines = %v, want none", v.Lines)
	}
	if !v.Total.IsZero() {
		t.Errorf("Total = %v, want 0", v.Total)
	}
	// nothing invested, no return to speak of.
	if got, want := v.Return, Percent(0); !got.Equal(want) {
		t.Errorf("Return = %v, want %v", got, want)
	}
	if v.Benchmark.OK {
		t.Errorf("Benchmark.OK = true, want false")
	}
}

func TestRiskPolicyUsed(t *testing.T) {
	policy := DefaultRiskPolicy()
	testCases := []struct {
		name  string
		total Money
		want  Percent
	}{
		{name: "at the starting capital", total: USD(1000), want: 0},
		{name: "above the starting capital", total: USD(1100), want: 0},
		{name: "at the floor", total: USD(500), want: 100},
		{name: "below the floor", total: USD(400), want: 100},
		{name: "half way down", total: USD(750), want: 50},
		{name: "a late drawdown", total: USD(900), want: 20},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.Used(tc.total); !got.Equal(tc.want) {
				t.Errorf("Used(%v) = %v, want %v", tc.total, got, tc.want)
			}
		})
	}
}

func TestRiskPolicyBuffer(t *testing.T) {
	policy := DefaultRiskPolicy()
	if got, want := policy.Buffer(USD(750)), USD(250); !got.Equal(want) {
		t.Errorf("Buffer(750) = %v, want %v", got, want)
	}
	if got, want := policy.Buffer(USD(400)), USD(-100); !got.Equal(want) {
		t.Errorf("Buffer(400) = %v, want %v", got, want)
	}
}

func TestRiskPolicyValidate(t *testing.T) {
	if err := DefaultRiskPolicy().Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	bad := RiskPolicy{Capital: USD(500), Floor: USD(500)}
	if err := bad.Validate(); err == nil {
		t.Errorf("Validate() error = nil, want an error on a zero span")
	}
	inverted := RiskPolicy{Capital: USD(400), Floor: USD(500)}
	if err := inverted.Validate(); err == nil {
		t.Errorf("Validate() error = nil, want an error on an inverted policy")
	}
}

func TestFetchPrices(t *testing.T) {
	provider := stubProvider{
		"NVDA":          190,
		"SMCI":          0, // the provider answers, but with an unusable price
		BenchmarkTicker: 6400,
	}
	snapshot, err := FetchPrices(provider, "NVDA", "SMCI", "NBIS")
	if err == nil {
		t.Fatalf("FetchPrices() error = nil, want the failures reported")
	}

	if got := snapshot["NVDA"]; !got.OK || !got.Value.Equal(USD(190)) {
		t.Errorf("NVDA = %+v, want 190 quoted", got)
	}
	// both failure modes degrade to the same unavailable zero price.
	for _, symbol := range []string{"SMCI", "NBIS"} {
		if got := snapshot[symbol]; got.OK || !got.Value.IsZero() {
			t.Errorf("%s = %+v, want an unavailable zero price", symbol, got)
		}
	}
	// the benchmark rides along without being asked for.
	if got := snapshot[BenchmarkTicker]; !got.OK || !got.Value.Equal(USD(6400)) {
		t.Errorf("benchmark = %+v, want 6400 quoted", got)
	}
}

// stubProvider serves fixed prices; unknown symbols fail like a dead feed.
type stubProvider map[string]float64

func (s stubProvider) Quote(symbol string) (float64, error) {
	value, ok := s[symbol]
	if !ok {
		return 0, errNoQuote
	}
	return value, nil
}

var errNoQuote = errors.New("no quote")
