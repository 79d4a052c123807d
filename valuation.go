package tradepulse

import (
	"fmt"
	"slices"

	"github.com/etnz/tradepulse/date"
)

// RiskPolicy sets the two anchors risk is measured against: the starting
// capital (none of the risk budget used) and the stop-loss floor (all of it).
type RiskPolicy struct {
	Capital Money
	Floor   Money
}

// DefaultRiskPolicy mirrors the account the engine started with: $1,000 of
// capital and a hard $500 floor.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{Capital: USD(1000), Floor: USD(500)}
}

// Validate rejects a floor at or above the capital, which would leave the
// risk scale without a span.
func (r RiskPolicy) Validate() error {
	if !r.Capital.GreaterThan(r.Floor) {
		return fmt.Errorf("risk floor %s must be below starting capital %s", r.Floor, r.Capital)
	}
	return nil
}

// Buffer returns the distance between a portfolio value and the floor.
func (r RiskPolicy) Buffer(total Money) Money { return total.Sub(r.Floor) }

// Used returns how much of the risk budget a drawdown has consumed, clamped
// to [0%, 100%]: 0% at or above the starting capital, 100% at or below the
// floor. A policy without a positive span reads as fully used.
func (r RiskPolicy) Used(total Money) Percent {
	span := r.Capital.Sub(r.Floor)
	if !span.IsPositive() {
		return 100
	}
	used := ratio(r.Capital.Sub(total), span)
	return min(max(used, 0), 100)
}

// Line is one valued holding on the dashboard.
type Line struct {
	Ticker      string
	Shares      Quantity
	AvgCost     Money
	Price       Money
	Quoted      bool // false when the provider failed and zero was substituted
	MarketValue Money
	Gain        Money   // unrealized P&L against the cost basis
	Weight      Percent // share of the total portfolio value
}

// Valuation is the complete result of one accounting pass. It is a plain
// value: computing it reads nothing but its inputs and writes nothing.
type Valuation struct {
	Start     date.Date
	Tickers   []string // every position in the document, watchlist included
	Lines     []Line   // held positions in lexical ticker order
	Cash      Money
	Invested  Money
	Total     Money
	Gain      Money   // sum of unrealized P&L across holdings
	Return    Percent // growth of Total over Invested
	Benchmark Price   // the broad-market reference quote
	Policy    RiskPolicy
	Buffer    Money // distance above the stop-loss floor
	RiskUsed  Percent
}

// Compute values the portfolio against a price snapshot. Positions without a
// usable quote are valued at zero, the documented degradation policy, so a
// dead quote feed shows up as a loss on screen rather than an aborted run.
func Compute(p *Portfolio, prices PriceSnapshot, policy RiskPolicy) *Valuation {
	v := &Valuation{
		Start:     p.StartDate,
		Tickers:   slices.Collect(p.Tickers()),
		Cash:      p.Cash,
		Invested:  p.TotalInvested,
		Benchmark: prices[BenchmarkTicker],
		Policy:    policy,
	}

	total := p.Cash
	gain := USD(0)
	for ticker, pos := range p.Held() {
		quote := prices[ticker]
		value := quote.Value.Mul(pos.Shares)
		line := Line{
			Ticker:      ticker,
			Shares:      pos.Shares,
			AvgCost:     pos.AvgCost,
			Price:       quote.Value,
			Quoted:      quote.OK,
			MarketValue: value,
			Gain:        value.Sub(pos.CostBasis()),
		}
		total = total.Add(value)
		gain = gain.Add(line.Gain)
		v.Lines = append(v.Lines, line)
	}
	v.Total = total
	v.Gain = gain

	// weights need the grand total, hence the second pass
	for i := range v.Lines {
		v.Lines[i].Weight = ratio(v.Lines[i].MarketValue, total)
	}
	if v.Invested.IsPositive() {
		v.Return = ratio(total.Sub(v.Invested), v.Invested)
	}
	v.Buffer = policy.Buffer(total)
	v.RiskUsed = policy.Used(total)
	return v
}

// ratio returns a/b as a percentage, 0 when b is zero.
func ratio(a, b Money) Percent {
	if b.IsZero() {
		return 0
	}
	return Percent(a.value.Div(b.value).InexactFloat64() * 100)
}
