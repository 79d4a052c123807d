package tradepulse

import (
	"errors"
	"fmt"
	"strings"
)

// Side identifies the direction of a trade.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide reads a trade side from user input, accepting any casing.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	}
	return "", fmt.Errorf("unknown trade side %q, want buy or sell", s)
}

// Guard rails on recorded trades. Orders below these thresholds are rejected.
var (
	MinTradeAmount = USD(10)
	MinFillPrice   = USD(0.01)
)

var (
	// ErrUnknownPosition rejects a sell of a ticker the portfolio never held.
	ErrUnknownPosition = errors.New("no position for ticker")
	// ErrOversell rejects a sell of more shares than the position holds.
	ErrOversell = errors.New("sell exceeds position")
)

// Trade records one executed order: ticker, side, the dollar amount
// exchanged, and the exact fill price.
type Trade struct {
	Ticker string
	Side   Side
	Amount Money // total dollars exchanged
	Price  Money // fill price per share
	All    bool  // sell the whole position, resolving Amount during Validate
}

// Shares returns the number of shares the trade moves at its fill price.
func (t Trade) Shares() Quantity { return t.Amount.DivPrice(t.Price) }

// Validate checks the trade against the portfolio and returns a copy with
// quick fixes applied (ticker casing, sell-all amount) or an error. A trade
// that does not validate leaves no trace on the portfolio.
func (t Trade) Validate(p *Portfolio) (Trade, error) {
	t.Ticker = strings.ToUpper(strings.TrimSpace(t.Ticker))
	if t.Ticker == "" {
		return t, errors.New("trade ticker is missing")
	}
	if t.Side != Buy && t.Side != Sell {
		return t, fmt.Errorf("unknown trade side %q, want buy or sell", string(t.Side))
	}
	if t.Price.LessThan(MinFillPrice) {
		return t, fmt.Errorf("fill price must be at least %s, got %s", MinFillPrice, t.Price)
	}

	if t.Side == Sell {
		pos, ok := p.Position(t.Ticker)
		if !ok {
			return t, fmt.Errorf("cannot sell %s: %w", t.Ticker, ErrUnknownPosition)
		}
		if t.All {
			if !pos.Held() {
				return t, fmt.Errorf("cannot sell all of %s, position is empty: %w", t.Ticker, ErrOversell)
			}
			// quick fix: resolve the whole position at the fill price.
			t.Amount = t.Price.Mul(pos.Shares)
			return t, nil
		}
		if t.Amount.LessThan(MinTradeAmount) {
			return t, fmt.Errorf("trade amount must be at least %s, got %s", MinTradeAmount, t.Amount)
		}
		if shares := t.Shares(); pos.Shares.LessThan(shares) {
			return t, fmt.Errorf("cannot sell %s of %s, position is only %s: %w", shares, t.Ticker, pos.Shares, ErrOversell)
		}
		return t, nil
	}

	if t.Amount.LessThan(MinTradeAmount) {
		return t, fmt.Errorf("trade amount must be at least %s, got %s", MinTradeAmount, t.Amount)
	}
	return t, nil
}

// Apply returns a new portfolio with the trade applied; the input is left
// untouched so callers persist the result only once it exists.
//
// Buys fold the amount into the weighted-average cost:
//
//	avg' = (shares×avg + amount) / (shares + amount/price)
//
// Sells reduce the share count and leave the average cost alone, so the
// unrealized P&L of the remainder keeps its meaning. A position sold down
// to zero (or below, should a caller skip Validate) is removed.
func (t Trade) Apply(p *Portfolio) *Portfolio {
	next := p.clone()
	shares := t.Shares()

	switch t.Side {
	case Buy:
		pos := next.Positions[t.Ticker] // the zero value starts a new position
		costBasis := pos.CostBasis().Add(t.Amount)
		pos.Shares = pos.Shares.Add(shares)
		pos.AvgCost = costBasis.Div(pos.Shares)
		next.Positions[t.Ticker] = pos
		next.Cash = next.Cash.Sub(t.Amount)
	case Sell:
		pos := next.Positions[t.Ticker]
		pos.Shares = pos.Shares.Sub(shares)
		if pos.Held() {
			next.Positions[t.Ticker] = pos
		} else {
			delete(next.Positions, t.Ticker)
		}
		next.Cash = next.Cash.Add(t.Amount)
	}
	return next
}
