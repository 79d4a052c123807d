package tradepulse

import (
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/etnz/tradepulse/date"
)

// Position holds one ticker's stake: the share count and the weighted-average
// cost paid per share.
type Position struct {
	Shares  Quantity
	AvgCost Money
}

// CostBasis returns the total amount paid for the position at its average cost.
func (p Position) CostBasis() Money { return p.AvgCost.Mul(p.Shares) }

// Held reports whether the position holds any shares. Zero-share entries are
// legal, they act as a buy watchlist, but they do not count as holdings.
func (p Position) Held() bool { return p.Shares.IsPositive() }

// Portfolio is the whole durable state of the account: free cash, one
// position per ticker, and the starting point growth is measured against.
type Portfolio struct {
	// Cash tracks the net flow since inception and legitimately goes
	// negative, the seed allocation was funded outside this ledger.
	Cash          Money
	Positions     map[string]Position
	StartDate     date.Date
	TotalInvested Money
}

// NewPortfolio returns an empty portfolio started on the current market day.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Cash:      USD(0),
		Positions: make(map[string]Position),
		StartDate: date.MarketDay(),
	}
}

// Seed returns the allocation written on first run: the account as it stood
// when the engine went live, including the zero-share watchlist entries.
func Seed() *Portfolio {
	return &Portfolio{
		Cash: USD(0),
		Positions: map[string]Position{
			"NVDA": {Shares: Q(1.506), AvgCost: USD(185.80)},
			"NBIS": {Shares: Q(2.640), AvgCost: USD(98.50)},
			"SMCI": {Shares: Q(6.711), AvgCost: USD(29.80)},
			"PATH": {Shares: Q(8.99), AvgCost: USD(10.10)},
			"QQQ":  {Shares: Q(0.333), AvgCost: USD(601.30)},
			"ARM":  {Shares: Q(0), AvgCost: USD(0)},
			"AVGO": {Shares: Q(0), AvgCost: USD(0)},
		},
		StartDate:     date.New(2026, time.February, 17),
		TotalInvested: USD(1000),
	}
}

// Position returns the position recorded for a ticker.
func (p *Portfolio) Position(ticker string) (Position, bool) {
	pos, ok := p.Positions[ticker]
	return pos, ok
}

// Tickers iterates over all position tickers in lexical order, the canonical
// order of the document and of every report.
func (p *Portfolio) Tickers() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(p.Positions)))
}

// Held iterates in lexical order over the positions with a positive share count.
func (p *Portfolio) Held() iter.Seq2[string, Position] {
	return func(yield func(string, Position) bool) {
		for ticker := range p.Tickers() {
			pos := p.Positions[ticker]
			if !pos.Held() {
				continue
			}
			if !yield(ticker, pos) {
				return
			}
		}
	}
}

// clone returns a copy deep enough that applying a trade never mutates the
// caller's portfolio. Positions are value types, so cloning the map suffices.
func (p *Portfolio) clone() *Portfolio {
	return &Portfolio{
		Cash:          p.Cash,
		Positions:     maps.Clone(p.Positions),
		StartDate:     p.StartDate,
		TotalInvested: p.TotalInvested,
	}
}
