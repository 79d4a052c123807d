package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/tradepulse"
	"github.com/etnz/tradepulse/date"
	md "github.com/nao1215/markdown"
)

const nextOpen = "9:30 AM ET"

// Dashboard renders the live portfolio view: the risk gauge, account
// figures, valued holdings, allocation and growth since inception.
func Dashboard(v *tradepulse.Valuation, now time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	maxLoss := v.Policy.Capital.Sub(v.Policy.Floor)
	doc.H1("TradePulse Alpha")
	doc.PlainText(md.Bold(fmt.Sprintf("%s Aggressive AI-Infra Engine | Max %s Loss | Live 9AM Recs + Deep Research",
		v.Policy.Capital.Rounded(), maxLoss.Rounded())))
	doc.PlainText(fmt.Sprintf("%s %s | Next open: %s", md.Bold("Live Market Time:"), date.Clock(now), nextOpen))

	doc.H2("Risk")
	doc.PlainText(fmt.Sprintf("`%s` %s of the risk budget used", gauge(float64(v.RiskUsed), 20), v.RiskUsed))
	doc.PlainText(fmt.Sprintf("Distance to %s Loss Floor: %s buffer", v.Policy.Floor.Rounded(), v.Buffer.Rounded()))

	doc.H2("Account")
	account := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Portfolio Value"),
			md.Bold(fmt.Sprintf("%s (%s)", v.Total, v.Return.SignedString())),
		},
		Rows: [][]string{
			{"Unrealized P&L", v.Gain.SignedString()},
			{"Cash", v.Cash.String()},
		},
	}
	if v.Benchmark.OK {
		account.Rows = append(account.Rows, []string{"S&P 500", v.Benchmark.Value.String()})
	}
	doc.Table(account)

	doc.H2("Holdings")
	if len(v.Lines) == 0 {
		doc.PlainText("No open positions yet. Record a trade to get started.")
		return doc.String()
	}
	holdings := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Shares", "Avg Cost", "Current Price", "Value $", "P&L $"},
		Rows:   [][]string{},
	}
	for _, l := range v.Lines {
		price := l.Price.String()
		if !l.Quoted {
			price = "n/a"
		}
		holdings.Rows = append(holdings.Rows, []string{
			l.Ticker,
			l.Shares.StringFixed(3),
			l.AvgCost.String(),
			price,
			l.MarketValue.String(),
			l.Gain.SignedString(),
		})
	}
	doc.Table(holdings)

	doc.H2("Portfolio Allocation")
	alloc := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Ticker", "Weight", ""},
		Rows:   [][]string{},
	}
	for _, l := range v.Lines {
		alloc.Rows = append(alloc.Rows, []string{l.Ticker, l.Weight.String(), gauge(float64(l.Weight), 20)})
	}
	doc.Table(alloc)

	doc.H2("Portfolio Growth")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Day", "Value"},
		Rows: [][]string{
			{"Start", v.Invested.String()},
			{"Now", v.Total.String()},
		},
	})

	return doc.String()
}
