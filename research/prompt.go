package research

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/tradepulse"
	"github.com/etnz/tradepulse/date"
)

// BuildPrompt renders the brief request from the current valuation. Every
// figure the analyst reasons about, capital, floor, buffer, positions, comes
// from the live book, so the plan it returns fits the actual account.
func BuildPrompt(v *tradepulse.Valuation, now time.Time) string {
	var positions []string
	for _, l := range v.Lines {
		positions = append(positions, fmt.Sprintf("%s: %s shares @ avg %s", l.Ticker, l.Shares.StringFixed(3), l.AvgCost))
	}

	return fmt.Sprintf(`You are TradePulse Alpha — an aggressive %s AI-infrastructure trading engine.

Current date: %s
Portfolio value: %s (started at %s on %s)
Unrealized P&L: %s
Risk floor: %s (current buffer: %s)
Positions: %s

Conduct expert-level deep research and produce a structured 9AM trading brief covering:

1. MACRO OUTLOOK — Fed stance, inflation, rates, USD, any overnight news
2. AI CAPEX PULSE — hyperscaler spend updates (Meta, MSFT, Google, Amazon), GPU demand, AI chip supply
3. SECTOR ROTATION — momentum shifts across AI infra, semiconductors, software, broad market (QQQ/SPY)
4. PORTFOLIO REVIEW — assess each current position (%s) with a HOLD/BUY MORE/TRIM/SELL rating and reasoning
5. 9AM ACTION PLAN — exact BUY and SELL recommendations with dollar amounts that fit within the portfolio size and respect the %s loss floor

Format the output as a clean markdown brief with headers. End with a clearly formatted section:
## 9AM Action Plan
**BUY:**
- TICKER $amount — reason
**SELL/TRIM:**
- TICKER $amount — reason
**HOLD:**
- TICKER — reason

Be disciplined, data-driven, and concise.`,
		v.Policy.Capital.Rounded(),
		date.Stamp(now),
		v.Total, v.Invested, v.Start.Format("Jan 2 2006"),
		v.Gain,
		v.Policy.Floor.Rounded(), v.Buffer,
		strings.Join(positions, ", "),
		strings.Join(v.Tickers, ", "),
		v.Policy.Floor.Rounded())
}
