package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tradepulse"
)

// 14:00 UTC on the seed day, which is 09:00 AM in New York.
var testNow = time.Date(2026, time.February, 17, 14, 0, 0, 0, time.UTC)

func testValuation(t *testing.T) *tradepulse.Valuation {
	t.Helper()
	prices := tradepulse.PriceSnapshot{
		"NVDA":                     {Value: tradepulse.USD(190), OK: true},
		"NBIS":                     {Value: tradepulse.USD(100), OK: true},
		"SMCI":                     {Value: tradepulse.USD(30), OK: true},
		"PATH":                     {Value: tradepulse.USD(11), OK: true},
		"QQQ":                      {Value: tradepulse.USD(600), OK: true},
		tradepulse.BenchmarkTicker: {Value: tradepulse.USD(6400), OK: true},
	}
	return tradepulse.Compute(tradepulse.Seed(), prices, tradepulse.DefaultRiskPolicy())
}

func TestDashboard(t *testing.T) {
	got := Dashboard(testValuation(t), testNow)

	wants := []string{
		"# TradePulse Alpha",
		"$1,000 Aggressive AI-Infra Engine | Max $500 Loss",
		"**Live Market Time:** 09:00 AM ET - Feb 17, 2026 | Next open: 9:30 AM ET",
		"Distance to $500 Loss Floor:",
		"Ticker",
		"NVDA",
		"185.80", // seed average cost
		"S&P 500",
		"## Portfolio Allocation",
		"## Portfolio Growth",
		"$1,000.00", // invested, the growth starting point
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard is missing %q:\n%s", want, got)
		}
	}

	// Watchlist entries carry no shares and stay off the dashboard.
	if strings.Contains(got, "ARM") {
		t.Errorf("dashboard lists a watchlist entry:\n%s", got)
	}
}

func TestDashboardWithoutQuote(t *testing.T) {
	// No price for SMCI: the line is kept, valued at zero, and marked.
	prices := tradepulse.PriceSnapshot{
		"SMCI": {Value: tradepulse.USD(0)},
	}
	got := Dashboard(tradepulse.Compute(tradepulse.Seed(), prices, tradepulse.DefaultRiskPolicy()), testNow)

	if !strings.Contains(got, "SMCI") {
		t.Errorf("unquoted position dropped from the dashboard:\n%s", got)
	}
	if !strings.Contains(got, "n/a") {
		t.Errorf("unquoted price not marked:\n%s", got)
	}
}

func TestDashboardEmpty(t *testing.T) {
	got := Dashboard(tradepulse.Compute(tradepulse.NewPortfolio(), nil, tradepulse.DefaultRiskPolicy()), testNow)

	if !strings.Contains(got, "No open positions yet. Record a trade to get started.") {
		t.Errorf("empty dashboard is missing the getting-started hint:\n%s", got)
	}
}

func TestBrief(t *testing.T) {
	rec := tradepulse.RecommendationRecord{
		GeneratedAt: "February 17, 2026 09:00 AM ET",
		Content:     "## 9AM Action Plan\n**HOLD:**\n- NVDA — earnings ahead",
	}
	got := Brief(rec, testNow)

	wants := []string{
		"# 9AM Recommendations — Tuesday Feb 17, 2026",
		"Last updated by Deep Research: February 17, 2026 09:00 AM ET",
		"## 9AM Action Plan",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("brief is missing %q:\n%s", want, got)
		}
	}
}

func TestBriefEmpty(t *testing.T) {
	got := Brief(tradepulse.RecommendationRecord{}, testNow)

	if !strings.Contains(got, "No recommendations yet.") {
		t.Errorf("empty brief is missing the hint:\n%s", got)
	}
}

func TestHistory(t *testing.T) {
	records := []tradepulse.RecommendationRecord{
		{GeneratedAt: "February 17, 2026 09:00 AM ET", Content: "first brief"},
		{GeneratedAt: "February 18, 2026 09:00 AM ET", Content: "second brief"},
	}
	got := History(records)

	wants := []string{
		"# Research History",
		"## February 17, 2026 09:00 AM ET",
		"first brief",
		"## February 18, 2026 09:00 AM ET",
		"second brief",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("history is missing %q:\n%s", want, got)
		}
	}
	// oldest first, the order of the log itself.
	if strings.Index(got, "first brief") > strings.Index(got, "second brief") {
		t.Errorf("history is not oldest first:\n%s", got)
	}
}

func TestHistoryEmpty(t *testing.T) {
	if got := History(nil); !strings.Contains(got, "The research log is empty.") {
		t.Errorf("empty history is missing the hint:\n%s", got)
	}
}

func TestGauge(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{0, "[----------]"},
		{50, "[#####-----]"},
		{100, "[##########]"},
		{150, "[##########]"}, // clamped
		{-10, "[----------]"}, // clamped
	}
	for _, tc := range tests {
		if got := gauge(tc.percent, 10); got != tc.want {
			t.Errorf("gauge(%v): Got: %v, want: %v", tc.percent, got, tc.want)
		}
	}
}
