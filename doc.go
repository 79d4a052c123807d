// Package tradepulse implements a single-owner trading portfolio engine:
// a durable JSON state file, weighted-average-cost accounting, live market
// valuation against a stop-loss floor, and a cached AI research brief.
//
// The core functionalities include:
//   - Portfolio Store: loading and atomically saving the portfolio document,
//     the single-slot recommendation brief, and an append-only research
//     history log.
//   - Accounting Engine: a pure valuation pass that turns the portfolio and
//     a price snapshot into per-position market values, unrealized P&L, and
//     risk figures relative to a configurable capital/floor policy.
//   - Trade Ledger: validated buy/sell mutations using weighted-average-cost
//     basis, where buys re-average the cost and sells never touch it.
//   - Quote Boundary: a small provider interface with a Yahoo Finance
//     implementation; a failed quote degrades to an unavailable price and
//     never aborts a valuation.
//
// This package serves as the foundational logic for the `tpa` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tradepulse
