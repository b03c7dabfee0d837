// Package networth reconstructs daily portfolio balances from sparse,
// month-level holding snapshots and daily market price series.
//
// Holdings are recorded once a month (shares per account and ticker, plus
// unvested grants). The engine forward-fills those snapshots to daily
// granularity, joins them with a gap-filled price series, and produces one
// valuation record per (date, account, ticker). A coordinator decides which
// date window to recompute, refreshes missing prices from an external
// provider with bounded retries, and merges the recomputed window back into
// the persisted balance history.
//
// All state lives in plain JSON files. A run reads everything up front and
// rewrites the balance file in one atomic step, so an interrupted run leaves
// the previous history intact.
package networth
