package networth

import (
	"sort"
)

// HoldingSnapshot records a known share count for an (account, ticker) pair
// as of a given date, typically the first of a month. Snapshots are supplied
// externally and are immutable once recorded.
type HoldingSnapshot struct {
	Account string  `json:"account"`
	Ticker  string  `json:"ticker"`
	Date    Date    `json:"date"`
	Shares  float64 `json:"shares"`
}

// UnvestedSnapshot records a count of unvested grant shares for a ticker as
// of a given date. Unvested positions have no natural account; they are
// aggregated under the synthetic UnvestedAccount.
type UnvestedSnapshot struct {
	Ticker string  `json:"ticker"`
	Date   Date    `json:"date"`
	Shares float64 `json:"shares"`
}

// Holdings is the collection of all known holding snapshots.
type Holdings []HoldingSnapshot

// Unvested is the collection of all known unvested snapshots.
type Unvested []UnvestedSnapshot

// Shares resolves the share count for (account, ticker) on a given day.
//
// It considers only snapshots recorded in the same calendar month as 'on',
// and picks the latest one; several snapshots in one month means the last
// one is a correction. A month with no snapshot resolves to 0: a gap means
// "no position", never "same as last known". Callers wanting carry-forward
// must supply a snapshot every month.
func (hs Holdings) Shares(account, ticker string, on Date) float64 {
	var best Date
	var shares float64
	for _, s := range hs {
		if s.Account != account || s.Ticker != ticker {
			continue
		}
		if !s.Date.SameMonth(on) {
			continue
		}
		if best.IsZero() || s.Date.After(best) {
			best, shares = s.Date, s.Shares
		}
	}
	return shares
}

// Shares resolves the unvested share count for a ticker on a given day,
// with the same month-bucket rule as Holdings.Shares.
func (us Unvested) Shares(ticker string, on Date) float64 {
	var best Date
	var shares float64
	for _, s := range us {
		if s.Ticker != ticker {
			continue
		}
		if !s.Date.SameMonth(on) {
			continue
		}
		if best.IsZero() || s.Date.After(best) {
			best, shares = s.Date, s.Shares
		}
	}
	return shares
}

// Accounts returns the sorted set of accounts present in the snapshots.
func (hs Holdings) Accounts() []string {
	seen := make(map[string]struct{})
	for _, s := range hs {
		seen[s.Account] = struct{}{}
	}
	return sortedKeys(seen)
}

// Tickers returns the sorted set of tickers present in the snapshots.
func (hs Holdings) Tickers() []string {
	seen := make(map[string]struct{})
	for _, s := range hs {
		seen[s.Ticker] = struct{}{}
	}
	return sortedKeys(seen)
}

// AccountTickers returns the sorted set of tickers ever held by one account.
func (hs Holdings) AccountTickers(account string) []string {
	seen := make(map[string]struct{})
	for _, s := range hs {
		if s.Account == account {
			seen[s.Ticker] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Tickers returns the sorted set of tickers present in the unvested snapshots.
func (us Unvested) Tickers() []string {
	seen := make(map[string]struct{})
	for _, s := range us {
		seen[s.Ticker] = struct{}{}
	}
	return sortedKeys(seen)
}

// CurrentTickers returns the sorted set of market-priced tickers from the
// most recent snapshot date. Snapshot files only carry first-of-month data,
// so the latest date identifies the current positions. "Cash" and "Fund: *"
// rows denote dollar values, not share prices, and are excluded.
func (hs Holdings) CurrentTickers() []string {
	var latest Date
	for _, s := range hs {
		if s.Date.After(latest) {
			latest = s.Date
		}
	}
	seen := make(map[string]struct{})
	for _, s := range hs {
		if s.Date == latest && MarketPriced(s.Ticker) {
			seen[s.Ticker] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// CurrentTickers returns the sorted set of tickers from the most recent
// unvested snapshot date. Unvested grants are always market priced.
func (us Unvested) CurrentTickers() []string {
	var latest Date
	for _, s := range us {
		if s.Date.After(latest) {
			latest = s.Date
		}
	}
	seen := make(map[string]struct{})
	for _, s := range us {
		if s.Date == latest {
			seen[s.Ticker] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// MergeTickers returns the sorted union of several ticker sets.
func MergeTickers(sets ...[]string) []string {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for _, t := range set {
			seen[t] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
