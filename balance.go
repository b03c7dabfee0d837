package networth

import "sort"

// UnvestedAccount is the synthetic account under which all unvested grant
// valuations are aggregated.
const UnvestedAccount = "Unvested RSU"

// DailyBalanceRecord is the persisted output unit: the valuation of one
// (account, ticker) position on one day.
type DailyBalanceRecord struct {
	Date    Date    `json:"date"`
	Account string  `json:"account"`
	Ticker  string  `json:"ticker"`
	Shares  float64 `json:"shares"`
	Price   float64 `json:"price"`
	Value   float64 `json:"value"`
}

type balanceKey struct {
	date    Date
	account string
	ticker  string
}

// BalanceBook is the full persisted series of daily balance records.
//
// Invariant: at most one record exists per (date, account, ticker). The book
// maintains it on every mutation, later records overwriting earlier ones.
type BalanceBook struct {
	records map[balanceKey]DailyBalanceRecord
}

// NewBalanceBook returns a book holding the given records.
func NewBalanceBook(records ...DailyBalanceRecord) *BalanceBook {
	b := &BalanceBook{records: make(map[balanceKey]DailyBalanceRecord, len(records))}
	b.Append(records...)
	return b
}

// Len returns the number of records in the book.
func (b *BalanceBook) Len() int { return len(b.records) }

// Append adds records to the book, overwriting any record with the same
// (date, account, ticker) key.
func (b *BalanceBook) Append(records ...DailyBalanceRecord) {
	for _, rec := range records {
		b.records[balanceKey{rec.Date, rec.Account, rec.Ticker}] = rec
	}
}

// HasDate reports whether at least one record exists for the given day.
// The coordinator uses it as the freshness check before fetching prices.
func (b *BalanceBook) HasDate(on Date) bool {
	for key := range b.records {
		if key.date == on {
			return true
		}
	}
	return false
}

// Prune removes every record whose date falls within the window. If account
// is non-empty only that account's records are removed. It returns the
// number of records removed.
func (b *BalanceBook) Prune(window Range, account string) int {
	removed := 0
	for key := range b.records {
		if !window.Contains(key.date) {
			continue
		}
		if account != "" && key.account != account {
			continue
		}
		delete(b.records, key)
		removed++
	}
	return removed
}

// Merge replaces the given window of the book with freshly computed records:
// prior records in the window (for the given account, or all accounts if
// empty) are discarded, then the new records are appended. Records outside
// the window are never touched, and re-merging the same window with the same
// records reproduces the same book.
func (b *BalanceBook) Merge(window Range, account string, records []DailyBalanceRecord) (removed int) {
	removed = b.Prune(window, account)
	b.Append(records...)
	return removed
}

// Records returns all records sorted by (date, account, ticker).
func (b *BalanceBook) Records() []DailyBalanceRecord {
	records := make([]DailyBalanceRecord, 0, len(b.records))
	for _, rec := range b.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		a, z := records[i], records[j]
		if a.Date != z.Date {
			return a.Date.Before(z.Date)
		}
		if a.Account != z.Account {
			return a.Account < z.Account
		}
		return a.Ticker < z.Ticker
	})
	return records
}

// AccountValue is the total value held in one account on a given day.
type AccountValue struct {
	Account string
	Value   float64
}

// SummaryOn aggregates the book for a single day into per-account totals,
// sorted by account, and the grand total.
func (b *BalanceBook) SummaryOn(on Date) (accounts []AccountValue, total float64) {
	byAccount := make(map[string]float64)
	for key, rec := range b.records {
		if key.date != on {
			continue
		}
		byAccount[rec.Account] += rec.Value
		total += rec.Value
	}
	for account, value := range byAccount {
		accounts = append(accounts, AccountValue{Account: account, Value: value})
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Account < accounts[j].Account })
	return accounts, total
}

// LastDate returns the latest date present in the book, and false if empty.
func (b *BalanceBook) LastDate() (Date, bool) {
	var last Date
	var found bool
	for key := range b.records {
		if last.IsZero() || key.date.After(last) {
			last, found = key.date, true
		}
	}
	return last, found
}
