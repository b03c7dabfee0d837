package networth

import (
	"fmt"
	"log"
	"time"
)

// DefaultEpoch is the first day of computed history: full recomputes always
// start here.
var DefaultEpoch = NewDate(2024, time.January, 1)

// The market-close cutoff: before 16:00 in the reference timezone, the
// current day has no closing prices yet and is not treated as computable.
const marketCloseHour = 16

// marketTZ is the fixed reference timezone for the market-close cutoff.
var marketTZ = func() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		log.Printf("warning: cannot load market timezone, falling back to UTC: %v", err)
		return time.UTC
	}
	return loc
}()

// Retry policy for the external price fetch.
const (
	fetchAttempts  = 3               // attempts for the whole fetch step
	fetchBackoff   = 2 * time.Second // pause between whole-step attempts
	tickerAttempts = 3               // attempts for tickers still missing the end date
	tickerBackoff  = 5 * time.Second // pause between per-ticker attempts
)

// initialLookbackYears bounds the very first fetch when the price cache is empty.
const initialLookbackYears = 2

// Fetcher is the external market-data capability: daily closing prices for a
// set of tickers over a date range.
//
// Per-ticker failures (unknown symbol, empty vendor response) are reported
// in failed, not as an error. A non-nil error means the whole round failed.
type Fetcher interface {
	Fetch(tickers []string, window Range) (records []PriceRecord, failed []string, err error)
}

// Recomputer coordinates one incremental recompute: it selects the date
// window, refreshes missing prices with bounded retries, computes the
// valuations, and merges them into the balance book. It never persists;
// callers write the book and the price cache back after a successful run.
type Recomputer struct {
	Holdings Holdings
	Unvested Unvested
	Prices   *PriceSeries
	Book     *BalanceBook
	Fetcher  Fetcher

	now   func() time.Time    // injected for tests
	sleep func(time.Duration) // injected for tests
}

// NewRecomputer assembles a coordinator over the given datasets.
func NewRecomputer(holdings Holdings, unvested Unvested, prices *PriceSeries, book *BalanceBook, fetcher Fetcher) *Recomputer {
	return &Recomputer{
		Holdings: holdings,
		Unvested: unvested,
		Prices:   prices,
		Book:     book,
		Fetcher:  fetcher,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// ClosingDate returns the latest day whose closing prices can exist: today
// after the market close in the reference timezone, yesterday before it.
func (r *Recomputer) ClosingDate() Date {
	now := r.now().In(marketTZ)
	today := NewDate(now.Date())
	if now.Hour() < marketCloseHour {
		return today.Add(-1)
	}
	return today
}

// Window selects the recompute window for a scope and an optional explicit
// date (zero Date means none).
//
// For a single-account scope the explicit date is the start of the window
// and the end is always the closing date. For a full recompute the start is
// always the default epoch and the explicit date, if any, is the end.
func (r *Recomputer) Window(scope Scope, on Date) Range {
	if scope != AllAccounts {
		start := DefaultEpoch
		if !on.IsZero() {
			start = on
		}
		return NewRange(start, r.ClosingDate())
	}
	end := r.ClosingDate()
	if !on.IsZero() {
		end = on
	}
	return NewRange(DefaultEpoch, end)
}

// Run executes one recompute for the given scope and optional explicit date.
// It returns the window that was recomputed and the number of records it
// produced. Price-fetch failures are tolerated: the run proceeds with
// whatever price data is available.
func (r *Recomputer) Run(scope Scope, on Date) (window Range, computed int) {
	window = r.Window(scope, on)
	r.refreshPrices(window.To)

	records := ComputeValuations(r.Holdings, r.Unvested, r.Prices, scope, window)
	removed := r.Book.Merge(window, string(scope), records)
	log.Printf("recompute window=%s..%s scope=%q removed=%d computed=%d",
		window.From, window.To, scope, removed, len(records))
	return window, len(records)
}

// refreshPrices makes sure the price series covers the end date as well as
// possible before valuations run.
//
// When the balance book already has records for the end date the cache is
// only refreshed opportunistically (one fetch step). Otherwise the fetch
// step is retried, then tickers still missing the end date are refetched
// individually, and any remaining holes are reported as a warning and
// tolerated.
func (r *Recomputer) refreshPrices(end Date) {
	if r.Fetcher == nil {
		return
	}
	tickers := MergeTickers(r.Holdings.CurrentTickers(), r.Unvested.CurrentTickers())
	if len(tickers) == 0 {
		return
	}

	window := r.fetchWindow(end)

	if !r.Book.HasDate(end) {
		if !r.fetchStep(tickers, window) {
			log.Printf("warning: price fetch failed after %d attempts, proceeding with existing data", fetchAttempts)
		}
		missing := r.Prices.MissingOn(end, tickers)
		for attempt := 1; len(missing) > 0 && attempt <= tickerAttempts; attempt++ {
			if attempt > 1 {
				r.sleep(tickerBackoff)
			}
			log.Printf("warning: missing price data for %s: %v (retry %d/%d)", end, missing, attempt, tickerAttempts)
			records, _, err := r.Fetcher.Fetch(missing, NewRange(end, end))
			if err != nil {
				log.Printf("warning: price fetch error: %v", err)
				continue
			}
			r.appendPrices(records)
			missing = r.Prices.MissingOn(end, tickers)
		}
		if missing := r.Prices.MissingOn(end, tickers); len(missing) > 0 {
			log.Printf("warning: proceeding with partial price data for %s, still missing %v", end, missing)
		}
	} else if !r.fetchStep(tickers, window) {
		log.Printf("warning: price refresh failed, proceeding with existing data")
	}

	r.Prices.FillGaps()
}

// fetchWindow returns the range the next fetch should cover: from the day
// after the last cached price (or a bounded lookback on an empty cache)
// through the end date.
func (r *Recomputer) fetchWindow(end Date) Range {
	if last, ok := r.Prices.LastDate(); ok {
		return NewRange(last.Add(1), end)
	}
	return NewRange(NewDate(end.Year()-initialLookbackYears, end.Month(), end.Day()), end)
}

// fetchStep performs the whole fetch step with bounded retries, narrowing
// each retry to the tickers that failed. It reports whether every ticker was
// eventually fetched.
func (r *Recomputer) fetchStep(tickers []string, window Range) bool {
	remaining := tickers
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		if attempt > 1 {
			r.sleep(fetchBackoff)
			log.Printf("warning: retrying price fetch for %v (%d/%d)", remaining, attempt, fetchAttempts)
		}
		records, failed, err := r.Fetcher.Fetch(remaining, window)
		r.appendPrices(records)
		if err != nil {
			log.Printf("warning: price fetch error: %v", err)
			continue
		}
		if len(failed) == 0 {
			return true
		}
		remaining = failed
	}
	return false
}

func (r *Recomputer) appendPrices(records []PriceRecord) {
	for _, rec := range records {
		r.Prices.Append(rec.Ticker, rec.Date, rec.Price)
	}
}

// UpdatePrices performs the standalone incremental price-cache update used
// by the fetch command: it fetches every current ticker from the day after
// the last cached date through the closing date, then gap-fills the cache.
func (r *Recomputer) UpdatePrices() error {
	if r.Fetcher == nil {
		return fmt.Errorf("no market-data provider configured")
	}
	tickers := MergeTickers(r.Holdings.CurrentTickers(), r.Unvested.CurrentTickers())
	if len(tickers) == 0 {
		return fmt.Errorf("no tickers found in holdings or unvested snapshots")
	}
	end := r.ClosingDate()
	if last, ok := r.Prices.LastDate(); ok && !last.Before(end) {
		log.Printf("price cache is already up to date (%s)", end)
		return nil
	}
	if !r.fetchStep(tickers, r.fetchWindow(end)) {
		log.Printf("warning: some tickers could not be fetched after %d attempts", fetchAttempts)
	}
	r.Prices.FillGaps()
	return nil
}

// Backfill refetches the full history of a single ticker from the given
// date through the closing date, replacing any cached prices in that range.
func (r *Recomputer) Backfill(ticker string, from Date) error {
	if r.Fetcher == nil {
		return fmt.Errorf("no market-data provider configured")
	}
	window := NewRange(from, r.ClosingDate())
	r.Prices.RemoveRange(ticker, window)
	if !r.fetchStep([]string{ticker}, window) {
		return fmt.Errorf("could not fetch %s for %s..%s", ticker, window.From, window.To)
	}
	r.Prices.FillGaps()
	return nil
}
