package networth

import "sort"

// PriceRecord is one daily closing price for a ticker, either observed from
// the market-data provider or synthesized by the gap filler.
type PriceRecord struct {
	Ticker string  `json:"ticker"`
	Date   Date    `json:"date"`
	Price  float64 `json:"price"`
}

// PriceSeries holds a daily closing price history per ticker.
//
// A freshly decoded or fetched series is sparse (trading days only); after
// FillGaps it is dense, with exactly one price per calendar day between the
// first and last observation of each ticker.
type PriceSeries struct {
	histories map[string]*History[float64]
}

// NewPriceSeries returns a new empty price series.
func NewPriceSeries() *PriceSeries {
	return &PriceSeries{histories: make(map[string]*History[float64])}
}

// NewPriceSeriesOf builds a price series from a flat list of records.
func NewPriceSeriesOf(records []PriceRecord) *PriceSeries {
	p := NewPriceSeries()
	for _, rec := range records {
		p.Append(rec.Ticker, rec.Date, rec.Price)
	}
	return p
}

// Append records the price of a ticker on a given day, overwriting any
// previous value for that day.
func (p *PriceSeries) Append(ticker string, on Date, price float64) {
	h, ok := p.histories[ticker]
	if !ok {
		h = new(History[float64])
		p.histories[ticker] = h
	}
	h.Append(on, price)
}

// Get returns the price of a ticker on a given day.
func (p *PriceSeries) Get(ticker string, on Date) (float64, bool) {
	h, ok := p.histories[ticker]
	if !ok {
		return 0, false
	}
	return h.Get(on)
}

// Has reports whether the series knows the ticker at all.
func (p *PriceSeries) Has(ticker string) bool {
	h, ok := p.histories[ticker]
	return ok && h.Len() > 0
}

// Tickers returns the sorted set of tickers in the series.
func (p *PriceSeries) Tickers() []string {
	keys := make([]string, 0, len(p.histories))
	for t, h := range p.histories {
		if h.Len() > 0 {
			keys = append(keys, t)
		}
	}
	sort.Strings(keys)
	return keys
}

// LastDate returns the latest date present for any ticker, and false if the
// series is empty.
func (p *PriceSeries) LastDate() (Date, bool) {
	var last Date
	var found bool
	for _, h := range p.histories {
		if day, _ := h.Latest(); !day.IsZero() && (last.IsZero() || day.After(last)) {
			last, found = day, true
		}
	}
	return last, found
}

// MissingOn returns the subset of tickers that have no price on the given day.
func (p *PriceSeries) MissingOn(on Date, tickers []string) []string {
	var missing []string
	for _, t := range tickers {
		if _, ok := p.Get(t, on); !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// FillGaps makes every ticker's history dense: each calendar day between the
// ticker's first and last observation carries a price, missing days getting
// the last known price forward-filled. Days before the first observation are
// never synthesized, and observed values are never altered, so filling an
// already dense series is a no-op.
func (p *PriceSeries) FillGaps() {
	for _, h := range p.histories {
		if h.Len() == 0 {
			continue
		}
		first, last := firstLast(h)
		_, price := h.First()
		for day := first; !day.After(last); day = day.Add(1) {
			if observed, ok := h.Get(day); ok {
				price = observed
				continue
			}
			h.Append(day, price)
		}
	}
}

func firstLast(h *History[float64]) (first, last Date) {
	first, _ = h.First()
	last, _ = h.Latest()
	return first, last
}

// RemoveRange drops every price of the given ticker within the range.
// Used by the single-ticker backfill before refetching.
func (p *PriceSeries) RemoveRange(ticker string, r Range) {
	h, ok := p.histories[ticker]
	if !ok {
		return
	}
	kept := new(History[float64])
	for day, price := range h.Values() {
		if r.Contains(day) {
			continue
		}
		kept.Append(day, price)
	}
	p.histories[ticker] = kept
}

// Records flattens the series into a list sorted by (ticker, date).
func (p *PriceSeries) Records() []PriceRecord {
	var records []PriceRecord
	for _, ticker := range p.Tickers() {
		for day, price := range p.histories[ticker].Values() {
			records = append(records, PriceRecord{Ticker: ticker, Date: day, Price: price})
		}
	}
	return records
}
