package networth

import (
	"testing"
	"time"
)

// densePrices builds a series holding one constant price per day of a window.
func densePrices(ticker string, window Range, price float64) *PriceSeries {
	p := NewPriceSeries()
	for day := range window.Days() {
		p.Append(ticker, day, price)
	}
	return p
}

func TestComputeValuationsMarketPriced(t *testing.T) {
	jan := NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31))
	feb := NewRange(NewDate(2024, time.February, 1), NewDate(2024, time.February, 29))

	holdings := Holdings{
		{Account: "Brokerage", Ticker: "AAPL", Date: NewDate(2024, time.January, 1), Shares: 10},
		{Account: "Brokerage", Ticker: "AAPL", Date: NewDate(2024, time.February, 1), Shares: 20},
	}
	prices := densePrices("AAPL", jan, 100)
	for day := range feb.Days() {
		prices.Append("AAPL", day, 150)
	}

	window := NewRange(jan.From, feb.To)
	records := ComputeValuations(holdings, nil, prices, AllAccounts, window)

	// 31 january days at 10x100 plus 29 leap-february days at 20x150.
	if len(records) != 31+29 {
		t.Fatalf("got %d records, want 60", len(records))
	}
	for _, rec := range records {
		want := 1000.0
		if rec.Date.Month() == time.February {
			want = 3000.0
		}
		if rec.Value != want {
			t.Errorf("%s value = %v, want %v", rec.Date, rec.Value, want)
		}
	}
}

func TestComputeValuationsCashAndFund(t *testing.T) {
	on := NewDate(2024, time.January, 15)
	window := NewRange(on, on)
	holdings := Holdings{
		{Account: "Checking", Ticker: "Cash", Date: NewDate(2024, time.January, 1), Shares: 5000},
		{Account: "401k", Ticker: "Fund: Total Market", Date: NewDate(2024, time.January, 1), Shares: 20000},
	}

	// No price series needed: these rows are never market priced.
	records := ComputeValuations(holdings, nil, NewPriceSeries(), AllAccounts, window)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Price != 1.0 {
			t.Errorf("%s price = %v, want 1.0", rec.Ticker, rec.Price)
		}
		if rec.Value != rec.Shares {
			t.Errorf("%s value = %v, want shares %v", rec.Ticker, rec.Value, rec.Shares)
		}
	}
}

func TestComputeValuationsUnvested(t *testing.T) {
	on := NewDate(2024, time.January, 15)
	window := NewRange(on, on)
	unvested := Unvested{
		{Ticker: "GOOG", Date: NewDate(2024, time.January, 1), Shares: 1000},
	}
	prices := densePrices("GOOG", window, 1.0)

	records := ComputeValuations(nil, unvested, prices, AllAccounts, window)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Account != UnvestedAccount {
		t.Errorf("account = %q, want %q", rec.Account, UnvestedAccount)
	}
	// 1000 shares at 1.0 gross, net of the flat 30% haircut: exactly 700.
	if rec.Value != 700.0 {
		t.Errorf("value = %v, want exactly 700.0", rec.Value)
	}
}

func TestComputeValuationsMissingPrice(t *testing.T) {
	window := NewRange(NewDate(2024, time.January, 15), NewDate(2024, time.January, 16))
	holdings := Holdings{
		{Account: "Brokerage", Ticker: "GOOG", Date: NewDate(2024, time.January, 1), Shares: 10},
	}
	prices := NewPriceSeries()
	prices.Append("GOOG", NewDate(2024, time.January, 15), 100)
	// No price on the 16th: that day emits nothing rather than failing.

	records := ComputeValuations(holdings, nil, prices, AllAccounts, window)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Date != NewDate(2024, time.January, 15) {
		t.Errorf("record date = %s, want the priced day", records[0].Date)
	}
}

func TestComputeValuationsScopes(t *testing.T) {
	on := NewDate(2024, time.January, 15)
	window := NewRange(on, on)
	holdings := Holdings{
		{Account: "Brokerage", Ticker: "GOOG", Date: NewDate(2024, time.January, 1), Shares: 10},
		{Account: "IRA", Ticker: "GOOG", Date: NewDate(2024, time.January, 1), Shares: 5},
	}
	unvested := Unvested{
		{Ticker: "GOOG", Date: NewDate(2024, time.January, 1), Shares: 100},
	}
	prices := densePrices("GOOG", window, 100)

	all := ComputeValuations(holdings, unvested, prices, AllAccounts, window)
	if len(all) != 3 {
		t.Errorf("all accounts: got %d records, want 3", len(all))
	}

	one := ComputeValuations(holdings, unvested, prices, Scope("Brokerage"), window)
	if len(one) != 1 || one[0].Account != "Brokerage" {
		t.Errorf("single account scope leaked: %v", one)
	}

	uv := ComputeValuations(holdings, unvested, prices, UnvestedAccount, window)
	if len(uv) != 1 || uv[0].Account != UnvestedAccount {
		t.Errorf("unvested scope leaked: %v", uv)
	}
}

func TestComputeValuationsZeroShares(t *testing.T) {
	on := NewDate(2024, time.February, 15)
	window := NewRange(on, on)
	holdings := Holdings{
		// January snapshot only: february resolves to zero shares.
		{Account: "Brokerage", Ticker: "GOOG", Date: NewDate(2024, time.January, 1), Shares: 10},
	}
	prices := densePrices("GOOG", window, 100)

	records := ComputeValuations(holdings, nil, prices, AllAccounts, window)
	if len(records) != 0 {
		t.Errorf("got %d records for a zero-share month, want 0", len(records))
	}
}
