package networth

import (
	"testing"
	"time"
)

func rec(on Date, account, ticker string, value float64) DailyBalanceRecord {
	return DailyBalanceRecord{Date: on, Account: account, Ticker: ticker, Shares: 1, Price: value, Value: value}
}

func TestBalanceBookAppendOverwrites(t *testing.T) {
	on := NewDate(2024, time.January, 15)
	b := NewBalanceBook(rec(on, "Brokerage", "GOOG", 100))
	b.Append(rec(on, "Brokerage", "GOOG", 120))

	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1 (same key overwrites)", b.Len())
	}
	if got := b.Records()[0].Value; got != 120 {
		t.Errorf("value = %v, want the later record's 120", got)
	}
}

func TestBalanceBookMergeIdempotent(t *testing.T) {
	window := NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31))
	records := []DailyBalanceRecord{
		rec(NewDate(2024, time.January, 10), "Brokerage", "GOOG", 100),
		rec(NewDate(2024, time.January, 11), "Brokerage", "GOOG", 110),
	}

	b := NewBalanceBook()
	b.Merge(window, "", records)
	first := b.Records()

	b.Merge(window, "", records)
	second := b.Records()

	if len(first) != len(second) {
		t.Fatalf("re-merge changed record count: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d changed on re-merge: %v -> %v", i, first[i], second[i])
		}
	}
}

func TestBalanceBookMergeScopedToAccount(t *testing.T) {
	jan10 := NewDate(2024, time.January, 10)
	window := NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31))

	b := NewBalanceBook(
		rec(jan10, "Brokerage", "GOOG", 100),
		rec(jan10, "IRA", "GOOG", 50),
	)

	// Recomputing only Brokerage must leave IRA's records untouched even
	// though they fall inside the window.
	b.Merge(window, "Brokerage", []DailyBalanceRecord{rec(jan10, "Brokerage", "GOOG", 130)})

	byAccount := make(map[string]float64)
	for _, r := range b.Records() {
		byAccount[r.Account] = r.Value
	}
	if byAccount["Brokerage"] != 130 {
		t.Errorf("Brokerage = %v, want recomputed 130", byAccount["Brokerage"])
	}
	if byAccount["IRA"] != 50 {
		t.Errorf("IRA = %v, want untouched 50", byAccount["IRA"])
	}
}

func TestBalanceBookMergeDropsStaleRecords(t *testing.T) {
	window := NewRange(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31))
	b := NewBalanceBook(
		// A position that no longer resolves after a snapshot correction.
		rec(NewDate(2024, time.January, 10), "Brokerage", "AAPL", 40),
		// A record outside the window.
		rec(NewDate(2023, time.December, 20), "Brokerage", "AAPL", 35),
	)

	b.Merge(window, "", []DailyBalanceRecord{rec(NewDate(2024, time.January, 10), "Brokerage", "GOOG", 100)})

	for _, r := range b.Records() {
		if r.Ticker == "AAPL" && window.Contains(r.Date) {
			t.Errorf("stale in-window record survived the merge: %v", r)
		}
	}
	if !b.HasDate(NewDate(2023, time.December, 20)) {
		t.Error("record outside the window was dropped")
	}
}

func TestSummaryOn(t *testing.T) {
	on := NewDate(2024, time.January, 10)
	b := NewBalanceBook(
		rec(on, "Brokerage", "GOOG", 100),
		rec(on, "Brokerage", "Cash", 50),
		rec(on, "IRA", "GOOG", 25),
		rec(NewDate(2024, time.January, 9), "IRA", "GOOG", 999),
	)

	accounts, total := b.SummaryOn(on)
	if total != 175 {
		t.Errorf("total = %v, want 175", total)
	}
	if len(accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(accounts))
	}
	if accounts[0].Account != "Brokerage" || accounts[0].Value != 150 {
		t.Errorf("accounts[0] = %+v, want Brokerage 150", accounts[0])
	}
	if accounts[1].Account != "IRA" || accounts[1].Value != 25 {
		t.Errorf("accounts[1] = %+v, want IRA 25", accounts[1])
	}
}

func TestLastDate(t *testing.T) {
	b := NewBalanceBook()
	if _, ok := b.LastDate(); ok {
		t.Error("empty book should have no last date")
	}
	b.Append(rec(NewDate(2024, time.January, 10), "Brokerage", "GOOG", 100))
	b.Append(rec(NewDate(2024, time.January, 12), "Brokerage", "GOOG", 110))
	if last, ok := b.LastDate(); !ok || last != NewDate(2024, time.January, 12) {
		t.Errorf("LastDate = %v %v, want 2024-01-12", last, ok)
	}
}
