package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/networth"
)

func TestSummaryMarkdown(t *testing.T) {
	on := networth.NewDate(2024, 1, 31)
	accounts := []networth.AccountValue{
		{Account: "Brokerage", Value: 1234.5},
		{Account: "Unvested RSU", Value: 700},
	}
	out := SummaryMarkdown(on, accounts, 1934.5)

	if !strings.Contains(out, "Balances on 2024-01-31") {
		t.Errorf("missing title in:\n%s", out)
	}
	if !strings.Contains(out, "Brokerage") || !strings.Contains(out, "$1,234.50") {
		t.Errorf("missing account row in:\n%s", out)
	}
	if !strings.Contains(out, "$1,934.50") {
		t.Errorf("missing total in:\n%s", out)
	}
}

func TestDailyMarkdown(t *testing.T) {
	on := networth.NewDate(2024, 1, 31)
	records := []networth.DailyBalanceRecord{
		{Date: on, Account: "Brokerage", Ticker: "GOOG", Shares: 10, Price: 140.25, Value: 1402.5},
		{Date: networth.NewDate(2024, 1, 30), Account: "Brokerage", Ticker: "GOOG", Shares: 10, Price: 139, Value: 1390},
	}
	out := DailyMarkdown(on, records)

	if !strings.Contains(out, "GOOG") || !strings.Contains(out, "$1,402.50") {
		t.Errorf("missing position row in:\n%s", out)
	}
	if strings.Contains(out, "1,390") {
		t.Errorf("other-day record leaked into:\n%s", out)
	}
}
