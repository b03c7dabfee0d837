// Package yahoo fetches daily closing prices from the Yahoo Finance chart API.
package yahoo

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/networth"
	"github.com/shopspring/decimal"
)

// Client is a market-data provider backed by the public chart endpoint.
// It fetches tickers one at a time; per-ticker failures are collected and
// reported, never raised.
type Client struct {
	http *http.Client
}

// New returns a client with a daily-expiring disk cache, so repeated runs
// within a day do not hammer the vendor.
func New() *Client {
	return &Client{http: networth.NewDailyCachingClient()}
}

var _ networth.Fetcher = (*Client)(nil)

// Fetch implements networth.Fetcher.
func (c *Client) Fetch(tickers []string, window networth.Range) (records []networth.PriceRecord, failed []string, err error) {
	for _, ticker := range tickers {
		recs, err := c.fetchTicker(ticker, window)
		if err != nil {
			log.Printf("warning: fetching %s: %v", ticker, err)
			failed = append(failed, ticker)
			continue
		}
		if len(recs) == 0 {
			log.Printf("warning: no data for %s in %s..%s", ticker, window.From, window.To)
			failed = append(failed, ticker)
			continue
		}
		records = append(records, recs...)
	}
	return records, failed, nil
}

// fetchTicker queries the chart endpoint for one ticker.
func (c *Client) fetchTicker(ticker string, window networth.Range) ([]networth.PriceRecord, error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/AAPL?period1=...&period2=...&interval=1d
	// period2 is exclusive, so it points to the day after the window's end.
	period1 := unixMidnight(window.From)
	period2 := unixMidnight(window.To.Add(1))
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		ticker, period1, period2)

	var jobj any
	if err := networth.Jwget(c.http, addr, &jobj); err != nil {
		return nil, err
	}
	return parseChart(ticker, jobj, window)
}

// parseChart extracts the (timestamp, close) series from a chart payload.
//
// The payload nests the series deep under chart.result; jsonpath keeps the
// extraction short. Null closes (halted days) are skipped.
func parseChart(ticker string, jobj any, window networth.Range) ([]networth.PriceRecord, error) {
	jerr, _ := jsonpath.Get("$.chart.error.description", jobj)
	if desc, ok := jerr.(string); ok && desc != "" {
		return nil, fmt.Errorf("vendor error for %s: %s", ticker, desc)
	}

	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("no timestamps for %s: %w", ticker, err)
	}
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("no closes for %s: %w", ticker, err)
	}

	timestamps, ok1 := jts.([]any)
	closes, ok2 := jcloses.([]any)
	if !ok1 || !ok2 || len(timestamps) != len(closes) {
		return nil, fmt.Errorf("malformed chart payload for %s", ticker)
	}

	var records []networth.PriceRecord
	for i, jt := range timestamps {
		ts, ok := jt.(float64)
		if !ok {
			continue
		}
		price, ok := closes[i].(float64)
		if !ok || price <= 0 {
			continue // null close, halted or not-yet-closed day
		}
		day := networth.NewDate(time.Unix(int64(ts), 0).UTC().Date())
		if !window.Contains(day) {
			continue
		}
		records = append(records, networth.PriceRecord{
			Ticker: ticker,
			Date:   day,
			Price:  round4(price),
		})
	}
	return records, nil
}

// round4 rounds a close to 4 decimal places, the precision kept in the cache.
func round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}

func unixMidnight(d networth.Date) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Unix()
}
