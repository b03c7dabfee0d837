package networth

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// This file persists the datasets as plain JSON array files, the format the
// snapshot files are supplied in.
//
// Snapshot files are externally edited, so they are decoded leniently: a
// record with an unparseable date is skipped with a warning, and a missing
// file is an empty dataset, not an error. The price cache and the balance
// file are written by this tool and are decoded strictly.

// jsnapshot is the raw shape of one snapshot record, holding or unvested.
// The date is kept as a string to tolerate free-form values (M/D/YY or ISO).
type jsnapshot struct {
	Account string  `json:"account,omitempty"`
	Ticker  string  `json:"ticker"`
	Date    string  `json:"date"`
	Shares  float64 `json:"shares"`
}

// readArray reads a whole JSON array file into v. A missing file yields an
// empty dataset with a warning.
func readArray(filename string, v any) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("warning: %s not found, using empty dataset", filename)
			return nil
		}
		return fmt.Errorf("load error: cannot read %q: %w", filename, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("parse error in %q: %w", filename, err)
	}
	return nil
}

// DecodeHoldings reads the holding snapshot file.
func DecodeHoldings(filename string) (Holdings, error) {
	var raw []jsnapshot
	if err := readArray(filename, &raw); err != nil {
		return nil, err
	}
	holdings := make(Holdings, 0, len(raw))
	for _, js := range raw {
		on, err := ParseDate(js.Date)
		if err != nil {
			log.Printf("warning: skipping snapshot %s/%s in %q: %v", js.Account, js.Ticker, filename, err)
			continue
		}
		holdings = append(holdings, HoldingSnapshot{Account: js.Account, Ticker: js.Ticker, Date: on, Shares: js.Shares})
	}
	return holdings, nil
}

// DecodeUnvested reads the unvested snapshot file.
func DecodeUnvested(filename string) (Unvested, error) {
	var raw []jsnapshot
	if err := readArray(filename, &raw); err != nil {
		return nil, err
	}
	unvested := make(Unvested, 0, len(raw))
	for _, js := range raw {
		on, err := ParseDate(js.Date)
		if err != nil {
			log.Printf("warning: skipping unvested snapshot %s in %q: %v", js.Ticker, filename, err)
			continue
		}
		unvested = append(unvested, UnvestedSnapshot{Ticker: js.Ticker, Date: on, Shares: js.Shares})
	}
	return unvested, nil
}

// DecodePrices reads the price cache file.
func DecodePrices(filename string) (*PriceSeries, error) {
	var records []PriceRecord
	if err := readArray(filename, &records); err != nil {
		return nil, err
	}
	return NewPriceSeriesOf(records), nil
}

// DecodeBalances reads the persisted daily balance file.
func DecodeBalances(filename string) (*BalanceBook, error) {
	var records []DailyBalanceRecord
	if err := readArray(filename, &records); err != nil {
		return nil, err
	}
	return NewBalanceBook(records...), nil
}

// EncodePrices rewrites the price cache file, sorted by (ticker, date).
func EncodePrices(filename string, p *PriceSeries) error {
	return writeArray(filename, p.Records())
}

// EncodeBalances rewrites the whole balance file, sorted by
// (date, account, ticker).
func EncodeBalances(filename string, b *BalanceBook) error {
	return writeArray(filename, b.Records())
}

// writeArray persists v as an indented JSON array, atomically: the content
// goes to a temp file in the same directory which is then renamed over the
// target, so a crash mid-write leaves the previous file intact.
func writeArray(filename string, v any) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal %q: %w", filename, err)
	}
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create temp file for %q: %w", filename, err)
	}
	if _, err := tmp.Write(append(content, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist error: cannot close %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("persist error: cannot replace %q: %w", filename, err)
	}
	return nil
}
