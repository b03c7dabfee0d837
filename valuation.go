package networth

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CashTicker is the ticker of cash rows: their shares field already denotes
// a dollar value.
const CashTicker = "Cash"

// FundPrefix marks fund rows ("Fund: Total Bond Market", ...), which carry
// dollar values like cash rows do.
const FundPrefix = "Fund: "

// unvestedNetFactor is the fraction of gross value retained after the flat
// 30% tax haircut applied to unvested grants.
var unvestedNetFactor = decimal.New(7, -1)

// MarketPriced reports whether a ticker is valued from the market price
// series. Cash and fund rows are priced at a fixed 1.0 instead.
func MarketPriced(ticker string) bool {
	return ticker != CashTicker && !strings.HasPrefix(ticker, FundPrefix)
}

// Scope selects which accounts a valuation run covers: AllAccounts, or a
// single named account, including the synthetic UnvestedAccount.
type Scope string

// AllAccounts is the scope covering every account plus unvested grants.
const AllAccounts Scope = ""

// ComputeValuations produces one DailyBalanceRecord per day in the window
// and per (account, ticker) position in scope that resolves to a non-zero
// share count.
//
// Zero-share days emit nothing. Market-priced tickers with no usable price
// on a day emit nothing either: missing price data suppresses output rather
// than failing the run. The function has no side effects and persists
// nothing.
func ComputeValuations(holdings Holdings, unvested Unvested, prices *PriceSeries, scope Scope, window Range) []DailyBalanceRecord {
	var records []DailyBalanceRecord

	switch scope {
	case AllAccounts:
		accounts := holdings.Accounts()
		tickers := holdings.Tickers()
		unvestedTickers := unvested.Tickers()
		for day := range window.Days() {
			for _, account := range accounts {
				for _, ticker := range tickers {
					if rec, ok := holdingValuation(holdings, prices, account, ticker, day); ok {
						records = append(records, rec)
					}
				}
			}
			for _, ticker := range unvestedTickers {
				if rec, ok := unvestedValuation(unvested, prices, ticker, day); ok {
					records = append(records, rec)
				}
			}
		}
	case UnvestedAccount:
		tickers := unvested.Tickers()
		for day := range window.Days() {
			for _, ticker := range tickers {
				if rec, ok := unvestedValuation(unvested, prices, ticker, day); ok {
					records = append(records, rec)
				}
			}
		}
	default:
		account := string(scope)
		tickers := holdings.AccountTickers(account)
		for day := range window.Days() {
			for _, ticker := range tickers {
				if rec, ok := holdingValuation(holdings, prices, account, ticker, day); ok {
					records = append(records, rec)
				}
			}
		}
	}
	return records
}

// holdingValuation values one (account, ticker) position on one day.
func holdingValuation(holdings Holdings, prices *PriceSeries, account, ticker string, on Date) (DailyBalanceRecord, bool) {
	shares := holdings.Shares(account, ticker, on)
	if shares == 0 {
		return DailyBalanceRecord{}, false
	}

	if !MarketPriced(ticker) {
		// Cash and fund rows: shares already denote the dollar value.
		return DailyBalanceRecord{
			Date:    on,
			Account: account,
			Ticker:  ticker,
			Shares:  shares,
			Price:   1.0,
			Value:   shares,
		}, true
	}

	price, ok := prices.Get(ticker, on)
	if !ok || price <= 0 {
		return DailyBalanceRecord{}, false
	}
	value, _ := decimal.NewFromFloat(shares).Mul(decimal.NewFromFloat(price)).Float64()
	return DailyBalanceRecord{
		Date:    on,
		Account: account,
		Ticker:  ticker,
		Shares:  shares,
		Price:   price,
		Value:   value,
	}, true
}

// unvestedValuation values the unvested grant of one ticker on one day,
// net of the flat 30% tax haircut.
func unvestedValuation(unvested Unvested, prices *PriceSeries, ticker string, on Date) (DailyBalanceRecord, bool) {
	shares := unvested.Shares(ticker, on)
	if shares == 0 {
		return DailyBalanceRecord{}, false
	}
	price, ok := prices.Get(ticker, on)
	if !ok || price <= 0 {
		return DailyBalanceRecord{}, false
	}
	gross := decimal.NewFromFloat(shares).Mul(decimal.NewFromFloat(price))
	value, _ := gross.Mul(unvestedNetFactor).Float64()
	return DailyBalanceRecord{
		Date:    on,
		Account: UnvestedAccount,
		Ticker:  ticker,
		Shares:  shares,
		Price:   price,
		Value:   value,
	}, true
}
