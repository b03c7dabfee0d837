// Package renderer turns computed balance data into markdown reports.
package renderer

import "github.com/etnz/networth"

// usd wraps a raw balance value for currency-correct formatting. Balance
// files carry plain floats; reports are always in dollars.
func usd(v float64) networth.Money {
	return networth.M(v, "USD")
}
