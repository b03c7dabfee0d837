package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders the position-level detail of a single day.
func DailyMarkdown(on networth.Date, records []networth.DailyBalanceRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Positions on %s", on))

	var rows [][]string
	var total float64
	for _, rec := range records {
		if rec.Date != on {
			continue
		}
		rows = append(rows, []string{
			rec.Account,
			rec.Ticker,
			fmt.Sprintf("%g", rec.Shares),
			fmt.Sprintf("%.4f", rec.Price),
			usd(rec.Value).String(),
		})
		total += rec.Value
	}
	rows = append(rows, []string{"**Total**", "", "", "", usd(total).String()})

	doc.Table(md.TableSet{
		Header: []string{"Account", "Ticker", "Shares", "Price", "Value"},
		Rows:   rows,
	})

	return doc.String()
}
