package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/networth"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the per-account totals of a single day.
func SummaryMarkdown(on networth.Date, accounts []networth.AccountValue, total float64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balances on %s", on))

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.Account, usd(a.Value).String()})
	}
	rows = append(rows, []string{"**Total**", usd(total).String()})

	doc.Table(md.TableSet{
		Header: []string{"Account", "Value"},
		Rows:   rows,
	})

	return doc.String()
}
