package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	analyzer "github.com/adaljakadam/trade-analyzer"
)

// DailyMarkdown renders the per-day PnL buckets as a markdown table, one row
// per calendar day with realized activity.
func DailyMarkdown(m *analyzer.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily PnL")

	if len(m.Days) == 0 {
		doc.PlainText("No realized trades.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Weekday", "Trades", "PnL"},
	}
	for _, day := range m.Days {
		table.Rows = append(table.Rows, []string{
			day.Date.String(),
			day.Date.Weekday().String(),
			fmt.Sprintf("%d", day.TradeCount),
			day.PnL.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
