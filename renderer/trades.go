package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	analyzer "github.com/adaljakadam/trade-analyzer"
)

// TradesMarkdown renders the realized-trade sequence as a markdown table.
func TradesMarkdown(trades []analyzer.RealizedTrade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Realized Trades")

	if len(trades) == 0 {
		doc.PlainText("No realized trades.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Time", "Symbol", "Qty", "Open", "Close", "PnL", "Type"},
	}
	for _, t := range trades {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Time.Format("2006-01-02 15:04:05"),
			t.Symbol,
			t.Quantity.String(),
			t.Open.String(),
			t.Close.String(),
			t.PnL.SignedString(),
			t.Type.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
