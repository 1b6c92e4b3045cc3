// Package renderer turns analysis results into markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	analyzer "github.com/adaljakadam/trade-analyzer"
)

// SummaryMarkdown renders the full metrics report to a markdown string.
func SummaryMarkdown(m *analyzer.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Performance Summary")

	if m.TotalTrades == 0 {
		doc.PlainText("No realized trades.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Net PnL"), md.Bold(m.NetPnL.SignedString())},
		Rows: [][]string{
			{"Trades", fmt.Sprintf("%d", m.TotalTrades)},
			{"Wins / Losses", fmt.Sprintf("%d / %d", m.Wins, m.Losses)},
			{"Win Rate", m.WinRate.String()},
			{"Gross Profit", m.GrossProfit.String()},
			{"Gross Loss", m.GrossLoss.String()},
			{"Profit Factor", m.ProfitFactor.StringFixed(2)},
			{"Max Drawdown", m.MaxDrawdown.String()},
			{"Best Trade", m.BestTrade.SignedString()},
			{"Worst Trade", m.WorstTrade.SignedString()},
		},
	})

	doc.H2("Daily Performance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Trading Days"), md.Bold(fmt.Sprintf("%d", len(m.Days)))},
		Rows: [][]string{
			{"Green / Red Days", fmt.Sprintf("%d / %d", m.GreenDays, m.RedDays)},
			{"Day Win Rate", m.DayWinRate.String()},
			{"Avg Green Day", m.AvgGreenPnL.SignedString()},
			{"Avg Red Day", m.AvgRedPnL.SignedString()},
			{"Avg Trades / Day", m.AvgTradesPerDay.StringFixed(1)},
		},
	})

	return doc.String()
}
