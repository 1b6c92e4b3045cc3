package analyzer

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adaljakadam/trade-analyzer/date"
)

// EquityPoint is the running cumulative PnL immediately after one trade.
type EquityPoint struct {
	Time   time.Time
	Equity Money
}

// DailyStat aggregates the realized trades of one calendar day.
type DailyStat struct {
	Date       date.Date
	PnL        Money
	TradeCount int
}

// Metrics is a pure derived aggregate over a full realized-trade sequence.
// It holds no independent state and is rebuilt from scratch on every run.
type Metrics struct {
	TotalTrades int
	Wins        int
	Losses      int // zero-PnL trades count as losses, not washes
	WinRate     Percent

	GrossProfit Money // sum of positive PnLs
	GrossLoss   Money // sum of absolute negative PnLs
	NetPnL      Money
	// ProfitFactor is GrossProfit/GrossLoss; when GrossLoss is zero it is
	// GrossProfit itself, by convention, never a division error.
	ProfitFactor decimal.Decimal

	Equity      []EquityPoint // one point per trade, in trade order
	MaxDrawdown Money         // max(peak - equity) over the curve, never negative

	BestTrade  Money // zero value when TotalTrades == 0; callers must guard
	WorstTrade Money

	Days        []DailyStat // sorted by date ascending
	GreenDays   int
	RedDays     int
	AvgGreenPnL Money
	AvgRedPnL   Money
	DayWinRate  Percent
	// AvgTradesPerDay is TotalTrades over distinct trading days, zero when
	// there are no days.
	AvgTradesPerDay decimal.Decimal
}

// ComputeMetrics builds the full metrics aggregate in one linear pass over
// trades, which must already be in chronological (realization) order.
func ComputeMetrics(trades []RealizedTrade) *Metrics {
	m := &Metrics{TotalTrades: len(trades)}

	var equity, peak, drawdown Money
	days := make(map[date.Date]*DailyStat)

	for i, t := range trades {
		if t.PnL.IsPositive() {
			m.Wins++
			m.GrossProfit = m.GrossProfit.Add(t.PnL)
		} else {
			m.Losses++
			m.GrossLoss = m.GrossLoss.Add(t.PnL.Neg())
		}
		m.NetPnL = m.NetPnL.Add(t.PnL)

		equity = equity.Add(t.PnL)
		if equity.GreaterThan(peak) {
			peak = equity
		}
		if gap := peak.Sub(equity); gap.GreaterThan(drawdown) {
			drawdown = gap
		}
		m.Equity = append(m.Equity, EquityPoint{Time: t.Time, Equity: equity})

		if i == 0 || t.PnL.GreaterThan(m.BestTrade) {
			m.BestTrade = t.PnL
		}
		if i == 0 || t.PnL.LessThan(m.WorstTrade) {
			m.WorstTrade = t.PnL
		}

		day := date.FromTime(t.Time)
		stat, ok := days[day]
		if !ok {
			stat = &DailyStat{Date: day}
			days[day] = stat
		}
		stat.PnL = stat.PnL.Add(t.PnL)
		stat.TradeCount++
	}
	m.MaxDrawdown = drawdown

	if m.TotalTrades > 0 {
		m.WinRate = Percent(100 * float64(m.Wins) / float64(m.TotalTrades))
	}

	if m.GrossLoss.IsZero() {
		m.ProfitFactor = m.GrossProfit.Amount()
	} else {
		m.ProfitFactor = m.GrossProfit.Amount().Div(m.GrossLoss.Amount())
	}

	m.Days = make([]DailyStat, 0, len(days))
	for _, stat := range days {
		m.Days = append(m.Days, *stat)
	}
	slices.SortFunc(m.Days, func(a, b DailyStat) int { return a.Date.Compare(b.Date) })

	var greenTotal, redTotal Money
	for _, day := range m.Days {
		if day.PnL.IsPositive() {
			m.GreenDays++
			greenTotal = greenTotal.Add(day.PnL)
		} else {
			m.RedDays++
			redTotal = redTotal.Add(day.PnL)
		}
	}
	if m.GreenDays > 0 {
		m.AvgGreenPnL = greenTotal.Div(Q(m.GreenDays))
	}
	if m.RedDays > 0 {
		m.AvgRedPnL = redTotal.Div(Q(m.RedDays))
	}
	if len(m.Days) > 0 {
		m.DayWinRate = Percent(100 * float64(m.GreenDays) / float64(len(m.Days)))
		m.AvgTradesPerDay = newDecimal(m.TotalTrades).Div(newDecimal(len(m.Days)))
	}
	return m
}
