package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
)

// trade builds a realized trade with only the fields the aggregator reads.
func trade(pnl float64, ts string) RealizedTrade {
	return RealizedTrade{PnL: M(pnl, ""), Time: at(ts), Quantity: Q(1)}
}

func TestComputeMetrics_WinLossCounts(t *testing.T) {
	m := ComputeMetrics([]RealizedTrade{
		trade(100, "2024-01-15T10:00:00"),
		trade(-40, "2024-01-15T11:00:00"),
		trade(0, "2024-01-15T12:00:00"), // zero PnL counts as a loss
		trade(60, "2024-01-16T10:00:00"),
	})

	if m.TotalTrades != 4 || m.Wins != 2 || m.Losses != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/2/2", m.TotalTrades, m.Wins, m.Losses)
	}
	if !m.WinRate.Equal(Percent(50)) {
		t.Errorf("WinRate = %s, want 50%%", m.WinRate)
	}
	if !m.GrossProfit.Equal(M(160, "")) {
		t.Errorf("GrossProfit = %s, want 160", m.GrossProfit.Amount())
	}
	if !m.GrossLoss.Equal(M(40, "")) {
		t.Errorf("GrossLoss = %s, want 40", m.GrossLoss.Amount())
	}
	if !m.NetPnL.Equal(M(120, "")) {
		t.Errorf("NetPnL = %s, want 120", m.NetPnL.Amount())
	}
}

func TestComputeMetrics_ProfitFactor(t *testing.T) {
	// Normal case: grossProfit / grossLoss.
	m := ComputeMetrics([]RealizedTrade{
		trade(300, "2024-01-15T10:00:00"),
		trade(-100, "2024-01-15T11:00:00"),
	})
	if !m.ProfitFactor.Equal(decimal.NewFromInt(3)) {
		t.Errorf("ProfitFactor = %s, want 3", m.ProfitFactor)
	}

	// Zero gross loss: profit factor equals gross profit, not infinity.
	m = ComputeMetrics([]RealizedTrade{
		trade(250, "2024-01-15T10:00:00"),
	})
	if !m.ProfitFactor.Equal(decimal.NewFromInt(250)) {
		t.Errorf("ProfitFactor = %s, want 250 when gross loss is zero", m.ProfitFactor)
	}
}

func TestComputeMetrics_EquityCurveAndDrawdown(t *testing.T) {
	m := ComputeMetrics([]RealizedTrade{
		trade(100, "2024-01-15T10:00:00"), // equity 100, peak 100
		trade(-150, "2024-01-15T11:00:00"), // equity -50, drawdown 150
		trade(30, "2024-01-15T12:00:00"),  // equity -20, drawdown stays 150
		trade(200, "2024-01-16T10:00:00"), // equity 180, new peak
		trade(-60, "2024-01-16T11:00:00"), // equity 120, gap 60 < 150
	})

	if len(m.Equity) != m.TotalTrades {
		t.Fatalf("equity curve length = %d, want %d", len(m.Equity), m.TotalTrades)
	}
	wantEquity := []float64{100, -50, -20, 180, 120}
	for i, want := range wantEquity {
		if !m.Equity[i].Equity.Equal(M(want, "")) {
			t.Errorf("Equity[%d] = %s, want %v", i, m.Equity[i].Equity.Amount(), want)
		}
	}
	if !m.MaxDrawdown.Equal(M(150, "")) {
		t.Errorf("MaxDrawdown = %s, want 150", m.MaxDrawdown.Amount())
	}
}

func TestComputeMetrics_DrawdownMonotone(t *testing.T) {
	trades := []RealizedTrade{
		trade(50, "2024-01-15T10:00:00"),
		trade(-80, "2024-01-15T11:00:00"),
		trade(200, "2024-01-15T12:00:00"),
		trade(-30, "2024-01-15T13:00:00"),
		trade(-90, "2024-01-15T14:00:00"),
	}

	prev := M(0, "")
	for n := 1; n <= len(trades); n++ {
		dd := ComputeMetrics(trades[:n]).MaxDrawdown
		if dd.LessThan(prev) {
			t.Fatalf("drawdown decreased after trade %d: %s < %s", n, dd.Amount(), prev.Amount())
		}
		prev = dd
	}
}

func TestComputeMetrics_DailyBuckets(t *testing.T) {
	m := ComputeMetrics([]RealizedTrade{
		trade(100, "2024-01-15T09:30:00"),
		trade(50, "2024-01-15T15:10:00"), // same calendar day, different hour
		trade(-70, "2024-01-16T10:00:00"),
		trade(20, "2024-01-18T10:00:00"),
	})

	if len(m.Days) != 3 {
		t.Fatalf("Days = %d, want 3", len(m.Days))
	}
	first := m.Days[0]
	if first.Date.String() != "2024-01-15" || first.TradeCount != 2 || !first.PnL.Equal(M(150, "")) {
		t.Errorf("Days[0] = %+v, want 2024-01-15 / 2 trades / 150", first)
	}

	if m.GreenDays != 2 || m.RedDays != 1 {
		t.Errorf("green/red = %d/%d, want 2/1", m.GreenDays, m.RedDays)
	}
	if !m.AvgGreenPnL.Equal(M(85, "")) { // (150+20)/2
		t.Errorf("AvgGreenPnL = %s, want 85", m.AvgGreenPnL.Amount())
	}
	if !m.AvgRedPnL.Equal(M(-70, "")) {
		t.Errorf("AvgRedPnL = %s, want -70", m.AvgRedPnL.Amount())
	}
	if !m.DayWinRate.Equal(Percent(100 * 2.0 / 3.0)) {
		t.Errorf("DayWinRate = %s", m.DayWinRate)
	}

	want := decimal.NewFromInt(4).Div(decimal.NewFromInt(3))
	if !m.AvgTradesPerDay.Equal(want) {
		t.Errorf("AvgTradesPerDay = %s, want %s", m.AvgTradesPerDay, want)
	}
}

func TestComputeMetrics_Extremes(t *testing.T) {
	m := ComputeMetrics([]RealizedTrade{
		trade(-500, "2024-01-15T10:00:00"),
		trade(900, "2024-01-15T11:00:00"),
		trade(10, "2024-01-15T12:00:00"),
	})
	if !m.BestTrade.Equal(M(900, "")) {
		t.Errorf("BestTrade = %s, want 900", m.BestTrade.Amount())
	}
	if !m.WorstTrade.Equal(M(-500, "")) {
		t.Errorf("WorstTrade = %s, want -500", m.WorstTrade.Amount())
	}
}

func TestComputeMetrics_AllNegative(t *testing.T) {
	// Best trade must come from the data, not default to zero.
	m := ComputeMetrics([]RealizedTrade{
		trade(-10, "2024-01-15T10:00:00"),
		trade(-20, "2024-01-15T11:00:00"),
	})
	if !m.BestTrade.Equal(M(-10, "")) {
		t.Errorf("BestTrade = %s, want -10", m.BestTrade.Amount())
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil)

	if m.TotalTrades != 0 {
		t.Errorf("TotalTrades = %d, want 0", m.TotalTrades)
	}
	if len(m.Equity) != 0 || len(m.Days) != 0 {
		t.Errorf("empty input must produce empty curve and days")
	}
	if !m.AvgTradesPerDay.IsZero() {
		t.Errorf("AvgTradesPerDay = %s, want 0 on zero days", m.AvgTradesPerDay)
	}
	if !m.MaxDrawdown.IsZero() {
		t.Errorf("MaxDrawdown = %s, want 0", m.MaxDrawdown.Amount())
	}
}
