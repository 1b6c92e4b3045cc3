package analyzer

import (
	"strings"
	"time"
)

// Side is the direction of a fill.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// parseSide interprets a broker's trade-type cell. Exports spell it "buy",
// "BUY", "B", "Buy Intraday", etc., so matching is by substring.
func parseSide(cell string) (Side, bool) {
	c := strings.ToLower(strings.TrimSpace(cell))
	switch {
	case strings.Contains(c, "buy"), c == "b":
		return Buy, true
	case strings.Contains(c, "sell"), c == "s":
		return Sell, true
	}
	return 0, false
}

// Fill is one executed quantity at one price and time, as parsed from a
// single tradebook row.
type Fill struct {
	Symbol   string
	Side     Side
	Quantity Quantity // always positive
	Price    Money
	Time     time.Time
	OrderID  string // empty when the export carries no order reference
	Row      int    // 1-based source row, used as a sort tie-break
}

// sanitizeNumber strips every character that is not a digit, a sign, or a
// decimal point. This removes currency glyphs ("₹", "$") and thousands
// separators that some exports embed in price and PnL cells.
func sanitizeNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseAmount parses a cell into a Money after currency-symbol stripping.
func parseAmount(cell string) (Money, bool) {
	q, err := ParseQuantity(sanitizeNumber(cell))
	if err != nil {
		return Money{}, false
	}
	return NewMoney(q.value, ""), true
}

// timestampLayouts are tried in order. Broker exports are wildly
// inconsistent here; the list covers the shapes seen in Zerodha, Upstox and
// Angel One tradebooks.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"2006/01/02 15:04:05",
}

// parseTimestamp tries every known layout against the cell.
//
// A row whose timestamp cannot be parsed is dropped by the caller rather
// than stamped with the current time: a fabricated "now" would corrupt the
// chronological replay that realized PnL depends on.
func parseTimestamp(cell string) (time.Time, bool) {
	c := strings.TrimSpace(cell)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, c, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// cell returns the idx-resolved column of a row, or "" when the row is too
// short or the field was not resolved.
func cell(row []string, idx ColumnIndex, field string) string {
	col, ok := idx[field]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.Trim(strings.TrimSpace(row[col]), `"'`)
}

// ParseFills converts raw data rows into typed fills using a resolved column
// index. Malformed rows (bad numeric, non-positive quantity, unknown side,
// unparseable timestamp) are dropped, not fatal; the returned fills keep
// their 1-based source row number.
func ParseFills(rows [][]string, idx ColumnIndex) []Fill {
	fills := make([]Fill, 0, len(rows))
	for i, row := range rows {
		symbol := cell(row, idx, FieldSymbol)
		if symbol == "" {
			continue
		}
		side, ok := parseSide(cell(row, idx, FieldSide))
		if !ok {
			continue
		}
		qty, err := ParseQuantity(sanitizeNumber(cell(row, idx, FieldQuantity)))
		if err != nil || !qty.IsPositive() {
			continue
		}
		price, ok := parseAmount(cell(row, idx, FieldPrice))
		if !ok || price.IsNegative() {
			continue
		}
		ts, ok := parseTimestamp(cell(row, idx, FieldTimestamp))
		if !ok {
			continue
		}
		fills = append(fills, Fill{
			Symbol:   symbol,
			Side:     side,
			Quantity: qty,
			Price:    price,
			Time:     ts,
			OrderID:  cell(row, idx, FieldOrderID),
			Row:      i + 1,
		})
	}
	return fills
}

// ParsePnLRows converts pre-aggregated rows directly into realized-trade
// records. Rows with an unparseable or zero PnL are dropped. Rows without a
// usable timestamp fall back to the start of the current day, which keeps
// daily bucketing meaningful for date-less exports.
func ParsePnLRows(rows [][]string, idx ColumnIndex) []RealizedTrade {
	today := time.Now()
	trades := make([]RealizedTrade, 0, len(rows))
	for i, row := range rows {
		pnl, ok := parseAmount(cell(row, idx, FieldPnL))
		if !ok || pnl.IsZero() {
			continue
		}
		ts, ok := parseTimestamp(cell(row, idx, FieldTimestamp))
		if !ok {
			ts = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
		}
		qty := Q(0)
		if q, err := ParseQuantity(sanitizeNumber(cell(row, idx, FieldQuantity))); err == nil && q.IsPositive() {
			qty = q
		}
		trades = append(trades, RealizedTrade{
			Symbol:   cell(row, idx, FieldSymbol),
			Quantity: qty,
			PnL:      pnl,
			Time:     ts,
			Type:     CloseImported,
			Row:      i + 1,
		})
	}
	sortTrades(trades)
	for i := range trades {
		trades[i].ID = i + 1
	}
	return trades
}
