package analyzer

import (
	"testing"
)

func TestSanitizeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"₹-1,250.00", "-1250.00"},
		{"$120.50", "120.50"},
		{"1,00,000", "100000"},
		{" 42 ", "42"},
		{"Rs. 15.5", ".15.5"}, // still rejected downstream by the decimal parser
	}
	for _, tt := range tests {
		if got := sanitizeNumber(tt.in); got != tt.want {
			t.Errorf("sanitizeNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount_CurrencyGlyphs(t *testing.T) {
	got, ok := parseAmount("₹-1,250.00")
	if !ok {
		t.Fatal("parseAmount() failed")
	}
	if want := M(-1250.00, ""); !got.Equal(want) {
		t.Errorf("parseAmount() = %s, want %s", got.Amount(), want.Amount())
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want Side
		ok   bool
	}{
		{"buy", Buy, true},
		{"BUY", Buy, true},
		{"Buy Intraday", Buy, true},
		{"b", Buy, true},
		{"sell", Sell, true},
		{"SELL", Sell, true},
		{"s", Sell, true},
		{"dividend", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseSide(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseSide(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func tradebookIndex() ColumnIndex {
	return ColumnIndex{
		FieldSymbol:    0,
		FieldSide:      1,
		FieldQuantity:  2,
		FieldPrice:     3,
		FieldTimestamp: 4,
		FieldOrderID:   5,
	}
}

func TestParseFills(t *testing.T) {
	rows := [][]string{
		{"NIFTY24JAN21500CE", "buy", "50", "120.50", "2024-01-15T09:15:30", "10001"},
		{"NIFTY24JAN21500CE", "sell", "50", "₹125.00", "2024-01-15T10:02:11", "10002"},
	}
	fills := ParseFills(rows, tradebookIndex())
	if len(fills) != 2 {
		t.Fatalf("ParseFills() = %d fills, want 2", len(fills))
	}

	f := fills[0]
	if f.Symbol != "NIFTY24JAN21500CE" || f.Side != Buy || !f.Quantity.Equal(Q(50)) ||
		!f.Price.Equal(M(120.50, "")) || f.OrderID != "10001" || f.Row != 1 {
		t.Errorf("unexpected first fill: %+v", f)
	}
	if !f.Time.Equal(at("2024-01-15T09:15:30")) {
		t.Errorf("Time = %v, want %v", f.Time, at("2024-01-15T09:15:30"))
	}
}

func TestParseFills_DropsMalformedRows(t *testing.T) {
	rows := [][]string{
		{"SBIN", "buy", "10", "600", "2024-01-15T09:15:30", ""},
		{"SBIN", "buy", "abc", "600", "2024-01-15T09:16:00", ""},  // bad quantity
		{"SBIN", "buy", "0", "600", "2024-01-15T09:17:00", ""},    // non-positive quantity
		{"SBIN", "buy", "-5", "600", "2024-01-15T09:18:00", ""},   // negative quantity
		{"SBIN", "buy", "10", "oops", "2024-01-15T09:19:00", ""},  // bad price
		{"SBIN", "hold", "10", "600", "2024-01-15T09:20:00", ""},  // unknown side
		{"SBIN", "buy", "10", "600", "not a timestamp", ""},       // bad timestamp
		{"", "buy", "10", "600", "2024-01-15T09:21:00", ""},       // no symbol
		{"SBIN", "sell"},                                          // short row
		{"SBIN", "sell", "10", "610", "2024-01-15T15:10:00", ""},
	}
	fills := ParseFills(rows, tradebookIndex())
	if len(fills) != 2 {
		t.Fatalf("ParseFills() = %d fills, want 2 (malformed rows dropped)", len(fills))
	}
	if fills[0].Row != 1 || fills[1].Row != 10 {
		t.Errorf("source rows = %d, %d; want 1, 10", fills[0].Row, fills[1].Row)
	}
}

func TestParseTimestamp_Layouts(t *testing.T) {
	cells := []string{
		"2024-01-15T09:15:30",
		"2024-01-15 09:15:30",
		"2024-01-15",
		"15-01-2024 09:15:30",
		"15/01/2024",
	}
	for _, cell := range cells {
		if _, ok := parseTimestamp(cell); !ok {
			t.Errorf("parseTimestamp(%q) failed", cell)
		}
	}
	if _, ok := parseTimestamp("yesterday"); ok {
		t.Error("parseTimestamp(invalid) should fail")
	}
}

func TestParsePnLRows(t *testing.T) {
	idx := ColumnIndex{
		FieldSymbol:    0,
		FieldPnL:       1,
		FieldTimestamp: 2,
	}
	rows := [][]string{
		{"SBIN", "₹-1,250.00", "2024-01-15"},
		{"TCS", "+300", "2024-01-16"},
		{"INFY", "0", "2024-01-16"},   // zero PnL dropped
		{"WIPRO", "n/a", "2024-01-17"}, // unparseable dropped
	}
	trades := ParsePnLRows(rows, idx)
	if len(trades) != 2 {
		t.Fatalf("ParsePnLRows() = %d trades, want 2", len(trades))
	}
	if !trades[0].PnL.Equal(M(-1250.00, "")) {
		t.Errorf("PnL = %s, want -1250.00", trades[0].PnL.Amount())
	}
	if trades[0].Type != CloseImported {
		t.Errorf("Type = %v, want %v", trades[0].Type, CloseImported)
	}
	// IDs are a deterministic 1-based sequence in chronological order.
	if trades[0].ID != 1 || trades[1].ID != 2 {
		t.Errorf("IDs = %d, %d; want 1, 2", trades[0].ID, trades[1].ID)
	}
}
