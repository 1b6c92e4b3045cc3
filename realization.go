package analyzer

import (
	"slices"
	"time"
)

// CloseType tells how a realized trade closed its exposure.
type CloseType int

const (
	// LongClose is a sell reducing or closing a long position.
	LongClose CloseType = iota
	// ShortCover is a buy reducing or closing a short position.
	ShortCover
	// CloseImported marks records taken verbatim from a pre-aggregated
	// file, where the closing direction is unknown.
	CloseImported
)

func (c CloseType) String() string {
	switch c {
	case LongClose:
		return "long_close"
	case ShortCover:
		return "short_cover"
	case CloseImported:
		return "imported"
	}
	return "unknown"
}

// RealizedTrade is the profit or loss locked in when a position was reduced
// or closed. It is immutable once produced.
type RealizedTrade struct {
	ID       int // deterministic sequence number, 1-based, scoped to one run
	Time     time.Time
	Symbol   string
	Quantity Quantity // quantity closed, always positive
	PnL      Money
	Open     Money // average cost basis of the closed quantity
	Close    Money // execution price of the closing fill
	Type     CloseType
	Row      int // source row of the closing fill
}

// Position is the current net exposure for one instrument during replay.
// Quantity is signed: positive long, negative short, zero flat. AvgPrice is
// meaningful only while Quantity is non-zero.
type Position struct {
	Quantity Quantity
	AvgPrice Money
}

// IsFlat reports whether the position has no exposure.
func (p *Position) IsFlat() bool { return p.Quantity.IsZero() }

// PositionBook is the explicit per-symbol position table owned by one
// replay. It is not safe for concurrent use; the whole pipeline is a single
// synchronous pass.
type PositionBook struct {
	positions map[string]*Position
	seq       int // last assigned RealizedTrade ID
}

// NewPositionBook returns an empty position table.
func NewPositionBook() *PositionBook {
	return &PositionBook{positions: make(map[string]*Position)}
}

// Position returns the tracked position for a symbol, creating a flat one on
// first reference.
func (b *PositionBook) Position(symbol string) *Position {
	pos, ok := b.positions[symbol]
	if !ok {
		pos = &Position{Quantity: Q(0)}
		b.positions[symbol] = pos
	}
	return pos
}

// Symbols returns the symbols referenced so far, sorted.
func (b *PositionBook) Symbols() []string {
	symbols := make([]string, 0, len(b.positions))
	for s := range b.positions {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// Apply replays one fill through the book. It returns the realized trade for
// any closed exposure, and false when the fill only added to a position.
//
// A single opposite-direction fill larger than the open exposure both closes
// the position and seeds a new one in the fill's direction at the fill's
// price: close and open are not mutually exclusive per fill.
func (b *PositionBook) Apply(f Fill) (RealizedTrade, bool) {
	pos := b.Position(f.Symbol)

	signed := f.Quantity
	if f.Side == Sell {
		signed = signed.Neg()
	}

	// Same direction or flat: the fill adds to the position at a blended
	// average cost.
	if pos.IsFlat() || pos.Quantity.IsPositive() == signed.IsPositive() {
		abs := pos.Quantity.Abs()
		total := abs.Add(f.Quantity)
		pos.AvgPrice = pos.AvgPrice.Mul(abs).Add(f.Price.Mul(f.Quantity)).Div(total)
		pos.Quantity = pos.Quantity.Add(signed)
		return RealizedTrade{}, false
	}

	// Opposite direction: close up to the open exposure.
	qtyToClose := pos.Quantity.Abs().Min(f.Quantity)

	var pnl Money
	closeType := LongClose
	if f.Side == Sell {
		pnl = f.Price.Sub(pos.AvgPrice).Mul(qtyToClose)
	} else {
		pnl = pos.AvgPrice.Sub(f.Price).Mul(qtyToClose)
		closeType = ShortCover
	}

	b.seq++
	trade := RealizedTrade{
		ID:       b.seq,
		Time:     f.Time,
		Symbol:   f.Symbol,
		Quantity: qtyToClose,
		PnL:      pnl,
		Open:     pos.AvgPrice,
		Close:    f.Price,
		Type:     closeType,
		Row:      f.Row,
	}

	remaining := f.Quantity.Sub(qtyToClose)
	switch {
	case remaining.IsPositive():
		// The fill flattened the position and flipped it: the remainder
		// opens fresh at the fill price, not blended with the old average.
		if f.Side == Sell {
			pos.Quantity = remaining.Neg()
		} else {
			pos.Quantity = remaining
		}
		pos.AvgPrice = f.Price
	default:
		pos.Quantity = pos.Quantity.Add(signed)
		if pos.IsFlat() {
			// Flat has no meaningful cost basis.
			pos.AvgPrice = Money{}
		}
	}
	return trade, true
}

// Realize replays an already consolidated, time-ordered fill stream through
// a fresh position book and returns the realized trades in replay order.
func Realize(fills []Fill) []RealizedTrade {
	book := NewPositionBook()
	return RealizeInto(book, fills)
}

// RealizeInto replays fills through the given book. The book keeps the open
// positions left over at the end of the stream.
func RealizeInto(book *PositionBook, fills []Fill) []RealizedTrade {
	var trades []RealizedTrade
	for _, f := range fills {
		if trade, closed := book.Apply(f); closed {
			trades = append(trades, trade)
		}
	}
	return trades
}

// sortTrades orders trades by time ascending, tie-broken by source row.
func sortTrades(trades []RealizedTrade) {
	slices.SortStableFunc(trades, func(a, b RealizedTrade) int {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return a.Row - b.Row
	})
}
