package analyzer

import "slices"

// orderKey identifies fills belonging to one side of one broker order.
type orderKey struct {
	orderID string
	side    Side
	symbol  string
}

// Consolidate merges fills that share an (orderID, side, symbol) key into one
// effective fill: summed quantity, quantity-weighted average price, earliest
// timestamp and earliest source row. Fills without an order reference pass
// through unmerged.
//
// The output order is unspecified; callers sort with SortFills before replay.
func Consolidate(fills []Fill) []Fill {
	out := make([]Fill, 0, len(fills))
	groups := make(map[orderKey]int)

	for _, f := range fills {
		if f.OrderID == "" {
			out = append(out, f)
			continue
		}
		key := orderKey{orderID: f.OrderID, side: f.Side, symbol: f.Symbol}
		at, ok := groups[key]
		if !ok {
			groups[key] = len(out)
			out = append(out, f)
			continue
		}

		g := &out[at]
		total := g.Quantity.Add(f.Quantity)
		// Running quantity-weighted average keeps the price between the
		// member extremes.
		g.Price = g.Price.Mul(g.Quantity).Add(f.Price.Mul(f.Quantity)).Div(total)
		g.Quantity = total
		// A consolidated order must not trade later than its first fill.
		if f.Time.Before(g.Time) {
			g.Time = f.Time
		}
		if f.Row < g.Row {
			g.Row = f.Row
		}
	}
	return out
}

// SortFills orders fills by execution time ascending. Fills with identical
// timestamps keep their original source row order, so replay is
// deterministic for same-instant fills.
func SortFills(fills []Fill) {
	slices.SortStableFunc(fills, func(a, b Fill) int {
		if c := a.Time.Compare(b.Time); c != 0 {
			return c
		}
		return a.Row - b.Row
	})
}
