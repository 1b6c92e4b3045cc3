package analyzer

import (
	"time"
)

// at parses a timestamp literal for tests.
func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// fill is a compact Fill constructor for tests.
func fill(symbol string, side Side, qty, price float64, ts string, orderID string, row int) Fill {
	return Fill{
		Symbol:   symbol,
		Side:     side,
		Quantity: Q(qty),
		Price:    M(price, ""),
		Time:     at(ts),
		OrderID:  orderID,
		Row:      row,
	}
}
