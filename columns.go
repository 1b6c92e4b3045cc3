package analyzer

import "strings"

// Canonical field names resolvable by the column mapper.
const (
	FieldSymbol    = "symbol"
	FieldSide      = "side"
	FieldQuantity  = "quantity"
	FieldPrice     = "price"
	FieldTimestamp = "timestamp"
	FieldOrderID   = "order_id"
	FieldPnL       = "pnl"
)

// SchemaMode identifies the detected shape of an input file.
type SchemaMode int

const (
	// ModeFills is the fill-level ("tradebook") schema: every row is one
	// executed fill, and realized trades are reconstructed by replay.
	ModeFills SchemaMode = iota
	// ModePnL is the pre-aggregated schema: every row already carries a
	// realized PnL amount and feeds the metrics aggregator directly.
	ModePnL
)

func (m SchemaMode) String() string {
	switch m {
	case ModeFills:
		return "fills"
	case ModePnL:
		return "pnl"
	}
	return "unknown"
}

// columnRule associates a canonical field with an ordered list of substring
// patterns. The first pattern that matches any header wins, even if a later
// pattern would match an earlier header.
type columnRule struct {
	field    string
	patterns []string
}

// fillRules resolve the fill-level schema. Order within each pattern list is
// a priority order.
var fillRules = []columnRule{
	{FieldSymbol, []string{"symbol", "ticker", "script"}},
	{FieldSide, []string{"trade_type", "type", "side", "buy/sell"}},
	{FieldQuantity, []string{"quantity", "qty", "volume"}},
	{FieldPrice, []string{"price", "rate", "avg_price"}},
	{FieldTimestamp, []string{"order_execution_time", "time", "trade_date", "date"}},
	{FieldOrderID, []string{"order_id", "orderid", "order_ref"}},
}

// pnlRules resolve the pre-aggregated schema. Only the pnl field is required.
var pnlRules = []columnRule{
	{FieldPnL, []string{"pnl", "profit", "net"}},
	{FieldSymbol, []string{"symbol", "ticker", "script"}},
	{FieldQuantity, []string{"quantity", "qty", "volume"}},
	{FieldTimestamp, []string{"order_execution_time", "time", "trade_date", "date"}},
}

// requiredFillFields must all resolve for a file to be treated as fill-level.
var requiredFillFields = []string{FieldSymbol, FieldSide, FieldQuantity, FieldPrice}

// ColumnIndex maps canonical field names to column positions in the header
// row. It is resolved once per file and consumed by the row parser.
type ColumnIndex map[string]int

// Has reports whether the canonical field was resolved.
func (c ColumnIndex) Has(field string) bool {
	_, ok := c[field]
	return ok
}

// normalizeHeader lower-cases a header cell and strips surrounding quotes and
// whitespace, so that substring patterns match regardless of export quirks.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.Trim(h, `"'`)
	return strings.ToLower(strings.TrimSpace(h))
}

// resolve applies one ordered rule list against normalized headers.
func resolve(headers []string, rules []columnRule) ColumnIndex {
	idx := make(ColumnIndex, len(rules))
	for _, rule := range rules {
		if col, ok := findColumn(headers, rule.patterns); ok {
			idx[rule.field] = col
		}
	}
	return idx
}

// findColumn returns the first header containing the first matching pattern.
func findColumn(headers []string, patterns []string) (int, bool) {
	for _, pattern := range patterns {
		for col, h := range headers {
			if strings.Contains(h, pattern) {
				return col, true
			}
		}
	}
	return 0, false
}

// MapColumns resolves the canonical column index from a raw header row.
//
// It first tries the fill-level schema; if any required field is missing, it
// falls back to the pre-aggregated schema, keyed on a PnL-like column. When
// neither resolves, it returns a *MissingColumnsError naming the fill-level
// fields that could not be found.
//
// The optional overrides prepend user-supplied patterns to the built-in rule
// table, so they take priority over the defaults.
func MapColumns(header []string, overrides *Mapping) (ColumnIndex, SchemaMode, error) {
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = normalizeHeader(h)
	}

	idx := resolve(headers, overrides.apply(fillRules))
	var missing []string
	for _, field := range requiredFillFields {
		if !idx.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return idx, ModeFills, nil
	}

	pnlIdx := resolve(headers, overrides.apply(pnlRules))
	if pnlIdx.Has(FieldPnL) {
		return pnlIdx, ModePnL, nil
	}

	return nil, ModeFills, &MissingColumnsError{Missing: missing}
}
