package analyzer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Analysis is the result of one full run over one input file: the ordered
// realized-trade sequence and the metrics derived from it.
type Analysis struct {
	Mode    SchemaMode
	Trades  []RealizedTrade
	Metrics *Metrics
	// Open holds the per-symbol positions still open after replay. It is
	// empty in ModePnL.
	Open *PositionBook
}

// Option customises one ParseTradebook run.
type Option func(*options)

type options struct {
	mapping *Mapping
}

// WithMapping applies user-supplied column-mapping overrides.
func WithMapping(m *Mapping) Option {
	return func(o *options) { o.mapping = m }
}

// ParseTradebook runs the whole pipeline over one CSV export: column
// mapping, row parsing, order consolidation, chronological replay and
// metrics aggregation. The computation is a pure function of the input
// text; two runs over the same bytes produce identical output.
//
// Fatal conditions are ErrEmptyInput, *MissingColumnsError and
// ErrNoValidRows; row-level anomalies are silently dropped per the
// row-parser rules.
func ParseTradebook(r io.Reader, opts ...Option) (*Analysis, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports disagree with their own header width
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A malformed line is a row-level anomaly, not a fatal one.
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return nil, fmt.Errorf("cannot read input: %w", err)
		}
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}

	if len(records) < 2 {
		return nil, ErrEmptyInput
	}

	idx, mode, err := MapColumns(records[0], o.mapping)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{Mode: mode}
	switch mode {
	case ModeFills:
		fills := ParseFills(records[1:], idx)
		if len(fills) == 0 {
			return nil, ErrNoValidRows
		}
		fills = Consolidate(fills)
		SortFills(fills)
		analysis.Open = NewPositionBook()
		analysis.Trades = RealizeInto(analysis.Open, fills)
	case ModePnL:
		trades := ParsePnLRows(records[1:], idx)
		if len(trades) == 0 {
			return nil, ErrNoValidRows
		}
		analysis.Trades = trades
	}

	analysis.Metrics = ComputeMetrics(analysis.Trades)
	return analysis, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
