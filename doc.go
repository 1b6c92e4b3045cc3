// Package analyzer reconstructs realized profit-and-loss events and
// performance metrics from heterogeneous, broker-exported trade records.
//
// The pipeline is a strictly forward, single-threaded pass:
//   - Column mapping: arbitrary CSV header names are resolved onto canonical
//     trade fields through a prioritized substring rule table, with optional
//     user overrides.
//   - Row parsing: delimited rows become typed fills; malformed rows are
//     dropped, never fatal.
//   - Order consolidation: partial fills of one broker order are merged into
//     one effective fill at the quantity-weighted average price.
//   - Realization: fills replay chronologically through a per-symbol
//     average-cost position state machine, emitting a realized trade each
//     time exposure is reduced, closed, or flipped.
//   - Aggregation: the realized-trade stream folds into win/loss statistics,
//     an equity curve with maximum drawdown, and per-day buckets.
//
// All arithmetic is exact decimal; nothing here persists state or touches
// the network. This package is the foundation for the `ta` command-line
// tool.
package analyzer
