package analyzer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when the input has fewer than two non-blank
// lines, i.e. no data rows at all.
var ErrEmptyInput = errors.New("input contains no data rows")

// ErrNoValidRows is returned when every data row was filtered out by the
// row-level numeric and timestamp checks.
var ErrNoValidRows = errors.New("no usable rows after filtering")

// MissingColumnsError reports that the header row could not be mapped onto a
// known schema: the fill-level required fields could not all be resolved, and
// no pre-computed PnL column was found either.
type MissingColumnsError struct {
	Missing []string // canonical field names that could not be resolved
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("cannot resolve required columns: %s", strings.Join(e.Missing, ", "))
}
