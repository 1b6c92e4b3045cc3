package analyzer

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Mapping holds user-supplied header patterns that extend the built-in
// column-resolution rules. Patterns are matched before the defaults, so a
// mapping file can claim a column the defaults would miss or misread.
//
// The file format is TOML:
//
//	[patterns]
//	symbol = ["scrip_name"]
//	price  = ["exec_price"]
type Mapping struct {
	Patterns map[string][]string `toml:"patterns"`
}

// knownFields lists the canonical fields a mapping file may override.
var knownFields = map[string]bool{
	FieldSymbol:    true,
	FieldSide:      true,
	FieldQuantity:  true,
	FieldPrice:     true,
	FieldTimestamp: true,
	FieldOrderID:   true,
	FieldPnL:       true,
}

// LoadMapping reads a column-mapping override file.
func LoadMapping(path string) (*Mapping, error) {
	var m Mapping
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("cannot read mapping file %q: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping file %q: %w", path, err)
	}
	return &m, nil
}

func (m *Mapping) validate() error {
	for field := range m.Patterns {
		if !knownFields[field] {
			return fmt.Errorf("unknown field %q in [patterns]", field)
		}
	}
	return nil
}

// apply prepends the override patterns to a rule list. A nil mapping returns
// the rules unchanged.
func (m *Mapping) apply(rules []columnRule) []columnRule {
	if m == nil || len(m.Patterns) == 0 {
		return rules
	}
	out := make([]columnRule, len(rules))
	for i, rule := range rules {
		extra := m.Patterns[rule.field]
		if len(extra) == 0 {
			out[i] = rule
			continue
		}
		merged := make([]string, 0, len(extra)+len(rule.patterns))
		merged = append(merged, extra...)
		merged = append(merged, rule.patterns...)
		out[i] = columnRule{field: rule.field, patterns: merged}
	}
	return out
}
