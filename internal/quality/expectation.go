package quality

import "fmt"

// Kind selects the check an expectation performs.
type Kind string

const (
	// KindNotNull passes rows whose column value is present and non-nil.
	KindNotNull Kind = "not_null"
	// KindRange passes rows whose numeric column value lies within [Min, Max].
	KindRange Kind = "range"
	// KindUnique passes rows whose column value appears exactly once in the table.
	KindUnique Kind = "unique"
	// KindPredicate passes rows for which the custom predicate returns true.
	KindPredicate Kind = "predicate"
)

// Row is one record of a table under check, keyed by column name.
type Row map[string]any

// Table is a named record set handed to the gate. The gate only reads it.
type Table struct {
	Name string
	Rows []Row
}

// Expectation is a single declarative data-quality rule.
type Expectation struct {
	Name      string
	Kind      Kind
	Column    string
	Min, Max  *float64
	Predicate func(value any) bool
}

// ExpectationResult is the outcome of one expectation over one table.
type ExpectationResult struct {
	Name        string  `json:"name"`
	Kind        Kind    `json:"kind"`
	Column      string  `json:"column"`
	PassCount   int     `json:"pass_count"`
	TotalCount  int     `json:"total_count"`
	SuccessRate float64 `json:"success_rate"`
}

// ConfigurationError reports an expectation that cannot be evaluated:
// a column the table does not carry, an inverted range, a missing
// predicate. It aborts the check for that table.
type ConfigurationError struct {
	Table       string
	Expectation string
	Reason      string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("quality: invalid expectation %q on table %q: %s", e.Expectation, e.Table, e.Reason)
}

// Float64 is a convenience for building Range expectations.
func Float64(v float64) *float64 {
	return &v
}

// evaluate runs one expectation over every row and returns the per-row pass
// flags. Configuration problems surface as *ConfigurationError.
func (e Expectation) evaluate(t Table) ([]bool, error) {
	if err := e.validate(t); err != nil {
		return nil, err
	}

	passes := make([]bool, len(t.Rows))

	switch e.Kind {
	case KindNotNull:
		for i, row := range t.Rows {
			passes[i] = row[e.Column] != nil
		}
	case KindRange:
		for i, row := range t.Rows {
			v, ok := asFloat(row[e.Column])
			passes[i] = ok && (e.Min == nil || v >= *e.Min) && (e.Max == nil || v <= *e.Max)
		}
	case KindUnique:
		seen := make(map[any]int, len(t.Rows))
		for _, row := range t.Rows {
			seen[row[e.Column]]++
		}
		for i, row := range t.Rows {
			passes[i] = seen[row[e.Column]] == 1
		}
	case KindPredicate:
		for i, row := range t.Rows {
			passes[i] = e.Predicate(row[e.Column])
		}
	}

	return passes, nil
}

func (e Expectation) validate(t Table) error {
	fail := func(reason string) error {
		return &ConfigurationError{Table: t.Name, Expectation: e.Name, Reason: reason}
	}

	switch e.Kind {
	case KindNotNull, KindRange, KindUnique, KindPredicate:
	default:
		return fail(fmt.Sprintf("unknown kind %q", e.Kind))
	}
	if e.Kind == KindRange {
		if e.Min == nil && e.Max == nil {
			return fail("range expectation needs at least one bound")
		}
		if e.Min != nil && e.Max != nil && *e.Min > *e.Max {
			return fail("range bounds are inverted")
		}
	}
	if e.Kind == KindPredicate && e.Predicate == nil {
		return fail("predicate expectation has no predicate")
	}

	for _, row := range t.Rows {
		if _, ok := row[e.Column]; !ok {
			return fail(fmt.Sprintf("column %q does not exist", e.Column))
		}
	}

	return nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
