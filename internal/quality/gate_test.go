package quality_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
)

func table(name string, rows ...quality.Row) quality.Table {
	return quality.Table{Name: name, Rows: rows}
}

func TestGate_CheckTable(t *testing.T) {
	tbl := table("facts",
		quality.Row{"revenue": 100.0, "orders": 2, "date": "2018-01-01"},
		quality.Row{"revenue": -5.0, "orders": 1, "date": "2018-01-02"},
		quality.Row{"revenue": 30.0, "orders": 0, "date": nil},
		quality.Row{"revenue": 40.0, "orders": 3, "date": "2018-01-04"},
	)

	gate := quality.NewGate(quality.PolicyExpectationMean)

	report, err := gate.CheckTable(tbl, []quality.Expectation{
		{Name: "revenue_non_negative", Kind: quality.KindRange, Column: "revenue", Min: quality.Float64(0)},
		{Name: "date_not_null", Kind: quality.KindNotNull, Column: "date"},
	})

	require.NoError(t, err)
	assert.Equal(t, "facts", report.TableName)
	require.Len(t, report.Expectations, 2)
	assert.Equal(t, 3, report.Expectations[0].PassCount)
	assert.Equal(t, 3, report.Expectations[1].PassCount)
	// Mean of 0.75 and 0.75.
	assert.InDelta(t, 0.75, report.SuccessRate, 1e-9)
	assert.Equal(t, quality.StatusNeedsAttention, report.Status)
	assert.Len(t, report.FailedExpectations, 2)
}

func TestGate_RowConjunctionPolicy(t *testing.T) {
	tbl := table("facts",
		quality.Row{"revenue": 100.0, "date": "2018-01-01"},
		quality.Row{"revenue": -5.0, "date": "2018-01-02"},
		quality.Row{"revenue": 30.0, "date": nil},
		quality.Row{"revenue": 40.0, "date": "2018-01-04"},
	)

	gate := quality.NewGate(quality.PolicyRowConjunction)

	report, err := gate.CheckTable(tbl, []quality.Expectation{
		{Name: "revenue_non_negative", Kind: quality.KindRange, Column: "revenue", Min: quality.Float64(0)},
		{Name: "date_not_null", Kind: quality.KindNotNull, Column: "date"},
	})

	require.NoError(t, err)
	// Rows 1 and 4 satisfy both expectations.
	assert.InDelta(t, 0.5, report.SuccessRate, 1e-9)
}

func TestGate_UniqueExpectation(t *testing.T) {
	tbl := table("customers",
		quality.Row{"id": "a"},
		quality.Row{"id": "b"},
		quality.Row{"id": "a"},
	)

	gate := quality.NewGate("")

	report, err := gate.CheckTable(tbl, []quality.Expectation{
		{Name: "id_unique", Kind: quality.KindUnique, Column: "id"},
	})

	require.NoError(t, err)
	// Both "a" rows fail, "b" passes.
	assert.Equal(t, 1, report.Expectations[0].PassCount)
	assert.Equal(t, 3, report.Expectations[0].TotalCount)
}

func TestGate_ConfigurationErrors(t *testing.T) {
	tbl := table("facts", quality.Row{"revenue": 1.0})
	gate := quality.NewGate("")

	tests := []struct {
		name        string
		expectation quality.Expectation
	}{
		{
			name:        "unknown_column",
			expectation: quality.Expectation{Name: "bad", Kind: quality.KindNotNull, Column: "no_such_column"},
		},
		{
			name: "inverted_range",
			expectation: quality.Expectation{
				Name: "bad", Kind: quality.KindRange, Column: "revenue",
				Min: quality.Float64(10), Max: quality.Float64(1),
			},
		},
		{
			name:        "unbounded_range",
			expectation: quality.Expectation{Name: "bad", Kind: quality.KindRange, Column: "revenue"},
		},
		{
			name:        "predicate_without_func",
			expectation: quality.Expectation{Name: "bad", Kind: quality.KindPredicate, Column: "revenue"},
		},
		{
			name:        "unknown_kind",
			expectation: quality.Expectation{Name: "bad", Kind: "regex", Column: "revenue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gate.CheckTable(tbl, []quality.Expectation{tt.expectation})

			var cfgErr *quality.ConfigurationError
			require.Error(t, err)
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

// 96 of 100 rows passing a single expectation averages to 0.96, which must
// classify as EXCELLENT.
func TestGate_ExcellentThreshold(t *testing.T) {
	rows := make([]quality.Row, 0, 100)
	for i := 0; i < 100; i++ {
		if i < 96 {
			rows = append(rows, quality.Row{"value": 1.0})
		} else {
			rows = append(rows, quality.Row{"value": -1.0})
		}
	}

	gate := quality.NewGate("")
	report, err := gate.CheckTable(quality.Table{Name: "t", Rows: rows}, []quality.Expectation{
		{Name: "value_non_negative", Kind: quality.KindRange, Column: "value", Min: quality.Float64(0)},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.96, report.SuccessRate, 1e-9)
	assert.Equal(t, quality.StatusExcellent, report.Status)
}

func TestGate_StatusBoundaries(t *testing.T) {
	tests := []struct {
		name string
		pass int
		want quality.Status
	}{
		{"exactly_95_excellent", 95, quality.StatusExcellent},
		{"exactly_80_good", 80, quality.StatusGood},
		{"79_needs_attention", 79, quality.StatusNeedsAttention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]quality.Row, 0, 100)
			for i := 0; i < 100; i++ {
				v := 1.0
				if i >= tt.pass {
					v = -1.0
				}
				rows = append(rows, quality.Row{"value": v})
			}

			gate := quality.NewGate("")
			report, err := gate.CheckTable(quality.Table{Name: "t", Rows: rows}, []quality.Expectation{
				{Name: "value_non_negative", Kind: quality.KindRange, Column: "value", Min: quality.Float64(0)},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Status)
		})
	}
}

func TestGate_Check_OverallMeanOfTables(t *testing.T) {
	gate := quality.NewGate("")
	generatedAt := time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC)

	tables := []quality.Table{
		table("all_good", quality.Row{"v": 1.0}, quality.Row{"v": 2.0}),
		table("half_good", quality.Row{"v": 1.0}, quality.Row{"v": -1.0}),
	}
	checks := map[string][]quality.Expectation{
		"all_good":  {{Name: "v_non_negative", Kind: quality.KindRange, Column: "v", Min: quality.Float64(0)}},
		"half_good": {{Name: "v_non_negative", Kind: quality.KindRange, Column: "v", Min: quality.Float64(0)}},
	}

	report, err := gate.Check("run-1", generatedAt, checks, tables)

	require.NoError(t, err)
	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, generatedAt, report.GeneratedAt)
	require.Len(t, report.Tables, 2)
	assert.InDelta(t, 0.75, report.OverallRate, 1e-9)
	assert.Equal(t, quality.StatusNeedsAttention, report.OverallStatus)
}

func TestGate_EmptyTableVacuouslyPasses(t *testing.T) {
	gate := quality.NewGate("")

	report, err := gate.CheckTable(quality.Table{Name: "empty"}, []quality.Expectation{
		{Name: "v_non_negative", Kind: quality.KindRange, Column: "v", Min: quality.Float64(0)},
	})

	require.NoError(t, err)
	assert.InDelta(t, 1.0, report.SuccessRate, 1e-9)
	assert.Equal(t, quality.StatusExcellent, report.Status)
}
