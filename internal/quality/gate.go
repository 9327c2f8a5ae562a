package quality

import "time"

// Status classifies a success rate.
type Status string

const (
	StatusExcellent      Status = "EXCELLENT"
	StatusGood           Status = "GOOD"
	StatusNeedsAttention Status = "NEEDS_ATTENTION"
)

const (
	excellentThreshold = 0.95
	goodThreshold      = 0.80
)

// AggregationPolicy selects how a table's expectation outcomes fold into a
// single success rate.
type AggregationPolicy string

const (
	// PolicyExpectationMean averages the per-expectation success rates.
	// This is the documented default.
	PolicyExpectationMean AggregationPolicy = "expectation_mean"
	// PolicyRowConjunction counts rows satisfying every expectation over
	// total rows.
	PolicyRowConjunction AggregationPolicy = "row_conjunction"
)

// TableReport is the gate's verdict for one table.
type TableReport struct {
	TableName          string              `json:"table_name"`
	SuccessRate        float64             `json:"success_rate"`
	Status             Status              `json:"status"`
	RowCount           int                 `json:"row_count"`
	Expectations       []ExpectationResult `json:"expectations"`
	FailedExpectations []ExpectationResult `json:"failed_expectations"`
}

// Report is the gate's verdict across all checked tables. The gate is
// advisory: it reports, it never blocks or mutates.
type Report struct {
	RunID         string        `json:"run_id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Tables        []TableReport `json:"tables"`
	OverallRate   float64       `json:"overall_rate"`
	OverallStatus Status        `json:"overall_status"`
}

// Gate evaluates declarative expectations against output tables.
type Gate struct {
	policy AggregationPolicy
}

func NewGate(policy AggregationPolicy) *Gate {
	if policy == "" {
		policy = PolicyExpectationMean
	}

	return &Gate{policy: policy}
}

// CheckTable evaluates the expectations against one table. A configuration
// problem aborts the whole table check with *ConfigurationError.
func (g *Gate) CheckTable(t Table, expectations []Expectation) (TableReport, error) {
	report := TableReport{TableName: t.Name, RowCount: len(t.Rows)}

	rowPasses := make([][]bool, len(expectations))
	for i, e := range expectations {
		passes, err := e.evaluate(t)
		if err != nil {
			return TableReport{}, err
		}
		rowPasses[i] = passes

		passCount := 0
		for _, ok := range passes {
			if ok {
				passCount++
			}
		}

		result := ExpectationResult{
			Name:        e.Name,
			Kind:        e.Kind,
			Column:      e.Column,
			PassCount:   passCount,
			TotalCount:  len(t.Rows),
			SuccessRate: rate(passCount, len(t.Rows)),
		}
		report.Expectations = append(report.Expectations, result)
		if passCount < len(t.Rows) {
			report.FailedExpectations = append(report.FailedExpectations, result)
		}
	}

	report.SuccessRate = g.tableRate(report.Expectations, rowPasses, len(t.Rows))
	report.Status = classify(report.SuccessRate)

	return report, nil
}

// Check runs every table through its expectation suite and folds the table
// rates into the overall score (mean of table rates).
func (g *Gate) Check(runID string, generatedAt time.Time, checks map[string][]Expectation, tables []Table) (Report, error) {
	report := Report{RunID: runID, GeneratedAt: generatedAt}

	sum := 0.0
	for _, t := range tables {
		tr, err := g.CheckTable(t, checks[t.Name])
		if err != nil {
			return Report{}, err
		}
		report.Tables = append(report.Tables, tr)
		sum += tr.SuccessRate
	}

	if len(report.Tables) > 0 {
		report.OverallRate = sum / float64(len(report.Tables))
	} else {
		report.OverallRate = 1
	}
	report.OverallStatus = classify(report.OverallRate)

	return report, nil
}

func (g *Gate) tableRate(results []ExpectationResult, rowPasses [][]bool, rowCount int) float64 {
	if len(results) == 0 {
		return 1
	}

	switch g.policy {
	case PolicyRowConjunction:
		if rowCount == 0 {
			return 1
		}
		passed := 0
		for row := 0; row < rowCount; row++ {
			ok := true
			for _, passes := range rowPasses {
				if !passes[row] {
					ok = false
					break
				}
			}
			if ok {
				passed++
			}
		}
		return rate(passed, rowCount)
	default:
		sum := 0.0
		for _, r := range results {
			sum += r.SuccessRate
		}
		return sum / float64(len(results))
	}
}

func classify(successRate float64) Status {
	switch {
	case successRate >= excellentThreshold:
		return StatusExcellent
	case successRate >= goodThreshold:
		return StatusGood
	default:
		return StatusNeedsAttention
	}
}

// rate treats an empty table as vacuously passing.
func rate(pass, total int) float64 {
	if total == 0 {
		return 1
	}

	return float64(pass) / float64(total)
}
