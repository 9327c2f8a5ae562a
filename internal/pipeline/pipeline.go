package pipeline

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/gold"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

// RawSets is the full bronze input to one pipeline run.
type RawSets struct {
	Customers  []bronze.RawCustomer
	Orders     []bronze.RawOrder
	OrderItems []bronze.RawOrderItem
	Products   []bronze.RawProduct
}

// Options carries every external input the components need. Both timestamps
// are explicit so the run stays deterministic: no component reads a clock.
type Options struct {
	// Now becomes the processed_at stamp on every clean record.
	Now time.Time
	// ReferenceDate anchors the RFM recency computation. Zero means "use the
	// max purchase timestamp across the clean orders".
	ReferenceDate time.Time
	// ExcludeZeroValue forwards to the order-item validator.
	ExcludeZeroValue bool
	// QualityPolicy selects the gate's aggregation policy.
	QualityPolicy quality.AggregationPolicy
}

// Result owns everything a run produced. Each stage writes only its own
// record sets; upstream sets are read-only to it.
type Result struct {
	RunID         uuid.UUID
	ReferenceDate time.Time

	Customers  []silver.CleanCustomer
	Orders     []silver.CleanOrder
	OrderItems []silver.CleanOrderItem
	Products   []silver.CleanProduct

	DailyRevenue     []gold.DailyRevenueFact
	RFM              []gold.CustomerRFMRecord
	Categories       []gold.CategorySummary
	ProductSummaries []gold.ProductSummary

	Rejections map[string]silver.RejectionStats
	Quality    quality.Report
}

// stage is one node of the run graph. Dependencies are declared explicitly
// instead of relying on call order, and verified before anything runs.
type stage struct {
	name      string
	dependsOn []string
	run       func(*Result) error
}

// Run executes the full Bronze→Silver→Gold→Gate graph over the raw sets.
// Stage boundaries are synchronization points: a stage starts only after
// everything it depends on has fully completed.
func Run(opts Options, raw RawSets) (*Result, error) {
	runID, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("pipeline: failed to generate run id: %w", err)
	}

	result := &Result{
		RunID:      runID,
		Rejections: make(map[string]silver.RejectionStats),
	}

	stages := []stage{
		{
			name: "sanitize_customers",
			run: func(r *Result) error {
				r.Customers, r.Rejections["customers"] = silver.SanitizeCustomers(raw.Customers, opts.Now)
				return nil
			},
		},
		{
			name: "validate_orders",
			run: func(r *Result) error {
				r.Orders, r.Rejections["orders"] = silver.ValidateOrders(raw.Orders, opts.Now)
				return nil
			},
		},
		{
			name: "validate_order_items",
			run: func(r *Result) error {
				itemOpts := silver.OrderItemOptions{ExcludeZeroValue: opts.ExcludeZeroValue}
				r.OrderItems, r.Rejections["order_items"] = silver.ValidateOrderItems(raw.OrderItems, opts.Now, itemOpts)
				return nil
			},
		},
		{
			name: "standardize_products",
			run: func(r *Result) error {
				r.Products, r.Rejections["products"] = silver.StandardizeProducts(raw.Products, opts.Now)
				return nil
			},
		},
		{
			name:      "aggregate_daily_revenue",
			dependsOn: []string{"validate_orders", "validate_order_items"},
			run: func(r *Result) error {
				r.DailyRevenue = gold.AggregateDailyRevenue(r.Orders, r.OrderItems)
				return nil
			},
		},
		{
			name:      "compute_rfm",
			dependsOn: []string{"sanitize_customers", "validate_orders", "validate_order_items"},
			run: func(r *Result) error {
				r.ReferenceDate = opts.ReferenceDate
				if r.ReferenceDate.IsZero() {
					r.ReferenceDate = maxPurchaseTS(r.Orders)
				}
				r.RFM = gold.ComputeRFM(r.Customers, r.Orders, r.OrderItems, r.ReferenceDate)
				return nil
			},
		},
		{
			name:      "summarize_categories",
			dependsOn: []string{"validate_order_items", "standardize_products"},
			run: func(r *Result) error {
				r.Categories = gold.SummarizeCategories(r.OrderItems, r.Products)
				r.ProductSummaries = gold.SummarizeProducts(r.OrderItems, r.Products)
				return nil
			},
		},
		{
			name:      "quality_gate",
			dependsOn: []string{"aggregate_daily_revenue", "compute_rfm", "summarize_categories"},
			run: func(r *Result) error {
				gate := quality.NewGate(opts.QualityPolicy)
				report, err := gate.Check(r.RunID.String(), opts.Now, DefaultExpectations(), goldTables(r))
				if err != nil {
					return fmt.Errorf("pipeline: quality gate failed to run: %w", err)
				}
				r.Quality = report
				return nil
			},
		},
	}

	if err := checkTopology(stages); err != nil {
		return nil, err
	}

	for _, s := range stages {
		started := time.Now()
		if err := s.run(result); err != nil {
			return nil, err
		}
		log.Debug().
			Str("run_id", runID.String()).
			Str("stage", s.name).
			Dur("took", time.Since(started)).
			Msg("pipeline: stage completed")
	}

	return result, nil
}

// checkTopology verifies that every declared dependency exists and appears
// earlier in the stage list, so sequential execution respects the graph.
func checkTopology(stages []stage) error {
	done := make(map[string]bool, len(stages))
	for _, s := range stages {
		for _, dep := range s.dependsOn {
			if !done[dep] {
				return fmt.Errorf("pipeline: stage %q depends on %q which has not run before it", s.name, dep)
			}
		}
		done[s.name] = true
	}

	return nil
}

func maxPurchaseTS(orders []silver.CleanOrder) time.Time {
	var max time.Time
	for _, o := range orders {
		if o.PurchaseTS.After(max) {
			max = o.PurchaseTS
		}
	}

	return max
}

// SegmentCounts summarizes the RFM output for reporting.
func (r *Result) SegmentCounts() map[gold.Segment]int {
	counts := make(map[gold.Segment]int)
	for _, rec := range r.RFM {
		counts[rec.Segment]++
	}

	return counts
}

// RegionCounts summarizes the clean customer set for reporting.
func (r *Result) RegionCounts() map[silver.Region]int {
	counts := make(map[silver.Region]int)
	for _, c := range r.Customers {
		counts[c.Region]++
	}

	return counts
}
