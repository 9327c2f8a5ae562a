package pipeline

import (
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/gold"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
)

var knownSegments = map[string]bool{
	string(gold.SegmentChampions):         true,
	string(gold.SegmentLoyalCustomers):    true,
	string(gold.SegmentPotentialLoyalist): true,
	string(gold.SegmentAtRisk):            true,
	string(gold.SegmentHibernating):       true,
	string(gold.SegmentNewCustomers):      true,
	string(gold.SegmentNeedAttention):     true,
}

// DefaultExpectations is the expectation suite the gate runs against each
// gold table, mirroring the checks of the original pipeline.
func DefaultExpectations() map[string][]quality.Expectation {
	return map[string][]quality.Expectation{
		TableDailyRevenue: {
			{Name: "purchase_date_not_null", Kind: quality.KindNotNull, Column: "purchase_date"},
			{Name: "total_revenue_non_negative", Kind: quality.KindRange, Column: "total_revenue", Min: quality.Float64(0)},
			{Name: "total_orders_positive", Kind: quality.KindRange, Column: "total_orders", Min: quality.Float64(1)},
			{Name: "total_unique_orders_positive", Kind: quality.KindRange, Column: "total_unique_orders", Min: quality.Float64(1)},
			{Name: "purchase_date_unique", Kind: quality.KindUnique, Column: "purchase_date"},
		},
		TableCustomerRFM: {
			{Name: "customer_id_not_null", Kind: quality.KindNotNull, Column: "customer_id"},
			{Name: "customer_id_unique", Kind: quality.KindUnique, Column: "customer_id"},
			{Name: "recency_score_in_domain", Kind: quality.KindRange, Column: "recency_score", Min: quality.Float64(1), Max: quality.Float64(5)},
			{Name: "frequency_score_in_domain", Kind: quality.KindRange, Column: "frequency_score", Min: quality.Float64(1), Max: quality.Float64(5)},
			{Name: "monetary_score_in_domain", Kind: quality.KindRange, Column: "monetary_score", Min: quality.Float64(1), Max: quality.Float64(5)},
			{Name: "days_since_last_order_non_negative", Kind: quality.KindRange, Column: "days_since_last_order", Min: quality.Float64(0)},
			{Name: "total_spent_positive", Kind: quality.KindPredicate, Column: "total_spent", Predicate: func(v any) bool {
				spent, ok := v.(float64)
				return ok && spent > 0
			}},
			{Name: "segment_is_known", Kind: quality.KindPredicate, Column: "segment", Predicate: func(v any) bool {
				s, ok := v.(string)
				return ok && knownSegments[s]
			}},
		},
		TableCategorySummary: {
			{Name: "category_name_not_null", Kind: quality.KindNotNull, Column: "category_name"},
			{Name: "category_revenue_non_negative", Kind: quality.KindRange, Column: "category_total_revenue", Min: quality.Float64(0)},
			{Name: "revenue_rank_positive", Kind: quality.KindRange, Column: "revenue_rank", Min: quality.Float64(1)},
			{Name: "products_in_category_positive", Kind: quality.KindRange, Column: "products_in_category", Min: quality.Float64(1)},
		},
	}
}
