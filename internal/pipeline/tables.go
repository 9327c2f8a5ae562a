package pipeline

import (
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
)

// Gold table names as seen by the quality gate and the warehouse.
const (
	TableDailyRevenue    = "daily_revenue"
	TableCustomerRFM     = "customer_rfm"
	TableCategorySummary = "category_summary"
)

// goldTables projects the gold record sets into the gate's generic row form.
func goldTables(r *Result) []quality.Table {
	revenue := quality.Table{Name: TableDailyRevenue, Rows: make([]quality.Row, 0, len(r.DailyRevenue))}
	for _, f := range r.DailyRevenue {
		revenue.Rows = append(revenue.Rows, quality.Row{
			"purchase_date":       f.PurchaseDate,
			"total_revenue":       f.TotalRevenue,
			"total_orders":        f.TotalOrders,
			"total_unique_orders": f.TotalUniqueOrders,
		})
	}

	rfm := quality.Table{Name: TableCustomerRFM, Rows: make([]quality.Row, 0, len(r.RFM))}
	for _, rec := range r.RFM {
		rfm.Rows = append(rfm.Rows, quality.Row{
			"customer_id":           rec.CustomerID,
			"customer_state":        rec.CustomerState,
			"customer_city":         rec.CustomerCity,
			"customer_region":       string(rec.Region),
			"days_since_last_order": rec.DaysSinceLastOrder,
			"total_orders":          rec.TotalOrders,
			"total_spent":           rec.TotalSpent,
			"recency_score":         rec.RecencyScore,
			"frequency_score":       rec.FrequencyScore,
			"monetary_score":        rec.MonetaryScore,
			"segment":               string(rec.Segment),
		})
	}

	categories := quality.Table{Name: TableCategorySummary, Rows: make([]quality.Row, 0, len(r.Categories))}
	for _, c := range r.Categories {
		categories.Rows = append(categories.Rows, quality.Row{
			"category_name":          c.CategoryName,
			"category_total_revenue": c.CategoryTotalRevenue,
			"category_total_orders":  c.CategoryTotalOrders,
			"products_in_category":   c.ProductsInCategory,
			"revenue_rank":           c.RevenueRank,
		})
	}

	return []quality.Table{revenue, rfm, categories}
}
