package gold

import (
	"time"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

// DailyRevenueFact is one row per calendar date present in the joined
// order/item set.
type DailyRevenueFact struct {
	PurchaseDate      time.Time `json:"purchase_date" db:"purchase_date"`
	TotalRevenue      float64   `json:"total_revenue" db:"total_revenue"`
	TotalOrders       int       `json:"total_orders" db:"total_orders"`
	TotalUniqueOrders int       `json:"total_unique_orders" db:"total_unique_orders"`
}

// Segment is an RFM customer segment label.
type Segment string

const (
	SegmentChampions         Segment = "Champions"
	SegmentLoyalCustomers    Segment = "Loyal Customers"
	SegmentPotentialLoyalist Segment = "Potential Loyalist"
	SegmentAtRisk            Segment = "At Risk"
	SegmentHibernating       Segment = "Hibernating"
	SegmentNewCustomers      Segment = "New Customers"
	SegmentNeedAttention     Segment = "Need Attention"
)

// CustomerRFMRecord is one row per customer with at least one valid order.
type CustomerRFMRecord struct {
	CustomerID         string        `json:"customer_id" db:"customer_id"`
	CustomerState      string        `json:"customer_state" db:"customer_state"`
	CustomerCity       string        `json:"customer_city" db:"customer_city"`
	Region             silver.Region `json:"customer_region" db:"customer_region"`
	DaysSinceLastOrder int           `json:"days_since_last_order" db:"days_since_last_order"`
	TotalOrders        int           `json:"total_orders" db:"total_orders"`
	TotalSpent         float64       `json:"total_spent" db:"total_spent"`
	RecencyScore       int           `json:"recency_score" db:"recency_score"`
	FrequencyScore     int           `json:"frequency_score" db:"frequency_score"`
	MonetaryScore      int           `json:"monetary_score" db:"monetary_score"`
	Segment            Segment       `json:"segment" db:"segment"`
}

// CategorySummary aggregates item revenue per product category. RevenueRank
// is a dense rank: 1 is the highest-revenue category, ties share a rank.
type CategorySummary struct {
	CategoryName         string  `json:"category_name" db:"category_name"`
	CategoryTotalRevenue float64 `json:"category_total_revenue" db:"category_total_revenue"`
	CategoryTotalOrders  int     `json:"category_total_orders" db:"category_total_orders"`
	ProductsInCategory   int     `json:"products_in_category" db:"products_in_category"`
	RevenueRank          int     `json:"revenue_rank" db:"revenue_rank"`
}

// ProductSummary aggregates item revenue per product.
type ProductSummary struct {
	ProductID     string  `json:"product_id" db:"product_id"`
	ItemRevenue   float64 `json:"item_revenue" db:"item_revenue"`
	TotalOrders   int     `json:"total_orders" db:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value" db:"avg_order_value"`
}
