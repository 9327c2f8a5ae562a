package gold

import (
	"sort"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

// SummarizeCategories inner-joins clean items with clean products and
// aggregates revenue, distinct orders and distinct products per category.
// Categories are ranked by revenue with a dense rank: equal revenue shares a
// rank and the next distinct value gets the previous rank plus one.
func SummarizeCategories(items []silver.CleanOrderItem, products []silver.CleanProduct) []CategorySummary {
	categoryByProduct := make(map[string]string, len(products))
	for _, p := range products {
		categoryByProduct[p.ProductID] = p.CategoryName
	}

	type bucket struct {
		revenue  float64
		orders   map[string]struct{}
		products map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, item := range items {
		category, ok := categoryByProduct[item.ProductID]
		if !ok {
			continue
		}

		b, ok := buckets[category]
		if !ok {
			b = &bucket{orders: make(map[string]struct{}), products: make(map[string]struct{})}
			buckets[category] = b
		}
		b.revenue += item.Price + item.FreightValue
		b.orders[item.OrderID] = struct{}{}
		b.products[item.ProductID] = struct{}{}
	}

	summaries := make([]CategorySummary, 0, len(buckets))
	for category, b := range buckets {
		summaries = append(summaries, CategorySummary{
			CategoryName:         category,
			CategoryTotalRevenue: b.revenue,
			CategoryTotalOrders:  len(b.orders),
			ProductsInCategory:   len(b.products),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CategoryTotalRevenue != summaries[j].CategoryTotalRevenue {
			return summaries[i].CategoryTotalRevenue > summaries[j].CategoryTotalRevenue
		}
		return summaries[i].CategoryName < summaries[j].CategoryName
	})

	rank := 0
	var prevRevenue float64
	for i := range summaries {
		if rank == 0 || summaries[i].CategoryTotalRevenue != prevRevenue {
			rank++
			prevRevenue = summaries[i].CategoryTotalRevenue
		}
		summaries[i].RevenueRank = rank
	}

	return summaries
}

// SummarizeProducts aggregates item revenue per product over the items that
// have a matching clean product. A product's average order value divides by
// its distinct order count; a zero denominator cannot occur for an emitted
// row (revenue implies at least one order), but the guard stays explicit.
func SummarizeProducts(items []silver.CleanOrderItem, products []silver.CleanProduct) []ProductSummary {
	known := make(map[string]struct{}, len(products))
	for _, p := range products {
		known[p.ProductID] = struct{}{}
	}

	type bucket struct {
		revenue float64
		orders  map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, item := range items {
		if _, ok := known[item.ProductID]; !ok {
			continue
		}

		b, ok := buckets[item.ProductID]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[item.ProductID] = b
		}
		b.revenue += item.Price + item.FreightValue
		b.orders[item.OrderID] = struct{}{}
	}

	summaries := make([]ProductSummary, 0, len(buckets))
	for productID, b := range buckets {
		if len(b.orders) == 0 {
			continue
		}

		summaries = append(summaries, ProductSummary{
			ProductID:     productID,
			ItemRevenue:   b.revenue,
			TotalOrders:   len(b.orders),
			AvgOrderValue: b.revenue / float64(len(b.orders)),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ProductID < summaries[j].ProductID
	})

	return summaries
}
