package gold

import (
	"sort"
	"time"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

// AggregateDailyRevenue inner-joins clean orders with clean items on
// order_id and groups the result by the UTC date of the purchase timestamp.
// Items whose order was rejected upstream contribute nothing. The output is
// sorted ascending by date so downstream consumption is deterministic.
func AggregateDailyRevenue(orders []silver.CleanOrder, items []silver.CleanOrderItem) []DailyRevenueFact {
	purchaseByOrder := make(map[string]time.Time, len(orders))
	for _, o := range orders {
		purchaseByOrder[o.OrderID] = o.PurchaseTS
	}

	type bucket struct {
		revenue float64
		rows    int
		orders  map[string]struct{}
	}
	buckets := make(map[time.Time]*bucket)

	for _, item := range items {
		purchase, ok := purchaseByOrder[item.OrderID]
		if !ok {
			continue
		}

		date := dateOf(purchase)
		b, ok := buckets[date]
		if !ok {
			b = &bucket{orders: make(map[string]struct{})}
			buckets[date] = b
		}
		b.revenue += item.Price + item.FreightValue
		b.rows++
		b.orders[item.OrderID] = struct{}{}
	}

	facts := make([]DailyRevenueFact, 0, len(buckets))
	for date, b := range buckets {
		facts = append(facts, DailyRevenueFact{
			PurchaseDate:      date,
			TotalRevenue:      b.revenue,
			TotalOrders:       b.rows,
			TotalUniqueOrders: len(b.orders),
		})
	}

	sort.Slice(facts, func(i, j int) bool {
		return facts[i].PurchaseDate.Before(facts[j].PurchaseDate)
	})

	return facts
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
