package gold

import (
	"sort"
	"time"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

const hoursPerDay = 24

// segmentRules classifies a customer from its three scores. Rule order is
// load-bearing: conditions overlap (a Champion also satisfies Loyal
// Customers), so evaluation stops at the first match.
var segmentRules = []struct {
	segment Segment
	matches func(recency, frequency, monetary int) bool
}{
	{SegmentChampions, func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }},
	{SegmentLoyalCustomers, func(r, f, m int) bool { return f >= 4 }},
	{SegmentPotentialLoyalist, func(r, f, m int) bool { return r >= 4 && f >= 2 }},
	{SegmentAtRisk, func(r, f, m int) bool { return r <= 2 && f >= 3 }},
	{SegmentHibernating, func(r, f, m int) bool { return r <= 2 && f <= 2 }},
	{SegmentNewCustomers, func(r, f, m int) bool { return r >= 4 && f == 1 }},
}

// ComputeRFM joins clean customers, orders and items and produces one RFM
// record per customer that has at least one order with at least one line
// item. The reference date must be supplied by the caller (typically the
// max purchase timestamp or the run time); the engine never reads a clock,
// so re-running on the same input yields identical output.
func ComputeRFM(customers []silver.CleanCustomer, orders []silver.CleanOrder, items []silver.CleanOrderItem, referenceDate time.Time) []CustomerRFMRecord {
	ordersByID := make(map[string]silver.CleanOrder, len(orders))
	for _, o := range orders {
		ordersByID[o.OrderID] = o
	}

	type activity struct {
		lastPurchase time.Time
		orderIDs     map[string]struct{}
		spent        float64
	}
	byCustomer := make(map[string]*activity)

	for _, item := range items {
		order, ok := ordersByID[item.OrderID]
		if !ok {
			continue
		}

		a, ok := byCustomer[order.CustomerID]
		if !ok {
			a = &activity{orderIDs: make(map[string]struct{})}
			byCustomer[order.CustomerID] = a
		}
		if order.PurchaseTS.After(a.lastPurchase) {
			a.lastPurchase = order.PurchaseTS
		}
		a.orderIDs[item.OrderID] = struct{}{}
		a.spent += item.Price + item.FreightValue
	}

	records := make([]CustomerRFMRecord, 0, len(byCustomer))
	for _, c := range customers {
		a, ok := byCustomer[c.CustomerID]
		if !ok {
			continue
		}

		days := int(referenceDate.Sub(a.lastPurchase).Hours() / hoursPerDay)
		if days < 0 {
			days = 0
		}

		recency := scoreRecency(days)
		frequency := scoreFrequency(len(a.orderIDs))
		monetary := scoreMonetary(a.spent)

		records = append(records, CustomerRFMRecord{
			CustomerID:         c.CustomerID,
			CustomerState:      c.State,
			CustomerCity:       c.City,
			Region:             c.Region,
			DaysSinceLastOrder: days,
			TotalOrders:        len(a.orderIDs),
			TotalSpent:         a.spent,
			RecencyScore:       recency,
			FrequencyScore:     frequency,
			MonetaryScore:      monetary,
			Segment:            ClassifySegment(recency, frequency, monetary),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CustomerID < records[j].CustomerID
	})

	return records
}

// ClassifySegment evaluates the segment rules in priority order and returns
// the first match, defaulting to Need Attention.
func ClassifySegment(recency, frequency, monetary int) Segment {
	for _, rule := range segmentRules {
		if rule.matches(recency, frequency, monetary) {
			return rule.segment
		}
	}

	return SegmentNeedAttention
}

func scoreRecency(days int) int {
	switch {
	case days <= 90:
		return 5
	case days <= 180:
		return 4
	case days <= 365:
		return 3
	case days <= 730:
		return 2
	default:
		return 1
	}
}

func scoreFrequency(orders int) int {
	switch {
	case orders >= 10:
		return 5
	case orders >= 5:
		return 4
	case orders >= 3:
		return 3
	case orders >= 2:
		return 2
	default:
		return 1
	}
}

func scoreMonetary(spent float64) int {
	switch {
	case spent >= 1000:
		return 5
	case spent >= 500:
		return 4
	case spent >= 200:
		return 3
	case spent >= 100:
		return 2
	default:
		return 1
	}
}
