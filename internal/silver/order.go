package silver

import (
	"strings"
	"time"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
)

// ValidateOrders standardizes and validates raw orders. The status is
// trimmed and uppercased; orders missing order_id, customer_id, order_status
// or the purchase timestamp are dropped, as are orders whose timestamp chain
// purchase ≤ approved ≤ carrier ≤ delivered is violated by any pair where
// both sides are present. Missing timestamps never fail the chain check.
func ValidateOrders(raws []bronze.RawOrder, processedAt time.Time) ([]CleanOrder, RejectionStats) {
	clean := make([]CleanOrder, 0, len(raws))
	stats := newRejectionStats()

	for _, raw := range raws {
		status := strings.ToUpper(strings.TrimSpace(raw.OrderStatus))

		if raw.OrderID == "" || raw.CustomerID == "" || status == "" || raw.PurchaseTS == nil {
			stats.reject(ReasonMissingRequired)
			continue
		}
		if !timestampsMonotonic(*raw.PurchaseTS, raw.ApprovedTS, raw.CarrierTS, raw.DeliveredTS) {
			stats.reject(ReasonTimestampOrder)
			continue
		}

		clean = append(clean, CleanOrder{
			OrderID:     raw.OrderID,
			CustomerID:  raw.CustomerID,
			OrderStatus: status,
			PurchaseTS:  *raw.PurchaseTS,
			ApprovedTS:  raw.ApprovedTS,
			CarrierTS:   raw.CarrierTS,
			DeliveredTS: raw.DeliveredTS,
			ProcessedAt: processedAt,
		})
	}

	return clean, stats
}

// timestampsMonotonic checks purchase ≤ approved ≤ carrier ≤ delivered over
// the pairs where both sides are present. A missing link does not break the
// chain: the comparison carries on from the last present timestamp.
func timestampsMonotonic(purchase time.Time, rest ...*time.Time) bool {
	prev := purchase
	for _, ts := range rest {
		if ts == nil {
			continue
		}
		if ts.Before(prev) {
			return false
		}
		prev = *ts
	}

	return true
}
