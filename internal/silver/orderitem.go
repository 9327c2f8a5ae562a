package silver

import (
	"time"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
)

// OrderItemOptions configures the order-item validator.
type OrderItemOptions struct {
	// ExcludeZeroValue additionally drops items where both price and freight
	// are zero. Off by default: free items with paid freight (and vice versa)
	// are legitimate.
	ExcludeZeroValue bool
}

// ValidateOrderItems drops line items missing any of product_id, seller_id,
// shipping_limit_date, price or freight_value, and optionally items whose
// price and freight are both zero.
func ValidateOrderItems(raws []bronze.RawOrderItem, processedAt time.Time, opts OrderItemOptions) ([]CleanOrderItem, RejectionStats) {
	clean := make([]CleanOrderItem, 0, len(raws))
	stats := newRejectionStats()

	for _, raw := range raws {
		if raw.ProductID == nil || *raw.ProductID == "" ||
			raw.SellerID == nil || *raw.SellerID == "" ||
			raw.ShippingLimitDate == nil || raw.Price == nil || raw.FreightValue == nil {
			stats.reject(ReasonMissingRequired)
			continue
		}
		if opts.ExcludeZeroValue && *raw.Price == 0 && *raw.FreightValue == 0 {
			stats.reject(ReasonZeroValue)
			continue
		}

		clean = append(clean, CleanOrderItem{
			OrderID:           raw.OrderID,
			ProductID:         *raw.ProductID,
			SellerID:          *raw.SellerID,
			Price:             *raw.Price,
			FreightValue:      *raw.FreightValue,
			ShippingLimitDate: *raw.ShippingLimitDate,
			ProcessedAt:       processedAt,
		})
	}

	return clean, stats
}
