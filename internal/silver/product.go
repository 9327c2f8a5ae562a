package silver

import (
	"strings"
	"time"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
)

// StandardizeProducts trims and uppercases the category name and drops
// products whose name length, description length or photo count is missing
// or non-positive.
func StandardizeProducts(raws []bronze.RawProduct, processedAt time.Time) ([]CleanProduct, RejectionStats) {
	clean := make([]CleanProduct, 0, len(raws))
	stats := newRejectionStats()

	for _, raw := range raws {
		if !positive(raw.NameLength) || !positive(raw.DescriptionLength) || !positive(raw.PhotosQty) {
			stats.reject(ReasonNonPositiveCounts)
			continue
		}

		category := ""
		if raw.CategoryName != nil {
			category = strings.ToUpper(strings.TrimSpace(*raw.CategoryName))
		}

		clean = append(clean, CleanProduct{
			ProductID:         raw.ProductID,
			CategoryName:      category,
			NameLength:        *raw.NameLength,
			DescriptionLength: *raw.DescriptionLength,
			PhotosQty:         *raw.PhotosQty,
			ProcessedAt:       processedAt,
		})
	}

	return clean, stats
}

func positive(n *int) bool {
	return n != nil && *n > 0
}
