package silver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

func intPtr(n int) *int {
	return &n
}

func TestStandardizeProducts(t *testing.T) {
	tests := []struct {
		name         string
		raw          bronze.RawProduct
		wantKept     bool
		wantCategory string
	}{
		{
			name: "valid_product",
			raw: bronze.RawProduct{
				ProductID: "p1", CategoryName: strPtr(" beleza_saude "),
				NameLength: intPtr(40), DescriptionLength: intPtr(250), PhotosQty: intPtr(2),
			},
			wantKept:     true,
			wantCategory: "BELEZA_SAUDE",
		},
		{
			name: "nil_category_becomes_empty",
			raw: bronze.RawProduct{
				ProductID:  "p2",
				NameLength: intPtr(40), DescriptionLength: intPtr(250), PhotosQty: intPtr(2),
			},
			wantKept:     true,
			wantCategory: "",
		},
		{
			name: "zero_name_length_rejected",
			raw: bronze.RawProduct{
				ProductID: "p3", CategoryName: strPtr("esporte_lazer"),
				NameLength: intPtr(0), DescriptionLength: intPtr(250), PhotosQty: intPtr(2),
			},
		},
		{
			name: "missing_photos_rejected",
			raw: bronze.RawProduct{
				ProductID: "p4", CategoryName: strPtr("esporte_lazer"),
				NameLength: intPtr(40), DescriptionLength: intPtr(250),
			},
		},
		{
			name: "negative_description_rejected",
			raw: bronze.RawProduct{
				ProductID: "p5", CategoryName: strPtr("esporte_lazer"),
				NameLength: intPtr(40), DescriptionLength: intPtr(-1), PhotosQty: intPtr(2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, stats := silver.StandardizeProducts([]bronze.RawProduct{tt.raw}, processedAt)

			if !tt.wantKept {
				assert.Empty(t, clean)
				assert.Equal(t, 1, stats.Reasons[silver.ReasonNonPositiveCounts])
				return
			}

			require.Len(t, clean, 1)
			assert.Equal(t, 0, stats.Total())
			assert.Equal(t, tt.wantCategory, clean[0].CategoryName)
		})
	}
}
