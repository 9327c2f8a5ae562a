package silver_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

var processedAt = time.Date(2018, 7, 1, 12, 0, 0, 0, time.UTC)

func TestSanitizeCustomers(t *testing.T) {
	tests := []struct {
		name       string
		raw        bronze.RawCustomer
		wantKept   bool
		wantReason silver.RejectReason
		wantCity   string
		wantState  string
		wantRegion silver.Region
	}{
		{
			name:       "valid_customer",
			raw:        bronze.RawCustomer{CustomerID: "c1", CustomerUniqueID: "u1", ZipPrefix: "01310", City: "sao paulo", State: "sp"},
			wantKept:   true,
			wantCity:   "SAO PAULO",
			wantState:  "SP",
			wantRegion: silver.RegionSudeste,
		},
		{
			name:       "accented_city_survives",
			raw:        bronze.RawCustomer{CustomerID: "c2", CustomerUniqueID: "u2", ZipPrefix: "01310", City: "São Paulo", State: "SP"},
			wantKept:   true,
			wantCity:   "SÃO PAULO",
			wantState:  "SP",
			wantRegion: silver.RegionSudeste,
		},
		{
			name:       "city_with_digits_rejected",
			raw:        bronze.RawCustomer{CustomerID: "c3", CustomerUniqueID: "u3", ZipPrefix: "01310", City: "São Paulo123", State: "SP"},
			wantReason: silver.ReasonMalformedCity,
		},
		{
			name:       "blank_state_rejected",
			raw:        bronze.RawCustomer{CustomerID: "c4", CustomerUniqueID: "u4", ZipPrefix: "01310", City: "Curitiba", State: "   "},
			wantReason: silver.ReasonMissingState,
		},
		{
			name:       "short_zip_rejected",
			raw:        bronze.RawCustomer{CustomerID: "c5", CustomerUniqueID: "u5", ZipPrefix: "0131", City: "Curitiba", State: "PR"},
			wantReason: silver.ReasonBadZipLength,
		},
		{
			name:       "state_trimmed_and_uppercased",
			raw:        bronze.RawCustomer{CustomerID: "c6", CustomerUniqueID: "u6", ZipPrefix: "80010", City: "Curitiba", State: " pr "},
			wantKept:   true,
			wantCity:   "CURITIBA",
			wantState:  "PR",
			wantRegion: silver.RegionSul,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, stats := silver.SanitizeCustomers([]bronze.RawCustomer{tt.raw}, processedAt)

			if !tt.wantKept {
				assert.Empty(t, clean)
				assert.Equal(t, 1, stats.Reasons[tt.wantReason])
				assert.Equal(t, 1, stats.Total())
				return
			}

			require.Len(t, clean, 1)
			assert.Equal(t, 0, stats.Total())
			assert.Equal(t, tt.wantCity, clean[0].City)
			assert.Equal(t, tt.wantState, clean[0].State)
			assert.Equal(t, tt.wantRegion, clean[0].Region)
			assert.Equal(t, processedAt, clean[0].ProcessedAt)
		})
	}
}

func TestSanitizeCustomers_Idempotent(t *testing.T) {
	raws := []bronze.RawCustomer{
		{CustomerID: "c1", CustomerUniqueID: "u1", ZipPrefix: "01310", City: "sao paulo", State: "sp"},
		{CustomerID: "c2", CustomerUniqueID: "u2", ZipPrefix: "9001", City: "Porto Alegre", State: "RS"},
		{CustomerID: "c3", CustomerUniqueID: "u3", ZipPrefix: "40010", City: "Salvador", State: "BA"},
	}

	first, _ := silver.SanitizeCustomers(raws, processedAt)
	second, _ := silver.SanitizeCustomers(raws, processedAt)

	assert.Empty(t, cmp.Diff(first, second))
}
