package silver

import (
	"strings"
	"time"
	"unicode"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
)

const zipPrefixLength = 5

// SanitizeCustomers standardizes and validates raw customer records. State
// and city are trimmed and uppercased; records with a blank state, a city
// containing non-alphabetic characters (spaces allowed), or a zip prefix of
// the wrong length are dropped. Survivors are enriched with their region and
// stamped with the caller-supplied processedAt.
func SanitizeCustomers(raws []bronze.RawCustomer, processedAt time.Time) ([]CleanCustomer, RejectionStats) {
	clean := make([]CleanCustomer, 0, len(raws))
	stats := newRejectionStats()

	for _, raw := range raws {
		state := strings.ToUpper(strings.TrimSpace(raw.State))
		city := strings.ToUpper(strings.TrimSpace(raw.City))

		if state == "" {
			stats.reject(ReasonMissingState)
			continue
		}
		if !isAlphabeticCity(city) {
			stats.reject(ReasonMalformedCity)
			continue
		}
		if len(raw.ZipPrefix) != zipPrefixLength {
			stats.reject(ReasonBadZipLength)
			continue
		}

		clean = append(clean, CleanCustomer{
			CustomerID:       raw.CustomerID,
			CustomerUniqueID: raw.CustomerUniqueID,
			ZipPrefix:        raw.ZipPrefix,
			City:             city,
			State:            state,
			Region:           ClassifyRegion(state),
			ProcessedAt:      processedAt,
		})
	}

	return clean, stats
}

// isAlphabeticCity reports whether the city name consists of letters and
// spaces only. Unicode letters count, so accented names like SÃO PAULO pass.
func isAlphabeticCity(city string) bool {
	if city == "" {
		return false
	}

	for _, r := range city {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}

	return true
}
