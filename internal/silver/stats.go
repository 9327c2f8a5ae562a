package silver

// RejectReason identifies the validation rule a dropped record failed.
type RejectReason string

const (
	ReasonMissingState      RejectReason = "missing_state"
	ReasonMalformedCity     RejectReason = "malformed_city"
	ReasonBadZipLength      RejectReason = "bad_zip_length"
	ReasonMissingRequired   RejectReason = "missing_required_field"
	ReasonTimestampOrder    RejectReason = "non_monotonic_timestamps"
	ReasonZeroValue         RejectReason = "zero_value_item"
	ReasonNonPositiveCounts RejectReason = "non_positive_counts"
)

// RejectionStats counts dropped records per reason. Rejected records are
// removed from the output, never corrected, but the counts stay observable
// so callers can report them.
type RejectionStats struct {
	Reasons map[RejectReason]int `json:"reasons"`
}

func newRejectionStats() RejectionStats {
	return RejectionStats{Reasons: make(map[RejectReason]int)}
}

func (s *RejectionStats) reject(reason RejectReason) {
	s.Reasons[reason]++
}

// Total returns the number of records dropped across all reasons.
func (s RejectionStats) Total() int {
	total := 0
	for _, n := range s.Reasons {
		total += n
	}

	return total
}
