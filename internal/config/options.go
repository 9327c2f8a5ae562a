package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// PipelineOptions are the tunable knobs of one pipeline run, loaded from a
// yaml file. All of them have safe zero values, so the file is optional.
type PipelineOptions struct {
	// ReferenceDate anchors the RFM recency window (YYYY-MM-DD). Empty means
	// "derive from the data" (max purchase timestamp).
	ReferenceDate string `yaml:"reference_date" validate:"omitempty,datetime=2006-01-02"`
	// ExcludeZeroValue drops order items with zero price and zero freight.
	ExcludeZeroValue bool `yaml:"exclude_zero_value"`
	// QualityPolicy selects the gate aggregation policy.
	QualityPolicy string `yaml:"quality_policy" validate:"omitempty,oneof=expectation_mean row_conjunction"`
}

// LoadOptions reads and validates the pipeline options file. A missing file
// yields the defaults.
func LoadOptions(path string) (*PipelineOptions, error) {
	opts := &PipelineOptions{}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return opts, nil
			}
			return nil, fmt.Errorf("config: failed to open options file: %w", err)
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(opts); err != nil {
			return nil, fmt.Errorf("config: invalid options file: %w", err)
		}
	}

	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("config: invalid pipeline options: %w", err)
	}

	return opts, nil
}

// ParsedReferenceDate returns the reference date as a UTC timestamp, or the
// zero time when unset.
func (o *PipelineOptions) ParsedReferenceDate() (time.Time, error) {
	if o.ReferenceDate == "" {
		return time.Time{}, nil
	}

	ts, err := time.Parse("2006-01-02", o.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: invalid reference_date: %w", err)
	}

	return ts.UTC(), nil
}
