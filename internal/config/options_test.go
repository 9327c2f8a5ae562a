package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/config"
)

func writeOptionsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOptions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(t *testing.T, opts *config.PipelineOptions)
	}{
		{
			name:    "full_options",
			content: "reference_date: \"2018-06-15\"\nexclude_zero_value: true\nquality_policy: row_conjunction\n",
			check: func(t *testing.T, opts *config.PipelineOptions) {
				assert.True(t, opts.ExcludeZeroValue)
				assert.Equal(t, "row_conjunction", opts.QualityPolicy)

				ref, err := opts.ParsedReferenceDate()
				require.NoError(t, err)
				assert.Equal(t, time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC), ref)
			},
		},
		{
			name:    "empty_file_defaults",
			content: "{}\n",
			check: func(t *testing.T, opts *config.PipelineOptions) {
				assert.False(t, opts.ExcludeZeroValue)
				assert.Empty(t, opts.QualityPolicy)

				ref, err := opts.ParsedReferenceDate()
				require.NoError(t, err)
				assert.True(t, ref.IsZero())
			},
		},
		{
			name:    "bad_reference_date",
			content: "reference_date: \"15/06/2018\"\n",
			wantErr: true,
		},
		{
			name:    "unknown_policy",
			content: "quality_policy: per_row_median\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := config.LoadOptions(writeOptionsFile(t, tt.content))

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestLoadOptions_MissingFileYieldsDefaults(t *testing.T) {
	opts, err := config.LoadOptions(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.False(t, opts.ExcludeZeroValue)
}
