package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		vars     map[string]string
		expected Config
	}{
		{
			name:     "defaults",
			vars:     map[string]string{},
			expected: Config{LogLevel: "info"},
		},
		{
			name: "overrides",
			vars: map[string]string{
				"LOADSPLASH_LOG_LEVEL": "debug",
				"LOADSPLASH_OS_NAME":   "Mac OS X",
			},
			expected: Config{LogLevel: "debug", OSName: "Mac OS X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadFrom(tt.vars)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
