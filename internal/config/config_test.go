package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	m, err := NewManager()
	require.NoError(t, err)
	return m
}

func TestNewManagerDefaults(t *testing.T) {
	m := newTestManager(t)

	cfg := m.GetConfig()
	assert.Equal(t, "genome.txt", cfg.Genome.Path)
	assert.Empty(t, cfg.Analysis.Categories)
	assert.False(t, cfg.Knowledge.StoreEnabled)
	assert.Equal(t, "data/markers.db", cfg.Knowledge.StorePath)
	assert.Equal(t, 64, cfg.Knowledge.CacheSize)
	assert.Equal(t, "reports", cfg.Report.Dir)
	assert.Equal(t, "markdown", cfg.Report.Format)
	assert.Equal(t, "info", cfg.Logging.Level)

	assert.NoError(t, m.Validate())
}

func TestManagerEnvOverride(t *testing.T) {
	t.Setenv("ANNOTATOR_GENOME_PATH", "/data/export.txt")
	t.Setenv("ANNOTATOR_LOGGING_LEVEL", "debug")

	m := newTestManager(t)

	assert.Equal(t, "/data/export.txt", m.GetGenomeConfig().Path)
	assert.Equal(t, "debug", m.GetConfig().Logging.Level)
}

func TestManagerAccessorOverride(t *testing.T) {
	m := newTestManager(t)

	// Command-line overrides mutate through the section accessors.
	m.GetGenomeConfig().Path = "/data/export.txt"
	m.GetReportConfig().Dir = "/data/reports"

	assert.Equal(t, "/data/export.txt", m.GetConfig().Genome.Path)
	assert.Equal(t, "/data/reports", m.GetConfig().Report.Dir)
}

func TestManagerValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Manager)
		wantErr string
	}{
		{
			name:    "missing genome path",
			mutate:  func(m *Manager) { m.config.Genome.Path = "" },
			wantErr: "genome path is required",
		},
		{
			name: "store enabled without path",
			mutate: func(m *Manager) {
				m.config.Knowledge.StoreEnabled = true
				m.config.Knowledge.StorePath = ""
			},
			wantErr: "knowledge store path is required",
		},
		{
			name:    "negative cache size",
			mutate:  func(m *Manager) { m.config.Knowledge.CacheSize = -1 },
			wantErr: "invalid knowledge cache size",
		},
		{
			name:    "bad report format",
			mutate:  func(m *Manager) { m.config.Report.Format = "pdf" },
			wantErr: "invalid report format",
		},
		{
			name:    "bad log level",
			mutate:  func(m *Manager) { m.config.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t)
			tt.mutate(m)

			err := m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
