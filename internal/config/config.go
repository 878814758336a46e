// Package config loads application configuration from files and the
// environment through Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/genome-annotator/internal/domain"
)

// Manager loads and validates the application configuration
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/genome-annotator/")

	viper.SetEnvPrefix("ANNOTATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars are enough to run.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	viper.SetDefault("genome.path", "genome.txt")

	// Empty category list means every registered category.
	viper.SetDefault("analysis.categories", []string{})

	viper.SetDefault("knowledge.store_enabled", false)
	viper.SetDefault("knowledge.store_path", "data/markers.db")
	viper.SetDefault("knowledge.cache_size", 64)

	viper.SetDefault("report.dir", "reports")
	viper.SetDefault("report.format", "markdown")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stderr")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetGenomeConfig returns genome input configuration
func (m *Manager) GetGenomeConfig() *domain.GenomeConfig {
	return &m.config.Genome
}

// GetReportConfig returns report output configuration
func (m *Manager) GetReportConfig() *domain.ReportConfig {
	return &m.config.Report
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Genome.Path == "" {
		return fmt.Errorf("genome path is required")
	}

	if config.Knowledge.StoreEnabled && config.Knowledge.StorePath == "" {
		return fmt.Errorf("knowledge store path is required when the store is enabled")
	}
	if config.Knowledge.CacheSize < 0 {
		return fmt.Errorf("invalid knowledge cache size: %d", config.Knowledge.CacheSize)
	}

	validFormats := map[string]bool{"markdown": true, "json": true}
	if !validFormats[strings.ToLower(config.Report.Format)] {
		return fmt.Errorf("invalid report format: %s", config.Report.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
