package domain

// Config represents the main application configuration
type Config struct {
	Genome    GenomeConfig    `mapstructure:"genome"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Report    ReportConfig    `mapstructure:"report"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GenomeConfig controls how raw genotyping exports are read
type GenomeConfig struct {
	Path string `mapstructure:"path"`
}

// AnalysisConfig selects which categories to resolve; empty means all
type AnalysisConfig struct {
	Categories []string `mapstructure:"categories"`
}

// KnowledgeConfig configures the optional SQLite marker store
type KnowledgeConfig struct {
	StoreEnabled bool   `mapstructure:"store_enabled"`
	StorePath    string `mapstructure:"store_path"`
	CacheSize    int    `mapstructure:"cache_size"`
}

// ReportConfig controls report output
type ReportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
