package config

// Default locations, relative to the repository root.
const (
	DefaultInputPath    = "reports/cucumber-report.json"
	DefaultOutputPath   = "reports/test-report.html"
	DefaultServeAddr    = "127.0.0.1:5050"
	DefaultHistoryLimit = 10
)

// Config is the optional .snaketest/config.yml file.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	History HistoryConfig `yaml:"history"`
	Serve   ServeConfig   `yaml:"serve"`
}

// ReportConfig locates the run document and the generated report.
type ReportConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
}

// HistoryConfig enables recording runs into a DuckDB file.
type HistoryConfig struct {
	DB    string `yaml:"db"`
	Limit int    `yaml:"limit"`
}

// ServeConfig configures the report server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{}
	Normalize(&cfg)
	return cfg
}
