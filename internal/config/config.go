package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime settings for the tool.
type Config struct {
	LogLevel    string       `yaml:"logLevel"`
	ResultsPath string       `yaml:"resultsPath"`
	Report      ReportConfig `yaml:"report"`
}

// ReportConfig holds the column widths of the console breakdown.
type ReportConfig struct {
	ProductWidth  int `yaml:"productWidth"`
	QuantityWidth int `yaml:"quantityWidth"`
	CostWidth     int `yaml:"costWidth"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		ResultsPath: "SalesResults.txt",
		Report: ReportConfig{
			ProductWidth:  50,
			QuantityWidth: 10,
			CostWidth:     20,
		},
	}
}

// Load builds the configuration by merging defaults, file, environment, and
// flags, and returns the remaining positional arguments.
func Load() (Config, []string, error) {
	cfg := DefaultConfig()

	configFile := envOrDefault("SALESREPORT_CONFIG_FILE", "")

	fs := flag.NewFlagSet("salesreport", flag.ContinueOnError)
	fs.StringVar(&configFile, "config", configFile, "Path to YAML config file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ResultsPath, "results-path", cfg.ResultsPath, "Path of the results file")

	if err := fs.Parse(os.Args[1:]); err != nil { // flag set already prints errors
		return Config{}, nil, err
	}

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return Config{}, nil, err
		}
	}

	// Apply env overrides after file load so that env > file. Flags parsed
	// above remain the ultimate override for the values they set.
	applyEnvOverrides(&cfg)

	if cfg.Report.ProductWidth <= 0 {
		cfg.Report.ProductWidth = 50
	}
	if cfg.Report.QuantityWidth <= 0 {
		cfg.Report.QuantityWidth = 10
	}
	if cfg.Report.CostWidth <= 0 {
		cfg.Report.CostWidth = 20
	}
	if cfg.ResultsPath == "" {
		cfg.ResultsPath = "SalesResults.txt"
	}

	return cfg, fs.Args(), nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path provided by the operator
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	type fileConfig Config
	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	mergeConfigs(cfg, Config(fileCfg))
	return nil
}

func mergeConfigs(base *Config, override Config) {
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.ResultsPath != "" {
		base.ResultsPath = override.ResultsPath
	}
	if override.Report.ProductWidth != 0 {
		base.Report.ProductWidth = override.Report.ProductWidth
	}
	if override.Report.QuantityWidth != 0 {
		base.Report.QuantityWidth = override.Report.QuantityWidth
	}
	if override.Report.CostWidth != 0 {
		base.Report.CostWidth = override.Report.CostWidth
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SALESREPORT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SALESREPORT_RESULTS_PATH"); v != "" {
		cfg.ResultsPath = v
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
