package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	OpenAIKey         string  `yaml:"openai_key"`
	OpenAIModel       string  `yaml:"openai_model"`
	DatabaseDialect   string  `yaml:"database_dialect"`
	DatabaseURL       string  `yaml:"database_url"`
	TargetFoodCostPct float64 `yaml:"target_food_cost_pct"`
	ReportWindowDays  int     `yaml:"report_window_days"`
	MetricsConfig     struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		OpenAIModel:       "gpt-4o-mini",
		DatabaseDialect:   "sqlite3",
		DatabaseURL:       "larder.db",
		TargetFoodCostPct: 30,
		ReportWindowDays:  30,
	}
	cfg.MetricsConfig.Enabled = true
	cfg.MetricsConfig.Port = 9090
	cfg.MetricsConfig.Path = "/metrics"
	return cfg
}

// Load reads the YAML config file and applies environment overrides.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Run on defaults and environment alone.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAIKey = key
	}
	if url := os.Getenv("LARDER_DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if dialect := os.Getenv("LARDER_DATABASE_DIALECT"); dialect != "" {
		cfg.DatabaseDialect = dialect
	}

	if cfg.TargetFoodCostPct <= 0 || cfg.TargetFoodCostPct > 100 {
		return nil, fmt.Errorf("target_food_cost_pct must be in (0, 100], got %v", cfg.TargetFoodCostPct)
	}
	if cfg.ReportWindowDays <= 0 {
		cfg.ReportWindowDays = 30
	}

	return cfg, nil
}
