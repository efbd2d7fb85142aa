package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the panelmatch configuration.
type Config struct {
	Matching   MatchingConfig   `yaml:"matching"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Dataset    DatasetConfig    `yaml:"dataset"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// MatchingConfig holds match engine settings.
type MatchingConfig struct {
	MinScore   int `yaml:"min_score"`   // exclude companies below this score (default: 60)
	MaxResults int `yaml:"max_results"` // shortlist cap (default: 10)
}

// ExtractionConfig holds LLM criterion-extraction settings for any
// OpenAI-compatible chat completion endpoint.
type ExtractionConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	TimeoutSec  int     `yaml:"timeout_sec"`
}

// DatasetConfig holds company dataset settings.
type DatasetConfig struct {
	Path string `yaml:"path"` // CSV file with the company registry
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Matching.MinScore <= 0 {
		c.Matching.MinScore = 60
	}
	if c.Matching.MaxResults <= 0 {
		c.Matching.MaxResults = 10
	}
	if c.Extraction.Model == "" {
		c.Extraction.Model = "mistral-small-latest"
	}
	if c.Extraction.BaseURL == "" {
		c.Extraction.BaseURL = "https://api.mistral.ai/v1"
	}
	if c.Extraction.Temperature <= 0 {
		c.Extraction.Temperature = 0.1
	}
	if c.Extraction.TimeoutSec <= 0 {
		c.Extraction.TimeoutSec = 60
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = filepath.Join("data", "entreprises.csv")
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Matching.MinScore > 100 {
		return fmt.Errorf("matching.min_score must be at most 100, got %d", c.Matching.MinScore)
	}
	if c.Matching.MaxResults > 1000 {
		return fmt.Errorf("matching.max_results must be at most 1000, got %d", c.Matching.MaxResults)
	}
	if c.Extraction.Temperature > 2 {
		return fmt.Errorf("extraction.temperature must be at most 2, got %g", c.Extraction.Temperature)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
