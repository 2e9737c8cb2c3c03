package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/l3aro/intcalc/internal/log"
	"github.com/l3aro/intcalc/pkg/formatter"
	"gopkg.in/yaml.v3"
)

// Config holds presentation settings for the intcalc command. Arithmetic
// limits are fixed in pkg/intmath and are not configurable.
type Config struct {
	// Format selects the result encoding: xml, json, yaml, msgpack or text.
	Format string `yaml:"format" env:"INTCALC_FORMAT"`

	// XMLDeclaration prepends the <?xml ...?> header to XML output.
	XMLDeclaration bool `yaml:"xml_declaration" env:"INTCALC_XML_DECLARATION"`

	// XMLIndent is the per-level indent for XML and JSON output. Empty keeps
	// documents on one line.
	XMLIndent string `yaml:"xml_indent" env:"INTCALC_XML_INDENT"`

	// Logging
	LogLevel string `yaml:"log_level" env:"INTCALC_LOG_LEVEL"`
	LogJSON  bool   `yaml:"log_json" env:"INTCALC_LOG_JSON"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:         formatter.FormatXML,
		XMLDeclaration: true,
		XMLIndent:      "",
		LogLevel:       "error",
		LogJSON:        false,
	}
}

// GlobalConfigFilePath returns the global config file path (~/.intcalc/config.yaml)
func GlobalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".intcalc", "config.yaml")
	}
	return filepath.Join(home, ".intcalc", "config.yaml")
}

// ProjectConfigFilePath returns the project-level config file path (./.intcalc/config.yaml)
func ProjectConfigFilePath() string {
	return filepath.Join(".intcalc", "config.yaml")
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.intcalc/config.yaml)
// 3. Global config (~/.intcalc/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range []string{GlobalConfigFilePath(), ProjectConfigFilePath()} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("INTCALC_FORMAT"); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("INTCALC_XML_DECLARATION"); ok && v != "" {
		cfg.XMLDeclaration = parseBool(v)
	}
	if v, ok := os.LookupEnv("INTCALC_XML_INDENT"); ok {
		cfg.XMLIndent = v
	}
	if v := os.Getenv("INTCALC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("INTCALC_LOG_JSON"); v != "" {
		cfg.LogJSON = parseBool(v)
	}
}

// Validate checks that the configuration has valid required fields
func (c *Config) Validate() error {
	if !formatter.Supported(c.Format) {
		return fmt.Errorf("invalid format: %q (must be one of %s)",
			c.Format, strings.Join(formatter.Formats(), ", "))
	}
	if strings.Trim(c.XMLIndent, " \t") != "" {
		return fmt.Errorf("xml_indent must contain only spaces or tabs")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// FormatterOptions returns the formatter options implied by the config.
func (c *Config) FormatterOptions() formatter.Options {
	return formatter.Options{
		Declaration: c.XMLDeclaration,
		Indent:      c.XMLIndent,
	}
}

// Level returns the parsed log level, falling back to warn.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
