// Package config loads settings for the rpn command from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/rpn/internal/logger"
)

// Config is the complete configuration of the rpn command.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is the fmt verb applied to each result.
	Format string `yaml:"format"`
	// Echo prints the postfix form of each expression.
	Echo bool `yaml:"echo"`
	// Strict rejects malformed expressions instead of evaluating them
	// permissively.
	Strict bool `yaml:"strict"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "%v",
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			Output:     "stderr",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// ParseConfig parses YAML on top of the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path, applies environment overrides,
// and validates the result. An empty path uses only the defaults and the
// environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		cfg, err = ParseConfig(data)
		if err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Serialize renders the configuration as YAML.
func (c *Config) Serialize() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("RPN_FORMAT"); ok {
		c.Output.Format = v
	}
	if v, ok := os.LookupEnv("RPN_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv("RPN_LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	var errs []error
	if c.Output.Format == "" {
		errs = append(errs, errors.New("output.format must not be empty"))
	}
	if !slices.Contains(logger.Levels, c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level must be one of %v, not %q", logger.Levels, c.Logging.Level))
	}
	if !slices.Contains(logger.Formats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of %v, not %q", logger.Formats, c.Logging.Format))
	}
	if !slices.Contains(logger.Outputs, c.Logging.Output) {
		errs = append(errs, fmt.Errorf("logging.output must be one of %v, not %q", logger.Outputs, c.Logging.Output))
	}
	if (c.Logging.Output == "file" || c.Logging.Output == "both") && c.Logging.File == "" {
		errs = append(errs, fmt.Errorf("logging.file is required for output %q", c.Logging.Output))
	}
	return errors.Join(errs...)
}

// Logger converts the logging settings for the logger package.
func (c *Config) Logger() *logger.Config {
	return &logger.Config{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		Output:     c.Logging.Output,
		FilePath:   c.Logging.File,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
	}
}
