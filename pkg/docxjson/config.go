package docxjson

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "DOCXJSON"

// Config contains all configuration options for a batch run
type Config struct {
	// Dir is the directory scanned for input documents
	Dir string `mapstructure:"dir"`
	// Extension selects input files by case-insensitive suffix
	Extension string `mapstructure:"extension"`
	// Format is the output serialization (json, yaml)
	Format string `mapstructure:"format"`
	// Indent is the number of spaces per nesting level in the output
	Indent int `mapstructure:"indent"`
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `mapstructure:"log_level"`
	// NoColor disables coloured progress output
	NoColor bool `mapstructure:"no_color"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Dir:       ".",
		Extension: ".docx",
		Format:    string(FormatJSON),
		Indent:    4,
		LogLevel:  "info",
		NoColor:   false,
	}
}

// LoadConfig builds a configuration from defaults, an optional config file
// and DOCXJSON_* environment variables, in increasing precedence. A .env
// file in the working directory is loaded into the environment first. An
// empty configFile skips the file layer.
func LoadConfig(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("dir", defaults.Dir)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("indent", defaults.Indent)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("no_color", defaults.NoColor)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dir == "" {
		return &ConfigError{Field: "dir", Message: "cannot be empty"}
	}
	if c.Extension == "" {
		return &ConfigError{Field: "extension", Message: "cannot be empty"}
	}
	if _, err := ParseFormat(c.Format); err != nil {
		return &ConfigError{Field: "format", Message: err.Error()}
	}
	if c.Indent < 0 {
		return &ConfigError{Field: "indent", Message: "cannot be negative"}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error", "off":
	default:
		return &ConfigError{Field: "log_level", Message: fmt.Sprintf("must be one of debug, info, warn, error, off (got %q)", c.LogLevel)}
	}
	return nil
}

// OutputFormat returns the parsed output format
func (c *Config) OutputFormat() Format {
	f, err := ParseFormat(c.Format)
	if err != nil {
		return FormatJSON
	}
	return f
}
