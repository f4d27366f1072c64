package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/foundation/core/log"
	"github.com/msto63/tidystring/foundation/utils/filex"
	"github.com/msto63/tidystring/foundation/utils/slicex"
	"github.com/msto63/tidystring/pkg/tidy"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "TIDYSTR_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Defaults DefaultsConfig `toml:"defaults" yaml:"defaults"`
	Log      LogConfig      `toml:"log" yaml:"log"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Sources  SourcesConfig  `toml:"sources" yaml:"sources"`

	// Path is the file the configuration was read from, empty for Default().
	Path string `toml:"-" yaml:"-"`
}

// DefaultsConfig holds default operation parameters used when a flag is not
// given on the command line
type DefaultsConfig struct {
	Separator string   `toml:"separator" yaml:"separator"`
	PadSide   string   `toml:"pad_side" yaml:"pad_side"`
	PadChar   string   `toml:"pad_char" yaml:"pad_char"`
	WrapWidth int      `toml:"wrap_width" yaml:"wrap_width"`
	Dashes    []string `toml:"dashes" yaml:"dashes"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// SourcesConfig holds settings for reading input columns
type SourcesConfig struct {
	QueryTimeout Duration `toml:"query_timeout" yaml:"query_timeout"`
}

// OutputFormats are the valid values of [output] format.
var OutputFormats = []string{"json", "lines", "yaml"}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file, or from YAML when the file
// ends in .yaml or .yml
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigFailed(path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, errors.ConfigFailed(path, err)
	}

	cfg.applyDefaults()
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the TIDYSTR_CONFIG environment
// variable or the first default location that exists. Without any config
// file the built-in defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths() {
		if filex.IsFile(p) {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths returns the locations searched by LoadFromEnv in order.
func DefaultPaths() []string {
	paths := []string{"./tidystr.toml", "./tidystr.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tidystr", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Defaults.Separator == "" {
		c.Defaults.Separator = tidy.DefaultSeparator
	}
	if c.Defaults.PadSide == "" {
		c.Defaults.PadSide = string(tidy.SideBoth)
	}
	if c.Defaults.PadChar == "" {
		c.Defaults.PadChar = " "
	}
	if c.Defaults.WrapWidth == 0 {
		c.Defaults.WrapWidth = tidy.DefaultWrapWidth
	}
	if len(c.Defaults.Dashes) == 0 {
		c.Defaults.Dashes = append([]string(nil), tidy.DefaultDashes...)
	}

	if c.Log.Level == "" {
		c.Log.Level = log.DefaultLevel().String()
	}
	if c.Log.Format == "" {
		c.Log.Format = log.FormatConsole.String()
	}

	if c.Output.Format == "" {
		c.Output.Format = "lines"
	}

	if c.Sources.QueryTimeout.Duration == 0 {
		c.Sources.QueryTimeout.Duration = 30 * time.Second
	}
}

// Validate checks enumerated options and numeric ranges
func (c *Config) Validate() error {
	if !slicex.Contains(tidy.Sides(), c.Defaults.PadSide) {
		return errors.UnsupportedOption(errors.ModuleConfig, "validate", "pad_side", c.Defaults.PadSide, tidy.Sides())
	}
	if utf8.RuneCountInString(c.Defaults.PadChar) != 1 {
		return errors.InvalidArgument(errors.ModuleConfig, "validate", "pad_char", c.Defaults.PadChar, "must be exactly one character")
	}
	if c.Defaults.WrapWidth < 1 {
		return errors.InvalidArgument(errors.ModuleConfig, "validate", "wrap_width", c.Defaults.WrapWidth, "must be positive")
	}
	for _, d := range c.Defaults.Dashes {
		if d == "" {
			return errors.InvalidArgument(errors.ModuleConfig, "validate", "dashes", c.Defaults.Dashes, "must not contain an empty string")
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.UnsupportedOption(errors.ModuleConfig, "validate", "log level", c.Log.Level,
			[]string{"debug", "error", "info", "trace", "warn"})
	}
	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return errors.UnsupportedOption(errors.ModuleConfig, "validate", "log format", c.Log.Format,
			[]string{"console", "json", "logfmt", "text"})
	}

	if !slicex.Contains(OutputFormats, c.Output.Format) {
		return errors.UnsupportedOption(errors.ModuleConfig, "validate", "output format", c.Output.Format, OutputFormats)
	}

	if c.Sources.QueryTimeout.Duration < 0 {
		return errors.InvalidArgument(errors.ModuleConfig, "validate", "query_timeout", c.Sources.QueryTimeout, "must not be negative")
	}
	return nil
}

// String returns a short summary for debug logging
func (c *Config) String() string {
	src := c.Path
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("config(%s: sep=%q pad=%s/%q wrap=%d log=%s/%s output=%s)",
		src, c.Defaults.Separator, c.Defaults.PadSide, c.Defaults.PadChar, c.Defaults.WrapWidth,
		c.Log.Level, c.Log.Format, c.Output.Format)
}
