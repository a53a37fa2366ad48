// Package config holds the showorder CLI configuration: its defaults, its
// validation, viper-backed loading and the default config file writer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/showorder/search"
)

// EnvPrefix prefixes environment overrides, e.g. SHOWORDER_LIMIT=5.
const EnvPrefix = "SHOWORDER"

// LocalPath is the project-local config file looked up first.
const LocalPath = ".showorder/config.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all CLI options.
type Config struct {
	Roster   string `mapstructure:"roster" yaml:"roster"`     // CSV path, one column per team
	Limit    int    `mapstructure:"limit" yaml:"limit"`       // 0 = unlimited
	Ordering string `mapstructure:"ordering" yaml:"ordering"` // declared | degree | dynamic
	Format   string `mapstructure:"format" yaml:"format"`     // text | json | yaml
	Strict   bool   `mapstructure:"strict" yaml:"strict"`     // re-verify every setlist
	Debug    bool   `mapstructure:"debug" yaml:"debug"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Roster:   "roster.csv",
		Limit:    10,
		Ordering: search.OrderDeclared.String(),
		Format:   FormatText,
	}
}

// SetDefaults registers Defaults on v so unset keys still resolve.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("roster", d.Roster)
	v.SetDefault("limit", d.Limit)
	v.SetDefault("ordering", d.Ordering)
	v.SetDefault("format", d.Format)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("debug", d.Debug)
}

// Load reads configuration into v and returns the decoded Config.
//
// Lookup order: cfgFile when non-empty (must exist), else LocalPath, else
// $HOME/.config/showorder/config.yaml. A missing optional file is not an
// error. Environment variables prefixed with EnvPrefix override file values.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(LocalPath):
		v.SetConfigFile(LocalPath)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "showorder"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, Validate(cfg)
}

// Validate rejects unknown orderings and formats and negative limits.
func Validate(c Config) error {
	if _, err := search.ParseOrdering(c.Ordering); err != nil {
		return fmt.Errorf("%w: ordering %q", ErrInvalidConfig, c.Ordering)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit %d", ErrInvalidConfig, c.Limit)
	}

	return nil
}

// WriteDefault writes Defaults as YAML to path, creating parent directories.
// An existing file is left untouched and reported with os.ErrExist.
func WriteDefault(path string) error {
	if fileExists(path) {
		return fmt.Errorf("writing config %s: %w", path, os.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	body, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	data := append([]byte("# showorder configuration\n"), body...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
