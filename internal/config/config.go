// Package config loads the demo's settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CODEFIELD_EDITOR_MODE.
const EnvPrefix = "CODEFIELD"

// Config holds application configuration.
type Config struct {
	Editor   EditorConfig
	Database DatabaseConfig
	Demo     DemoConfig
}

// EditorConfig configures the plain editor field of the demo. Code fields
// always use their own fixed settings.
type EditorConfig struct {
	Mode        string
	LineNumbers bool `mapstructure:"line_numbers"`
	IndentUnit  int  `mapstructure:"indent_unit"`
}

// DatabaseConfig holds sqlite settings. An empty Path disables persistence.
type DatabaseConfig struct {
	Path string
}

type DemoConfig struct {
	Readonly bool
}

// Path returns the config file location: $CODEFIELD_CONFIG or
// ~/.config/codefield/config.toml.
func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "codefield", "config.toml")
}

// Load reads configuration from file and env. A missing file is not an
// error; a malformed one is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("editor.mode", "text")
	v.SetDefault("editor.line_numbers", false)
	v.SetDefault("editor.indent_unit", 2)
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "codefield", "codefield.db"))
	v.SetDefault("demo.readonly", false)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to Path, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("editor.mode", cfg.Editor.Mode)
	v.Set("editor.line_numbers", cfg.Editor.LineNumbers)
	v.Set("editor.indent_unit", cfg.Editor.IndentUnit)
	v.Set("database.path", cfg.Database.Path)
	v.Set("demo.readonly", cfg.Demo.Readonly)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
