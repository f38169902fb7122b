package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// RowHeight is the abstract pixel height of one grid row.
	RowHeight int `mapstructure:"row_height"`
	// ColumnWidth is the display width of one column, in terminal cells.
	ColumnWidth int `mapstructure:"column_width"`
	// BorderWidth is the abstract pixel height of the row separator.
	BorderWidth int `mapstructure:"border_width"`
	// PreloadRows is how many rows beyond each viewport edge stay
	// materialized.
	PreloadRows int `mapstructure:"preload_rows"`
	// SentinelLookahead is how many rows the scrollable extent stays ahead
	// of the last materialized row.
	SentinelLookahead int `mapstructure:"sentinel_lookahead"`
	// Columns is the column count used by the synthetic source.
	Columns int `mapstructure:"columns"`
	// FPS is the frame rate of the render loop.
	FPS int `mapstructure:"fps"`
	// Placeholder is rendered in cells whose value could not be produced.
	Placeholder string `mapstructure:"placeholder"`
	// LogLevel for the file logger (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from ~/.config/gridview/config.yaml (or TOML/JSON).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	configDir := configDirectory()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("GRIDVIEW")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine — use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RowHeight < 1 {
		return fmt.Errorf("row_height must be positive, got %d", c.RowHeight)
	}
	if c.BorderWidth < 0 {
		return fmt.Errorf("border_width must be non-negative, got %d", c.BorderWidth)
	}
	if c.ColumnWidth < 2 {
		return fmt.Errorf("column_width must be at least 2, got %d", c.ColumnWidth)
	}
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps must be in 1..120, got %d", c.FPS)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("row_height", 30)
	v.SetDefault("column_width", 16)
	v.SetDefault("border_width", 1)
	v.SetDefault("preload_rows", 5)
	v.SetDefault("sentinel_lookahead", 5)
	v.SetDefault("columns", 8)
	v.SetDefault("fps", 30)
	v.SetDefault("placeholder", "—")
	v.SetDefault("log_level", "info")
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gridview")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gridview")
}
