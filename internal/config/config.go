package config

import (
	"github.com/spf13/viper"

	"github.com/jveigel/brachistochrone-calculators/internal/catalog"
)

// Config holds all runtime configuration for a brachi invocation.
// Values are populated from .brachi.toml, BRACHI_* env vars, and CLI flags.
type Config struct {
	ExportsDir         string  `mapstructure:"exports_dir"`
	CatalogPath        string  `mapstructure:"catalog_path"`
	DefaultAccelG      float64 `mapstructure:"default_accel_g"`
	FuelConversionRate float64 `mapstructure:"fuel_conversion_rate"`
	MaxSweeps          int     `mapstructure:"max_sweeps"`
	DeltaVBaseAccelG   float64 `mapstructure:"deltav_base_accel_g"`
	DeltaVLogScale     float64 `mapstructure:"deltav_log_scale"`
	NoColor            bool    `mapstructure:"no_color"`
	Verbose            bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("exports_dir", "exports")
	viper.SetDefault("catalog_path", catalog.DefaultPath)
	viper.SetDefault("default_accel_g", 1.0)
	viper.SetDefault("fuel_conversion_rate", 0.008)
	viper.SetDefault("max_sweeps", 0) // 0 lets the solver size its own sweep cap
	viper.SetDefault("deltav_base_accel_g", 1.0/3)
	viper.SetDefault("deltav_log_scale", 0.5)
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
