package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"ExportsDir", cfg.ExportsDir, "exports"},
		{"CatalogPath", cfg.CatalogPath, ".brachi/catalog.toml"},
		{"DefaultAccelG", cfg.DefaultAccelG, 1.0},
		{"FuelConversionRate", cfg.FuelConversionRate, 0.008},
		{"MaxSweeps", cfg.MaxSweeps, 0},
		{"DeltaVBaseAccelG", cfg.DeltaVBaseAccelG, 1.0 / 3},
		{"DeltaVLogScale", cfg.DeltaVLogScale, 0.5},
		{"NoColor", cfg.NoColor, false},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "exports_dir",
			envKey: "BRACHI_EXPORTS_DIR",
			envVal: "/tmp/reports",
			field:  func(c Config) any { return c.ExportsDir },
			want:   "/tmp/reports",
		},
		{
			name:   "catalog_path",
			envKey: "BRACHI_CATALOG_PATH",
			envVal: "/etc/brachi/catalog.toml",
			field:  func(c Config) any { return c.CatalogPath },
			want:   "/etc/brachi/catalog.toml",
		},
		{
			name:   "default_accel_g",
			envKey: "BRACHI_DEFAULT_ACCEL_G",
			envVal: "0.3",
			field:  func(c Config) any { return c.DefaultAccelG },
			want:   0.3,
		},
		{
			name:   "fuel_conversion_rate",
			envKey: "BRACHI_FUEL_CONVERSION_RATE",
			envVal: "0.012",
			field:  func(c Config) any { return c.FuelConversionRate },
			want:   0.012,
		},
		{
			name:   "max_sweeps",
			envKey: "BRACHI_MAX_SWEEPS",
			envVal: "12",
			field:  func(c Config) any { return c.MaxSweeps },
			want:   12,
		},
		{
			name:   "no_color",
			envKey: "BRACHI_NO_COLOR",
			envVal: "true",
			field:  func(c Config) any { return c.NoColor },
			want:   true,
		},
		{
			name:   "verbose",
			envKey: "BRACHI_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so BRACHI_* env vars map to config keys.
			viper.SetEnvPrefix("BRACHI")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_DefaultsAreNotZero(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.ExportsDir == "" {
		t.Error("ExportsDir should not be empty")
	}
	if cfg.CatalogPath == "" {
		t.Error("CatalogPath should not be empty")
	}
	if cfg.DefaultAccelG == 0 {
		t.Error("DefaultAccelG should not be zero")
	}
	if cfg.FuelConversionRate == 0 {
		t.Error("FuelConversionRate should not be zero")
	}
	if cfg.DeltaVLogScale == 0 {
		t.Error("DeltaVLogScale should not be zero")
	}
}
