package config

import (
	"errors"
	"fmt"
	"strings"

	"paris-coordcheck/internal/geo"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultTargets are the place names spot-checked by the targeted lookup.
var DefaultTargets = []string{"Square Marcel-Pagnol", "Madeleine", "Église de la Madeleine"}

// Config holds every tunable of a coordinate audit run.
type Config struct {
	DataDir   string       `mapstructure:"data_dir"`
	Bounds    BoundsConfig `mapstructure:"bounds"`
	Precision int          `mapstructure:"precision"`
	Targets   []string     `mapstructure:"targets"`
	LogLevel  string       `mapstructure:"log_level"`
}

// BoundsConfig is the latitude/longitude rectangle places are expected to fall in.
type BoundsConfig struct {
	LatMin float64 `mapstructure:"lat_min"`
	LatMax float64 `mapstructure:"lat_max"`
	LonMin float64 `mapstructure:"lon_min"`
	LonMax float64 `mapstructure:"lon_max"`
}

// LoadConfig reads coordcheck.yaml from path when present, then applies flags on top.
// flags may be nil.
func LoadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	return load(afero.NewOsFs(), path, flags)
}

func load(fs afero.Fs, path string, flags *pflag.FlagSet) (config Config, err error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault("data_dir", "data/arrondissements")
	v.SetDefault("bounds.lat_min", geo.DefaultLatMin)
	v.SetDefault("bounds.lat_max", geo.DefaultLatMax)
	v.SetDefault("bounds.lon_min", geo.DefaultLonMin)
	v.SetDefault("bounds.lon_max", geo.DefaultLonMax)
	v.SetDefault("precision", geo.DefaultPrecision)
	v.SetDefault("targets", DefaultTargets)
	v.SetDefault("log_level", "info")

	v.SetConfigName("coordcheck")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"data_dir":  "dir",
			"precision": "precision",
			"targets":   "target",
			"log_level": "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return config, fmt.Errorf("config: failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	err = config.Validate()
	return
}

// Validate checks that the bounds are ordered and the precision is usable.
func (c Config) Validate() error {
	var errs []string

	if c.DataDir == "" {
		errs = append(errs, "data_dir is required")
	}
	if c.Bounds.LatMin > c.Bounds.LatMax {
		errs = append(errs, fmt.Sprintf("bounds.lat_min %v is greater than bounds.lat_max %v", c.Bounds.LatMin, c.Bounds.LatMax))
	}
	if c.Bounds.LonMin > c.Bounds.LonMax {
		errs = append(errs, fmt.Sprintf("bounds.lon_min %v is greater than bounds.lon_max %v", c.Bounds.LonMin, c.Bounds.LonMax))
	}
	if c.Precision < 0 || c.Precision > 12 {
		errs = append(errs, fmt.Sprintf("precision must be 0-12, got %d", c.Precision))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
