// Package config loads the settings of the pathsmooth command.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"honnef.co/go/pathsmooth"
)

// EnvPrefix is prepended to environment variables overriding configuration
// keys, e.g. PATHSMOOTH_SMOOTHING_PULLBACK.
const EnvPrefix = "PATHSMOOTH"

// Config holds the entire command configuration.
type Config struct {
	Smoothing SmoothingConfig `mapstructure:"smoothing" yaml:"smoothing"`
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
}

// SmoothingConfig mirrors [pathsmooth.Options], plus switches for skipping
// either stage.
type SmoothingConfig struct {
	MinDistance float64 `mapstructure:"min_distance" yaml:"min_distance"`
	Pullback    float64 `mapstructure:"pullback" yaml:"pullback"`
	ArcSamples  int     `mapstructure:"arc_samples" yaml:"arc_samples"`
	SkipReduce  bool    `mapstructure:"skip_reduce" yaml:"skip_reduce"`
	SkipRound   bool    `mapstructure:"skip_round" yaml:"skip_round"`
}

// LoggerConfig configures the command's logger. If LogFile is set, a JSON
// copy of the log is written there and rotated according to MaxSize (MB),
// MaxBackups and MaxAge (days).
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers the default value of every key with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("smoothing.min_distance", pathsmooth.DefaultOptions.MinDistance)
	v.SetDefault("smoothing.pullback", pathsmooth.DefaultOptions.Pullback)
	v.SetDefault("smoothing.arc_samples", pathsmooth.DefaultOptions.ArcSamples)
	v.SetDefault("smoothing.skip_reduce", false)
	v.SetDefault("smoothing.skip_round", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
}

// NewViper returns a viper instance with defaults registered and environment
// overrides enabled. If cfgFile is empty, config.yaml is looked up in the
// working directory; a missing default file is not an error.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Only a missing default file is tolerated.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects parameters that the smoothing functions would otherwise
// silently clamp.
func (c *Config) Validate() error {
	s := c.Smoothing
	if math.IsNaN(s.MinDistance) || s.MinDistance < 0 {
		return fmt.Errorf("smoothing.min_distance must be non-negative, got %v", s.MinDistance)
	}
	if math.IsNaN(s.Pullback) || s.Pullback < 0 {
		return fmt.Errorf("smoothing.pullback must be non-negative, got %v", s.Pullback)
	}
	if s.ArcSamples < 1 {
		return fmt.Errorf("smoothing.arc_samples must be at least 1, got %d", s.ArcSamples)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be \"console\" or \"json\", got %q", c.Logger.Format)
	}
	return nil
}

// Options converts the configuration to [pathsmooth.Options].
func (s SmoothingConfig) Options() pathsmooth.Options {
	return pathsmooth.Options{
		MinDistance: s.MinDistance,
		Pullback:    s.Pullback,
		ArcSamples:  s.ArcSamples,
	}
}
