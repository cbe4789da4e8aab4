// Package config holds skyroute's runtime configuration, loaded through
// viper from an optional YAML file, SKYROUTE_* environment variables and a
// local .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. SKYROUTE_SIMULATION_STEP.
const EnvPrefix = "SKYROUTE"

// Config is the root configuration structure.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Scoring    ScoringConfig    `mapstructure:"scoring"`
	Highlight  HighlightConfig  `mapstructure:"highlight"`
	Graph      GraphConfig      `mapstructure:"graph"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" json:"level" yaml:"level"`
	Format      string `mapstructure:"format" json:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" json:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" json:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" json:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" json:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" json:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" json:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" json:"compress" yaml:"compress"`
}

// SimulationConfig controls the animation cadence.
type SimulationConfig struct {
	TickInterval  time.Duration `mapstructure:"tick_interval"`
	Step          float64       `mapstructure:"step"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	StopOnArrival bool          `mapstructure:"stop_on_arrival"`
}

// ScoringConfig controls the random scoring events.
type ScoringConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	Interval     time.Duration `mapstructure:"interval"`
	Amount       int           `mapstructure:"amount"`
	Seed         int64         `mapstructure:"seed"`
}

// HighlightConfig marks nodes lying within Radius of the point (X, Y).
type HighlightConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Radius float64 `mapstructure:"radius"`
}

// GraphConfig declares a custom network. When Nodes is empty the built-in
// airport network is used.
type GraphConfig struct {
	Nodes []NodeConfig `mapstructure:"nodes"`
	Edges []EdgeConfig `mapstructure:"edges"`
}

// NodeConfig declares one node.
type NodeConfig struct {
	Name string  `mapstructure:"name"`
	X    float64 `mapstructure:"x"`
	Y    float64 `mapstructure:"y"`
}

// EdgeConfig declares one directed edge.
type EdgeConfig struct {
	From   string `mapstructure:"from"`
	To     string `mapstructure:"to"`
	Weight int64  `mapstructure:"weight"`
}

// SetDefaults registers default values so the app runs with no config file.
// The cadence matches the classic demo: a 50ms frame timer moving the plane
// 2 units per tick, and 10 points awarded every 2s after a 1s delay.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "skyroute")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("simulation.tick_interval", 50*time.Millisecond)
	v.SetDefault("simulation.step", 2.0)
	v.SetDefault("simulation.frame_interval", 500*time.Millisecond)
	v.SetDefault("simulation.stop_on_arrival", true)

	v.SetDefault("scoring.enabled", true)
	v.SetDefault("scoring.initial_delay", time.Second)
	v.SetDefault("scoring.interval", 2*time.Second)
	v.SetDefault("scoring.amount", 10)
	v.SetDefault("scoring.seed", 1)

	v.SetDefault("highlight.x", 300.0)
	v.SetDefault("highlight.y", 200.0)
	v.SetDefault("highlight.radius", 100.0)
}

// LoadEnv loads a .env file from the working directory if one exists.
// A missing file is not an error; the process environment is used as-is.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: loading .env: %w", err)
	}

	return nil
}

// NewViper returns a viper instance with defaults, environment overrides and,
// if cfgFile is non-empty or ./skyroute.yaml exists, the file's values.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("skyroute")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config: %w", err)
		}
	}

	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges. Graph structure (unknown endpoints,
// negative weights) is validated when the graph is built.
func (c *Config) Validate() error {
	switch {
	case c.Simulation.TickInterval <= 0:
		return fmt.Errorf("%w: simulation.tick_interval must be positive", ErrInvalidConfig)
	case !(c.Simulation.Step > 0) || math.IsInf(c.Simulation.Step, 0):
		return fmt.Errorf("%w: simulation.step must be positive and finite", ErrInvalidConfig)
	case c.Simulation.FrameInterval < 0:
		return fmt.Errorf("%w: simulation.frame_interval must not be negative", ErrInvalidConfig)
	case c.Scoring.Enabled && c.Scoring.Interval <= 0:
		return fmt.Errorf("%w: scoring.interval must be positive", ErrInvalidConfig)
	case c.Scoring.Enabled && c.Scoring.Amount <= 0:
		return fmt.Errorf("%w: scoring.amount must be positive", ErrInvalidConfig)
	case c.Scoring.InitialDelay < 0:
		return fmt.Errorf("%w: scoring.initial_delay must not be negative", ErrInvalidConfig)
	case c.Highlight.Radius < 0:
		return fmt.Errorf("%w: highlight.radius must not be negative", ErrInvalidConfig)
	case c.Logger.Format != "console" && c.Logger.Format != "json":
		return fmt.Errorf("%w: logger.format must be console or json, got %q", ErrInvalidConfig, c.Logger.Format)
	}

	return nil
}
