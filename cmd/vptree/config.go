package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ModeQuery  = "query"
	ModeVerify = "verify"
	ModeBench  = "bench"
)

// Config holds the driver settings, read from flags, VPTREE_* environment
// variables and an optional YAML file, in that order of precedence.
type Config struct {
	Mode      string `mapstructure:"mode"`
	Points    int    `mapstructure:"points"`
	K         int    `mapstructure:"k"`
	Queries   int    `mapstructure:"queries"`
	Seed      uint64 `mapstructure:"seed"`
	DB        string `mapstructure:"db"`
	Save      bool   `mapstructure:"save"`
	BenchMax  int    `mapstructure:"bench_max"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("vptree", pflag.ContinueOnError)
	fs.String("mode", ModeQuery, "query, verify or bench")
	fs.Int("points", 100000, "number of generated points")
	fs.Int("k", 5, "neighbours per query")
	fs.Int("queries", 0, "number of points to query, 0 queries every point")
	fs.Uint64("seed", 0, "seed for point generation and tree shape, 0 picks one at random")
	fs.String("db", "", "SQLite file holding the point set")
	fs.Bool("save", false, "generate points and store them in --db")
	fs.Int("bench-max", 8192, "largest set size in bench mode")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "text or json")
	fs.String("config", "", "path to a YAML configuration file")

	normalize := fs.GetNormalizeFunc()
	fs.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(string(normalize(f, name)), "-", "_"))
	})
	return fs
}

// LoadConfig parses args and resolves the effective configuration.
func LoadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("vptree")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("vptree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeQuery, ModeVerify, ModeBench:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Points < 0 || c.Queries < 0 {
		return fmt.Errorf("points and queries must not be negative")
	}
	if c.K < 0 {
		return fmt.Errorf("k must not be negative")
	}
	if c.Save && c.DB == "" {
		return fmt.Errorf("--save requires --db")
	}
	if c.Mode == ModeBench && c.BenchMax < 16 {
		return fmt.Errorf("bench_max must be at least 16")
	}
	return nil
}
