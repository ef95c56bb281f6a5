// Package config loads runtime settings from file, environment and
// defaults, in that order of increasing precedence for the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the full runtime configuration. Zero-config startup works:
// every field has a usable default.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	DecksFile string `mapstructure:"decks_file"`

	Server ServerConfig `mapstructure:"server"`
	Web    WebConfig    `mapstructure:"web"`
	Sim    SimConfig    `mapstructure:"sim"`
}

// ServerConfig drives the tool-calling game server.
type ServerConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// WebConfig drives the websocket demo.
type WebConfig struct {
	Addr string `mapstructure:"addr"`
	Bot  string `mapstructure:"bot"`
}

// SimConfig drives batch simulation.
type SimConfig struct {
	Games    int    `mapstructure:"games"`
	Workers  int    `mapstructure:"workers"`
	MaxTurns int    `mapstructure:"max_turns"`
	Seed     uint64 `mapstructure:"seed"`
	BotOne   string `mapstructure:"bot_one"`
	BotTwo   string `mapstructure:"bot_two"`
	Format   string `mapstructure:"format"`
}

// Load reads configuration from the given file (optional), the MANACORE_*
// environment, and built-in defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("decks_file", "")
	v.SetDefault("server.name", "manacore")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("web.addr", ":8080")
	v.SetDefault("web.bot", "greedy")
	v.SetDefault("sim.games", 100)
	v.SetDefault("sim.workers", 4)
	v.SetDefault("sim.max_turns", 60)
	v.SetDefault("sim.seed", 1)
	v.SetDefault("sim.bot_one", "greedy")
	v.SetDefault("sim.bot_two", "greedy")
	v.SetDefault("sim.format", "summary")

	v.SetEnvPrefix("MANACORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("manacore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// NewLogger builds the process logger at the configured level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	c := zap.NewProductionConfig()
	c.Level = lvl
	return c.Build()
}
