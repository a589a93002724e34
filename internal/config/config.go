// Package config loads runtime settings for the arcoder CLI and HTTP
// server from defaults, an optional config file, ARCODER_* environment
// variables, and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every runtime setting. The core encoder packages take
// no configuration at all; everything here shapes the CLI and server
// surfaces around them.
type Config struct {
	Encoder   string       `mapstructure:"encoder"`
	Format    string       `mapstructure:"format"`
	FoldMarks bool         `mapstructure:"fold_marks"`
	LogLevel  string       `mapstructure:"log_level"`
	Server    ServerConfig `mapstructure:"server"`
}

type ServerConfig struct {
	ListenAddr   string `mapstructure:"listen_addr"`
	MaxNameBytes int    `mapstructure:"max_name_bytes"`
}

// LoadOptions carries the inputs to Load.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Encoder:   "arcoder",
		Format:    "text",
		FoldMarks: false,
		LogLevel:  "info",
		Server: ServerConfig{
			ListenAddr:   ":8080",
			MaxNameBytes: 1024,
		},
	}
}

// RegisterFlags registers every configurable setting on fs with the
// given defaults.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("encoder", defaults.Encoder, "Encoder to use (arcoder|holmes)")
	fs.String("format", defaults.Format, "Output format (text|json)")
	fs.Bool("fold-marks", defaults.FoldMarks, "Strip combining marks before encoding")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-name-bytes", defaults.Server.MaxNameBytes, "Maximum name length accepted over HTTP")
}

// Load resolves the effective configuration. Precedence, lowest to
// highest: defaults, config file, environment, flags.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("ARCODER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("arcoder")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no command could act on. Encoder names are
// validated where they are resolved, by encoder.ByName.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (want text or json)", c.Format)
	}
	if c.Server.MaxNameBytes <= 0 {
		return fmt.Errorf("server.max_name_bytes must be positive, got %d", c.Server.MaxNameBytes)
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("encoder", c.Encoder)
	v.SetDefault("format", c.Format)
	v.SetDefault("fold_marks", c.FoldMarks)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_name_bytes", c.Server.MaxNameBytes)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("fold_marks", "fold-marks")
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("server.listen_addr", "server-listen-addr")
	v.RegisterAlias("server.max_name_bytes", "server-max-name-bytes")
}
