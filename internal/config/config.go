// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package config loads the settings of the negotiate tool from a YAML file
// and AVPF_ prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/pion/logging"
	"github.com/spf13/viper"
)

// Config holds the settings of the negotiate tool.
type Config struct {
	NACK        bool                     `mapstructure:"nack"`
	Proto       string                   `mapstructure:"proto"`
	LogLevel    string                   `mapstructure:"log_level"`
	RTCPReports bool                     `mapstructure:"rtcp_reports"`
	Codecs      map[string][]CodecConfig `mapstructure:"codecs"`
}

// CodecConfig describes one codec offered for a media kind, see
// avpf.Codec.
type CodecConfig struct {
	PayloadType int    `mapstructure:"payload_type"`
	Name        string `mapstructure:"name"`
	ClockRate   int    `mapstructure:"clock_rate"`
	Channels    int    `mapstructure:"channels"`
	Fmtp        string `mapstructure:"fmtp"`
}

// Load reads configPath, if not empty, on top of the defaults. Environment
// variables override both, e.g. AVPF_NACK=false.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("AVPF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("nack", true)
	v.SetDefault("proto", "RTP/AVPF")
	v.SetDefault("log_level", "warn")
	v.SetDefault("rtcp_reports", false)
}

var logLevels = map[string]logging.LogLevel{ //nolint:gochecknoglobals
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

// LoggerFactory returns a logger factory logging at the configured level.
func (c *Config) LoggerFactory() *logging.DefaultLoggerFactory {
	f := logging.NewDefaultLoggerFactory()
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		f.DefaultLogLevel = level
	}
	return f
}
