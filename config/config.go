/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "DYNAMICS"

// Config is the runtime configuration of the dynlint tool.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	// Manifest is the default annotation manifest path.
	Manifest string `mapstructure:"manifest"`
	AWS      AWS    `mapstructure:"aws"`
}

// AWS holds the DynamoDB connection settings.
type AWS struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Table     string `mapstructure:"table"`
}

// Load reads configuration from dir, or the working directory when dir is
// empty. A .env file there is loaded into the environment first, then
// dynamics.yaml is read if present. DYNAMICS_* variables override the file,
// and the standard AWS_* variables fill in credentials.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("manifest", "")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key", "")
	v.SetDefault("aws.secret_key", "")
	v.SetDefault("aws.table", "")

	v.SetConfigName("dynamics")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, fallback := range map[string]string{
		"aws.region":     "AWS_REGION",
		"aws.access_key": "AWS_ACCESS_KEY_ID",
		"aws.secret_key": "AWS_SECRET_ACCESS_KEY",
	} {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), fallback); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if (c.AWS.AccessKey == "") != (c.AWS.SecretKey == "") {
		return fmt.Errorf("aws.access_key and aws.secret_key must be set together")
	}
	return nil
}

// Logger builds a logger at the configured level. Debug level selects the
// development encoder.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
