// Package config loads service configuration from environment variables via
// Viper so main stays lean. Every value has a development-safe default.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the service.
type Config struct {
	Addr               string        `mapstructure:"ADDR"`
	CheckTimeout       time.Duration `mapstructure:"CHECK_TIMEOUT"`
	BroadcastQueueSize int           `mapstructure:"BROADCAST_QUEUE_SIZE"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	WSAllowedOrigin    string        `mapstructure:"WS_ALLOWED_ORIGIN"`
}

// Load reads configuration from the environment, with an optional .env file
// in the given path for local development.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("CHECK_TIMEOUT", 5*time.Second)
	v.SetDefault("BROADCAST_QUEUE_SIZE", 64)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("WS_ALLOWED_ORIGIN", "")

	for _, key := range []string{"ADDR", "CHECK_TIMEOUT", "BROADCAST_QUEUE_SIZE", "SHUTDOWN_TIMEOUT", "WS_ALLOWED_ORIGIN"} {
		_ = v.BindEnv(key)
	}

	// The .env file is optional; only surface real read failures.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.BroadcastQueueSize <= 0 {
		cfg.BroadcastQueueSize = 64
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg, nil
}
