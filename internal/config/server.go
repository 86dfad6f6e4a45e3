package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds process settings read from the environment.
type Server struct {
	Addr            string        `env:"FLUIX_ADDR" envDefault:":8080"`
	MetricsAddr     string        `env:"FLUIX_METRICS_ADDR"`
	RedisAddr       string        `env:"FLUIX_REDIS_ADDR"`
	RedisPassword   string        `env:"FLUIX_REDIS_PASSWORD"`
	RedisDB         int           `env:"FLUIX_REDIS_DB" envDefault:"0"`
	SnapshotKey     string        `env:"FLUIX_SNAPSHOT_KEY" envDefault:"default"`
	LogLevel        string        `env:"FLUIX_LOG_LEVEL" envDefault:"info"`
	ConfigFile      string        `env:"FLUIX_CONFIG"`
	AutoDismiss     bool          `env:"FLUIX_AUTO_DISMISS" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"FLUIX_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadServer parses the environment into a Server.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
