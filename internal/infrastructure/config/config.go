package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Store selects the persistence backend: "mongo" or "memory". The
	// in-memory backend is non-durable and intended for local runs and
	// tests.
	Store string `env:"STORE, default=mongo"`

	// ProtectStatusUpdates wires bearer-token auth plus an admin role
	// check onto the request status-update endpoint. Off by default to
	// preserve the reference behavior of public status updates.
	ProtectStatusUpdates bool `env:"PROTECT_STATUS_UPDATES, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=seva_kendra"`
}

type RedisConfig struct {
	// Addr is optional: when empty the tracking cache is disabled.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
