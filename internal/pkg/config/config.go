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

	// StorageBackend selects where the marketplace document lives:
	// file, redis, mongo, or memory (ephemeral, for demos).
	StorageBackend string `env:"STORAGE_BACKEND, default=file"`
	// StorageKey is the namespaced key the document is stored under. Changing
	// it orphans previously persisted data.
	StorageKey string `env:"STORAGE_KEY, default=billboard-booker.v1"`

	// PasswordScheme is "plain" (legacy document compatibility) or "bcrypt".
	PasswordScheme string `env:"PASSWORD_SCHEME, default=plain"`

	File  FileConfig
	Redis RedisConfig
	Mongo MongoConfig
	AMQP  AMQPConfig
}

type FileConfig struct {
	Dir string `env:"STORAGE_DIR, default=./data"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=billboard_marketplace"`
}

type AMQPConfig struct {
	// URL enables the change-event publisher when non-empty.
	URL   string `env:"AMQP_URL"`
	Queue string `env:"AMQP_QUEUE, default=marketplace.changes"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
