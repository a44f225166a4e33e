package internal

import (
	"fmt"
	"time"
)

const (
	StoreMongo  = "mongo"
	StoreBadger = "badger"

	DirectoryGRPC   = "grpc"
	DirectoryBadger = "badger"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	StoreDriver           string `env:"STORE_DRIVER,default=mongo"`
	MongoConnectionString string `env:"MONGO_CONNECTION_STRING,default=mongodb://localhost:27017"`
	MongoDB               string `env:"MONGO_DB,default=persona"`
	EmailCollection       string `env:"EMAIL_COLLECTION,default=emails"`
	BadgerFilepath        string `env:"BADGER_FILEPATH,default=./data/badger"`

	DirectoryDriver    string        `env:"DIRECTORY_DRIVER,default=grpc"`
	PersonaServiceAddr string        `env:"PERSONA_SERVICE_ADDR"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	PersonaCacheTTL    time.Duration `env:"PERSONA_CACHE_TTL,default=5m"`

	AuthTokenSecret string `env:"AUTH_TOKEN_SECRET,required=true"`
	AuthTokenIssuer string `env:"AUTH_TOKEN_ISSUER,default=persona"`
	StrictAuth      bool   `env:"STRICT_AUTH,default=false"`

	MetricsPort int `env:"METRICS_PORT,default=9090"`

	// DebugInspect serves /debug/inspect on a loopback-only listener.
	DebugInspect bool `env:"DEBUG_INSPECT,default=false"`
	DebugPort    int  `env:"DEBUG_PORT,default=6060"`
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreBadger:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMongo, StoreBadger, c.StoreDriver)
	}
	switch c.DirectoryDriver {
	case DirectoryGRPC:
		if c.PersonaServiceAddr == "" {
			return fmt.Errorf("PERSONA_SERVICE_ADDR is required when DIRECTORY_DRIVER is %q", DirectoryGRPC)
		}
	case DirectoryBadger:
	default:
		return fmt.Errorf("DIRECTORY_DRIVER must be %q or %q, got %q", DirectoryGRPC, DirectoryBadger, c.DirectoryDriver)
	}
	if c.PersonaCacheTTL <= 0 {
		return fmt.Errorf("PERSONA_CACHE_TTL must be positive, got %s", c.PersonaCacheTTL)
	}
	return nil
}

// NeedsBadger reports whether any component reads the embedded database.
func (c Config) NeedsBadger() bool {
	return c.StoreDriver == StoreBadger || c.DirectoryDriver == DirectoryBadger
}
