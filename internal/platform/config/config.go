package config

import (
	"os"
	"strings"
	"time"
)

// StoreBackend selects the decision log implementation.
type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StoreSQLite   StoreBackend = "sqlite"
	StorePostgres StoreBackend = "postgres"
	StoreRedis    StoreBackend = "redis"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	LogLevel    string
	Store       StoreBackend
	SQLitePath  string
	PostgresDSN string
	Redis       RedisConfig
	CatalogPath string
}

// RedisConfig holds connection settings for the redis-backed decision log.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("AUTOCOMPLY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	store := StoreBackend(strings.ToLower(os.Getenv("AUTOCOMPLY_STORE")))
	switch store {
	case StoreMemory, StoreSQLite, StorePostgres, StoreRedis:
	default:
		store = StoreMemory
	}

	sqlitePath := os.Getenv("AUTOCOMPLY_SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "autocomply.db"
	}

	return Server{
		Addr:        addr,
		LogLevel:    os.Getenv("AUTOCOMPLY_LOG_LEVEL"),
		Store:       store,
		SQLitePath:  sqlitePath,
		PostgresDSN: os.Getenv("AUTOCOMPLY_POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("AUTOCOMPLY_REDIS_URL"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		CatalogPath: os.Getenv("AUTOCOMPLY_CATALOG_PATH"),
	}
}
