package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the client.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
}

// AppConfig controls client level behavior.
type AppConfig struct {
	Name string
	Env  string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values for the catalog cache.
type RedisConfig struct {
	Addr           string
	Password       string
	DB             int
	CatalogTTLSec  int
	DisableCatalog bool
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from positional arguments and environment
// variables, applying defaults where possible. The launch contract is
//
//	pizzastore <dbname> <port> <user>
//
// POSTGRES_DSN overrides the composed connection string. A missing
// database identity is a fatal startup condition.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		var err error
		dsn, err = dsnFromArgs(args)
		if err != nil {
			return nil, err
		}
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "pizza-store"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Postgres: PostgresConfig{
			DSN:            dsn,
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 4)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 1)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:           getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             redisDB,
			CatalogTTLSec:  getEnvAsInt("REDIS_CATALOG_TTL_SECONDS", 60),
			DisableCatalog: getEnvAsBool("REDIS_DISABLE_CATALOG_CACHE", false),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// dsnFromArgs composes a connection string from the positional
// <dbname> <port> <user> triple.
func dsnFromArgs(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: pizzastore <dbname> <port> <user> (or set POSTGRES_DSN)")
	}
	dbname, port, user := args[0], args[1], args[2]
	if dbname == "" || user == "" {
		return "", fmt.Errorf("database name and user must not be empty")
	}
	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("invalid port %q: %w", port, err)
	}
	host := getEnv("POSTGRES_HOST", "localhost")
	if pw := os.Getenv("POSTGRES_PASSWORD"); pw != "" {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, pw, host, port, dbname), nil
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s", user, host, port, dbname), nil
}

// CatalogTTL returns the catalog cache entry lifetime.
func (r RedisConfig) CatalogTTL() time.Duration {
	if r.CatalogTTLSec <= 0 {
		return time.Minute
	}
	return time.Duration(r.CatalogTTLSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
