package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/hotel-backoffice/utils"
)

// Store drivers
const (
	DriverSQLite     = "sqlite"
	DriverSQLitePure = "sqlite-pure"
	DriverMySQL      = "mysql"
	DriverPostgres   = "postgres"
)

// CategoryPolicy decides what seeding does with ticket categories that
// already exist in the store.
type CategoryPolicy string

const (
	// CategoryPolicyMerge adds missing canonical categories and keeps extras.
	CategoryPolicyMerge CategoryPolicy = "merge"
	// CategoryPolicyReset deletes every category and re-inserts the canonical list.
	CategoryPolicyReset CategoryPolicy = "reset"
)

type Config struct {
	Store     StoreConfig
	Seed      SeedConfig
	AssetsDir string
	LogLevel  string
}

type StoreConfig struct {
	Driver string
	// Path is the database file for the sqlite drivers.
	Path string
	// DSN is the connection string for mysql and postgres.
	DSN       string
	SlowQuery time.Duration
}

type SeedConfig struct {
	OnInit         bool
	CategoryPolicy CategoryPolicy
	File           string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf(".env file not found, using system environment: %v", err)
	}

	cfg := &Config{
		Store: StoreConfig{
			Driver:    strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
			Path:      getEnv("STORE_PATH", "hotel.db"),
			DSN:       getEnv("STORE_DSN", ""),
			SlowQuery: time.Duration(getEnvInt("SLOW_QUERY_MS", 200)) * time.Millisecond,
		},
		Seed: SeedConfig{
			OnInit:         getEnvBool("SEED_ON_INIT", true),
			CategoryPolicy: CategoryPolicy(strings.ToLower(getEnv("CATEGORY_POLICY", string(CategoryPolicyMerge)))),
			File:           getEnv("SEED_FILE", ""),
		},
		AssetsDir: getEnv("ASSETS_DIR", "assets"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverSQLitePure:
		if c.Store.Path == "" {
			return fmt.Errorf("STORE_PATH is required for driver %s", c.Store.Driver)
		}
	case DriverMySQL, DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("STORE_DSN is required for driver %s", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Seed.CategoryPolicy {
	case CategoryPolicyMerge, CategoryPolicyReset:
	default:
		return fmt.Errorf("unknown CATEGORY_POLICY %q", c.Seed.CategoryPolicy)
	}

	if c.AssetsDir == "" {
		return fmt.Errorf("ASSETS_DIR must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, exists := os.LookupEnv(key)
	if !exists || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
