package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// URL, when set, takes precedence over the individual components.
type DatabaseConfig struct {
	URL                string
	AppName            string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AllocationConfig holds the cabinet/drawer/folder allocation settings.
type AllocationConfig struct {
	CapacityPerDrawer int
	MaxDrawers        int
	PrefixTablePath   string
	// Prefixes maps a unit name to its cabinet prefix. Populated from PrefixTablePath.
	Prefixes map[string]string
}

// RedisConfig holds the connection settings for the job queue backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig sizes the in-memory unit cache.
type CacheConfig struct {
	UnitCacheSize int
	UnitCacheTTL  time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost           string
	Port              string
	LogLevel          string
	Timezone          string
	AutoMigrate       bool
	WorkerConcurrency int
	Database          DatabaseConfig
	Allocation        AllocationConfig
	Redis             RedisConfig
	Cache             CacheConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// The prefix table file is optional; a missing file leaves every unit unmapped.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		AppHost:           getEnv("APP_HOST", "localhost:8080"),
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Timezone:          getEnv("APP_TIMEZONE", "UTC"),
		AutoMigrate:       getEnvBool("AUTO_MIGRATE", true),
		WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 2),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			AppName:            getEnv("DB_APP_NAME", "archiveapi"),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Allocation: AllocationConfig{
			CapacityPerDrawer: getEnvInt("CAPACITY_PER_DRAWER", 50),
			MaxDrawers:        getEnvInt("MAX_DRAWERS", 4),
			PrefixTablePath:   getEnv("PREFIX_TABLE_PATH", "configs/prefixes.yaml"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			UnitCacheSize: getEnvInt("UNIT_CACHE_SIZE", 256),
			UnitCacheTTL:  getEnvDuration("UNIT_CACHE_TTL", 5*time.Minute),
		},
	}

	prefixes, err := LoadPrefixTable(cfg.Allocation.PrefixTablePath)
	if err != nil {
		return nil, err
	}
	cfg.Allocation.Prefixes = prefixes

	return cfg, nil
}

// prefixTable is the on-disk layout of the unit to cabinet prefix table.
//
//	units:
//	  Bagian Umum: UM
//	  Bagian Keuangan: KU
type prefixTable struct {
	Units map[string]string `yaml:"units"`
}

// LoadPrefixTable reads the unit name to cabinet prefix mapping from a YAML file.
// An empty path or a missing file yields an empty table.
func LoadPrefixTable(path string) (map[string]string, error) {
	out := map[string]string{}
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("read prefix table: %w", err)
	}

	var t prefixTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse prefix table: %w", err)
	}
	for unit, prefix := range t.Units {
		if unit == "" || prefix == "" {
			continue
		}
		out[unit] = prefix
	}
	return out, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
