package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds application configuration values.
type Config struct {
	AppName           string
	Port              string
	StoreDriver       string
	DatabaseURL       string
	SQLitePath        string
	LowStockThreshold int
}

// Load reads configuration from environment variables with reasonable defaults.
// Call godotenv.Load() first if a .env file should be honoured.
func Load() Config {
	cfg := Config{
		AppName:           getenv("APP_NAME", "Clothing ERP v1.0"),
		Port:              getenv("PORT", "3000"),
		StoreDriver:       strings.ToLower(getenv("STORE_DRIVER", DriverSQLite)),
		SQLitePath:        getenv("SQLITE_PATH", "erp.db"),
		LowStockThreshold: 10,
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "erp"),
			getenv("DB_PORT", "5432"),
		)
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		log.Printf("invalid PORT value %q, defaulting to 3000", cfg.Port)
		cfg.Port = "3000"
	}

	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			log.Printf("invalid LOW_STOCK_THRESHOLD value %q, defaulting to 10", raw)
		} else {
			cfg.LowStockThreshold = n
		}
	}

	switch cfg.StoreDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		log.Printf("unknown STORE_DRIVER %q, defaulting to %s", cfg.StoreDriver, DriverSQLite)
		cfg.StoreDriver = DriverSQLite
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
