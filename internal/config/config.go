package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// database config
	HR_DB_PATH         string
	HR_DB_READ_ONLY    bool
	HR_DB_BUSY_TIMEOUT time.Duration
	// logger config
	LOG_FILE_PATH string
}

func LoadEnvConfig() error {
	// A missing .env is fine; the defaults below cover it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		HR_DB_PATH:         getEnvString("HR_DB_PATH", "hr_database.db"),
		HR_DB_READ_ONLY:    getEnvBool("HR_DB_READ_ONLY", false),
		HR_DB_BUSY_TIMEOUT: getEnvDuration("HR_DB_BUSY_TIMEOUT", 5*time.Second),
		LOG_FILE_PATH:      getEnvString("LOG_FILE_PATH", ""),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
