// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string
	DBPath      string
	DefaultUser string
	PageSize    int
}

// Load reads configuration from environment variables (after loading a .env
// file when present) and returns a validated Config. All variables are
// optional: GOMUN_LISTEN_ADDR (127.0.0.1:8080), GOMUN_DB_PATH (gomun.db),
// GOMUN_DEFAULT_USER (mun), GOMUN_PAGE_SIZE (5, must be a positive integer).
func Load() (*Config, error) {
	_ = godotenv.Load()

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("GOMUN_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "gomun.db"
	if v, ok := os.LookupEnv("GOMUN_DB_PATH"); ok {
		dbPath = v
	}

	defaultUser := "mun"
	if v, ok := os.LookupEnv("GOMUN_DEFAULT_USER"); ok && v != "" {
		defaultUser = v
	}

	pageSize := 5
	if v, ok := os.LookupEnv("GOMUN_PAGE_SIZE"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("GOMUN_PAGE_SIZE has invalid value %q: must be a positive integer", v)
		}
		pageSize = parsed
	}

	return &Config{
		ListenAddr:  listenAddr,
		DBPath:      dbPath,
		DefaultUser: defaultUser,
		PageSize:    pageSize,
	}, nil
}
