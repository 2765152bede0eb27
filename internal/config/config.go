package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Port        int
	BindAddress string
	ScanRoot    string // Overrides the home directory as scan root (mainly for development)
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnvInt("SUNDER_PORT", 8090),
		BindAddress: getEnv("SUNDER_BIND_ADDRESS", "127.0.0.1"),
		ScanRoot:    getEnv("SUNDER_SCAN_ROOT", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
