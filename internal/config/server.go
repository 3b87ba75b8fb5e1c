package config

import (
	"os"
	"strconv"
)

// ServerConfig holds settings for the API server and its monitoring ports,
// sourced from the environment (a .env file is loaded by the binaries).
type ServerConfig struct {
	Environment string
	LogDir      string

	API struct {
		Port       int
		EnableCORS bool
	}

	Monitoring struct {
		PrometheusPort int
		HealthPort     int
	}

	Presets struct {
		Path string
	}
}

// LoadServer builds the server configuration from environment variables.
func LoadServer() *ServerConfig {
	cfg := &ServerConfig{
		Environment: getEnv("ENV", "development"),
		LogDir:      getEnv("LOG_DIR", "logs"),
	}

	cfg.API.Port = getEnvInt("API_PORT", 8080)
	cfg.API.EnableCORS = getEnvBool("API_ENABLE_CORS", true)

	cfg.Monitoring.PrometheusPort = getEnvInt("PROMETHEUS_PORT", 9090)
	cfg.Monitoring.HealthPort = getEnvInt("HEALTH_PORT", 8081)

	cfg.Presets.Path = getEnv("PRESETS_PATH", "data/presets.json")

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
