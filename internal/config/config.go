package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultGatewayAddr = ":8081"
	defaultDatabaseURL = "shareit.db"
	defaultServerURL   = "http://localhost:8080"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

type Config struct {
	Addr        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
}

type GatewayConfig struct {
	Addr      string
	ServerURL string
	LogLevel  string
	LogFormat string
}

// Load reads the main service configuration from the environment.
// A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:        getenv("SHAREIT_ADDR", defaultAddr),
		DatabaseURL: getenv("DATABASE_URL", defaultDatabaseURL),
		LogLevel:    getenv("LOG_LEVEL", defaultLogLevel),
		LogFormat:   getenv("LOG_FORMAT", defaultLogFormat),
	}
}

// LoadGateway reads the gateway configuration from the environment.
func LoadGateway() *GatewayConfig {
	_ = godotenv.Load()

	return &GatewayConfig{
		Addr:      getenv("GATEWAY_ADDR", defaultGatewayAddr),
		ServerURL: getenv("SHAREIT_SERVER_URL", defaultServerURL),
		LogLevel:  getenv("LOG_LEVEL", defaultLogLevel),
		LogFormat: getenv("LOG_FORMAT", defaultLogFormat),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
