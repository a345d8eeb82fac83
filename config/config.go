package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	HTTP HTTPConfig
	DB   DBConfig
}

type HTTPConfig struct {
	Addr string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	// Pool sizing is the only backpressure the API has.
	MaxConns       int32
	AcquireTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxConns, _ := strconv.Atoi(getEnv("POOL_MAX_CONNS", "10"))
	acquireSec, _ := strconv.Atoi(getEnv("POOL_ACQUIRE_TIMEOUT", "5"))

	return &Config{
		Env: getEnv("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		DB: DBConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           port,
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			Database:       getEnv("DB_NAME", "food_api"),
			MaxConns:       int32(maxConns),
			AcquireTimeout: time.Duration(acquireSec) * time.Second,
		},
	}, nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
