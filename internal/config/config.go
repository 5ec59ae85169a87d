package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"rps_arena/internal/engine"
)

type Config struct {
	AppPort       string
	AllowedOrigin string

	// DatabaseURL is optional; match history recording is disabled when
	// it is empty.
	DatabaseURL string

	// Redis backs the API rate limiter; empty addr means fail-open.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// NATSUrl enables the event relay when set.
	NATSUrl string

	MatchedDelay time.Duration
	RevealDelay  time.Duration

	APIRateLimit  int
	APIRateWindow time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads the environment (with .env support) and fills in defaults.
// Nothing here is required: the server runs standalone with no database,
// Redis or NATS attached.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		NATSUrl:       os.Getenv("NATS_URL"),
		MatchedDelay:  getEnvMillis("MATCHED_DELAY_MS", engine.DefaultMatchedDelay),
		RevealDelay:   getEnvMillis("REVEAL_DELAY_MS", engine.DefaultRevealDelay),
		APIRateLimit:  getEnvInt("API_RATE_LIMIT", 60),
		APIRateWindow: time.Duration(getEnvInt("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogJSON:       os.Getenv("LOG_JSON") == "true",
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvMillis parses a millisecond count. Zero is a meaningful value (it
// makes the timed transitions immediate), so only absent or unparseable
// values fall back.
func getEnvMillis(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return fallback
}
