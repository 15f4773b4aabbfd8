package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	ShutdownTimeout time.Duration
	// Quote source
	Provider       string
	FinnhubBaseURL string
	FinnhubAPIKey  string
	FakePrice      string
	RequestTimeout time.Duration
	// Idempotency
	IdempotencyBackend string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisTTL           time.Duration
	// Quote events
	NATSURL           string
	NATSSubjectPrefix string
	// gRPC health; empty disables
	GRPCAddr string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func msDef(key string, def time.Duration) time.Duration {
	ms := atoiDef(os.Getenv(key), int(def/time.Millisecond))
	if ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                getEnv("ENV", "local"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", DefaultHTTPPort),
		ShutdownTimeout:    msDef("SHUTDOWN_TIMEOUT_MS", DefaultShutdownTimeout),
		Provider:           getEnv("PROVIDER", "finnhub"),
		FinnhubBaseURL:     getEnv("FINNHUB_BASE_URL", DefaultFinnhubBaseURL),
		FinnhubAPIKey:      getEnv("FINNHUB_API_KEY", ""),
		FakePrice:          getEnv("FAKE_PRICE", DefaultFakeQuotePrice),
		RequestTimeout:     msDef("REQUEST_TIMEOUT_MS", DefaultRequestTimeout),
		IdempotencyBackend: getEnv("IDEMPOTENCY_BACKEND", DefaultIdempotencyStore),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisTTL:           msDef("IDEMPOTENCY_TTL_MS", DefaultIdempotencyTTL),
		NATSURL:            getEnv("NATS_URL", ""),
		NATSSubjectPrefix:  getEnv("NATS_SUBJECT_PREFIX", DefaultNATSSubjectRoot),
		GRPCAddr:           getEnv("GRPC_ADDR", ""),
	}
}
