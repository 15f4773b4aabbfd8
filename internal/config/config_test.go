package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "PROVIDER", "FINNHUB_API_KEY", "REQUEST_TIMEOUT_MS", "IDEMPOTENCY_BACKEND", "NATS_URL", "GRPC_ADDR", "SHUTDOWN_TIMEOUT_MS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "finnhub", cfg.Provider)
	require.Empty(t, cfg.FinnhubAPIKey)
	require.Equal(t, "https://finnhub.io", cfg.FinnhubBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "none", cfg.IdempotencyBackend)
	require.Equal(t, 24*time.Hour, cfg.RedisTTL)
	require.Empty(t, cfg.NATSURL)
	require.Equal(t, "quotes", cfg.NATSSubjectPrefix)
	require.Empty(t, cfg.GRPCAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PROVIDER", "fake")
	t.Setenv("FINNHUB_API_KEY", "secret")
	t.Setenv("REQUEST_TIMEOUT_MS", "250")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("GRPC_ADDR", ":9090")

	cfg := Load()
	require.Equal(t, "8081", cfg.Port)
	require.Equal(t, "fake", cfg.Provider)
	require.Equal(t, "secret", cfg.FinnhubAPIKey)
	require.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, "nats://localhost:4222", cfg.NATSURL)
	require.Equal(t, ":9090", cfg.GRPCAddr)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_MS", "soon")
	t.Setenv("SHUTDOWN_TIMEOUT_MS", "-5")
	cfg := Load()
	require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	require.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}
