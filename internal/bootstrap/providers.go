package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/config"
	"stockmonitor-service/internal/infrastructure/httpx"
	"stockmonitor-service/internal/infrastructure/logx"
	"stockmonitor-service/internal/infrastructure/memstore"
	"stockmonitor-service/internal/infrastructure/natsbus"
	"stockmonitor-service/internal/infrastructure/provider"
	redisstore "stockmonitor-service/internal/infrastructure/redis"
	"stockmonitor-service/internal/infrastructure/scheduler"
	"stockmonitor-service/internal/infrastructure/worker"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrUnknownProvider = errors.New("unknown PROVIDER")

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideQuoteSource(cfg config.Config, log *zap.Logger) (application.QuoteSource, error) {
	switch cfg.Provider {
	case "finnhub":
		if cfg.FinnhubAPIKey == "" {
			log.Warn("FINNHUB_API_KEY is not set; every fetch will fail")
		}
		client := httpx.New(cfg.RequestTimeout)
		client.UserAgent = "stockmonitor-service"
		return provider.NewFinnhub(cfg.FinnhubBaseURL, cfg.FinnhubAPIKey, client), nil
	case "fake":
		price, err := decimal.NewFromString(cfg.FakePrice)
		if err != nil {
			return nil, fmt.Errorf("FAKE_PRICE: %w", err)
		}
		return provider.NewFake(price), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, cfg.Provider)
	}
}

// ProvideIdempotency returns the key store and, for redis, a readiness
// check. The check is nil when there is nothing to probe.
func ProvideIdempotency(cfg config.Config) (application.IdempotencyStore, func(ctx context.Context) error, func()) {
	if cfg.IdempotencyBackend != "redis" {
		return application.NoopIdempotency{}, nil, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	store := redisstore.New(client, cfg.RedisTTL)
	return store, store.Ping, func() { _ = client.Close() }
}

// ProvidePublisher returns the quote publisher and the worker that must run
// for it to deliver. Without NATS_URL both are no-ops.
func ProvidePublisher(cfg config.Config, log *zap.Logger) (application.QuotePublisher, application.Worker, func(), error) {
	if cfg.NATSURL == "" {
		return application.NoopPublisher{}, nil, func() {}, nil
	}
	nc, err := natsbus.Connect(cfg.NATSURL)
	if err != nil {
		return nil, nil, func() {}, fmt.Errorf("nats connect: %w", err)
	}
	log.Info("nats_connected", zap.String("url", nc.ConnectedUrlRedacted()), zap.String("prefix", cfg.NATSSubjectPrefix))
	w := worker.NewChanWorker(natsbus.NewPublisher(nc, cfg.NATSSubjectPrefix), 0, log)
	return w, w, func() { _ = nc.Drain() }, nil
}

// ProvideRegistry starts the scheduler. Ticks receive ctx.
func ProvideRegistry(ctx context.Context, log *zap.Logger) (*scheduler.Registry, func()) {
	reg := scheduler.NewRegistry(ctx, log)
	return reg, reg.Stop
}

func ProvideHistory() *memstore.HistoryStore { return memstore.NewHistoryStore() }

func ProvideMonitoringService(
	quotes application.QuoteSource,
	history application.HistoryStore,
	jobs application.JobRegistry,
	pub application.QuotePublisher,
	log *zap.Logger,
) *application.MonitoringService {
	return application.NewMonitoringService(quotes, history, jobs,
		application.WithPublisher(pub),
		application.WithLogger(log),
	)
}
