package bootstrap

import (
	"context"
	"fmt"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/config"
	"stockmonitor-service/internal/infrastructure/grpc/healthsrv"
	httpserver "stockmonitor-service/internal/infrastructure/http"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
)

// App is everything cmd/api runs.
type App struct {
	Config  config.Config
	Log     *zap.Logger
	Service *application.MonitoringService
	Server  *httpserver.Server
	Health  *health.Server
	// Workers must be started by the caller.
	Workers []application.Worker
}

// InitAPI builds the API process. ctx bounds the lifetime of monitor
// ticks. The returned cleanup stops the scheduler and closes connections
// in reverse order of creation.
func InitAPI(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	quotes, err := ProvideQuoteSource(cfg, log)
	if err != nil {
		return nil, func() {}, fmt.Errorf("bootstrap quote source: %w", err)
	}

	idem, ready, closeIdem := ProvideIdempotency(cfg)
	cleanups = append(cleanups, closeIdem)

	pub, pubWorker, closePub, err := ProvidePublisher(cfg, log)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("bootstrap publisher: %w", err)
	}
	cleanups = append(cleanups, closePub)

	reg, stopReg := ProvideRegistry(ctx, log)
	cleanups = append(cleanups, stopReg)

	svc := ProvideMonitoringService(quotes, ProvideHistory(), reg, pub, log)
	srv := httpserver.NewServer(svc)
	srv.SetIdempotency(idem)
	if ready != nil {
		srv.SetReadyCheck(ready)
	}

	var workers []application.Worker
	if pubWorker != nil {
		workers = append(workers, pubWorker)
	}

	return &App{
		Config:  cfg,
		Log:     log,
		Service: svc,
		Server:  srv,
		Health:  healthsrv.NewHealth(),
		Workers: workers,
	}, cleanup, nil
}
