package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockmonitor-service/internal/bootstrap"
	"stockmonitor-service/internal/config"
	"stockmonitor-service/internal/infrastructure/grpc/healthsrv"
	httpserver "stockmonitor-service/internal/infrastructure/http"
	"stockmonitor-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	defer func() { _ = logger.Sync() }()
	cfg := config.Load()
	addr := ":" + cfg.Port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ticks outlive the signal context so in-flight fetches can finish
	tickCtx, cancelTicks := context.WithCancel(context.Background())
	defer cancelTicks()

	app, cleanup, err := bootstrap.InitAPI(tickCtx, cfg, logger)
	if err != nil {
		logger.Fatal("bootstrap", zap.Error(err))
	}
	defer cleanup()
	for _, w := range app.Workers {
		go w.Start(tickCtx)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           httpserver.NewRouter(app.Server),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", zap.String("addr", addr), zap.String("provider", cfg.Provider))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if cfg.GRPCAddr != "" {
		g.Go(func() error {
			return healthsrv.RunServer(gctx, cfg.GRPCAddr, app.Health, logger)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exited", zap.Error(err))
	}
	logger.Info("server stopped")
}
