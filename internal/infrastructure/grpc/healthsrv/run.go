package healthsrv

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported alongside the overall ("") status.
const ServiceName = "stockmonitor.Monitoring"

// NewHealth returns a health server reporting SERVING.
func NewHealth() *health.Server {
	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return hs
}

// RunServer starts a gRPC server exposing grpc.health.v1 and blocks until
// ctx is done.
func RunServer(ctx context.Context, addr string, hs *health.Server, log *zap.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return Serve(ctx, lis, hs, log)
}

// Serve is RunServer on an existing listener. On ctx done every service is
// flipped to NOT_SERVING before the server drains.
func Serve(ctx context.Context, lis net.Listener, hs *health.Server, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	gs := grpc.NewServer(grpc.Creds(insecure.NewCredentials()))
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)
	errCh := make(chan error, 1)
	go func() {
		log.Info("grpc_health_started", zap.String("addr", lis.Addr().String()))
		if err := gs.Serve(lis); err != nil {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	select {
	case <-ctx.Done():
		log.Info("grpc_health_stopping")
		hs.Shutdown()
		gs.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
