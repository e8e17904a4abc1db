package server

import (
	"context"
	"net"
	"time"

	"github.com/fekuna/comics-store-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// HealthServer serves grpc.health.v1.Health. The overall status ("") follows
// the database ping.
type HealthServer struct {
	grpcServer *grpc.Server
	health     *health.Server
	db         Pinger
	interval   time.Duration
	logger     logger.ZapLogger
}

func NewHealthServer(db Pinger, interval time.Duration, log logger.ZapLogger) *HealthServer {
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	return &HealthServer{
		grpcServer: grpcServer,
		health:     hs,
		db:         db,
		interval:   interval,
		logger:     log,
	}
}

// Check pings the database once and updates the reported status.
func (s *HealthServer) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("Database ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	return status
}

// Watch re-checks the database every interval until ctx is done.
func (s *HealthServer) Watch(ctx context.Context) {
	s.Check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

func (s *HealthServer) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop flips every service to NOT_SERVING before draining.
func (s *HealthServer) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
