package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Pinger — проверка доступности хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer отдаёт grpc.health.v1 и переводит статус в NOT_SERVING, пока база недоступна.
type HealthServer struct {
	srv    *health.Server
	pinger Pinger
	log    *zap.Logger
	stopCh chan struct{}
}

func NewServer(pinger Pinger, log *zap.Logger) (*grpc.Server, *HealthServer) {
	grpcServer := grpc.NewServer()

	h := &HealthServer{
		srv:    health.NewServer(),
		pinger: pinger,
		log:    log,
		stopCh: make(chan struct{}),
	}
	h.srv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, h.srv)

	reflection.Register(grpcServer)
	return grpcServer, h
}

// Watch периодически пингует базу и обновляет статус.
func (h *HealthServer) Watch(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.check(ctx)
		case <-h.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *HealthServer) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.log.Warn("База недоступна, статус NOT_SERVING", zap.Error(err))
		h.srv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.srv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}

// Shutdown помечает сервис как NOT_SERVING и останавливает Watch.
func (h *HealthServer) Shutdown() {
	close(h.stopCh)
	h.srv.Shutdown()
}
