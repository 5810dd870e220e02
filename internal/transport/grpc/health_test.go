package grpc_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	gtransport "crm-service/internal/transport/grpc"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthServer_ReportsStoreState(t *testing.T) {
	var down bool
	srv, h := gtransport.NewServer(pingerFunc(func(ctx context.Context) error {
		if down {
			return errors.New("db down")
		}
		return nil
	}), zap.NewNop())

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := grpc_health_v1.NewHealthClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	down = true
	watchCtx, stopWatch := context.WithCancel(context.Background())
	go h.Watch(watchCtx, 10*time.Millisecond)
	t.Cleanup(stopWatch)

	require.Eventually(t, func() bool {
		r, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		return err == nil && r.GetStatus() == grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}, 3*time.Second, 20*time.Millisecond)
}
