package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-service/config"
	_ "crm-service/docs"
	"crm-service/internal/cache"
	"crm-service/internal/database"
	"crm-service/internal/jobs"
	"crm-service/internal/logger"
	"crm-service/internal/notify"
	"crm-service/internal/repository"
	"crm-service/internal/router"
	"crm-service/internal/service"
	gtransport "crm-service/internal/transport/grpc"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title CRM API
// @Version 1.0
// @Description API клиентов, товаров и заказов CRM
// @BasePath /
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	store := service.NewStore(repository.New(db))

	var cacheClient service.CacheClient
	if cfg.Redis.Enabled {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Warn("Redis недоступен, кэш отключён", zap.Error(err))
		} else {
			defer rc.Close()
			cacheClient = rc
		}
	}

	query := service.NewQueryService(store, cacheClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
	mutation := service.NewMutationService(store, cacheClient, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// gRPC health
	lis, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}
	grpcServer, healthSrv := gtransport.NewServer(query, log)
	go healthSrv.Watch(ctx, 30*time.Second)
	go func() {
		log.Info("Starting gRPC health server", zap.String("addr", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("gRPC server failed", zap.Error(err))
		}
	}()

	// Фоновые задачи
	var scheduler *jobs.Scheduler
	notifier := notify.New(cfg.Notify, log)
	defer notifier.Close()
	if cfg.Jobs.SchedulerEnabled {
		runner := jobs.NewRunner(jobs.NewLocalAPI(query, mutation), notifier, cfg.Jobs.LogDir, log)
		scheduler = jobs.NewScheduler(runner, jobs.Intervals{
			Heartbeat: cfg.Jobs.HeartbeatInterval,
			Restock:   cfg.Jobs.RestockInterval,
			Report:    cfg.Jobs.ReportInterval,
			Reminders: cfg.Jobs.ReminderInterval,
		}, log)
		scheduler.Start(ctx)
	}

	httpServer := &http.Server{
		Addr:              cfg.Port,
		Handler:           router.Router(query, mutation, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Starting CRM HTTP server", zap.String("addr", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down CRM service...")
	if scheduler != nil {
		scheduler.Stop()
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	healthSrv.Shutdown()
	grpcServer.GracefulStop()
	log.Info("CRM service stopped gracefully")
}
