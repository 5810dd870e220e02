package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"crm-service/config"
	"crm-service/internal/cache"
	"crm-service/internal/database"
	"crm-service/internal/logger"
	"crm-service/internal/repository"
	"crm-service/internal/seed"
	"crm-service/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

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
			log.Fatal("Redis недоступен, кэш нельзя очистить", zap.Error(err))
		}
		defer rc.Close()
		cacheClient = rc
	}
	mutation := service.NewMutationService(store, cacheClient, log)

	sum, err := seed.Run(context.Background(), store, mutation, cacheClient, log)
	if err != nil {
		log.Fatal("Ошибка заполнения базы", zap.Error(err))
	}

	line := strings.Repeat("=", 50)
	fmt.Println(line)
	fmt.Println("DATABASE SUMMARY")
	fmt.Println(line)
	fmt.Printf("Total Customers: %d\n", sum.Customers)
	fmt.Printf("Total Products: %d\n", sum.Products)
	fmt.Printf("Total Orders: %d\n", sum.Orders)
	fmt.Println(line)
	log.Info("Заполнение базы завершено")
}
