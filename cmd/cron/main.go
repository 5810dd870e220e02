package main

import (
	"os"

	"crm-service/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := newRootCommand(logger.L()).Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
