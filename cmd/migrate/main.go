package main

import (
	"go.uber.org/zap"

	"github.com/ryank-holgate/ChronoChef/config"
	"github.com/ryank-holgate/ChronoChef/internal/database"
	"github.com/ryank-holgate/ChronoChef/internal/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("migrations applied")
}
