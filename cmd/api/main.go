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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ryank-holgate/ChronoChef/config"
	"github.com/ryank-holgate/ChronoChef/internal/api"
	"github.com/ryank-holgate/ChronoChef/internal/database"
	"github.com/ryank-holgate/ChronoChef/internal/logger"
	"github.com/ryank-holgate/ChronoChef/internal/router"
	"github.com/ryank-holgate/ChronoChef/internal/service"
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

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	sessions := service.NewRedisSessionStore(redisClient)
	authService := service.NewAuthService(db, cfg.JWTSecret, sessions)
	recipeService := service.NewRecipeService(db)
	generator := service.NewGeminiService(cfg, nil)

	imageService, err := service.NewImageService(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to initialize image storage", zap.Error(err))
	}

	authHandler := api.NewAuthHandler(authService)
	profileHandler := api.NewProfileHandler(authService, imageService)
	recipeHandler := api.NewRecipeHandler(generator, recipeService)

	engine := router.SetupRouter(db, authHandler, profileHandler, recipeHandler, authService)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler: engine,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down server")
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		logger.Warn("error closing Redis client", zap.Error(err))
	}
	logger.Info("server stopped")
}
