package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"food-api/api"
	"food-api/config"
	"food-api/db"
)

// @title Food API
// @version 1.0
// @description CRUD API over foods, customers and students backed by PostgreSQL.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := db.Init(cfg.DB); err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: api.NewRouter(cfg, db.Pool, logger),
	}

	go func() {
		logger.Info("server started",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("docs", "/api-docs/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
