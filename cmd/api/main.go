package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"finalloc/internal/config"
	"finalloc/internal/currency"
	"finalloc/internal/docs"
	"finalloc/internal/logger"
	"finalloc/internal/pricing"
	"finalloc/internal/server"
	"finalloc/internal/validator"
)

// @title           Financial Allocations API
// @version         1.0
// @description     Backend for the personal investment allocation dashboard: investment records, portfolio analytics, currency rates, and live prices.

// @host      localhost:3001
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Env)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	backend, err := server.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warnf("failed to close store: %v", err)
		}
	}()

	rates := currency.NewConverter(currency.DefaultTable())
	if cfg.FXLiveRates {
		source := currency.NewYahooRateSource(&http.Client{Timeout: cfg.RequestTimeout})
		go rates.Run(ctx, source, cfg.FXRefreshInterval)
	}

	prices := pricing.NewServiceFromConfig(cfg)
	deps := server.NewDependencies(cfg, backend.Store, backend.AuditDB, rates, prices)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Financial Allocations server on port %s (store: %s)", cfg.Port, backend.Store.Driver())
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
