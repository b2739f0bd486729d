package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	apicontract "catalog/api-contract"
	"catalog/internal/config"
	"catalog/internal/http"
	"catalog/internal/log"
	"catalog/internal/service"
	"catalog/internal/store"
	"catalog/internal/telemetry"
	"catalog/pkg/cmdutil"
	"catalog/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running catalog api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log  config.Log
		HTTP config.HTTP
		Auth config.Auth
		Otel config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	if cfg.Auth.APIKey == "" {
		logger.WarnContext(ctx, "API_KEY is not set, every /api request will be rejected")
	}

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	if cfg.HTTP.Swagger {
		if _, err := apicontract.Load(ctx); err != nil {
			return fmt.Errorf("error validating api contract: %w", err)
		}
	}

	productStore := store.NewProductStore(store.SeedProducts())
	productService := service.NewProductService(productStore, validator.NewDefaultValidator())

	svc := http.New(cfg.HTTP, cfg.Auth, logger, productService)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
