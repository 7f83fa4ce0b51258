package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shopsbuzz/shopsbuzz-backend/api/routes"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/auth"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/cart"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/catalog"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/wishlist"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/config"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/logger"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/metrics"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	cartStorage, err := cart.NewRedisStorage(redisClient, cfg.Cart)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart storage", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartStorage, logg, httpMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{Sessions: cartService})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:    cfg,
			Logger:    logg,
			Redis:     redisClient,
			Metrics:   httpMetrics,
			Registry:  registry,
			Catalog:   catalog.New(),
			Carts:     cartService,
			Auth:      authService,
			Wishlists: wishlistService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
