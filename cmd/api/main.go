package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/koodakziba/koodakziba-backend/api/routes"
	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	"github.com/koodakziba/koodakziba-backend/internal/cart"
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	"github.com/koodakziba/koodakziba-backend/internal/seed"
	"github.com/koodakziba/koodakziba-backend/pkg/config"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
	"github.com/koodakziba/koodakziba-backend/pkg/metrics"
	"github.com/koodakziba/koodakziba-backend/pkg/redis"
	"github.com/koodakziba/koodakziba-backend/pkg/store"
)

const shutdownTimeout = 10 * time.Second

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

	ctx := context.Background()

	productColl, err := store.NewCollection[catalog.Product](cfg.Storage.DataDir, cfg.Storage.ProductsFile, logg)
	if err != nil {
		logg.Error(ctx, "failed to open products collection", err)
		os.Exit(1)
	}
	userColl, err := store.NewCollection[accounts.User](cfg.Storage.DataDir, cfg.Storage.UsersFile, logg)
	if err != nil {
		logg.Error(ctx, "failed to open users collection", err)
		os.Exit(1)
	}

	seeder, err := seed.New(productColl, userColl, cfg.Seed, cfg.Password, logg)
	if err != nil {
		logg.Error(ctx, "failed to build seeder", err)
		os.Exit(1)
	}
	if err := seeder.Run(ctx); err != nil {
		logg.Error(ctx, "failed to seed default data", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}

	catalogRepo, err := catalog.NewRepository(productColl)
	if err != nil {
		logg.Error(ctx, "failed to build catalog repository", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(ctx, "failed to build catalog service", err)
		os.Exit(1)
	}

	sessionStore, err := cart.NewSessionStore(redisClient, cfg.Cart.SessionTTL)
	if err != nil {
		logg.Error(ctx, "failed to build cart session store", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(sessionStore, catalogRepo)
	if err != nil {
		logg.Error(ctx, "failed to build cart service", err)
		os.Exit(1)
	}

	userRepo, err := accounts.NewRepository(userColl)
	if err != nil {
		logg.Error(ctx, "failed to build user repository", err)
		os.Exit(1)
	}
	accountService, err := accounts.NewService(userRepo, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to build account service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			registry,
			httpMetrics,
			catalogService,
			cartService,
			accountService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
		return
	case sig := <-stop:
		logg.Info(logg.WithField(startCtx, "signal", sig.String()), "shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, redisClient.Close())
	if closeErr != nil {
		logg.Error(startCtx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(startCtx, "shutdown complete")
}
