package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"kaikari-xpress/internal/cart"
	"kaikari-xpress/internal/config"
	"kaikari-xpress/internal/db"
	"kaikari-xpress/internal/geocode"
	"kaikari-xpress/internal/httpserver"
	"kaikari-xpress/internal/kv"
	catalogrepo "kaikari-xpress/internal/repository/catalog"
	"kaikari-xpress/internal/seed"
	catalogsvc "kaikari-xpress/internal/service/catalog"
	"kaikari-xpress/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		kvStore     kv.Store
		dbpool      *pgxpool.Pool
		catalogRepo catalogrepo.Repository
	)
	switch cfg.StorageDriver {
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		dbpool = pool
		kvStore = kv.NewPostgres(pool)
		catalogRepo = catalogrepo.NewPostgres(pool)
	case "sqlite":
		store, err := kv.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			logger.Fatalf("open sqlite store: %v", err)
		}
		defer store.Close()
		kvStore = store
		catalogRepo = catalogrepo.NewMemory(seed.Products())
	case "memory":
		kvStore = kv.NewMemory()
		catalogRepo = catalogrepo.NewMemory(seed.Products())
	default:
		logger.Fatalf("unknown storage driver %q", cfg.StorageDriver)
	}

	cartManager := cart.New(kvStore, logger)
	if err := cartManager.Load(ctx); err != nil {
		logger.Fatalf("load cart state: %v", err)
	}

	deps := httpserver.Deps{
		Catalog: catalogsvc.New(catalogRepo),
		Cart:    cartManager,
		Storage: storage.New(kvStore, logger),
	}
	if cfg.GeocoderAPIKey != "" {
		deps.Geocoder = geocode.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderAPIKey)
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, cfg.AllowedOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (storage driver %s)", cfg.HTTPAddr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
