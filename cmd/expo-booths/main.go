package main

import (
	"context"
	"errors"
	"expoBooths/internal/config"
	"expoBooths/internal/floorplan"
	"expoBooths/internal/http-server/router"
	"expoBooths/internal/lib/logger/handlers/slogpretty"
	"expoBooths/internal/lib/logger/sl"
	"expoBooths/internal/lib/metrics"
	"expoBooths/internal/storage/catalog"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	// CONFIG_PATH and overrides may come from a .env file next to the binary.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting expo booths", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to load catalog", sl.Err(err))
		os.Exit(1)
	}

	counts := floorplan.Aggregate(storage.Entries())
	log.Info("catalog loaded",
		slog.Int("available", counts.Available),
		slog.Int("reserved", counts.Reserved),
		slog.Int("sold", counts.Sold),
	)

	opts := router.Options{InquiryBase: cfg.Inquiry.FormURL}

	if cfg.Metrics.Enabled {
		m := metrics.New("expo_booths", prometheus.DefaultRegisterer)
		m.SetBoothCounts(counts)

		opts.Metrics = m
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHTTP = promhttp.Handler()

		log.Info("metrics enabled", slog.String("path", cfg.Metrics.Path))
	}

	handler := router.New(log, storage, opts)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func loadCatalog(path string) (*catalog.Storage, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
