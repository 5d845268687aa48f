package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vedic-chart/internal/api"
	"vedic-chart/internal/config"
	"vedic-chart/internal/data"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Place presets are optional; a missing file just means no presets.
	placesPath := cfg.PlacesFile
	if placesPath == "" {
		placesPath = data.GetDefaultPlacesPath()
	}
	places, err := data.LoadPlaces(placesPath)
	if err != nil {
		logger.Warn("place presets not loaded", zap.String("path", placesPath), zap.Error(err))
	} else {
		logger.Info("place presets loaded", zap.String("path", placesPath), zap.Int("count", len(places.Places)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *data.ChartCache
	if cfg.Cache.Enabled {
		cache = data.NewChartCache(cfg.Cache.TTL)
		go cache.Run(ctx, 5*time.Minute)
	}

	router := api.NewRouter(cfg, places, cache, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("starting API server", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// loadConfig reads CHART_CONFIG when set, then applies environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if path := os.Getenv("CHART_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	return cfg, cfg.Validate()
}

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
