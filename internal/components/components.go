package components

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"uniprofile/internal/api"
	"uniprofile/internal/config"
	"uniprofile/internal/service"
	"uniprofile/internal/storage/mongo"
	"uniprofile/pkg/e"
	"uniprofile/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Mongo      *mongo.Mongo
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Mongo")

	// The database is strictly optional: any failure here degrades the
	// diagnostics report instead of failing startup.
	store, err := mongo.NewMongo(ctx, cfg, log)
	if err != nil {
		if errors.Is(err, e.ErrNotConfigured) {
			log.Info("Database not configured, diagnostics will report it unavailable")
		} else {
			log.Warn("Database unreachable, continuing without it", slog.Any("error", err))
		}
		store = nil
	}

	var lister service.CollectionLister
	if store != nil {
		lister = store
	}

	deckSvc := service.NewProfileDeckService(log)
	diagnosticsSvc := service.NewEnvDiagnosticsService(log, lister, cfg.Mongo.ProbeTimeout)

	srv := service.NewService(deckSvc, diagnosticsSvc)

	httpServer := api.NewServer(cfg, log, srv)
	log.Info("Initialized server")

	return &Components{
		logger:     log,
		HttpServer: httpServer,
		Mongo:      store,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Mongo.Close(ctx); err != nil {
			c.logger.Error("Mongo close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
