package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/mindguard/internal/api"
	"github.com/terraincognita07/mindguard/internal/config"
	"github.com/terraincognita07/mindguard/internal/db"
	"github.com/terraincognita07/mindguard/internal/logging"
	"github.com/terraincognita07/mindguard/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	for _, warning := range cfg.Warnings {
		logger.Warn(warning)
	}
	time.Local = cfg.Location

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	entries, mongoClient, err := openEntryStore(ctx, cfg)
	if err != nil {
		return err
	}
	if mongoClient != nil {
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := mongoClient.Disconnect(disconnectCtx); err != nil {
				logger.Warn("mongo disconnect failed", zap.Error(err))
			}
		}()
	}

	handler, err := api.NewHandler(database, api.Options{
		SecretKey:          cfg.SecretKey,
		Location:           cfg.Location,
		AnalysisWindowDays: cfg.AnalysisWindowDays,
		Logger:             logger,
		Entries:            entries,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("mindguard listening",
		zap.String("addr", cfg.ListenAddress()),
		zap.String("db", cfg.DBPath),
		zap.String("entry_store", cfg.EntryStore),
		zap.String("tz", cfg.Location.String()),
		zap.Int("analysis_window_days", cfg.AnalysisWindowDays),
	)
	if err := app.Listen(cfg.ListenAddress()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "MindGuard",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(handler.RequestLogger)
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

// openEntryStore returns nil for the SQLite store; the handler then uses its own repository.
func openEntryStore(ctx context.Context, cfg config.Config) (services.EntryStore, *mongo.Client, error) {
	if cfg.EntryStore != config.EntryStoreMongo {
		return nil, nil, nil
	}

	client, err := db.OpenMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo init failed: %w", err)
	}
	store := db.NewMongoEntryRepository(client, cfg.MongoDatabase)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return store, client, nil
}
