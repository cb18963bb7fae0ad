package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Sovexe/helldivers2-data-pipeline/internal/config"
	"github.com/Sovexe/helldivers2-data-pipeline/internal/domain"
	"github.com/Sovexe/helldivers2-data-pipeline/internal/publisher"
	"github.com/Sovexe/helldivers2-data-pipeline/internal/service"
	"github.com/Sovexe/helldivers2-data-pipeline/internal/source/hdtm"
	"github.com/Sovexe/helldivers2-data-pipeline/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// The run-summary publisher is optional; without a broker URL the
	// pipeline just writes to Postgres.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	// Initialize stores
	stores := service.Stores{
		Schema:      postgres.NewSchemaManager(db),
		Statuses:    postgres.NewPlanetStatusStore(db),
		Infos:       postgres.NewPlanetInfoStore(db),
		News:        postgres.NewNewsStore(db),
		Campaigns:   postgres.NewCampaignStore(db),
		MajorOrders: postgres.NewMajorOrderStore(db),
		Planets:     postgres.NewPlanetStore(db),
	}
	txManager := postgres.NewTransactionManager(db)

	// Initialize Training Manual source
	source := hdtm.New(hdtm.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, logger)

	syncService := service.NewSyncService(source, stores, txManager, pub, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Run.Timeout)
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting war-state sync",
		"source", source.Name(),
		"base_url", cfg.API.BaseURL,
	)

	stats, err := syncService.Run(ctx)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if stats.Outcome == domain.RunPartial {
		logger.Warn("run committed with failed resources",
			"failed_resources", stats.FailedResources,
		)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
