package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storerank/internal/adapter/cache"
	"storerank/internal/adapter/cache/keys"
	httpadapter "storerank/internal/adapter/http"
	"storerank/internal/adapter/kafka"
	"storerank/internal/adapter/postgres"
	"storerank/internal/adapter/usecase"
	"storerank/internal/config"
	"storerank/internal/config/configs"
	"storerank/internal/core/port"
	"storerank/internal/db"
	"storerank/internal/logger"
	"storerank/internal/metrics"
	"storerank/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

// main loads configuration, prepares the database, wires the ranking,
// ledger and catalog services behind the HTTP adapter and serves until a
// termination signal arrives.
func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Log, os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tp, err := tracing.NewProvider(ctx, cfg.Tracing, cfg.Env)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		flushCtx, cancelFlush := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelFlush()
		if err := tp.Shutdown(flushCtx); err != nil {
			log.Error("tracer provider shutdown", slog.Any("error", err))
		}
	}()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info("demo catalog seeded")
	}

	rankingCache, closeCache, err := newRankingCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	m := metrics.New()

	var publisher port.EventPublisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewSyncProducer(cfg.Kafka)
		if err != nil {
			return err
		}
		pub := kafka.NewPublisher(producer, cfg.Kafka.Topic)
		defer func() { _ = pub.Close() }()
		publisher = pub
	}

	catalogRepo := postgres.NewCatalogRepository(pool, cfg.Psql.QueryTimeout)
	sponsorshipRepo := postgres.NewSponsorshipRepository(pool, cfg.Psql.QueryTimeout)

	invalidator := usecase.NewCacheInvalidator(rankingCache, cfg.Cache.Namespace, publisher, m, log)

	decorator, err := usecase.NewDecorator(cfg.Media)
	if err != nil {
		return fmt.Errorf("media config: %w", err)
	}

	ledger := usecase.NewLedgerService(sponsorshipRepo, catalogRepo, invalidator, cfg.Ledger.ClickCost,
		usecase.WithConsumeTimeout(cfg.Ledger.ConsumeTimeout),
		usecase.WithLedgerMetrics(m),
		usecase.WithLedgerLogger(log.With(slog.String("component", "ledger"))),
	)
	ranking := usecase.NewRankingService(catalogRepo, sponsorshipRepo, ledger, rankingCache,
		keys.New(cfg.Cache.Namespace),
		usecase.TTLs{Home: cfg.Cache.HomeTTL, Category: cfg.Cache.CategoryTTL, Search: cfg.Cache.SearchTTL},
		decorator,
		usecase.WithWorkers(cfg.Ledger.Workers),
		usecase.WithRankingMetrics(m),
		usecase.WithRankingLogger(log.With(slog.String("component", "ranking"))),
	)
	catalog := usecase.NewCatalogService(catalogRepo, ledger, invalidator, log.With(slog.String("component", "catalog")))

	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(cfg.Kafka, invalidator, log.With(slog.String("component", "kafka_consumer")))
		go func() {
			if err := consumer.Start(ctx); err != nil {
				log.Error("kafka consumer stopped", slog.Any("error", err))
			}
		}()
	}

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Ranking: ranking,
		Catalog: catalog,
		Ledger:  ledger,
		Metrics: m.Handler(),
		Health:  pool.Ping,
		Logger:  log,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server gracefully stopped")
	return nil
}

// newRankingCache builds the configured cache backend and a function that
// releases it.
func newRankingCache(ctx context.Context, cfg config.Config) (port.RankingCache, func(), error) {
	switch cfg.Cache.Backend {
	case configs.CacheBackendRedis:
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return cache.NewRedis(rdb), func() { _ = rdb.Close() }, nil
	default:
		return cache.NewMemory(cfg.Cache.Size), func() {}, nil
	}
}
