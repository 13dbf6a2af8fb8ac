package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barhub/internal/crm"
	"barhub/internal/crm/cache"
	"barhub/internal/crm/dataquality"
	crmmetrics "barhub/internal/crm/metrics"
	"barhub/internal/crm/ports"
	"barhub/internal/crm/service"
	"barhub/internal/crm/store"
	httpapi "barhub/internal/http"
	jwttoken "barhub/internal/jwt_token"
	"barhub/internal/platform/config"
	"barhub/internal/platform/httpserver"
	"barhub/internal/platform/kafka"
	"barhub/internal/platform/logger"
	"barhub/internal/platform/metrics"
	"barhub/internal/platform/postgres"
	"barhub/internal/platform/redis"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/crm.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.UsesDevSigningKey() {
		log.Warn("JWT_SIGNING_KEY is the development default; set a real key before exposing the API")
	}

	src, closeSrc, err := openSources(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSrc()

	crmMetrics := crmmetrics.New()
	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(crmMetrics),
		service.WithFlatVisitEstimate(cfg.CRM.FlatVisitEstimate),
		service.WithFetchTimeout(cfg.CRM.FetchTimeout),
		service.WithMaxPageSize(cfg.CRM.MaxPageSize),
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		if cfg.CRM.SnapshotTTL > 0 {
			opts = append(opts, service.WithSnapshotCache(cache.NewRedisSnapshotCache(redisClient, cfg.CRM.SnapshotTTL)))
			log.Info("snapshot cache enabled", "ttl", cfg.CRM.SnapshotTTL)
		}
	}

	publisher, closePublisher, err := newPublisher(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closePublisher()
	opts = append(opts, service.WithDataQualityPublisher(publisher))

	svc, err := crm.NewService(src, opts...)
	if err != nil {
		return err
	}

	tokens := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, jwttoken.Issuer, jwttoken.Audience)
	router := httpapi.NewRouter(httpapi.Deps{
		CRM:       crm.NewHandler(svc, log, cfg.CRM.DefaultPageSize),
		Validator: jwttoken.NewJWTServiceAdapter(tokens),
		Metrics:   metrics.New(),
		Logger:    log,
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting barhub", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// openSources connects to the venue database, or serves an empty in-memory
// backend when DATABASE_URL is unset.
func openSources(ctx context.Context, cfg *config.Config, log *slog.Logger) (crm.Sources, func(), error) {
	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set; serving an empty in-memory backend")
		return store.NewMemorySource(), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	return store.NewPostgres(db), closeDB(db, log), nil
}

func closeDB(db *sql.DB, log *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Error("close database", "error", err)
		}
	}
}

// newPublisher returns the Kafka publisher when brokers are configured and
// falls back to logging drop reports.
func newPublisher(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.DataQualityPublisher, func(), error) {
	producer, err := kafka.NewProducer(ctx, cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	if producer == nil {
		return dataquality.NewLogPublisher(log), func() {}, nil
	}
	log.Info("publishing data-quality events", "topic", cfg.Kafka.DataQualityTopic)
	return dataquality.NewKafkaPublisher(producer, cfg.Kafka.DataQualityTopic), producer.Close, nil
}
