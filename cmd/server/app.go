package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"librarian/internal/library/handler"
	"librarian/internal/library/metrics"
	"librarian/internal/library/service"
	bookStore "librarian/internal/library/store/book"
	borrowerStore "librarian/internal/library/store/borrower"
	"librarian/internal/platform/config"
	"librarian/internal/platform/database"
	"librarian/internal/platform/events"
	"librarian/internal/platform/health"
	httptransport "librarian/internal/transport/http"
	"librarian/pkg/platform/circuit"
	request "librarian/pkg/platform/middleware/request"
	"librarian/pkg/platform/tracer"
)

// app holds the wired dependencies of a running server.
type app struct {
	cfg     config.Server
	logger  *slog.Logger
	router  http.Handler
	closers []func() error
}

// stores is the selected persistence backend.
type stores struct {
	pool      *database.Pool
	borrowers service.BorrowerStore
	books     service.BookStore
}

// openStores selects the backend named by cfg.Driver. SQL backends are migrated
// before use; memory needs no setup.
func openStores(ctx context.Context, cfg config.Store, logger *slog.Logger) (*stores, error) {
	var dbCfg database.Config
	switch cfg.Driver {
	case config.DriverMemory:
		return &stores{
			borrowers: borrowerStore.NewInMemory(),
			books:     bookStore.NewInMemory(),
		}, nil
	case config.DriverPostgres:
		dbCfg = database.DefaultConfig()
		dbCfg.URL = cfg.DatabaseURL
	case config.DriverSQLite:
		dbCfg = database.SQLiteConfig(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	pool, err := database.New(dbCfg)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, errors.New("database URL is empty")
	}
	applied, err := pool.Migrate(ctx)
	if err != nil {
		_ = pool.Close()
		return nil, err
	}
	logger.InfoContext(ctx, "database ready", "driver", pool.Driver(), "migrations", applied)

	return &stores{
		pool:      pool,
		borrowers: borrowerStore.NewSQL(pool.DB(), pool.Driver()),
		books:     bookStore.NewSQL(pool.DB(), pool.Driver()),
	}, nil
}

// openPublisher dials the broker when configured; otherwise events are only logged.
// Broker publishes sit behind a circuit breaker that falls back to the log.
func openPublisher(cfg config.Events, logger *slog.Logger) (service.EventPublisher, *events.AMQPPublisher, error) {
	if cfg.AMQPURL == "" {
		return events.NewLogPublisher(logger), nil, nil
	}
	broker, err := events.DialAMQP(cfg.AMQPURL, cfg.Exchange, logger)
	if err != nil {
		return nil, nil, err
	}
	guarded := events.NewGuardedPublisher(
		broker,
		events.NewLogPublisher(logger),
		circuit.New("amqp", circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)),
		logger,
	)
	return guarded, broker, nil
}

func newApp(ctx context.Context, cfg config.Server, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	st, err := openStores(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	healthHandler := health.New(cfg.Environment, cfg.Store.Driver)
	if st.pool != nil {
		a.closers = append(a.closers, st.pool.Close)
		healthHandler.RegisterCheck("database", st.pool.Health)
	}

	publisher, broker, err := openPublisher(cfg.Events, logger)
	if err != nil {
		a.close()
		return nil, err
	}
	if broker != nil {
		a.closers = append(a.closers, broker.Close)
		healthHandler.RegisterCheck("amqp", broker.Health)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc, err := service.New(
		st.borrowers,
		st.books,
		service.WithLogger(logger),
		service.WithMetrics(metrics.New(reg)),
		service.WithPublisher(publisher),
		service.WithTracer(tracer.NewOTel()),
	)
	if err != nil {
		a.close()
		return nil, err
	}

	var limiter *request.KeyedLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = request.NewKeyedLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		a.closers = append(a.closers, func() error {
			limiter.Stop()
			return nil
		})
	}

	a.router = httptransport.NewRouter(httptransport.Dependencies{
		Library:        handler.New(svc, logger),
		Health:         healthHandler,
		Gatherer:       reg,
		Limiter:        limiter,
		RequestMetrics: request.NewMetrics(reg),
		RequestTimeout: cfg.RequestTimeout,
	}, logger)

	return a, nil
}

// close releases resources in reverse acquisition order.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Error("failed to release resource", "error", err)
		}
	}
	a.closers = nil
}
