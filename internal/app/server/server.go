package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aisg/internal/domain/audit"
	"aisg/internal/domain/coach"
	"aisg/internal/platform/config"
	"aisg/internal/platform/db"
	"aisg/internal/platform/metrics"
	audithandler "aisg/internal/transport/http/handlers/audit"
	chathandler "aisg/internal/transport/http/handlers/chat"
	"aisg/internal/transport/http/middleware"
)

const readinessTimeout = 2 * time.Second

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Audits  *audit.Service
	Coach   *coach.Service
	Metrics *metrics.Collector
	Router  http.Handler
}

// New connects to Postgres, applies migrations when enabled and builds the
// router.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	app, err := NewWithStore(ctx, cfg, audit.NewStore(pool))
	if err != nil {
		pool.Close()
		return nil, err
	}
	app.DB = pool
	return app, nil
}

// NewWithStore builds the app over any audit store.
func NewWithStore(ctx context.Context, cfg config.Config, store audit.StoreAPI) (*App, error) {
	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	auditOpts := []audit.Option{}
	if collector != nil {
		auditOpts = append(auditOpts, audit.WithObserver(collector))
	}
	audits := audit.NewService(store, auditOpts...)

	var completer coach.Completer
	if cfg.AIEnabled() {
		gemini, err := coach.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		completer = gemini
	} else {
		slog.Info("chat coaching disabled", "reason", "GEMINI_API_KEY not set")
	}
	coachOpts := []coach.Option{
		coach.WithRequestsPerMinute(cfg.AIRequestsPerMinute),
		coach.WithTimeout(cfg.AITimeout),
	}
	if collector != nil {
		coachOpts = append(coachOpts, coach.WithObserver(collector))
	}
	coachService := coach.NewService(audits, completer, coachOpts...)

	app := &App{
		Config:  cfg,
		Audits:  audits,
		Coach:   coachService,
		Metrics: collector,
	}
	app.Router = app.routes()
	return app, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

func (a *App) routes() http.Handler {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics(a.Metrics))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := a.Audits.Ping(ctx); err != nil {
			slog.Warn("readiness check failed", "err", err)
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", a.Metrics.Handler())
	}

	mutate := middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute)
	router.Route("/api/v1", func(r chi.Router) {
		audithandler.NewHandler(a.Audits).RegisterRoutes(r, mutate)
		chathandler.NewHandler(a.Coach).RegisterRoutes(r, mutate)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router
}
