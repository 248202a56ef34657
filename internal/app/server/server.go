package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"woonlasten/internal/domain/auth"
	"woonlasten/internal/platform/config"
	"woonlasten/internal/platform/metrics"
	"woonlasten/internal/transport/http/api"
	calculatorhandler "woonlasten/internal/transport/http/handlers/calculator"
	"woonlasten/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config) *App {
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.Auth(cfg.JWTSecret, false))
	rateKey := middleware.WithKeyFunc(middleware.CallerOrIPKey(cfg.TrustProxyHeaders))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, rateKey))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.With(middleware.RequireScope(auth.ScopeMetricsRead, cfg.AuthRequired)).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONBody(cfg.MaxBodyBytes))
		r.Use(middleware.StatementRateLimit(cfg.RateLimitPerMinute, time.Minute, rateKey))

		calculatorHandler := calculatorhandler.NewHandler(collector, cfg.AuthRequired)
		calculatorHandler.RegisterRoutes(r)
	})

	return &App{Config: cfg, Metrics: collector, Router: router}
}

func Run() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	app := New(cfg)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("server shutdown failed", "err", err)
		}
	}()

	slog.Info("woonlasten server listening", "addr", cfg.Addr, "env", cfg.Environment, "authRequired", cfg.AuthRequired)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
