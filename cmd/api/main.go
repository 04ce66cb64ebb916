package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dashboard-demo/internal/config"
	hhttp "dashboard-demo/internal/handler/http"
	hdash "dashboard-demo/internal/handler/http/dashboard"
	"dashboard-demo/internal/handler/http/middleware"
	"dashboard-demo/internal/handler/http/requestid"
	"dashboard-demo/internal/infra/storage"
	"dashboard-demo/internal/observability/logging"
	"dashboard-demo/internal/observability/tracing"
	dashUC "dashboard-demo/internal/usecase/dashboard"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $CONFIG_FILE)")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger = logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	shutdownTracing := tracing.Setup()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	provider, err := initProvider(cfg)
	if err != nil {
		logger.Error("failed to initialize demo data provider", slog.Any("error", err))
		os.Exit(1)
	}
	if err := provider.Validate(); err != nil {
		logger.Error("demo dataset failed validation", slog.Any("error", err))
		os.Exit(1)
	}

	handler, err := newHandler(cfg, logger, provider)
	if err != nil {
		logger.Error("failed to build HTTP handler", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, cfg, handler)
}

// initProvider wires the public URL builder into the demo data provider.
func initProvider(cfg *config.Config) (*dashUC.Provider, error) {
	urls, err := storage.NewPublicURLBuilder(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return dashUC.NewProvider(urls, cfg.EffectiveLatency()), nil
}

// newHandler registers all routes and wraps them in the middleware chain.
//
// Middleware order (outermost first):
//  1. CORS (answers preflight before anything else runs)
//  2. Request ID
//  3. Tracing (span per request, trace ID header)
//  4. Recovery
//  5. Logging (request and trace IDs attached)
//  6. Timeout (bounds the simulated delays)
//  7. Metrics
func newHandler(cfg *config.Config, logger *slog.Logger, provider *dashUC.Provider) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version: cfg.Version,
		Logger:  logger,
		Checks: map[string]hhttp.Checker{
			"dataset": hhttp.CheckerFunc(func(context.Context) error { return provider.Validate() }),
		},
	})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hdash.Register(mux, provider)

	corsConfig, err := middleware.NewCORSConfig(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge)
	if err != nil {
		return nil, err
	}
	corsConfig.Logger = &middleware.SlogAdapter{Logger: logger}

	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.Validator.GetAllowedOrigins()),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	return hhttp.Chain(mux,
		middleware.CORS(*corsConfig),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.MetricsMiddleware,
	), nil
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version),
			slog.Bool("latency_disabled", cfg.LatencyDisabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	// In-flight requests are done; release anything still waiting on ctx.
	cancel()
	logger.Info("server stopped")
}
