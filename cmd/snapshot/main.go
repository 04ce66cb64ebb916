// Command snapshot prints the demo dashboard collections as JSON fixtures.
//
// Usage:
//
//	snapshot [-config path] [-collection name] [-no-delay]
//
// Without -collection the full overview is printed. Valid collection names are
// programs, quick-access, bookmarks, recent-activity and announcements.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dashboard-demo/internal/config"
	hdash "dashboard-demo/internal/handler/http/dashboard"
	"dashboard-demo/internal/infra/storage"
	"dashboard-demo/internal/observability/logging"
	dashUC "dashboard-demo/internal/usecase/dashboard"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $CONFIG_FILE)")
	collection := flag.String("collection", "", "print a single collection instead of the overview")
	noDelay := flag.Bool("no-delay", false, "skip the simulated latency")
	flag.Parse()

	// stdout carries the fixture, so logs go to stderr.
	logger := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"), "text")
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, *configPath, *collection, *noDelay); err != nil {
		logger.Error("snapshot failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, configPath, collection string, noDelay bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if noDelay {
		cfg.LatencyDisabled = true
	}

	urls, err := storage.NewPublicURLBuilder(cfg.Storage)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	provider := dashUC.NewProvider(urls, cfg.EffectiveLatency())

	out, err := hdash.Snapshot(ctx, provider, collection)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
