// Package config assembles the runtime configuration of the dashboard demo.
//
// Values are resolved in three layers, later layers winning:
//
//  1. Built-in defaults (Default).
//  2. An optional YAML file, from the path passed to Load or CONFIG_FILE.
//  3. Environment variables, after .env files have been loaded.
//
// .env files follow this priority: ENV_FILE if set (and nothing else),
// otherwise .env.local then .env. Variables already present in the process
// environment are never overwritten by a file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"dashboard-demo/internal/handler/http/middleware"
	"dashboard-demo/internal/infra/storage"
	"dashboard-demo/internal/usecase/dashboard"
	pkgconfig "dashboard-demo/pkg/config"
)

// maxLatency bounds each simulated delay. Anything longer is a typo.
const maxLatency = 10 * time.Second

// Config is the full runtime configuration.
type Config struct {
	HTTP    HTTPConfig        `yaml:"http"`
	Version string            `yaml:"version"`
	Storage storage.Config    `yaml:"storage"`
	Latency dashboard.Latency `yaml:"latency"`
	// LatencyDisabled zeroes every simulated delay.
	LatencyDisabled bool       `yaml:"latency_disabled"`
	CORS            CORSConfig `yaml:"cors"`
	Log             LogConfig  `yaml:"log"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	MaxAge         int      `yaml:"max_age"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Version: "dev",
		Storage: storage.DefaultConfig(),
		Latency: dashboard.DefaultLatency(),
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
			MaxAge:         middleware.DefaultMaxAge,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load resolves the configuration. path names a YAML file; when empty the
// CONFIG_FILE variable is consulted, and when that is empty too no file is read.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		recordValidationError("env_file")
		return nil, err
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			recordValidationError("config_file")
			return nil, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	recordLoad()
	return &cfg, nil
}

// EffectiveLatency is the latency the provider should use.
func (c *Config) EffectiveLatency() dashboard.Latency {
	if c.LatencyDisabled {
		return dashboard.Latency{}
	}
	return c.Latency
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, fieldError("http.addr", errors.New("cannot be empty")))
	}
	if err := pkgconfig.NonNegative.Check(c.HTTP.RequestTimeout); err != nil {
		errs = append(errs, fieldError("http.request_timeout", err))
	}
	if err := pkgconfig.Positive.Check(c.HTTP.ShutdownTimeout); err != nil {
		errs = append(errs, fieldError("http.shutdown_timeout", err))
	}

	if _, err := storage.NewPublicURLBuilder(c.Storage); err != nil {
		errs = append(errs, fieldError("storage", err))
	}

	for name, d := range map[string]time.Duration{
		"latency.programs":        c.Latency.Programs,
		"latency.quick_access":    c.Latency.QuickAccess,
		"latency.bookmarks":       c.Latency.Bookmarks,
		"latency.recent_activity": c.Latency.RecentActivity,
		"latency.announcements":   c.Latency.Announcements,
	} {
		if err := (pkgconfig.DurationBounds{Max: maxLatency}).Check(d); err != nil {
			errs = append(errs, fieldError(name, err))
		}
	}

	if _, err := middleware.NewCORSConfig(c.CORS.AllowedOrigins, c.CORS.MaxAge); err != nil {
		errs = append(errs, fieldError("cors", err))
	}

	return errors.Join(errs...)
}

func fieldError(field string, err error) error {
	recordValidationError(field)
	return fmt.Errorf("%s: %w", field, err)
}

// loadEnvFiles loads .env files without overriding the process environment.
// Missing files are not an error.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Addr = pkgconfig.GetEnvString("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.RequestTimeout = pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", cfg.HTTP.RequestTimeout)
	cfg.HTTP.ShutdownTimeout = pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
	cfg.Version = pkgconfig.GetEnvString("VERSION", cfg.Version)

	cfg.Storage.BaseURL = pkgconfig.GetEnvString("STORAGE_BASE_URL", cfg.Storage.BaseURL)
	cfg.Storage.Bucket = pkgconfig.GetEnvString("STORAGE_BUCKET", cfg.Storage.Bucket)

	cfg.LatencyDisabled = pkgconfig.GetEnvBool("DEMO_LATENCY_DISABLED", cfg.LatencyDisabled)
	cfg.Latency.Programs = pkgconfig.GetEnvDuration("DEMO_LATENCY_PROGRAMS", cfg.Latency.Programs)
	cfg.Latency.QuickAccess = pkgconfig.GetEnvDuration("DEMO_LATENCY_QUICK_ACCESS", cfg.Latency.QuickAccess)
	cfg.Latency.Bookmarks = pkgconfig.GetEnvDuration("DEMO_LATENCY_BOOKMARKS", cfg.Latency.Bookmarks)
	cfg.Latency.RecentActivity = pkgconfig.GetEnvDuration("DEMO_LATENCY_RECENT_ACTIVITY", cfg.Latency.RecentActivity)
	cfg.Latency.Announcements = pkgconfig.GetEnvDuration("DEMO_LATENCY_ANNOUNCEMENTS", cfg.Latency.Announcements)

	cfg.CORS.AllowedOrigins = pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)
	cfg.CORS.MaxAge = pkgconfig.GetEnvInt("CORS_MAX_AGE", cfg.CORS.MaxAge)

	cfg.Log.Level = pkgconfig.GetEnvString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = pkgconfig.GetEnvString("LOG_FORMAT", cfg.Log.Format)
}
