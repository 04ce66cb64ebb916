// Package config provides typed helpers for reading environment variables.
//
// Every helper falls back to its default when the variable is unset or empty.
// Values that are set but fail to parse also fall back, with a warning logged
// through slog, so a typo never prevents a demo server from starting.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnvString returns the value of key, or defaultValue if it is not set.
//
//	addr := GetEnvString("HTTP_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns key parsed as a base-10 integer.
func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue, strconv.Atoi)
}

// GetEnvBool accepts the values understood by strconv.ParseBool
// ("1", "t", "true", "0", "f", "false" and their capitalized forms).
func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue, strconv.ParseBool)
}

// GetEnvDuration returns key parsed by time.ParseDuration (e.g. "150ms", "30s").
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return getEnv(key, defaultValue, time.ParseDuration)
}

// GetEnvStringList splits a comma-separated variable, trimming whitespace and
// dropping empty entries.
//
//	// CORS_ALLOWED_ORIGINS="http://localhost:5173, https://dashboard.example"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	result := make([]string, 0, strings.Count(raw, ",")+1)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}

func getEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := parse(raw)
	if err != nil {
		slog.Warn("invalid value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Any("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}
	return value
}
