// Command basischange prints the basis-change fixtures for the XXZ quench:
// h2, its eigendecomposition, the phase-correction unitary, the similarity
// transforms between the h0 and h2 eigenbases, and the energy residual.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/talgya/basischange/internal/basis"
)

func main() {
	// Logs go to stderr; stdout carries only the fixtures.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(envOrDefault("BASISCHANGE_LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	res, err := basis.Compute(basis.H0(), basis.H2())
	if err != nil {
		slog.Error("basis change failed", "error", err)
		os.Exit(1)
	}
	slog.Info("basis change computed",
		"w0", res.W0,
		"w2", res.W2,
	)

	if _, err := res.WriteTo(os.Stdout); err != nil {
		slog.Error("write fixtures", "error", err)
		os.Exit(1)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
