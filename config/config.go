package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danpasecinic/locator"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the registry settings read from the environment.
type Config struct {
	Name           string
	LogLevel       slog.Level
	LogFormat      string
	DisposalPolicy locator.DisposalPolicy
}

// Load reads .env files (if present) and populates a Config from
// environment variables. Variables already set in the process win over the
// files. Unparseable values fall back to the defaults.
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// .env is optional
	_ = godotenv.Load(files...)

	return &Config{
		Name:           env("LOCATOR_NAME", "registry"),
		LogLevel:       envLevel("LOCATOR_LOG_LEVEL", slog.LevelInfo),
		LogFormat:      envFormat("LOCATOR_LOG_FORMAT", FormatText),
		DisposalPolicy: envPolicy("LOCATOR_DISPOSAL_POLICY", locator.BestEffort),
	}
}

// Logger builds a slog logger writing to w with the configured level and
// format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Options returns the registry options for this configuration, logging to
// stderr.
func (c *Config) Options() []locator.Option {
	return []locator.Option{
		locator.WithName(c.Name),
		locator.WithLogger(c.Logger(os.Stderr)),
		locator.WithDisposalPolicy(c.DisposalPolicy),
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return fallback
	}
	return level
}

func envFormat(key, fallback string) string {
	switch v := strings.ToLower(os.Getenv(key)); v {
	case FormatText, FormatJSON:
		return v
	default:
		return fallback
	}
}

func envPolicy(key string, fallback locator.DisposalPolicy) locator.DisposalPolicy {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	policy, err := locator.ParseDisposalPolicy(v)
	if err != nil {
		return fallback
	}
	return policy
}
