// Package config provides application configuration through environment variables.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/WADEPAR6/swartzkrip/pkg/identity"
	"github.com/WADEPAR6/swartzkrip/pkg/vigenere"
)

const (
	EngineVigenere = "vigenere"
	EnginePasslock = "passlock"
)

// Config holds all application configuration.
type Config struct {
	// CryptoKey is the key used by the payload cipher.
	CryptoKey    string
	// CryptoEngine selects the payload cipher, either "vigenere" or "passlock".
	CryptoEngine string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel  string
	// LogFormat is either "text" or "json".
	LogFormat string

	// InstitutionalDomains are the email suffixes accepted at registration.
	InstitutionalDomains []string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		CryptoKey:    env.GetString("CRYPTO_KEY", env.GetString("NEXT_PUBLIC_CRYPTO_KEY", vigenere.DefaultKey)),
		CryptoEngine: strings.ToLower(env.GetString("CRYPTO_ENGINE", EngineVigenere)),

		LogLevel:  strings.ToLower(env.GetString("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(env.GetString("LOG_FORMAT", "text")),

		InstitutionalDomains: splitList(
			env.GetString("INSTITUTIONAL_DOMAINS", strings.Join(identity.DefaultInstitutionalDomains, ",")),
		),
	}
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
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

// Logger builds a slog.Logger writing to w according to LogLevel and LogFormat.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadDotEnv searches for a .env file from the current directory up to the root and loads the first one found.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
