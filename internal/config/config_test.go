package config

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

var configKeys = []string{
	"CRYPTO_KEY",
	"NEXT_PUBLIC_CRYPTO_KEY",
	"CRYPTO_ENGINE",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"INSTITUTIONAL_DOMAINS",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		assert.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "SWARTZKRIP2025", cfg.CryptoKey)
				assert.Equal(t, EngineVigenere, cfg.CryptoEngine)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Equal(t, []string{"@uta.edu.ec", "@uta.ec"}, cfg.InstitutionalDomains)
			},
		},
		{
			name: "load custom crypto configuration",
			envVars: map[string]string{
				"CRYPTO_KEY":    "another-key",
				"CRYPTO_ENGINE": "PASSLOCK",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "another-key", cfg.CryptoKey)
				assert.Equal(t, EnginePasslock, cfg.CryptoEngine)
			},
		},
		{
			name: "fall back to the public key variable",
			envVars: map[string]string{
				"NEXT_PUBLIC_CRYPTO_KEY": "public-key",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "public-key", cfg.CryptoKey)
			},
		},
		{
			name: "load custom logging and domains",
			envVars: map[string]string{
				"LOG_LEVEL":             "DEBUG",
				"LOG_FORMAT":            "json",
				"INSTITUTIONAL_DOMAINS": " @a.edu , ,@b.edu",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
				assert.Equal(t, []string{"@a.edu", "@b.edu"}, cfg.InstitutionalDomains)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}
			tt.validate(t, Load())
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for level, expected := range tests {
		cfg := &Config{LogLevel: level}
		assert.Equal(t, expected, cfg.SlogLevel(), level)
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.Logger(&buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}
