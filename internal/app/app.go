// Package app assembles the configured encryption engine and logger.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/WADEPAR6/swartzkrip/internal/config"
	"github.com/WADEPAR6/swartzkrip/pkg/encryption"
	"github.com/WADEPAR6/swartzkrip/pkg/passlock"
	"github.com/WADEPAR6/swartzkrip/pkg/vigenere"
)

var (
	_ encryption.Engine = (*vigenere.Cipher)(nil)
	_ encryption.Engine = (*passlock.Engine)(nil)
)

// Container holds the application components and creates them on first access.
// It replaces package-level singletons: one Container is built per process (or per test) and passed around.
type Container struct {
	config    *config.Config
	logOutput io.Writer

	logger  *slog.Logger
	engine  encryption.Engine
	service *encryption.Service

	loggerInit  sync.Once
	engineInit  sync.Once
	serviceInit sync.Once
	engineErr   error
	serviceErr  error
}

// NewContainer creates a Container for cfg. Logs are written to logOutput, or os.Stderr when it's nil.
func NewContainer(cfg *config.Config, logOutput io.Writer) *Container {
	if logOutput == nil {
		logOutput = os.Stderr
	}
	return &Container{
		config:    cfg,
		logOutput: logOutput,
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.config.Logger(c.logOutput)
	})
	return c.logger
}

// Engine returns the encryption engine selected by CryptoEngine.
func (c *Container) Engine() (encryption.Engine, error) {
	c.engineInit.Do(func() {
		c.engine, c.engineErr = c.initEngine()
	})
	return c.engine, c.engineErr
}

// EncryptionService returns the Service wrapping Engine.
func (c *Container) EncryptionService() (*encryption.Service, error) {
	c.serviceInit.Do(func() {
		engine, err := c.Engine()
		if err != nil {
			c.serviceErr = err
			return
		}
		c.service, c.serviceErr = encryption.NewService(engine, encryption.WithLogger(c.Logger()))
	})
	return c.service, c.serviceErr
}

func (c *Container) initEngine() (encryption.Engine, error) {
	switch c.config.CryptoEngine {
	case config.EngineVigenere, "":
		cipher, err := vigenere.New(c.config.CryptoKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s engine: %w", config.EngineVigenere, err)
		}
		return cipher, nil
	case config.EnginePasslock:
		engine, err := passlock.NewEngine(passlock.Passphrase(c.config.CryptoKey), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s engine: %w", config.EnginePasslock, err)
		}
		return engine, nil
	default:
		return nil, fmt.Errorf("unknown crypto engine %q", c.config.CryptoEngine)
	}
}
