package encryption

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Service wraps an Engine with the failure policy expected by transport code:
// failures never propagate, they are logged and reported as an empty result.
type Service struct {
	engine Engine
	log    *slog.Logger
}

// Option configures a Service in NewService.
type Option = func(*Service)

// WithLogger sets the logger used to report failures. slog.Default is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.log = logger
		}
	}
}

// NewService creates a Service delegating to engine.
func NewService(engine Engine, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	s := &Service{
		engine: engine,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WithEngine returns a copy of the Service that delegates to engine instead.
// The receiver is left untouched, so Services already handed out keep their behavior.
func (s *Service) WithEngine(engine Engine) (*Service, error) {
	if engine == nil {
		return nil, ErrNoEngine
	}
	cp := *s
	cp.engine = engine
	return &cp, nil
}

// Engine returns the Engine currently in use.
func (s *Service) Engine() Engine {
	return s.engine
}

// Encrypt returns the encrypted form of plaintext, or "" if the engine failed.
func (s *Service) Encrypt(plaintext string) string {
	out, err := s.engine.Encrypt(plaintext)
	if err != nil {
		s.log.Warn("failed to encrypt payload", "error", err)
		return ""
	}
	return out
}

// Decrypt returns the plaintext for ciphertext, or "" if it can't be decrypted.
// A failed decrypt is expected with a wrong key or a corrupted payload, so it's logged at info level.
func (s *Service) Decrypt(ciphertext string) string {
	out, err := s.engine.Decrypt(ciphertext)
	if err != nil {
		s.log.Info("failed to decrypt payload", "error", err, "length", len(ciphertext))
		return ""
	}
	return out
}

// EncryptJSON serializes v as JSON and encrypts it, returning "" on failure.
func (s *Service) EncryptJSON(v any) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.log.Warn("failed to serialize payload", "error", err)
		return ""
	}
	return s.Encrypt(strings.TrimSuffix(buf.String(), "\n"))
}

// DecryptJSON decrypts ciphertext and deserializes it as T.
// The second return value is false when the payload couldn't be decrypted or deserialized.
func DecryptJSON[T any](s *Service, ciphertext string) (T, bool) {
	var out T
	plain, err := s.engine.Decrypt(ciphertext)
	if err != nil {
		s.log.Info("failed to decrypt payload", "error", err, "length", len(ciphertext))
		return out, false
	}
	if err := json.Unmarshal([]byte(plain), &out); err != nil {
		s.log.Info("failed to deserialize decrypted payload", "error", err)
		var zero T
		return zero, false
	}
	return out, true
}
