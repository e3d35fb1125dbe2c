// Package encryption decouples callers from the algorithm used to obscure transport payloads.
//
// Callers hold a *Service, which delegates to an Engine.
// Swapping the Engine for a stronger one doesn't change any call site.
package encryption

import (
	"errors"
)

var (
	ErrNoEngine = errors.New("no encryption engine provided")
)

// Engine is a reversible text transformation.
// Implementations must be safe for concurrent use.
type Engine interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
