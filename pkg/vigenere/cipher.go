package vigenere

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	// DefaultKey is used by NewDefault when no key has been configured.
	DefaultKey = "SWARTZKRIP2025"
)

var (
	// ErrDecode is wrapped by every failure to recover plaintext from a ciphertext.
	ErrDecode = errors.New("unable to decode ciphertext")
)

// Cipher applies the additive stream screen with a fixed key.
// A Cipher is immutable once constructed and may be shared between goroutines.
type Cipher struct {
	key []byte
}

// New creates a Cipher using the UTF-16 code units of key as its repeating keystream.
// Characters outside the Basic Multilingual Plane contribute both surrogate units, as browser clients do.
// Units are reduced mod 256, which yields the same shift as adding the full unit and reducing afterward.
func New(key string) (*Cipher, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	units := utf16.Encode([]rune(key))
	ks := make([]byte, len(units))
	for i, u := range units {
		ks[i] = byte(u)
	}
	return &Cipher{key: ks}, nil
}

// NewDefault creates a Cipher with DefaultKey.
func NewDefault() *Cipher {
	c, _ := New(DefaultKey)
	return c
}

// Encode screens plaintext and returns it as standard Base64.
// An empty plaintext produces an empty result.
func (c *Cipher) Encode(plaintext string) string {
	// Writes only target in-memory buffers, so Encrypt cannot fail here.
	out, _ := c.Encrypt(plaintext)
	return out
}

// Encrypt is Encode with the error surfaced, satisfying the encryption engine contract.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if len(plaintext) == 0 {
		return "", nil
	}
	var out strings.Builder
	outer := base64.NewEncoder(base64.StdEncoding, &out)
	shift, err := NewWriter(outer, c.key)
	if err != nil {
		return "", err
	}
	staging := base64.NewEncoder(base64.StdEncoding, shift)
	if _, err := staging.Write([]byte(plaintext)); err != nil {
		return "", err
	}
	if err := staging.Close(); err != nil {
		return "", err
	}
	if err := outer.Close(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Decode reverses Encode. Any malformed input results in an error wrapping ErrDecode.
func (c *Cipher) Decode(ciphertext string) (string, error) {
	if len(ciphertext) == 0 {
		return "", nil
	}
	shifted, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: outer encoding: %v", ErrDecode, err)
	}
	unshift, err := NewReader(bytes.NewReader(shifted), c.key)
	if err != nil {
		return "", err
	}
	plain, err := io.ReadAll(base64.NewDecoder(base64.StdEncoding, unshift))
	if err != nil {
		return "", fmt.Errorf("%w: staging encoding: %v", ErrDecode, err)
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecode)
	}
	return string(plain), nil
}

// Decrypt is an alias of Decode, satisfying the encryption engine contract.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	return c.Decode(ciphertext)
}

// EncodeJSON serializes v as JSON and encodes the result.
func (c *Cipher) EncodeJSON(v any) (string, error) {
	data, err := marshalJSON(v)
	if err != nil {
		return "", err
	}
	return c.Encode(data), nil
}

// marshalJSON serializes v without escaping '<', '>' and '&', matching what browser clients produce.
func marshalJSON(v any) (string, error) {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeJSON decodes ciphertext and deserializes the JSON it contains into v.
func (c *Cipher) DecodeJSON(ciphertext string, v any) error {
	plain, err := c.Decode(ciphertext)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(plain), v)
}
