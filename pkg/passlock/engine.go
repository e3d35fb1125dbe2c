package passlock

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// Engine encrypts text with AES-GCM under a passphrase-derived key, and encodes the result as standard Base64.
// It satisfies the same Encrypt/Decrypt contract as the vigenere screen, so it can replace it without touching callers.
//
// A payload is laid out as: generator header | nonce | sealed data | salt.
// The key is derived once for the Engine's own salt, and again only for payloads carrying a different salt.
type Engine struct {
	gen    KeyGenerator
	header []byte
	pass   Passphrase
	key    Key
	salt   Salt
}

// NewEngine derives the Engine key from pass. A nil gen uses NewKeyGenerator defaults.
func NewEngine(pass Passphrase, gen *KeyGenerator) (*Engine, error) {
	if gen == nil {
		var err error
		gen, err = NewKeyGenerator()
		if err != nil {
			return nil, err
		}
	}
	key, salt, err := gen.GenerateKey(pass)
	if err != nil {
		return nil, err
	}
	header, err := gen.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &Engine{
		gen:    *gen,
		header: header,
		pass:   bytes.Clone(pass),
		key:    key,
		salt:   salt,
	}, nil
}

func (e *Engine) Encrypt(plaintext string) (string, error) {
	if len(plaintext) == 0 {
		return "", nil
	}
	sealed, err := Lock(e.key, e.salt, Plaintext(plaintext))
	if err != nil {
		return "", err
	}
	out := make([]byte, 0, len(e.header)+len(sealed))
	out = append(out, e.header...)
	out = append(out, sealed...)
	return base64.StdEncoding.EncodeToString(out), nil
}

func (e *Engine) Decrypt(ciphertext string) (string, error) {
	if len(ciphertext) == 0 {
		return "", nil
	}
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if len(data) < HeaderLen {
		return "", fmt.Errorf("%w: payload too short for header", ErrInvalidData)
	}
	var gen KeyGenerator
	if err := gen.UnmarshalBinary(data[:HeaderLen]); err != nil {
		return "", err
	}
	if gen != e.gen {
		return "", fmt.Errorf("%w: payload was produced with different key generator settings", ErrInvalidData)
	}

	payload := Encrypted(data[HeaderLen:])
	salt, err := e.gen.DeriveSalt(payload)
	if err != nil {
		return "", err
	}
	key := e.key
	if !bytes.Equal(salt, e.salt) {
		key, err = e.gen.DeriveKey(e.pass, salt)
		if err != nil {
			return "", err
		}
	}
	plain, err := Unlock(key, payload)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrInvalidData)
	}
	return string(plain), nil
}
