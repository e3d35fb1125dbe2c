package vigenere

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// keyAlphabet has 64 symbols so that every random byte maps onto it without bias.
const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// GenKey will generate a printable key with the given length.
// Printable keys can be placed in environment variables and .env files without escaping.
func GenKey(length int) (string, error) {
	return genKeyFrom(rand.Reader, length)
}

func genKeyFrom(src io.Reader, length int) (string, error) {
	if length <= 0 {
		return "", errors.New("asked to generate a 0-length key")
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("failed to read requested bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = keyAlphabet[int(b)%len(keyAlphabet)]
	}
	return string(buf), nil
}
