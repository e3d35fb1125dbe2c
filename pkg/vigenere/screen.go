package vigenere

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey = errors.New("cannot use empty key")
)

// shiftScreen walks the key like a ring buffer, shifting each byte by the current key byte.
type shiftScreen struct {
	key  []byte
	init int
	cur  int
}

func newShiftScreen(key []byte, offset ...int) (*shiftScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	s := &shiftScreen{
		key: key,
	}
	if len(offset) > 0 {
		if offset[0] < 0 || offset[0] >= len(key) {
			return nil, fmt.Errorf("offset %d out of range for provided key of len %d", offset[0], len(key))
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

// add relies on byte overflow for the mod 256 wrap.
func (s *shiftScreen) add(b byte) byte {
	b += s.key[s.cur]
	s.advance()
	return b
}

func (s *shiftScreen) sub(b byte) byte {
	b -= s.key[s.cur]
	s.advance()
	return b
}

func (s *shiftScreen) advance() {
	s.cur = (s.cur + 1) % len(s.key)
}

func (s *shiftScreen) reset() {
	s.cur = s.init
}
