package vigenere

import (
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and reset the offset position within the key to its initial value.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and reset the offset position within the key to its initial value.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *shiftScreen
}

// NewReader constructs a Reader that subtracts the key from every byte read, starting at offset.
// This reverses what a Writer with the same key and offset produced.
func NewReader(r io.Reader, key []byte, offset ...int) (Reader, error) {
	scr, err := newShiftScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		scr:    scr,
	}, nil
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.sub(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *shiftScreen
	buf    []byte
}

// NewWriter constructs a Writer that adds the key to every byte written, starting at offset.
func NewWriter(target io.Writer, key []byte, offset ...int) (Writer, error) {
	scr, err := newShiftScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		scr:    scr,
	}, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	w.buf = w.buf[:0]
	for i := 0; i < len(in); i++ {
		w.buf = append(w.buf, w.scr.add(in[i]))
	}
	return w.target.Write(w.buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
