package vigenere

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite(t *testing.T) {
	data := "A string with some text"
	key := []byte{0xde, 0xad, 0xbe, 0xef}
	var shifted bytes.Buffer

	out, err := NewWriter(&shifted, key)
	assert.NoError(t, err)
	n, err := out.Write([]byte(data))
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.NotEqual(t, data, shifted.String())

	in, err := NewReader(&shifted, key)
	assert.NoError(t, err)
	var output strings.Builder
	copied, err := io.Copy(&output, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(data)), copied)
	assert.Equal(t, data, output.String())
}

func TestWriter_Wraps(t *testing.T) {
	var out bytes.Buffer
	w, err := NewWriter(&out, []byte{0x02})
	assert.NoError(t, err)
	_, err = w.Write([]byte{0xff, 0xfe, 0x00})
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x00, 0x02}, out.Bytes())
}

func TestReader_Wraps(t *testing.T) {
	out := make([]byte, 3)
	r, err := NewReader(bytes.NewReader([]byte{0x01, 0x00, 0x02}), []byte{0x02})
	assert.NoError(t, err)
	n, err := r.Read(out)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0xff, 0xfe, 0x00}, out)
}

func TestWriter_Reset(t *testing.T) {
	var (
		outA bytes.Buffer
		outB bytes.Buffer
		in   = []byte{0x0, 0x1}
		key  = []byte{0x0, 0x1, 0x1, 0x2}
	)
	w, err := NewWriter(&outA, key, 1)
	assert.NoError(t, err)
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x2}, outA.Bytes())

	w.Reset(&outB)
	n, err = w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x1, 0x2}, outB.Bytes())
}

func TestReader_Reset(t *testing.T) {
	var (
		outA = make([]byte, 2)
		outB = make([]byte, 2)
		in   = []byte{0x1, 0x2}
		key  = []byte{0x0, 0x1, 0x1, 0x2}
	)
	r, err := NewReader(bytes.NewReader(in), key, 1)
	assert.NoError(t, err)
	n, err := r.Read(outA)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x0, 0x1}, outA)

	r.Reset(bytes.NewReader(in))
	n, err = r.Read(outB)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x0, 0x1}, outB)
}

func TestNewShiftScreenNeg(t *testing.T) {
	_, err := newShiftScreen(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = newShiftScreen([]byte{0}, -1)
	assert.Error(t, err)
	_, err = newShiftScreen([]byte{0}, 1)
	assert.Error(t, err)
	_, err = newShiftScreen([]byte{0}, 2)
	assert.Error(t, err)
}
