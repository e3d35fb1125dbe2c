package passlock

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyGenerator(t *testing.T) {
	gen, err := NewKeyGenerator()
	assert.NoError(t, err)
	assert.NotNil(t, gen)
	assert.Equal(t, DefaultInteractiveIterations, gen.iterations)
	assert.Equal(t, DefaultCpuCost, gen.cpuCost)
	assert.Equal(t, AES256KeySize, gen.aesKeySize)
	assert.Equal(t, DefaultRelBlockSize, gen.relativeBlockSize)

	key, salt, err := gen.GenerateKey([]byte("a test password"))
	assert.NoError(t, err)
	assert.Len(t, key, int(gen.aesKeySize))
	assert.Len(t, salt, int(gen.aesKeySize))
}

func TestNewKeyGenerator_Custom(t *testing.T) {
	gen, err := NewKeyGenerator(
		SetIterations(2),
		SetLongDelayIterations(),
		SetShortDelayIterations(),
		SetCPUCost(DefaultCpuCost),
		SetRelativeBlockSize(DefaultRelBlockSize),
		SetAES256KeySize(),
	)
	assert.NoError(t, err)
	assert.NotNil(t, gen)
	assert.Equal(t, DefaultInteractiveIterations, gen.iterations)
	assert.Equal(t, DefaultCpuCost, gen.cpuCost)
	assert.Equal(t, AES256KeySize, gen.aesKeySize)
	assert.Equal(t, DefaultRelBlockSize, gen.relativeBlockSize)
}

func TestNewKeyGenerator_Neg(t *testing.T) {
	tests := map[string]GeneratorOpt{
		"One iteration":    SetIterations(1),
		"Not a power of 2": SetIterations(6),
		"Zero CPU cost":    SetCPUCost(0),
		"Small block size": SetRelativeBlockSize(4),
	}
	for name, opt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewKeyGenerator(opt)
			assert.Error(t, err)
		})
	}
}

func TestKeyGenerator_DeriveKey(t *testing.T) {
	gen, err := NewKeyGenerator(SetIterations(1 << 4))
	require.NoError(t, err)

	key, salt, err := gen.GenerateKey([]byte("password"))
	require.NoError(t, err)
	derived, err := gen.DeriveKey([]byte("password"), salt)
	assert.NoError(t, err)
	assert.Equal(t, key, derived)

	_, err = gen.DeriveKey(nil, salt)
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)
	_, err = gen.DeriveKey([]byte("password"), salt[1:])
	assert.ErrorIs(t, err, ErrInvalidData)
	_, _, err = gen.GenerateKey(nil)
	assert.ErrorIs(t, err, ErrEmptyPassPhrase)
}

func TestKeyGenerator_mapper(t *testing.T) {
	var (
		buf bytes.Buffer
	)
	gen, err := NewKeyGenerator(SetShortDelayIterations())
	assert.NoError(t, err)
	assert.NotNil(t, gen)

	assert.NoError(t, gen.mapper().Write(&buf, binary.BigEndian))
	assert.Equal(t, HeaderLen, buf.Len())
	updated, err := NewKeyGenerator(
		SetIterations(1<<4),
		SetCPUCost(4),
		SetRelativeBlockSize(128),
		SetAES128KeySize(),
	)
	assert.NoError(t, err)
	assert.NoError(t, updated.mapper().Read(&buf, binary.BigEndian))
	assert.Equal(t, DefaultInteractiveIterations, updated.iterations)
	assert.Equal(t, DefaultCpuCost, updated.cpuCost)
	assert.Equal(t, DefaultRelBlockSize, updated.relativeBlockSize)
	assert.Equal(t, AES256KeySize, updated.aesKeySize)
}

func TestKeyGenerator_Header(t *testing.T) {
	gen, err := NewKeyGenerator(SetIterations(1<<4), SetAES128KeySize())
	require.NoError(t, err)
	header, err := gen.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, header, HeaderLen)

	var read KeyGenerator
	assert.NoError(t, read.UnmarshalBinary(header))
	assert.Equal(t, *gen, read)

	bad := bytes.Clone(header)
	bad[HeaderLen-1] = 7
	assert.ErrorIs(t, read.UnmarshalBinary(bad), ErrInvalidData)
	assert.ErrorIs(t, read.UnmarshalBinary(header[:4]), ErrInvalidData)
	assert.ErrorIs(t, read.UnmarshalBinary(make([]byte, HeaderLen)), ErrInvalidData)
}
