package passlock

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 20
	DefaultInteractiveIterations uint64 = 1 << 15
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	AES256KeySize                uint8  = 256 / 8
	AES128KeySize                uint8  = 128 / 8

	// HeaderLen is the size of the serialized KeyGenerator settings that prefix an Engine payload.
	HeaderLen = 8 + 1 + 1 + 1
)

var (
	ErrEmptyPassPhrase = errors.New("cannot use an empty passphrase")
	ErrInvalidData     = errors.New("unable to use input data")
)

// Key is an AES key that can be used to encrypt or decrypt an encrypted payload.
type Key []byte

// Salt is a slice of secure random bytes that is used with scrypt to generate a Key from a Passphrase.
type Salt []byte

// Passphrase is a human-readable string used to generate a Key.
type Passphrase []byte

// Encrypted is an encrypted payload.
type Encrypted []byte

// Plaintext is an unencrypted payload.
type Plaintext []byte

// KeyGenerator holds the scrypt tuning used to turn a Passphrase into a Key.
// The zero value is not usable, create one with NewKeyGenerator.
type KeyGenerator struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	aesKeySize        uint8
}

func (g *KeyGenerator) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&g.iterations),
		bin.Byte(&g.relativeBlockSize),
		bin.Byte(&g.cpuCost),
		bin.Byte(&g.aesKeySize),
	)
}

type GeneratorOpt = func(*KeyGenerator) error

func SetAES256KeySize() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.aesKeySize = AES256KeySize
		return nil
	}
}

func SetAES128KeySize() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.aesKeySize = AES128KeySize
		return nil
	}
}

// SetLongDelayIterations sets a higher iteration count, suited to keys that are derived once and held for a long time.
func SetLongDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultLargeIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count, suited to services that derive keys while handling requests.
// This is the default.
func SetShortDelayIterations() GeneratorOpt {
	return func(gen *KeyGenerator) error {
		gen.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if err := checkIterations(iterations); err != nil {
			return err
		}
		gen.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor for key generation from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		gen.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) GeneratorOpt {
	return func(gen *KeyGenerator) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		gen.relativeBlockSize = size
		return nil
	}
}

func checkIterations(iterations uint64) error {
	if iterations <= 1 {
		return errors.New("iterations cannot be <= 1")
	}
	if iterations&(iterations-1) != 0 {
		return errors.New("iterations must be a power of 2")
	}
	return nil
}

// NewKeyGenerator creates a new KeyGenerator using the options provided as zero or more GeneratorOpt.
// By default, the generator generates a key for AES256KeySize using DefaultInteractiveIterations.
func NewKeyGenerator(opts ...GeneratorOpt) (*KeyGenerator, error) {
	gen := &KeyGenerator{
		iterations:        DefaultInteractiveIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		aesKeySize:        AES256KeySize,
	}

	for _, opt := range opts {
		if err := opt(gen); err != nil {
			return nil, err
		}
	}
	return gen, nil
}

// GenerateKey will generate an AES key and a fresh salt using the configuration of the KeyGenerator.
func (g *KeyGenerator) GenerateKey(pass Passphrase) (key Key, salt Salt, err error) {
	if len(pass) == 0 {
		return nil, nil, ErrEmptyPassPhrase
	}
	salt = make(Salt, g.aesKeySize)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, err
	}
	key, err = g.DeriveKey(pass, salt)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

// DeriveKey will recover a key from the passphrase and a salt produced by GenerateKey.
// This doesn't ensure that the given passphrase is the *correct* passphrase used to encrypt a payload.
func (g *KeyGenerator) DeriveKey(pass Passphrase, salt Salt) (Key, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassPhrase
	}
	if len(salt) != int(g.aesKeySize) {
		return nil, fmt.Errorf("%w: salt length %d doesn't match key size %d", ErrInvalidData, len(salt), g.aesKeySize)
	}
	return scrypt.Key(pass, salt, int(g.iterations), int(g.relativeBlockSize), int(g.cpuCost), int(g.aesKeySize))
}

// DeriveSalt returns the salt appended to an encrypted payload by Lock.
func (g *KeyGenerator) DeriveSalt(data Encrypted) (Salt, error) {
	if uint64(len(data)) <= uint64(g.aesKeySize) {
		return nil, fmt.Errorf("%w: data is not long enough to contain a valid salt", ErrInvalidData)
	}
	return Salt(data[len(data)-int(g.aesKeySize):]), nil
}

// MarshalBinary writes the generator settings as a HeaderLen byte header.
func (g *KeyGenerator) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := g.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary reads settings written by MarshalBinary, rejecting values NewKeyGenerator wouldn't produce.
func (g *KeyGenerator) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderLen {
		return fmt.Errorf("%w: generator header must be %d bytes", ErrInvalidData, HeaderLen)
	}
	var read KeyGenerator
	if err := read.mapper().Read(bytes.NewReader(data), binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if err := checkIterations(read.iterations); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if read.relativeBlockSize < DefaultRelBlockSize || read.cpuCost < DefaultCpuCost {
		return fmt.Errorf("%w: generator cost settings out of range", ErrInvalidData)
	}
	if read.aesKeySize != AES128KeySize && read.aesKeySize != AES256KeySize {
		return fmt.Errorf("%w: unsupported key size %d", ErrInvalidData, read.aesKeySize)
	}
	*g = read
	return nil
}
