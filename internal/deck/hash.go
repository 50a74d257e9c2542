package deck

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// HashVersion names the parameter set below. Changing any of them
	// changes every derived secret and must bump the version.
	HashVersion = 1

	// Iterations is the PBKDF2 iteration count used to derive secrets.
	Iterations = 1 << 16

	// KeySize is the size in bytes of a derived secret.
	KeySize = 32
)

var (
	ErrInvalidIterations = errors.New("iterations must be positive")
	ErrInvalidKeySize    = errors.New("key size must be positive")
)

type hashConfig struct {
	password   *string
	iterations int
	keySize    int
}

// HashOption configures Hash.
type HashOption func(*hashConfig)

// WithPassword appends ":" and the password to the hash preimage. An empty
// password still adds the colon; omit the option for no password.
func WithPassword(password string) HashOption {
	return func(c *hashConfig) {
		c.password = &password
	}
}

// WithIterations overrides the PBKDF2 iteration count. Secrets derived
// with a non-default count are not compatible with HashVersion.
func WithIterations(n int) HashOption {
	return func(c *hashConfig) {
		c.iterations = n
	}
}

// WithKeySize overrides the output size in bytes.
func WithKeySize(n int) HashOption {
	return func(c *hashConfig) {
		c.keySize = n
	}
}

// Preimage returns the bytes fed into the key derivation: the canonical
// deck text, followed by ":" and the password when password is non-nil.
func (d *Deck) Preimage(password *string) string {
	preimage := d.String()
	if password != nil {
		preimage += ":" + *password
	}
	return preimage
}

// Hash derives a deterministic secret from the deck using PBKDF2 with
// HMAC-SHA-256 and an empty salt. The canonical text is regenerated from
// the cards, so two inputs that differ only in whitespace hash the same.
func (d *Deck) Hash(opts ...HashOption) ([]byte, error) {
	cfg := hashConfig{
		iterations: Iterations,
		keySize:    KeySize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.iterations <= 0 {
		return nil, fmt.Errorf("deriving secret: %w", ErrInvalidIterations)
	}
	if cfg.keySize <= 0 {
		return nil, fmt.Errorf("deriving secret: %w", ErrInvalidKeySize)
	}

	preimage := d.Preimage(cfg.password)
	return pbkdf2.Key([]byte(preimage), []byte{}, cfg.iterations, cfg.keySize, sha256.New), nil
}
