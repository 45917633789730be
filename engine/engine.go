// Package engine exposes the toolkit behind a uniform string-in/string-out
// facade. Every request carries its payloads as text with per-field encodings
// (base64, hex or utf8), which keeps the surface transport-friendly.
//
// Binary outputs default to base64; key material in PEM form travels as
// plain text.
package engine

import (
	"crypto/rand"

	"github.com/rs/zerolog"

	"github.com/quorlin/cryptokit/codec"
	"github.com/quorlin/cryptokit/crypto/aes"
	"github.com/quorlin/cryptokit/crypto/digest"
	"github.com/quorlin/cryptokit/crypto/kdf"
	"github.com/quorlin/cryptokit/crypto/keys"
	"github.com/quorlin/cryptokit/crypto/rsa"
	"github.com/quorlin/cryptokit/jwk"
)

// Engine is the facade over the key, cipher and derivation packages. The zero
// value is not usable; construct with New.
type Engine struct {
	logger zerolog.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger attaches a logger. Operations log their parameters at debug
// level; key material and plaintext never reach the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine. Without WithLogger all logging is discarded.
func New(opts ...Option) *Engine {
	e := &Engine{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RandomBytes returns n cryptographically random bytes under the requested
// encoding (base64 when empty).
func (e *Engine) RandomBytes(n int, encoding codec.Encoding) (string, error) {
	if n <= 0 || n > 1<<20 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", ErrRandomFailed.WithCause(err)
	}

	e.logger.Debug().Str("op", "random_bytes").Int("length", n).Msg("generated random bytes")
	return codec.Encode(orDefault(encoding, codec.Base64), buf)
}

// Capabilities describes the supported algorithm surface.
type Capabilities struct {
	Families      []keys.Family    `json:"families"`
	AESModes      []aes.Mode       `json:"aes_modes"`
	AESPaddings   []aes.Padding    `json:"aes_paddings"`
	RSAPaddings   []rsa.Padding    `json:"rsa_paddings"`
	Digests       []digest.Kind    `json:"digests"`
	KDFs          []kdf.Kind       `json:"kdfs"`
	JWKAlgorithms []jwk.Algorithm  `json:"jwk_algorithms"`
	Encodings     []codec.Encoding `json:"encodings"`
}

// Capabilities lists every supported family, mode, padding, digest, KDF and
// JWK algorithm.
func (e *Engine) Capabilities() Capabilities {
	return Capabilities{
		Families:      keys.Families(),
		AESModes:      aes.Modes(),
		AESPaddings:   aes.Paddings(),
		RSAPaddings:   rsa.Paddings(),
		Digests:       digest.Kinds(),
		KDFs:          kdf.Kinds(),
		JWKAlgorithms: jwk.Algorithms(),
		Encodings:     []codec.Encoding{codec.Base64, codec.Hex, codec.UTF8},
	}
}
