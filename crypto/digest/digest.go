// Package digest maps digest selectors onto hash constructors. It covers the
// SHA-1, SHA-2 and SHA-3 families used by the kdf, rsa and ecies packages.
package digest

import (
	"crypto"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/quorlin/cryptokit/errors"
)

// Kind selects a digest algorithm.
type Kind string

const (
	SHA1    Kind = "sha1"
	SHA256  Kind = "sha256"
	SHA384  Kind = "sha384"
	SHA512  Kind = "sha512"
	SHA3256 Kind = "sha3-256"
	SHA3384 Kind = "sha3-384"
	SHA3512 Kind = "sha3-512"
)

// ErrUnknownDigest is returned for selectors outside the supported set.
var ErrUnknownDigest = errors.Unsupported("digest: unknown digest algorithm")

// New returns the hash constructor for the selector. The constructor form is
// what HMAC-based primitives (HKDF, PBKDF2) consume.
func New(k Kind) (func() hash.Hash, error) {
	switch k {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	case SHA3256:
		return sha3.New256, nil
	case SHA3384:
		return sha3.New384, nil
	case SHA3512:
		return sha3.New512, nil
	default:
		return nil, ErrUnknownDigest.WithMetadata(map[string]string{"digest": string(k)})
	}
}

// CryptoHash maps the selector onto the standard library's crypto.Hash. The
// SHA-3 values are registered by the sha3 import above.
func CryptoHash(k Kind) (crypto.Hash, error) {
	switch k {
	case SHA1:
		return crypto.SHA1, nil
	case SHA256:
		return crypto.SHA256, nil
	case SHA384:
		return crypto.SHA384, nil
	case SHA512:
		return crypto.SHA512, nil
	case SHA3256:
		return crypto.SHA3_256, nil
	case SHA3384:
		return crypto.SHA3_384, nil
	case SHA3512:
		return crypto.SHA3_512, nil
	default:
		return 0, ErrUnknownDigest.WithMetadata(map[string]string{"digest": string(k)})
	}
}

// Size returns the output length in bytes of the selector.
func Size(k Kind) (int, error) {
	h, err := New(k)
	if err != nil {
		return 0, err
	}
	return h().Size(), nil
}

// Sum hashes data with the selected algorithm.
func Sum(k Kind, data []byte) ([]byte, error) {
	h, err := New(k)
	if err != nil {
		return nil, err
	}

	d := h()
	d.Write(data)
	return d.Sum(nil), nil
}

// Kinds lists every supported selector.
func Kinds() []Kind {
	return []Kind{SHA1, SHA256, SHA384, SHA512, SHA3256, SHA3384, SHA3512}
}
