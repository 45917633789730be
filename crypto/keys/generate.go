package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"strconv"
)

// Options configures key generation.
type Options struct {
	rsaBits int
}

// WithRSABits sets the RSA modulus size. Ignored for other families.
func WithRSABits(bits int) func(*Options) {
	return func(o *Options) {
		o.rsaBits = bits
	}
}

var rsaBitSizes = map[int]struct{}{
	1024: {},
	2048: {},
	3072: {},
	4096: {},
}

// Generate creates a new private key for the family. RSA defaults to a
// 2048-bit modulus.
func Generate(family Family, opts ...func(*Options)) (*PrivateKey, error) {
	opt := &Options{rsaBits: 2048}
	for _, o := range opts {
		o(opt)
	}

	switch family {
	case RSA:
		if _, ok := rsaBitSizes[opt.rsaBits]; !ok {
			return nil, ErrRSABits.WithMetadata(map[string]string{"bits": strconv.Itoa(opt.rsaBits)})
		}
		key, err := stdrsa.GenerateKey(rand.Reader, opt.rsaBits)
		if err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return &PrivateKey{family: RSA, rsa: key}, nil

	case Curve25519:
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return &PrivateKey{family: Curve25519, ed: key}, nil

	default:
		cp, err := curveFor(family)
		if err != nil {
			return nil, err
		}
		d, pub, err := cp.generate()
		if err != nil {
			return nil, err
		}
		return &PrivateKey{family: family, curve: cp, d: d, pub: pub}, nil
	}
}

// GenerateEphemeral creates a short-lived key for key agreement. For
// Curve25519 this is a raw X25519 scalar rather than an Ed25519 key.
func GenerateEphemeral(family Family) (*PrivateKey, error) {
	switch family {
	case RSA:
		return nil, ErrNoAgreement
	case Curve25519:
		scalar := make([]byte, 32)
		if _, err := rand.Read(scalar); err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return &PrivateKey{family: Curve25519, d: scalar}, nil
	default:
		return Generate(family)
	}
}
