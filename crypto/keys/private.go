package keys

import (
	"crypto/ed25519"
	stdrsa "crypto/rsa"
	"crypto/sha512"
	"crypto/subtle"
	"crypto/x509"

	"golang.org/x/crypto/curve25519"

	"github.com/quorlin/cryptokit/internal/bytesutil"
)

// PrivateKey holds a private key of any supported family. Weierstrass keys
// keep the scalar and uncompressed point; RSA and Curve25519 keys wrap the
// standard library types. Ephemeral Curve25519 keys carry a raw X25519
// scalar instead of an Ed25519 key and support only key agreement.
type PrivateKey struct {
	family Family
	curve  *curveParams
	d      []byte
	pub    []byte
	rsa    *stdrsa.PrivateKey
	ed     ed25519.PrivateKey
}

// Family returns the key's family.
func (k *PrivateKey) Family() Family {
	return k.family
}

// RSA returns the underlying RSA private key.
func (k *PrivateKey) RSA() (*stdrsa.PrivateKey, error) {
	if k == nil {
		return nil, ErrKeyEmpty
	}
	if k.family != RSA {
		return nil, ErrFamilyMismatch
	}
	if k.rsa == nil {
		return nil, ErrKeyEmpty
	}
	return k.rsa, nil
}

// PublicKey derives the public key.
func (k *PrivateKey) PublicKey() (*PublicKey, error) {
	if k == nil {
		return nil, ErrKeyEmpty
	}

	switch k.family {
	case RSA:
		return &PublicKey{family: RSA, rsa: &k.rsa.PublicKey}, nil
	case Curve25519:
		if k.ed != nil {
			return &PublicKey{family: Curve25519, ed: k.ed.Public().(ed25519.PublicKey)}, nil
		}
		// Ephemeral scalar: the public side only exists in Montgomery form
		u, err := curve25519.X25519(k.d, curve25519.Basepoint)
		if err != nil {
			return nil, ErrAgreementFailed.WithCause(err)
		}
		return &PublicKey{family: Curve25519, mont: u}, nil
	default:
		point := make([]byte, len(k.pub))
		copy(point, k.pub)
		return &PublicKey{family: k.family, curve: k.curve, point: point}, nil
	}
}

// Export serializes the private key into the requested container and format.
func (k *PrivateKey) Export(container Container, format Format) ([]byte, error) {
	if k == nil {
		return nil, ErrKeyEmpty
	}
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	if err := checkPrivateContainer(k.family, container); err != nil {
		return nil, err
	}

	der, err := k.marshalDER(container)
	if err != nil {
		return nil, err
	}
	if format == DER {
		return der, nil
	}

	label, err := pemLabel(container, true)
	if err != nil {
		return nil, err
	}
	return encodePEM(label, der), nil
}

func (k *PrivateKey) marshalDER(container Container) ([]byte, error) {
	switch k.family {
	case RSA:
		if k.rsa == nil {
			return nil, ErrKeyEmpty
		}
		if container == PKCS1 {
			return x509.MarshalPKCS1PrivateKey(k.rsa), nil
		}
		der, err := x509.MarshalPKCS8PrivateKey(k.rsa)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		return der, nil

	case Curve25519:
		if k.ed == nil {
			return nil, ErrExchangeOnlyKey
		}
		der, err := x509.MarshalPKCS8PrivateKey(k.ed)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		return der, nil

	default:
		if len(k.d) == 0 {
			return nil, ErrKeyEmpty
		}
		if container == SEC1 {
			return marshalECSEC1(k.curve, k.d, k.pub, true)
		}
		return marshalECPKCS8(k.curve, k.d, k.pub)
	}
}

// SharedSecret computes the raw key-agreement secret with the peer's public
// key: the padded x-coordinate for Weierstrass curves, the X25519 output for
// Curve25519.
func (k *PrivateKey) SharedSecret(peer *PublicKey) ([]byte, error) {
	if k == nil || peer == nil {
		return nil, ErrKeyEmpty
	}

	switch k.family {
	case RSA:
		return nil, ErrNoAgreement
	case Curve25519:
		if peer.family != Curve25519 {
			return nil, ErrFamilyMismatch
		}

		scalar, err := k.x25519Scalar()
		if err != nil {
			return nil, err
		}
		defer bytesutil.Zeroize(scalar)

		u, err := peer.montgomery()
		if err != nil {
			return nil, err
		}

		secret, err := curve25519.X25519(scalar, u)
		if err != nil {
			return nil, ErrAgreementFailed.WithCause(err)
		}
		return secret, nil
	default:
		if peer.family != k.family {
			return nil, ErrFamilyMismatch
		}
		if peer.point == nil {
			return nil, ErrKeyEmpty
		}
		return k.curve.shared(k.d, peer.point)
	}
}

// x25519Scalar returns the X25519 scalar: the raw ephemeral scalar when
// present, otherwise the clamped low half of SHA-512 over the Ed25519 seed
// (the standard Edwards-to-Montgomery private key map).
func (k *PrivateKey) x25519Scalar() ([]byte, error) {
	if k.d != nil {
		scalar := make([]byte, len(k.d))
		copy(scalar, k.d)
		return scalar, nil
	}
	if k.ed == nil {
		return nil, ErrKeyEmpty
	}

	h := sha512.Sum512(k.ed.Seed())
	scalar := make([]byte, 32)
	copy(scalar, h[:32])
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64

	bytesutil.Zeroize(h[:])
	return scalar, nil
}

// Equals compares two private keys in constant time.
func (k *PrivateKey) Equals(other *PrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.family != other.family {
		return false
	}

	switch k.family {
	case RSA:
		return k.rsa != nil && other.rsa != nil && k.rsa.Equal(other.rsa)
	case Curve25519:
		if k.ed != nil || other.ed != nil {
			return k.ed != nil && other.ed != nil && k.ed.Equal(other.ed)
		}
		return subtle.ConstantTimeCompare(k.d, other.d) == 1
	default:
		return subtle.ConstantTimeCompare(k.d, other.d) == 1
	}
}

// Destroy clears the private key material from memory. The key must not be
// used afterwards.
func (k *PrivateKey) Destroy() {
	if k == nil {
		return
	}

	bytesutil.Zeroize(k.d)
	k.d = nil

	bytesutil.Zeroize(k.ed)
	k.ed = nil

	if k.rsa != nil {
		k.rsa.D.SetInt64(0)
		for _, p := range k.rsa.Primes {
			p.SetInt64(0)
		}
		k.rsa = nil
	}
}
