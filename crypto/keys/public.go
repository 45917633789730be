package keys

import (
	"crypto/ed25519"
	stdrsa "crypto/rsa"
	"crypto/subtle"
	"crypto/x509"

	"filippo.io/edwards25519"
)

// PublicKey holds a public key of any supported family. Curve25519 keys
// parsed from an exchange encoding carry only the Montgomery u-coordinate
// and cannot be exported to a container.
type PublicKey struct {
	family Family
	curve  *curveParams
	point  []byte
	rsa    *stdrsa.PublicKey
	ed     ed25519.PublicKey
	mont   []byte
}

// Family returns the key's family.
func (k *PublicKey) Family() Family {
	return k.family
}

// RSA returns the underlying RSA public key.
func (k *PublicKey) RSA() (*stdrsa.PublicKey, error) {
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

// Export serializes the public key into the requested container and format.
func (k *PublicKey) Export(container Container, format Format) ([]byte, error) {
	if k == nil {
		return nil, ErrKeyEmpty
	}
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	if err := checkPublicContainer(k.family, container); err != nil {
		return nil, err
	}

	der, err := k.marshalDER(container)
	if err != nil {
		return nil, err
	}
	if format == DER {
		return der, nil
	}

	label, err := pemLabel(container, false)
	if err != nil {
		return nil, err
	}
	return encodePEM(label, der), nil
}

func (k *PublicKey) marshalDER(container Container) ([]byte, error) {
	switch k.family {
	case RSA:
		if container == PKCS1 {
			return x509.MarshalPKCS1PublicKey(k.rsa), nil
		}
		der, err := x509.MarshalPKIXPublicKey(k.rsa)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		return der, nil

	case Curve25519:
		if k.ed == nil {
			return nil, ErrExchangeOnlyKey
		}
		der, err := x509.MarshalPKIXPublicKey(k.ed)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		return der, nil

	default:
		return marshalECSPKI(k.curve, k.point)
	}
}

// Exchange returns the key-agreement wire encoding: the compressed SEC1
// point for Weierstrass curves, the 32-byte Montgomery u-coordinate for
// Curve25519.
func (k *PublicKey) Exchange() ([]byte, error) {
	if k == nil {
		return nil, ErrKeyEmpty
	}

	switch k.family {
	case RSA:
		return nil, ErrNoAgreement
	case Curve25519:
		return k.montgomery()
	default:
		return k.curve.compress(k.point)
	}
}

// montgomery returns the Montgomery u-coordinate of a Curve25519 key,
// converting from the Edwards form when necessary.
func (k *PublicKey) montgomery() ([]byte, error) {
	if k.mont != nil {
		u := make([]byte, len(k.mont))
		copy(u, k.mont)
		return u, nil
	}
	if k.ed == nil {
		return nil, ErrKeyEmpty
	}

	p, err := new(edwards25519.Point).SetBytes(k.ed)
	if err != nil {
		return nil, ErrInvalidPoint.WithCause(err)
	}
	return p.BytesMontgomery(), nil
}

// Equals compares two public keys in constant time.
func (k *PublicKey) Equals(other *PublicKey) bool {
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
		a, errA := k.montgomery()
		b, errB := other.montgomery()
		if errA != nil || errB != nil {
			return false
		}
		return subtle.ConstantTimeCompare(a, b) == 1
	default:
		return subtle.ConstantTimeCompare(k.point, other.point) == 1
	}
}

// ExchangeSize returns the exchange encoding length for the family.
func ExchangeSize(family Family) (int, error) {
	switch family {
	case RSA:
		return 0, ErrNoAgreement
	case Curve25519:
		return 32, nil
	default:
		cp, err := curveFor(family)
		if err != nil {
			return 0, err
		}
		return cp.size + 1, nil
	}
}

// ParseExchange decodes an exchange encoding produced by Exchange.
func ParseExchange(family Family, data []byte) (*PublicKey, error) {
	switch family {
	case RSA:
		return nil, ErrNoAgreement
	case Curve25519:
		if len(data) != 32 {
			return nil, ErrExchangeKeySize
		}
		u := make([]byte, 32)
		copy(u, data)
		return &PublicKey{family: Curve25519, mont: u}, nil
	default:
		cp, err := curveFor(family)
		if err != nil {
			return nil, err
		}
		point, err := cp.decodePoint(data)
		if err != nil {
			return nil, err
		}
		return &PublicKey{family: family, curve: cp, point: point}, nil
	}
}
