package keys

import (
	"crypto/ed25519"
	stdrsa "crypto/rsa"
	"crypto/x509"
)

// ImportPrivate parses a private key of a known family, container and
// format. Scalars are range checked and the public half is rederived.
func ImportPrivate(family Family, container Container, format Format, data []byte) (*PrivateKey, error) {
	if len(data) == 0 {
		return nil, ErrKeyEmpty
	}
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	if err := checkPrivateContainer(family, container); err != nil {
		return nil, err
	}

	der := data
	if format == PEM {
		label, err := pemLabel(container, true)
		if err != nil {
			return nil, err
		}
		der, err = decodePEM(data, label)
		if err != nil {
			return nil, err
		}
	}

	return importPrivateDER(family, container, der)
}

// ImportPublic parses a public key of a known family, container and format.
func ImportPublic(family Family, container Container, format Format, data []byte) (*PublicKey, error) {
	if len(data) == 0 {
		return nil, ErrKeyEmpty
	}
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	if err := checkPublicContainer(family, container); err != nil {
		return nil, err
	}

	der := data
	if format == PEM {
		label, err := pemLabel(container, false)
		if err != nil {
			return nil, err
		}
		der, err = decodePEM(data, label)
		if err != nil {
			return nil, err
		}
	}

	return importPublicDER(family, container, der)
}

func importPrivateDER(family Family, container Container, der []byte) (*PrivateKey, error) {
	switch family {
	case RSA:
		var key *stdrsa.PrivateKey
		if container == PKCS1 {
			parsed, err := x509.ParsePKCS1PrivateKey(der)
			if err != nil {
				return nil, ErrMalformedKey.WithCause(err)
			}
			key = parsed
		} else {
			parsed, err := x509.ParsePKCS8PrivateKey(der)
			if err != nil {
				return nil, ErrMalformedKey.WithCause(err)
			}
			rsaKey, ok := parsed.(*stdrsa.PrivateKey)
			if !ok {
				return nil, ErrKeyTypeMismatch
			}
			key = rsaKey
		}
		if err := key.Validate(); err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		return &PrivateKey{family: RSA, rsa: key}, nil

	case Curve25519:
		parsed, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		edKey, ok := parsed.(ed25519.PrivateKey)
		if !ok {
			return nil, ErrKeyTypeMismatch
		}
		return &PrivateKey{family: Curve25519, ed: edKey}, nil

	default:
		cp, err := curveFor(family)
		if err != nil {
			return nil, err
		}

		var d, pub []byte
		if container == SEC1 {
			d, pub, err = parseECSEC1(cp, der)
		} else {
			d, pub, err = parseECPKCS8(cp, der)
		}
		if err != nil {
			return nil, err
		}
		return &PrivateKey{family: family, curve: cp, d: d, pub: pub}, nil
	}
}

func importPublicDER(family Family, container Container, der []byte) (*PublicKey, error) {
	switch family {
	case RSA:
		if container == PKCS1 {
			key, err := x509.ParsePKCS1PublicKey(der)
			if err != nil {
				return nil, ErrMalformedKey.WithCause(err)
			}
			return &PublicKey{family: RSA, rsa: key}, nil
		}

		parsed, err := x509.ParsePKIXPublicKey(der)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		rsaKey, ok := parsed.(*stdrsa.PublicKey)
		if !ok {
			return nil, ErrKeyTypeMismatch
		}
		return &PublicKey{family: RSA, rsa: rsaKey}, nil

	case Curve25519:
		parsed, err := x509.ParsePKIXPublicKey(der)
		if err != nil {
			return nil, ErrMalformedKey.WithCause(err)
		}
		edKey, ok := parsed.(ed25519.PublicKey)
		if !ok {
			return nil, ErrKeyTypeMismatch
		}
		return &PublicKey{family: Curve25519, ed: edKey}, nil

	default:
		cp, err := curveFor(family)
		if err != nil {
			return nil, err
		}
		point, err := parseECSPKI(cp, der)
		if err != nil {
			return nil, err
		}
		return &PublicKey{family: family, curve: cp, point: point}, nil
	}
}
