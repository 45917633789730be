package keys

import (
	"bytes"
	"encoding/pem"
	"unicode/utf8"
)

// attempt is one interpretation Inspect tries against unknown key data.
type attempt struct {
	family    Family
	container Container
	private   bool
}

// Inspect identifies unknown key material. PEM input is narrowed by its
// label; DER input is tried exhaustively, Weierstrass families in the fixed
// order P-256, P-384, P-521, secp256k1, SM2, private interpretations before
// public ones.
func Inspect(data []byte) (*KeyInfo, error) {
	if len(data) == 0 {
		return nil, ErrKeyEmpty
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("-----BEGIN ")) {
		return inspectPEM(data)
	}
	return inspectDER(data)
}

func inspectPEM(data []byte) (*KeyInfo, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidPEM
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEM
	}

	var attempts []attempt
	switch block.Type {
	case pemLabelPKCS8:
		for _, f := range weierstrassFamilies {
			attempts = append(attempts, attempt{f, PKCS8, true})
		}
		attempts = append(attempts,
			attempt{RSA, PKCS8, true},
			attempt{Curve25519, PKCS8, true},
		)
	case pemLabelSEC1:
		for _, f := range weierstrassFamilies {
			attempts = append(attempts, attempt{f, SEC1, true})
		}
	case pemLabelPKCS1:
		attempts = append(attempts, attempt{RSA, PKCS1, true})
	case pemLabelSPKI:
		for _, f := range weierstrassFamilies {
			attempts = append(attempts, attempt{f, SPKI, false})
		}
		attempts = append(attempts,
			attempt{RSA, SPKI, false},
			attempt{Curve25519, SPKI, false},
		)
	case pemLabelRSAPub:
		attempts = append(attempts, attempt{RSA, PKCS1, false})
	default:
		return nil, ErrUnrecognizedKey.WithMetadata(map[string]string{"label": block.Type})
	}

	return tryAttempts(attempts, block.Bytes, PEM)
}

func inspectDER(der []byte) (*KeyInfo, error) {
	var attempts []attempt

	// Private interpretations first.
	for _, f := range weierstrassFamilies {
		attempts = append(attempts, attempt{f, PKCS8, true}, attempt{f, SEC1, true})
	}
	attempts = append(attempts,
		attempt{RSA, PKCS8, true},
		attempt{RSA, PKCS1, true},
		attempt{Curve25519, PKCS8, true},
	)

	for _, f := range weierstrassFamilies {
		attempts = append(attempts, attempt{f, SPKI, false})
	}
	attempts = append(attempts,
		attempt{RSA, SPKI, false},
		attempt{RSA, PKCS1, false},
		attempt{Curve25519, SPKI, false},
	)

	return tryAttempts(attempts, der, DER)
}

func tryAttempts(attempts []attempt, der []byte, format Format) (*KeyInfo, error) {
	for _, a := range attempts {
		if a.private {
			key, err := importPrivateDER(a.family, a.container, der)
			if err != nil {
				continue
			}
			key.Destroy()
		} else {
			if _, err := importPublicDER(a.family, a.container, der); err != nil {
				continue
			}
		}

		return &KeyInfo{
			Family:    a.family,
			Container: a.container,
			Format:    format,
			Private:   a.private,
		}, nil
	}

	return nil, ErrUnrecognizedKey
}
