// Package jwk generates JSON Web Keys and signs and verifies JWTs with them.
//
// Supported algorithms cover the symmetric HMAC family (oct keys), RSA
// signatures (PKCS#1 v1.5 and PSS), the NIST ECDSA curves, Ed25519, and the
// JWE side: RSA-OAEP key transport plus AES key wrapping and content
// encryption (oct keys). secp256k1 and SM2 keys have no JOSE algorithm here
// and are rejected.
package jwk

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	stdrsa "crypto/rsa"

	"github.com/go-jose/go-jose/v4"
	"github.com/google/uuid"
)

// Algorithm selects a JOSE algorithm: signature algorithms for JWS, key
// wrapping and content encryption algorithms for JWE.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	ES512 Algorithm = "ES512"
	EdDSA Algorithm = "EdDSA"

	RSAOAEP    Algorithm = "RSA-OAEP"
	RSAOAEP256 Algorithm = "RSA-OAEP-256"
	A128KW     Algorithm = "A128KW"
	A192KW     Algorithm = "A192KW"
	A256KW     Algorithm = "A256KW"
	A128GCM    Algorithm = "A128GCM"
	A192GCM    Algorithm = "A192GCM"
	A256GCM    Algorithm = "A256GCM"
)

const rsaKeyBits = 2048

// Generate creates a fresh private JWK for the algorithm. The key id is a
// random UUID; the use field is "sig" for signature algorithms and "enc" for
// key wrapping and content encryption algorithms.
func Generate(alg Algorithm) (*jose.JSONWebKey, error) {
	key, err := generateKeyMaterial(alg)
	if err != nil {
		return nil, err
	}

	use := "sig"
	if isEncryptionAlgorithm(alg) {
		use = "enc"
	}

	return &jose.JSONWebKey{
		Key:       key,
		KeyID:     uuid.New().String(),
		Algorithm: string(alg),
		Use:       use,
	}, nil
}

func generateKeyMaterial(alg Algorithm) (any, error) {
	switch alg {
	case HS256, HS384, HS512, A128KW, A192KW, A256KW, A128GCM, A192GCM, A256GCM:
		secret := make([]byte, octKeySize(alg))
		if _, err := rand.Read(secret); err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return secret, nil

	case RS256, RS384, RS512, PS256, PS384, PS512, RSAOAEP, RSAOAEP256:
		key, err := stdrsa.GenerateKey(rand.Reader, rsaKeyBits)
		if err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return key, nil

	case ES256, ES384, ES512:
		key, err := ecdsa.GenerateKey(ecdsaCurve(alg), rand.Reader)
		if err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return key, nil

	case EdDSA:
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, ErrGenerateFailed.WithCause(err)
		}
		return key, nil

	default:
		return nil, ErrUnknownAlgorithm.WithMetadata(map[string]string{"algorithm": string(alg)})
	}
}

func isEncryptionAlgorithm(alg Algorithm) bool {
	switch alg {
	case RSAOAEP, RSAOAEP256, A128KW, A192KW, A256KW, A128GCM, A192GCM, A256GCM:
		return true
	}
	return false
}

// octKeySize returns the oct secret length: the digest width for the HMAC
// family, the AES key size for key wrapping and content encryption.
func octKeySize(alg Algorithm) int {
	switch alg {
	case HS384:
		return 48
	case HS512:
		return 64
	case A128KW, A128GCM:
		return 16
	case A192KW, A192GCM:
		return 24
	case A256KW, A256GCM:
		return 32
	default:
		return 32
	}
}

func ecdsaCurve(alg Algorithm) elliptic.Curve {
	switch alg {
	case ES384:
		return elliptic.P384()
	case ES512:
		return elliptic.P521()
	default:
		return elliptic.P256()
	}
}

// Parse decodes a JWK from its JSON representation.
func Parse(data []byte) (*jose.JSONWebKey, error) {
	key := &jose.JSONWebKey{}
	if err := key.UnmarshalJSON(data); err != nil {
		return nil, ErrInvalidKey.WithCause(err)
	}
	return key, nil
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{
		HS256, HS384, HS512,
		RS256, RS384, RS512,
		PS256, PS384, PS512,
		ES256, ES384, ES512,
		EdDSA,
		RSAOAEP, RSAOAEP256,
		A128KW, A192KW, A256KW,
		A128GCM, A192GCM, A256GCM,
	}
}

// SignatureAlgorithms lists the algorithms usable with SignToken.
func SignatureAlgorithms() []Algorithm {
	return []Algorithm{
		HS256, HS384, HS512,
		RS256, RS384, RS512,
		PS256, PS384, PS512,
		ES256, ES384, ES512,
		EdDSA,
	}
}
