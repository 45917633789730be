package jwk

import (
	"crypto/ed25519"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignToken signs the claims with the JWK's private material. A missing
// token id is filled with a random UUID when the claims are
// jwt.RegisteredClaims.
func SignToken(key *jose.JSONWebKey, claims jwt.Claims) (string, error) {
	if key == nil || key.Key == nil {
		return "", ErrKeyEmpty
	}
	method, err := signingMethod(Algorithm(key.Algorithm))
	if err != nil {
		return "", err
	}

	if rc, ok := claims.(*jwt.RegisteredClaims); ok && rc.ID == "" {
		rc.ID = uuid.New().String()
	}

	token := jwt.NewWithClaims(method, claims)
	token.Header["kid"] = key.KeyID

	signed, err := token.SignedString(key.Key)
	if err != nil {
		return "", ErrSignFailed.WithCause(err)
	}
	return signed, nil
}

// VerifyToken parses tokenString, verifies its signature against the JWK and
// populates claims. The token's algorithm must match the key's.
func VerifyToken(key *jose.JSONWebKey, tokenString string, claims jwt.Claims) error {
	if key == nil || key.Key == nil {
		return ErrKeyEmpty
	}
	method, err := signingMethod(Algorithm(key.Algorithm))
	if err != nil {
		return err
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != method {
			return nil, ErrInvalidToken
		}
		return verificationKey(key)
	})
	if err != nil {
		return ErrInvalidToken.WithCause(err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

// verificationKey returns the public half for asymmetric keys and the shared
// secret for oct keys.
func verificationKey(key *jose.JSONWebKey) (any, error) {
	if secret, ok := key.Key.([]byte); ok {
		return secret, nil
	}

	// Ed25519 private keys expose their public half directly; go-jose's
	// Public() handles the rest
	if priv, ok := key.Key.(ed25519.PrivateKey); ok {
		return priv.Public(), nil
	}
	if key.IsPublic() {
		return key.Key, nil
	}
	return key.Public().Key, nil
}

func signingMethod(alg Algorithm) (jwt.SigningMethod, error) {
	switch alg {
	case HS256:
		return jwt.SigningMethodHS256, nil
	case HS384:
		return jwt.SigningMethodHS384, nil
	case HS512:
		return jwt.SigningMethodHS512, nil
	case RS256:
		return jwt.SigningMethodRS256, nil
	case RS384:
		return jwt.SigningMethodRS384, nil
	case RS512:
		return jwt.SigningMethodRS512, nil
	case PS256:
		return jwt.SigningMethodPS256, nil
	case PS384:
		return jwt.SigningMethodPS384, nil
	case PS512:
		return jwt.SigningMethodPS512, nil
	case ES256:
		return jwt.SigningMethodES256, nil
	case ES384:
		return jwt.SigningMethodES384, nil
	case ES512:
		return jwt.SigningMethodES512, nil
	case EdDSA:
		return jwt.SigningMethodEdDSA, nil
	default:
		if isEncryptionAlgorithm(alg) {
			return nil, ErrNotSignatureAlgorithm.WithMetadata(map[string]string{"algorithm": string(alg)})
		}
		return nil, ErrUnknownAlgorithm.WithMetadata(map[string]string{"algorithm": string(alg)})
	}
}
