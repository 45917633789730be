package jwk

import "github.com/quorlin/cryptokit/errors"

var (
	// ErrUnknownAlgorithm indicates an algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.Unsupported("jwk: unknown algorithm")

	// ErrNotSignatureAlgorithm indicates a key wrapping or content
	// encryption algorithm passed to a JWS operation.
	ErrNotSignatureAlgorithm = errors.Unsupported("jwk: algorithm cannot sign tokens")

	// ErrKeyEmpty indicates that the key is nil or carries no material.
	ErrKeyEmpty = errors.InvalidRequest("jwk: key is empty")

	// ErrInvalidKey indicates a JWK that could not be decoded.
	ErrInvalidKey = errors.MalformedInput("jwk: invalid key encoding")

	// ErrGenerateFailed indicates a key generation failure.
	ErrGenerateFailed = errors.CryptoFailure("jwk: key generation failed")

	// ErrSignFailed indicates a token signing failure.
	ErrSignFailed = errors.CryptoFailure("jwk: token signing failed")

	// ErrInvalidToken indicates a token that failed parsing or signature
	// verification.
	ErrInvalidToken = errors.MalformedInput("jwk: invalid token")
)
