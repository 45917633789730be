package kdf

import "github.com/quorlin/cryptokit/errors"

var (
	// ErrUnknownKDF indicates a selector outside the supported set.
	ErrUnknownKDF = errors.Unsupported("kdf: unknown derivation function")

	// ErrSecretEmpty indicates that the input keying material is empty.
	ErrSecretEmpty = errors.InvalidRequest("kdf: secret is empty")

	// ErrSaltRequired indicates a missing salt for PBKDF2 or scrypt.
	ErrSaltRequired = errors.InvalidRequest("kdf: salt is required")

	// ErrInvalidLength indicates a non-positive or out-of-bound output length.
	ErrInvalidLength = errors.InvalidRequest("kdf: invalid output length")

	// ErrDerivationFailed indicates a failure inside the derivation primitive.
	ErrDerivationFailed = errors.CryptoFailure("kdf: derivation failed")
)
