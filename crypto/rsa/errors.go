package rsa

import "github.com/quorlin/cryptokit/errors"

// Request errors
var (
	// ErrPublicKeyEmpty indicates that the recipient public key is nil.
	ErrPublicKeyEmpty = errors.InvalidRequest("rsa: public key is empty")

	// ErrPrivateKeyEmpty indicates that the private key is nil.
	ErrPrivateKeyEmpty = errors.InvalidRequest("rsa: private key is empty")

	// ErrMGFDigestMismatch indicates an OAEP encryption request with distinct
	// label and MGF1 digests, which only decryption supports.
	ErrMGFDigestMismatch = errors.Unsupported("rsa: oaep encryption requires matching label and mgf digests")

	// ErrUnknownPadding indicates an unsupported padding scheme.
	ErrUnknownPadding = errors.Unsupported("rsa: unknown padding scheme")
)

// Encryption/Decryption errors
var (
	// ErrMessageTooLong indicates a plaintext exceeding the modulus capacity
	// for the chosen padding.
	ErrMessageTooLong = errors.InvalidRequest("rsa: message too long for key size")

	// ErrDecryptionFailed indicates a general decryption failure, kept
	// generic to avoid padding oracles.
	ErrDecryptionFailed = errors.CryptoFailure("rsa: decryption failed")
)
