package ecies

import "github.com/quorlin/cryptokit/errors"

// Key-related errors
var (
	// ErrPublicKeyEmpty indicates that the recipient public key is nil.
	ErrPublicKeyEmpty = errors.InvalidRequest("ecies: public key is empty")

	// ErrPrivateKeyEmpty indicates that the private key is nil.
	ErrPrivateKeyEmpty = errors.InvalidRequest("ecies: private key is empty")

	// ErrUnsupportedFamily indicates a key family without a key-agreement
	// operation (RSA).
	ErrUnsupportedFamily = errors.Unsupported("ecies: key family does not support ecies")
)

// Envelope errors
var (
	// ErrCiphertextTooShort indicates a ciphertext shorter than the minimum
	// envelope.
	ErrCiphertextTooShort = errors.MalformedInput("ecies: ciphertext too short")

	// ErrInvalidCiphertext indicates a malformed envelope.
	ErrInvalidCiphertext = errors.MalformedInput("ecies: invalid ciphertext format")
)

// Encryption/Decryption errors
var (
	// ErrEncryptionFailed indicates a general encryption failure.
	ErrEncryptionFailed = errors.CryptoFailure("ecies: encryption failed")

	// ErrDecryptionFailed indicates a general decryption failure. It is
	// deliberately generic: authentication failure and a wrong key are
	// indistinguishable.
	ErrDecryptionFailed = errors.CryptoFailure("ecies: decryption failed")
)
