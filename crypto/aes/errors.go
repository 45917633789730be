package aes

import "github.com/quorlin/cryptokit/errors"

var (
	// ErrKeySize indicates a key length other than 16 or 32 bytes.
	ErrKeySize = errors.Unsupported("aes: key length must be 16 or 32 bytes")

	// ErrUnknownMode indicates a mode outside the supported set.
	ErrUnknownMode = errors.Unsupported("aes: unknown cipher mode")

	// ErrUnknownPadding indicates a padding scheme outside the supported set.
	ErrUnknownPadding = errors.Unsupported("aes: unknown padding scheme")

	// ErrPaddingMode indicates PKCS#7 requested together with GCM.
	ErrPaddingMode = errors.InvalidRequest("aes: gcm requires NoPadding")

	// ErrIVSize indicates a CBC IV that is not exactly one block.
	ErrIVSize = errors.InvalidRequest("aes: cbc requires a 16-byte iv")

	// ErrNonceSize indicates a GCM nonce that is not exactly 12 bytes.
	ErrNonceSize = errors.InvalidRequest("aes: gcm requires a 12-byte nonce")

	// ErrPlaintextLength indicates unaligned plaintext under NoPadding.
	ErrPlaintextLength = errors.InvalidRequest("aes: plaintext is not block aligned")

	// ErrCiphertextLength indicates unaligned or empty block-mode ciphertext.
	ErrCiphertextLength = errors.MalformedInput("aes: ciphertext is not block aligned")

	// ErrEncryptionFailed indicates a failure inside the cipher primitive.
	ErrEncryptionFailed = errors.CryptoFailure("aes: encryption failed")

	// ErrDecryptionFailed indicates authentication or padding failure. It is
	// deliberately generic.
	ErrDecryptionFailed = errors.CryptoFailure("aes: decryption failed")
)
