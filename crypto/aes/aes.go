// Package aes implements the symmetric encryption dispatch: AES in ECB, CBC
// or GCM mode with PKCS#7 or no padding. The AES variant is selected by key
// length: 16 bytes for AES-128, 32 bytes for AES-256.
//
// ECB mode provides no semantic security and is retained only for
// compatibility with systems that require it.
package aes

import (
	stdaes "crypto/aes"
	"crypto/cipher"
)

// Mode selects a block cipher mode of operation.
type Mode string

const (
	ECB Mode = "ecb"
	CBC Mode = "cbc"
	GCM Mode = "gcm"
)

// Padding selects the plaintext padding scheme.
type Padding string

const (
	PKCS7     Padding = "pkcs7"
	NoPadding Padding = "none"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = stdaes.BlockSize

	// GCMNonceSize is the required GCM nonce length.
	GCMNonceSize = 12
)

// Encrypt encrypts plaintext under the given mode and padding.
//
// ECB ignores iv and aad. CBC requires a 16-byte iv and ignores aad. GCM
// requires a 12-byte iv (nonce), accepts optional aad, demands NoPadding and
// appends the authentication tag to the ciphertext.
func Encrypt(mode Mode, padding Padding, key, iv, aad, plaintext []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ECB:
		padded, err := pad(padding, plaintext)
		if err != nil {
			return nil, err
		}

		out := make([]byte, len(padded))
		for i := 0; i < len(padded); i += BlockSize {
			block.Encrypt(out[i:i+BlockSize], padded[i:i+BlockSize])
		}
		return out, nil

	case CBC:
		if len(iv) != BlockSize {
			return nil, ErrIVSize
		}

		padded, err := pad(padding, plaintext)
		if err != nil {
			return nil, err
		}

		out := make([]byte, len(padded))
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
		return out, nil

	case GCM:
		if padding != NoPadding {
			return nil, ErrPaddingMode
		}
		if len(iv) != GCMNonceSize {
			return nil, ErrNonceSize
		}

		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, ErrEncryptionFailed.WithCause(err)
		}
		return aead.Seal(nil, iv, plaintext, aad), nil

	default:
		return nil, ErrUnknownMode.WithMetadata(map[string]string{"mode": string(mode)})
	}
}

// Decrypt reverses Encrypt. Authentication and padding failures collapse into
// ErrDecryptionFailed so callers cannot distinguish a wrong key from
// tampered data.
func Decrypt(mode Mode, padding Padding, key, iv, aad, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ECB:
		// Empty ciphertext is valid only without padding, mirroring an
		// empty-plaintext Encrypt. PKCS#7 always emits at least one block.
		if len(ciphertext)%BlockSize != 0 || (len(ciphertext) == 0 && padding != NoPadding) {
			return nil, ErrCiphertextLength
		}

		out := make([]byte, len(ciphertext))
		for i := 0; i < len(ciphertext); i += BlockSize {
			block.Decrypt(out[i:i+BlockSize], ciphertext[i:i+BlockSize])
		}
		return unpad(padding, out)

	case CBC:
		if len(iv) != BlockSize {
			return nil, ErrIVSize
		}
		if len(ciphertext)%BlockSize != 0 || (len(ciphertext) == 0 && padding != NoPadding) {
			return nil, ErrCiphertextLength
		}

		out := make([]byte, len(ciphertext))
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
		return unpad(padding, out)

	case GCM:
		if padding != NoPadding {
			return nil, ErrPaddingMode
		}
		if len(iv) != GCMNonceSize {
			return nil, ErrNonceSize
		}

		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, ErrDecryptionFailed.WithCause(err)
		}

		plaintext, err := aead.Open(nil, iv, ciphertext, aad)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return plaintext, nil

	default:
		return nil, ErrUnknownMode.WithMetadata(map[string]string{"mode": string(mode)})
	}
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != 16 && len(key) != 32 {
		return nil, ErrKeySize
	}

	block, err := stdaes.NewCipher(key)
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}
	return block, nil
}

// Modes lists every supported mode.
func Modes() []Mode {
	return []Mode{ECB, CBC, GCM}
}

// Paddings lists every supported padding scheme.
func Paddings() []Padding {
	return []Padding{PKCS7, NoPadding}
}
