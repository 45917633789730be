package ecies

import (
	"github.com/quorlin/cryptokit/crypto/aes"
	"github.com/quorlin/cryptokit/internal/bytesutil"
	"github.com/quorlin/cryptokit/crypto/kdf"
	"github.com/quorlin/cryptokit/crypto/keys"
)

// gcmTagSize is the length of the GCM authentication tag appended to the
// sealed data.
const gcmTagSize = 16

// Encrypt encrypts plaintext for the recipient's public key.
//
// The encryption process:
//  1. Generate an ephemeral key pair on the recipient's curve
//  2. Derive the shared secret between the ephemeral key and the recipient
//  3. Expand the secret into an AES-256 key and GCM nonce with the KDF
//  4. Seal the plaintext with AES-256-GCM
//  5. Return: [len_prefix || ephemeral_public || gcm_ciphertext]
//
// Empty plaintext is legal and produces a tag-only envelope.
func Encrypt(recipient *keys.PublicKey, plaintext []byte, opts ...func(*Options)) ([]byte, error) {
	if recipient == nil {
		return nil, ErrPublicKeyEmpty
	}
	if recipient.Family() == keys.RSA {
		return nil, ErrUnsupportedFamily
	}
	opt := newOptions(opts...)

	ephemeral, err := keys.GenerateEphemeral(recipient.Family())
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}
	defer ephemeral.Destroy()

	sharedSecret, err := ephemeral.SharedSecret(recipient)
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}
	defer bytesutil.Zeroize(sharedSecret)

	key, nonce, err := kdf.EnvelopeKey(opt.kdf, opt.digest, sharedSecret, opt.salt, opt.info)
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}
	defer bytesutil.Zeroize(key)
	defer bytesutil.Zeroize(nonce)

	sealed, err := aes.Encrypt(aes.GCM, aes.NoPadding, key, nonce, opt.aad, plaintext)
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}

	ephemeralPub, err := ephemeral.PublicKey()
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}
	wire, err := ephemeralPub.Exchange()
	if err != nil {
		return nil, ErrEncryptionFailed.WithCause(err)
	}

	// Assemble [len_prefix || ephemeral_public || gcm_ciphertext]
	totalSize := 1 + len(wire) + len(sealed)
	buf := getBuffer(totalSize)
	defer putBuffer(buf)

	buf = append(buf, byte(len(wire)))
	buf = append(buf, wire...)
	buf = append(buf, sealed...)

	// Copy out of the pooled buffer before it is returned
	result := make([]byte, totalSize)
	copy(result, buf)
	return result, nil
}

// Decrypt reverses Encrypt with the recipient's private key. The options must
// match the ones used during encryption.
//
// Authentication failure, a wrong key and a corrupted envelope all collapse
// into ErrDecryptionFailed.
func Decrypt(privateKey *keys.PrivateKey, ciphertext []byte, opts ...func(*Options)) ([]byte, error) {
	if privateKey == nil {
		return nil, ErrPrivateKeyEmpty
	}
	family := privateKey.Family()
	if family == keys.RSA {
		return nil, ErrUnsupportedFamily
	}
	opt := newOptions(opts...)

	wireSize, err := keys.ExchangeSize(family)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < 1+wireSize+gcmTagSize {
		return nil, ErrCiphertextTooShort
	}
	if int(ciphertext[0]) != wireSize {
		if family == keys.Curve25519 {
			return nil, keys.ErrExchangeKeySize
		}
		return nil, ErrInvalidCiphertext
	}

	ephemeralPub, err := keys.ParseExchange(family, ciphertext[1:1+wireSize])
	if err != nil {
		return nil, ErrInvalidCiphertext.WithCause(err)
	}

	sharedSecret, err := privateKey.SharedSecret(ephemeralPub)
	if err != nil {
		return nil, ErrDecryptionFailed.WithCause(err)
	}
	defer bytesutil.Zeroize(sharedSecret)

	key, nonce, err := kdf.EnvelopeKey(opt.kdf, opt.digest, sharedSecret, opt.salt, opt.info)
	if err != nil {
		return nil, ErrDecryptionFailed.WithCause(err)
	}
	defer bytesutil.Zeroize(key)
	defer bytesutil.Zeroize(nonce)

	plaintext, err := aes.Decrypt(aes.GCM, aes.NoPadding, key, nonce, opt.aad, ciphertext[1+wireSize:])
	if err != nil {
		// Deliberately cause-free so callers cannot distinguish tampering
		// from a wrong key
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
