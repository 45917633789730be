// Package rsa implements RSA encryption with PKCS#1 v1.5 or OAEP padding
// over keys managed by the keys package.
//
// OAEP decryption supports distinct hashes for the label digest and the mask
// generation function. Encryption is limited to a shared hash because the
// standard library encrypter uses one hash for both roles.
package rsa

import (
	"crypto/rand"
	stdrsa "crypto/rsa"

	"github.com/quorlin/cryptokit/crypto/digest"
	"github.com/quorlin/cryptokit/crypto/keys"
)

// Padding selects the RSA encryption padding scheme.
type Padding string

const (
	PKCS1v15 Padding = "pkcs1v15"
	OAEP     Padding = "oaep"
)

// Encrypt encrypts plaintext under the recipient's public key. The digest
// selectors only apply to OAEP; PKCS#1 v1.5 ignores them.
func Encrypt(recipient *keys.PublicKey, padding Padding, dg, mgf digest.Kind, plaintext []byte) ([]byte, error) {
	if recipient == nil {
		return nil, ErrPublicKeyEmpty
	}
	pub, err := recipient.RSA()
	if err != nil {
		return nil, err
	}

	switch padding {
	case PKCS1v15:
		ciphertext, err := stdrsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
		if err != nil {
			return nil, ErrMessageTooLong.WithCause(err)
		}
		return ciphertext, nil

	case OAEP:
		if mgf != dg {
			return nil, ErrMGFDigestMismatch
		}
		h, err := digest.New(dg)
		if err != nil {
			return nil, err
		}

		ciphertext, err := stdrsa.EncryptOAEP(h(), rand.Reader, pub, plaintext, nil)
		if err != nil {
			return nil, ErrMessageTooLong.WithCause(err)
		}
		return ciphertext, nil

	default:
		return nil, ErrUnknownPadding.WithMetadata(map[string]string{"padding": string(padding)})
	}
}

// Decrypt reverses Encrypt with the recipient's private key. For OAEP the
// label digest and the MGF1 digest may differ. Padding failures collapse into
// ErrDecryptionFailed.
func Decrypt(recipient *keys.PrivateKey, padding Padding, dg, mgf digest.Kind, ciphertext []byte) ([]byte, error) {
	if recipient == nil {
		return nil, ErrPrivateKeyEmpty
	}
	priv, err := recipient.RSA()
	if err != nil {
		return nil, err
	}

	switch padding {
	case PKCS1v15:
		plaintext, err := stdrsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return plaintext, nil

	case OAEP:
		h, err := digest.CryptoHash(dg)
		if err != nil {
			return nil, err
		}
		mh, err := digest.CryptoHash(mgf)
		if err != nil {
			return nil, err
		}

		plaintext, err := priv.Decrypt(rand.Reader, ciphertext, &stdrsa.OAEPOptions{Hash: h, MGFHash: mh})
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		return plaintext, nil

	default:
		return nil, ErrUnknownPadding.WithMetadata(map[string]string{"padding": string(padding)})
	}
}

// Paddings lists every supported padding scheme.
func Paddings() []Padding {
	return []Padding{PKCS1v15, OAEP}
}
