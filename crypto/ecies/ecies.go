// Package ecies implements a curve-generic integrated encryption scheme.
//
// ECIES is a hybrid construction combining elliptic-curve key agreement with
// symmetric authenticated encryption. This implementation works over every
// key-agreement family of the keys package: NIST P-256/384/521, secp256k1,
// SM2 and Curve25519. Each encryption uses:
//   - a fresh ephemeral key for the recipient's curve (forward secrecy)
//   - the raw ECDH (or X25519) shared secret as input keying material
//   - a selectable KDF (PBKDF2-SHA-512 by default) expanding the secret
//     into the AES-256 key and the GCM nonce
//   - AES-256-GCM for authenticated encryption
//
// Wire format:
//
//	len_prefix(1) || ephemeral_public || gcm_ciphertext
//
// where ephemeral_public is the compressed SEC1 point for Weierstrass curves
// or the raw 32-byte Montgomery u-coordinate for Curve25519, and
// gcm_ciphertext carries the appended authentication tag. The GCM nonce is
// not transported: it is the tail of the KDF expansion, which is safe
// because the ephemeral secret is unique per message.
//
// Example usage:
//
//	privateKey, err := keys.Generate(keys.NistP256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer privateKey.Destroy()
//
//	publicKey, err := privateKey.PublicKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, err := ecies.Encrypt(publicKey, []byte("Hello, ECIES!"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decrypted, err := ecies.Decrypt(privateKey, ciphertext)
//	if err != nil {
//	    log.Fatal(err)
//	}
package ecies
