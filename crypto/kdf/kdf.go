// Package kdf implements the key derivation functions of the engine: HKDF,
// the NIST SP 800-56A concatenation KDF, PBKDF2 and scrypt, parameterized by
// a digest selector.
//
// Besides general-purpose derivation it provides the envelope expansion used
// by the ecies package: a 44-byte derivation split into a 32-byte AES key and
// a 12-byte GCM nonce.
package kdf

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"github.com/quorlin/cryptokit/crypto/digest"
)

// Kind selects a derivation function.
type Kind string

const (
	HKDF   Kind = "hkdf"
	Concat Kind = "concatenation"
	PBKDF2 Kind = "pbkdf2"
	Scrypt Kind = "scrypt"
)

const (
	// Pbkdf2Iterations is the iteration count for standalone PBKDF2
	// derivations.
	Pbkdf2Iterations = 600_000

	// envelopeIterations is the PBKDF2 iteration count fixed by the
	// envelope wire format. Changing it breaks decryption of existing
	// envelopes.
	envelopeIterations = 210_000

	// Scrypt cost parameters (interactive-to-moderate hardness).
	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

const (
	// EnvelopeSalt seeds the envelope expansion when the caller supplies
	// no salt. Fixed by the envelope wire format.
	EnvelopeSalt = "VSPDJrx1Pj1zqVGN"

	// EnvelopeKeySize and EnvelopeNonceSize describe the 44-byte envelope
	// derivation split.
	EnvelopeKeySize   = 32
	EnvelopeNonceSize = 12
)

// Derive runs the selected KDF over secret and returns length bytes.
//
// Salt and info are optional for HKDF; info alone is consumed by the
// concatenation KDF; PBKDF2 and scrypt require a salt and ignore info.
// The digest selector is ignored by scrypt, which is defined over its own
// internal PBKDF2-SHA-256 core.
func Derive(kind Kind, dg digest.Kind, secret, salt, info []byte, length int) ([]byte, error) {
	return derive(kind, dg, secret, salt, info, length, Pbkdf2Iterations, true)
}

// EnvelopeKey derives the AES key and GCM nonce for an envelope from the
// shared secret. When salt is nil the fixed EnvelopeSalt is used.
func EnvelopeKey(kind Kind, dg digest.Kind, secret, salt, info []byte) (key, nonce []byte, err error) {
	if len(salt) == 0 {
		salt = []byte(EnvelopeSalt)
	}

	okm, err := derive(kind, dg, secret, salt, info, EnvelopeKeySize+EnvelopeNonceSize, envelopeIterations, false)
	if err != nil {
		return nil, nil, err
	}

	return okm[:EnvelopeKeySize], okm[EnvelopeKeySize:], nil
}

func derive(kind Kind, dg digest.Kind, secret, salt, info []byte, length, iterations int, strictSalt bool) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrSecretEmpty
	}
	if length <= 0 {
		return nil, ErrInvalidLength
	}

	switch kind {
	case HKDF:
		h, err := digest.New(dg)
		if err != nil {
			return nil, err
		}
		if length > 255*h().Size() {
			return nil, ErrInvalidLength
		}

		okm := make([]byte, length)
		if _, err := io.ReadFull(hkdf.New(h, secret, salt, info), okm); err != nil {
			return nil, ErrDerivationFailed.WithCause(err)
		}
		return okm, nil

	case Concat:
		return concatKDF(dg, secret, info, length)

	case PBKDF2:
		if strictSalt && len(salt) == 0 {
			return nil, ErrSaltRequired
		}

		h, err := digest.New(dg)
		if err != nil {
			return nil, err
		}
		return pbkdf2.Key(secret, salt, iterations, length, h), nil

	case Scrypt:
		if strictSalt && len(salt) == 0 {
			return nil, ErrSaltRequired
		}

		okm, err := scrypt.Key(secret, salt, scryptN, scryptR, scryptP, length)
		if err != nil {
			return nil, ErrDerivationFailed.WithCause(err)
		}
		return okm, nil

	default:
		return nil, ErrUnknownKDF.WithMetadata(map[string]string{"kdf": string(kind)})
	}
}

// concatKDF implements the single-step concatenation KDF from NIST
// SP 800-56A: okm = H(counter || Z || info) blocks with a 4-byte big-endian
// counter starting at 1.
func concatKDF(dg digest.Kind, secret, info []byte, length int) ([]byte, error) {
	h, err := digest.New(dg)
	if err != nil {
		return nil, err
	}

	okm := make([]byte, 0, length)
	var counter [4]byte
	for i := uint32(1); len(okm) < length; i++ {
		binary.BigEndian.PutUint32(counter[:], i)

		d := h()
		d.Write(counter[:])
		d.Write(secret)
		d.Write(info)
		okm = d.Sum(okm)
	}

	return okm[:length], nil
}

// Kinds lists every supported derivation function.
func Kinds() []Kind {
	return []Kind{HKDF, Concat, PBKDF2, Scrypt}
}
