package ecies

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/quorlin/cryptokit/crypto/digest"
	"github.com/quorlin/cryptokit/crypto/kdf"
	"github.com/quorlin/cryptokit/crypto/keys"
	"github.com/quorlin/cryptokit/errors"
)

func envelopeFamilies() []keys.Family {
	return []keys.Family{
		keys.NistP256, keys.NistP384, keys.NistP521,
		keys.Secp256k1, keys.SM2, keys.Curve25519,
	}
}

func generateKeyPair(t *testing.T, family keys.Family) (*keys.PrivateKey, *keys.PublicKey) {
	t.Helper()

	privateKey, err := keys.Generate(family)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	t.Cleanup(privateKey.Destroy)

	publicKey, err := privateKey.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey failed: %v", err)
	}
	return privateKey, publicKey
}

// TestEncryptDecryptRoundTrip covers every family and a spread of plaintext
// lengths including the empty plaintext
func TestEncryptDecryptRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 15, 16, 17, 4096}

	for _, family := range envelopeFamilies() {
		t.Run(string(family), func(t *testing.T) {
			privateKey, publicKey := generateKeyPair(t, family)

			for _, n := range lengths {
				plaintext := make([]byte, n)
				if _, err := rand.Read(plaintext); err != nil {
					t.Fatal(err)
				}

				ciphertext, err := Encrypt(publicKey, plaintext)
				if err != nil {
					t.Fatalf("Encrypt(%d bytes) failed: %v", n, err)
				}

				wireSize, err := keys.ExchangeSize(family)
				if err != nil {
					t.Fatal(err)
				}
				if want := 1 + wireSize + n + gcmTagSize; len(ciphertext) != want {
					t.Errorf("ciphertext length = %d, want %d", len(ciphertext), want)
				}
				if int(ciphertext[0]) != wireSize {
					t.Errorf("length prefix = %d, want %d", ciphertext[0], wireSize)
				}

				decrypted, err := Decrypt(privateKey, ciphertext)
				if err != nil {
					t.Fatalf("Decrypt(%d bytes) failed: %v", n, err)
				}
				if !bytes.Equal(plaintext, decrypted) {
					t.Errorf("round trip mismatch for %d bytes", n)
				}
			}
		})
	}
}

// TestEncryptionIsRandomized verifies the ephemeral key makes repeated
// encryptions of the same plaintext differ
func TestEncryptionIsRandomized(t *testing.T) {
	_, publicKey := generateKeyPair(t, keys.NistP256)

	plaintext := []byte("same message")
	first, err := Encrypt(publicKey, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Encrypt(publicKey, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(first, second) {
		t.Error("two encryptions of the same plaintext are identical")
	}
}

// TestDecryptWithWrongKey verifies a different key on the same curve cannot
// open the envelope
func TestDecryptWithWrongKey(t *testing.T) {
	for _, family := range envelopeFamilies() {
		t.Run(string(family), func(t *testing.T) {
			_, publicKey := generateKeyPair(t, family)
			wrongKey, _ := generateKeyPair(t, family)

			ciphertext, err := Encrypt(publicKey, []byte("secret"))
			if err != nil {
				t.Fatal(err)
			}

			if _, err := Decrypt(wrongKey, ciphertext); !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
		})
	}
}

// TestTamperDetection flips bits across the envelope and expects every
// position to be rejected
func TestTamperDetection(t *testing.T) {
	privateKey, publicKey := generateKeyPair(t, keys.Secp256k1)

	ciphertext, err := Encrypt(publicKey, []byte("authenticated payload"))
	if err != nil {
		t.Fatal(err)
	}

	// Skip the length prefix: flipping it is a format error, not an
	// authentication failure
	for i := 1; i < len(ciphertext); i++ {
		tampered := make([]byte, len(ciphertext))
		copy(tampered, ciphertext)
		tampered[i] ^= 0x01

		if _, err := Decrypt(privateKey, tampered); err == nil {
			t.Fatalf("tampering at offset %d was not detected", i)
		}
	}
}

func TestKDFOptions(t *testing.T) {
	cases := []struct {
		name string
		opts []func(*Options)
	}{
		{"hkdf-sha256", []func(*Options){WithKDF(kdf.HKDF), WithDigest(digest.SHA256)}},
		{"hkdf-sha3-512", []func(*Options){WithKDF(kdf.HKDF), WithDigest(digest.SHA3512)}},
		{"concatenation-sha384", []func(*Options){WithKDF(kdf.Concat), WithDigest(digest.SHA384)}},
		{"scrypt", []func(*Options){WithKDF(kdf.Scrypt)}},
		{"pbkdf2-custom-salt", []func(*Options){WithSalt([]byte("0123456789abcdef"))}},
		{"hkdf-with-info", []func(*Options){WithKDF(kdf.HKDF), WithInfo([]byte("session-42"))}},
	}

	privateKey, publicKey := generateKeyPair(t, keys.NistP256)
	plaintext := []byte("derivation options")

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := Encrypt(publicKey, plaintext, tc.opts...)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}

			decrypted, err := Decrypt(privateKey, ciphertext, tc.opts...)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !bytes.Equal(plaintext, decrypted) {
				t.Error("round trip mismatch")
			}

			// Default options must not open an envelope made with
			// non-default derivation
			if _, err := Decrypt(privateKey, ciphertext); err == nil {
				t.Error("default options decrypted a non-default envelope")
			}
		})
	}
}

func TestAADBinding(t *testing.T) {
	privateKey, publicKey := generateKeyPair(t, keys.NistP256)

	ciphertext, err := Encrypt(publicKey, []byte("payload"), WithAAD([]byte("header")))
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := Decrypt(privateKey, ciphertext, WithAAD([]byte("header")))
	if err != nil {
		t.Fatalf("Decrypt with matching aad failed: %v", err)
	}
	if !bytes.Equal(plaintext, []byte("payload")) {
		t.Error("round trip mismatch")
	}

	if _, err := Decrypt(privateKey, ciphertext, WithAAD([]byte("other"))); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
	if _, err := Decrypt(privateKey, ciphertext); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed without aad, got %v", err)
	}
}

func TestOptionMismatch(t *testing.T) {
	privateKey, publicKey := generateKeyPair(t, keys.NistP384)

	ciphertext, err := Encrypt(publicKey, []byte("bound to context"), WithInfo([]byte("ctx-a")))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Decrypt(privateKey, ciphertext, WithInfo([]byte("ctx-b"))); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestRequestValidation(t *testing.T) {
	rsaKey, err := keys.Generate(keys.RSA, keys.WithRSABits(1024))
	if err != nil {
		t.Fatal(err)
	}
	defer rsaKey.Destroy()
	rsaPub, err := rsaKey.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Encrypt(nil, []byte("x")); !errors.Is(err, ErrPublicKeyEmpty) {
		t.Errorf("expected ErrPublicKeyEmpty, got %v", err)
	}
	if _, err := Decrypt(nil, []byte("x")); !errors.Is(err, ErrPrivateKeyEmpty) {
		t.Errorf("expected ErrPrivateKeyEmpty, got %v", err)
	}
	if _, err := Encrypt(rsaPub, []byte("x")); !errors.Is(err, ErrUnsupportedFamily) {
		t.Errorf("expected ErrUnsupportedFamily, got %v", err)
	}
	if _, err := Decrypt(rsaKey, make([]byte, 64)); !errors.Is(err, ErrUnsupportedFamily) {
		t.Errorf("expected ErrUnsupportedFamily, got %v", err)
	}
}

func TestMalformedEnvelopes(t *testing.T) {
	privateKey, publicKey := generateKeyPair(t, keys.NistP256)

	ciphertext, err := Encrypt(publicKey, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Decrypt(privateKey, nil); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("expected ErrCiphertextTooShort, got %v", err)
	}
	if _, err := Decrypt(privateKey, ciphertext[:17]); !errors.Is(err, ErrCiphertextTooShort) {
		t.Errorf("expected ErrCiphertextTooShort, got %v", err)
	}

	// Wrong length prefix for the curve
	badPrefix := make([]byte, len(ciphertext))
	copy(badPrefix, ciphertext)
	badPrefix[0] = 65
	if _, err := Decrypt(privateKey, badPrefix); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext, got %v", err)
	}

	// A point not on the curve
	badPoint := make([]byte, len(ciphertext))
	copy(badPoint, ciphertext)
	badPoint[1] = 0x05
	if _, err := Decrypt(privateKey, badPoint); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("expected ErrInvalidCiphertext, got %v", err)
	}
}

func TestCurve25519PrefixValidation(t *testing.T) {
	privateKey, publicKey := generateKeyPair(t, keys.Curve25519)

	ciphertext, err := Encrypt(publicKey, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	tampered := make([]byte, len(ciphertext))
	copy(tampered, ciphertext)
	tampered[0] = 33
	if _, err := Decrypt(privateKey, tampered); !errors.Is(err, keys.ErrExchangeKeySize) {
		t.Errorf("expected ErrExchangeKeySize, got %v", err)
	}
}

// TestCrossFamilyDecrypt verifies an envelope for one curve is rejected by a
// key on another
func TestCrossFamilyDecrypt(t *testing.T) {
	_, p256Pub := generateKeyPair(t, keys.NistP256)
	p521Key, _ := generateKeyPair(t, keys.NistP521)

	ciphertext, err := Encrypt(p256Pub, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Decrypt(p521Key, ciphertext); err == nil {
		t.Error("cross-family decryption succeeded")
	}
}

func BenchmarkEncryptP256(b *testing.B) {
	key, err := keys.Generate(keys.NistP256)
	if err != nil {
		b.Fatal(err)
	}
	defer key.Destroy()
	pub, err := key.PublicKey()
	if err != nil {
		b.Fatal(err)
	}

	plaintext := make([]byte, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encrypt(pub, plaintext, WithKDF(kdf.HKDF), WithDigest(digest.SHA256)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecryptCurve25519(b *testing.B) {
	key, err := keys.Generate(keys.Curve25519)
	if err != nil {
		b.Fatal(err)
	}
	defer key.Destroy()
	pub, err := key.PublicKey()
	if err != nil {
		b.Fatal(err)
	}

	ciphertext, err := Encrypt(pub, make([]byte, 1024), WithKDF(kdf.HKDF), WithDigest(digest.SHA256))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decrypt(key, ciphertext, WithKDF(kdf.HKDF), WithDigest(digest.SHA256)); err != nil {
			b.Fatal(err)
		}
	}
}
