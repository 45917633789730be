package engine

import (
	"github.com/quorlin/cryptokit/codec"
	"github.com/quorlin/cryptokit/crypto/aes"
	"github.com/quorlin/cryptokit/crypto/digest"
	"github.com/quorlin/cryptokit/crypto/kdf"
	"github.com/quorlin/cryptokit/crypto/keys"
	"github.com/quorlin/cryptokit/crypto/rsa"
	"github.com/quorlin/cryptokit/jwk"
)

// GenerateKeyRequest asks for a fresh key pair.
type GenerateKeyRequest struct {
	Family keys.Family `json:"family"`

	// RSABits selects the RSA modulus size; ignored for other families.
	RSABits int `json:"rsa_bits,omitempty"`

	// Container and PublicContainer default to the family's first supported
	// container (PKCS#8 private, SPKI public).
	Container       keys.Container `json:"container,omitempty"`
	PublicContainer keys.Container `json:"public_container,omitempty"`

	// Format defaults to PEM.
	Format keys.Format `json:"format,omitempty"`

	// OutputEncoding applies to DER output only; defaults to base64.
	OutputEncoding codec.Encoding `json:"output_encoding,omitempty"`
}

// KeyPair is the result of GenerateKey.
type KeyPair struct {
	Private string `json:"private"`
	Public  string `json:"public"`
}

// DerivePublicKeyRequest derives the public key of an imported private key.
type DerivePublicKeyRequest struct {
	Family      keys.Family    `json:"family"`
	Key         string         `json:"key"`
	KeyEncoding codec.Encoding `json:"key_encoding,omitempty"`
	Container   keys.Container `json:"container,omitempty"`
	Format      keys.Format    `json:"format,omitempty"`

	PublicContainer keys.Container `json:"public_container,omitempty"`
	PublicFormat    keys.Format    `json:"public_format,omitempty"`
	OutputEncoding  codec.Encoding `json:"output_encoding,omitempty"`
}

// TranscodeKeyRequest converts a key between containers and formats.
type TranscodeKeyRequest struct {
	Family      keys.Family    `json:"family"`
	Private     bool           `json:"private"`
	Key         string         `json:"key"`
	KeyEncoding codec.Encoding `json:"key_encoding,omitempty"`

	FromContainer keys.Container `json:"from_container"`
	FromFormat    keys.Format    `json:"from_format"`
	ToContainer   keys.Container `json:"to_container"`
	ToFormat      keys.Format    `json:"to_format"`

	OutputEncoding codec.Encoding `json:"output_encoding,omitempty"`
}

// InspectKeyRequest identifies an unknown key blob.
type InspectKeyRequest struct {
	Key         string         `json:"key"`
	KeyEncoding codec.Encoding `json:"key_encoding,omitempty"`
}

// AESRequest carries a symmetric encryption or decryption call.
type AESRequest struct {
	Mode    aes.Mode    `json:"mode"`
	Padding aes.Padding `json:"padding"`

	Key         string         `json:"key"`
	KeyEncoding codec.Encoding `json:"key_encoding,omitempty"` // default base64

	IV         string         `json:"iv,omitempty"`
	IVEncoding codec.Encoding `json:"iv_encoding,omitempty"` // default base64

	AAD         string         `json:"aad,omitempty"`
	AADEncoding codec.Encoding `json:"aad_encoding,omitempty"` // default utf8

	// Input is plaintext for encryption (default utf8) or ciphertext for
	// decryption (default base64).
	Input         string         `json:"input"`
	InputEncoding codec.Encoding `json:"input_encoding,omitempty"`

	// OutputEncoding defaults to base64 for ciphertext and utf8 for
	// recovered plaintext.
	OutputEncoding codec.Encoding `json:"output_encoding,omitempty"`
}

// RSARequest carries an RSA encryption or decryption call. The key is public
// for encryption and private for decryption.
type RSARequest struct {
	Padding   rsa.Padding `json:"padding"`
	Digest    digest.Kind `json:"digest,omitempty"`
	MGFDigest digest.Kind `json:"mgf_digest,omitempty"`

	Key         string         `json:"key"`
	KeyEncoding codec.Encoding `json:"key_encoding,omitempty"`
	Container   keys.Container `json:"container,omitempty"`
	Format      keys.Format    `json:"format,omitempty"`

	Input          string         `json:"input"`
	InputEncoding  codec.Encoding `json:"input_encoding,omitempty"`
	OutputEncoding codec.Encoding `json:"output_encoding,omitempty"`
}

// ECIESRequest carries a hybrid encryption or decryption call. The key is
// public for encryption and private for decryption.
type ECIESRequest struct {
	Family keys.Family `json:"family"`

	Key         string         `json:"key"`
	KeyEncoding codec.Encoding `json:"key_encoding,omitempty"`
	Container   keys.Container `json:"container,omitempty"`
	Format      keys.Format    `json:"format,omitempty"`

	KDF    kdf.Kind    `json:"kdf,omitempty"`
	Digest digest.Kind `json:"digest,omitempty"`

	Salt         string         `json:"salt,omitempty"`
	SaltEncoding codec.Encoding `json:"salt_encoding,omitempty"` // default utf8
	Info         string         `json:"info,omitempty"`
	InfoEncoding codec.Encoding `json:"info_encoding,omitempty"` // default utf8
	AAD          string         `json:"aad,omitempty"`
	AADEncoding  codec.Encoding `json:"aad_encoding,omitempty"` // default utf8

	Input          string         `json:"input"`
	InputEncoding  codec.Encoding `json:"input_encoding,omitempty"`
	OutputEncoding codec.Encoding `json:"output_encoding,omitempty"`
}

// DeriveKeyRequest carries a standalone key derivation call.
type DeriveKeyRequest struct {
	KDF    kdf.Kind    `json:"kdf"`
	Digest digest.Kind `json:"digest"`

	Secret         string         `json:"secret"`
	SecretEncoding codec.Encoding `json:"secret_encoding,omitempty"` // default utf8
	Salt           string         `json:"salt,omitempty"`
	SaltEncoding   codec.Encoding `json:"salt_encoding,omitempty"` // default utf8
	Info           string         `json:"info,omitempty"`
	InfoEncoding   codec.Encoding `json:"info_encoding,omitempty"` // default utf8

	Length         int            `json:"length"`
	OutputEncoding codec.Encoding `json:"output_encoding,omitempty"`
}

// GenerateJWKRequest asks for a fresh JSON Web Key.
type GenerateJWKRequest struct {
	Algorithm jwk.Algorithm `json:"algorithm"`
}

// orDefault substitutes the fallback for an unset encoding.
func orDefault(enc, fallback codec.Encoding) codec.Encoding {
	if enc == "" {
		return fallback
	}
	return enc
}

// decodeField decodes a request field under its declared encoding, falling
// back to the provided default.
func decodeField(value string, enc, fallback codec.Encoding) ([]byte, error) {
	return codec.Decode(orDefault(enc, fallback), value)
}

// keyEncodingDefault returns the default encoding for key material: PEM keys
// travel as plain text, DER keys as base64.
func keyEncodingDefault(format keys.Format) codec.Encoding {
	if format == keys.DER {
		return codec.Base64
	}
	return codec.UTF8
}
