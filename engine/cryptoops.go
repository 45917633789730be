package engine

import (
	"github.com/quorlin/cryptokit/codec"
	"github.com/quorlin/cryptokit/crypto/aes"
	"github.com/quorlin/cryptokit/crypto/ecies"
	"github.com/quorlin/cryptokit/internal/bytesutil"
	"github.com/quorlin/cryptokit/crypto/kdf"
	"github.com/quorlin/cryptokit/crypto/keys"
	"github.com/quorlin/cryptokit/crypto/rsa"
	"github.com/quorlin/cryptokit/jwk"
)

// EncryptAES encrypts the request input and returns the ciphertext under the
// output encoding (base64 by default).
func (e *Engine) EncryptAES(req AESRequest) (string, error) {
	key, iv, aad, err := e.decodeAESFields(req)
	if err != nil {
		return "", err
	}
	defer bytesutil.Zeroize(key)

	plaintext, err := decodeField(req.Input, req.InputEncoding, codec.UTF8)
	if err != nil {
		return "", err
	}

	ciphertext, err := aes.Encrypt(req.Mode, req.Padding, key, iv, aad, plaintext)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "encrypt_aes").
		Str("mode", string(req.Mode)).
		Str("padding", string(req.Padding)).
		Int("plaintext_len", len(plaintext)).
		Msg("encrypted")

	return codec.Encode(orDefault(req.OutputEncoding, codec.Base64), ciphertext)
}

// DecryptAES decrypts the request input (base64 by default) and returns the
// plaintext under the output encoding (utf8 by default).
func (e *Engine) DecryptAES(req AESRequest) (string, error) {
	key, iv, aad, err := e.decodeAESFields(req)
	if err != nil {
		return "", err
	}
	defer bytesutil.Zeroize(key)

	ciphertext, err := decodeField(req.Input, req.InputEncoding, codec.Base64)
	if err != nil {
		return "", err
	}

	plaintext, err := aes.Decrypt(req.Mode, req.Padding, key, iv, aad, ciphertext)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "decrypt_aes").
		Str("mode", string(req.Mode)).
		Str("padding", string(req.Padding)).
		Msg("decrypted")

	return codec.Encode(orDefault(req.OutputEncoding, codec.UTF8), plaintext)
}

func (e *Engine) decodeAESFields(req AESRequest) (key, iv, aad []byte, err error) {
	key, err = decodeField(req.Key, req.KeyEncoding, codec.Base64)
	if err != nil {
		return nil, nil, nil, err
	}
	iv, err = decodeField(req.IV, req.IVEncoding, codec.Base64)
	if err != nil {
		return nil, nil, nil, err
	}
	aad, err = decodeField(req.AAD, req.AADEncoding, codec.UTF8)
	if err != nil {
		return nil, nil, nil, err
	}
	return key, iv, aad, nil
}

// EncryptRSA encrypts the request input under an imported RSA public key.
func (e *Engine) EncryptRSA(req RSARequest) (string, error) {
	container := req.Container
	if container == "" {
		container = keys.SPKI
	}
	format := req.Format
	if format == "" {
		format = keys.PEM
	}

	raw, err := decodeField(req.Key, req.KeyEncoding, keyEncodingDefault(format))
	if err != nil {
		return "", err
	}
	pub, err := keys.ImportPublic(keys.RSA, container, format, raw)
	if err != nil {
		return "", err
	}

	plaintext, err := decodeField(req.Input, req.InputEncoding, codec.UTF8)
	if err != nil {
		return "", err
	}

	ciphertext, err := rsa.Encrypt(pub, req.Padding, req.Digest, req.MGFDigest, plaintext)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "encrypt_rsa").
		Str("padding", string(req.Padding)).
		Msg("encrypted")

	return codec.Encode(orDefault(req.OutputEncoding, codec.Base64), ciphertext)
}

// DecryptRSA decrypts the request input under an imported RSA private key.
func (e *Engine) DecryptRSA(req RSARequest) (string, error) {
	container := req.Container
	if container == "" {
		container = keys.PKCS8
	}
	format := req.Format
	if format == "" {
		format = keys.PEM
	}

	raw, err := decodeField(req.Key, req.KeyEncoding, keyEncodingDefault(format))
	if err != nil {
		return "", err
	}
	priv, err := keys.ImportPrivate(keys.RSA, container, format, raw)
	if err != nil {
		return "", err
	}
	defer priv.Destroy()

	ciphertext, err := decodeField(req.Input, req.InputEncoding, codec.Base64)
	if err != nil {
		return "", err
	}

	plaintext, err := rsa.Decrypt(priv, req.Padding, req.Digest, req.MGFDigest, ciphertext)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "decrypt_rsa").
		Str("padding", string(req.Padding)).
		Msg("decrypted")

	return codec.Encode(orDefault(req.OutputEncoding, codec.UTF8), plaintext)
}

// EncryptECIES encrypts the request input for an imported public key.
func (e *Engine) EncryptECIES(req ECIESRequest) (string, error) {
	container := req.Container
	if container == "" {
		container = keys.SPKI
	}
	format := req.Format
	if format == "" {
		format = keys.PEM
	}

	raw, err := decodeField(req.Key, req.KeyEncoding, keyEncodingDefault(format))
	if err != nil {
		return "", err
	}
	pub, err := keys.ImportPublic(req.Family, container, format, raw)
	if err != nil {
		return "", err
	}

	plaintext, err := decodeField(req.Input, req.InputEncoding, codec.UTF8)
	if err != nil {
		return "", err
	}

	opts, err := eciesOptions(req)
	if err != nil {
		return "", err
	}

	ciphertext, err := ecies.Encrypt(pub, plaintext, opts...)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "encrypt_ecies").
		Str("family", string(req.Family)).
		Msg("encrypted")

	return codec.Encode(orDefault(req.OutputEncoding, codec.Base64), ciphertext)
}

// DecryptECIES decrypts the request input with an imported private key.
func (e *Engine) DecryptECIES(req ECIESRequest) (string, error) {
	container := req.Container
	if container == "" {
		container = keys.PKCS8
	}
	format := req.Format
	if format == "" {
		format = keys.PEM
	}

	raw, err := decodeField(req.Key, req.KeyEncoding, keyEncodingDefault(format))
	if err != nil {
		return "", err
	}
	priv, err := keys.ImportPrivate(req.Family, container, format, raw)
	if err != nil {
		return "", err
	}
	defer priv.Destroy()

	ciphertext, err := decodeField(req.Input, req.InputEncoding, codec.Base64)
	if err != nil {
		return "", err
	}

	opts, err := eciesOptions(req)
	if err != nil {
		return "", err
	}

	plaintext, err := ecies.Decrypt(priv, ciphertext, opts...)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "decrypt_ecies").
		Str("family", string(req.Family)).
		Msg("decrypted")

	return codec.Encode(orDefault(req.OutputEncoding, codec.UTF8), plaintext)
}

func eciesOptions(req ECIESRequest) ([]func(*ecies.Options), error) {
	var opts []func(*ecies.Options)
	if req.KDF != "" {
		opts = append(opts, ecies.WithKDF(req.KDF))
	}
	if req.Digest != "" {
		opts = append(opts, ecies.WithDigest(req.Digest))
	}
	if req.Salt != "" {
		salt, err := decodeField(req.Salt, req.SaltEncoding, codec.UTF8)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ecies.WithSalt(salt))
	}
	if req.Info != "" {
		info, err := decodeField(req.Info, req.InfoEncoding, codec.UTF8)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ecies.WithInfo(info))
	}
	if req.AAD != "" {
		aad, err := decodeField(req.AAD, req.AADEncoding, codec.UTF8)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ecies.WithAAD(aad))
	}
	return opts, nil
}

// DeriveKey runs a standalone key derivation and returns the output keying
// material under the output encoding (base64 by default).
func (e *Engine) DeriveKey(req DeriveKeyRequest) (string, error) {
	secret, err := decodeField(req.Secret, req.SecretEncoding, codec.UTF8)
	if err != nil {
		return "", err
	}
	defer bytesutil.Zeroize(secret)

	salt, err := decodeField(req.Salt, req.SaltEncoding, codec.UTF8)
	if err != nil {
		return "", err
	}
	info, err := decodeField(req.Info, req.InfoEncoding, codec.UTF8)
	if err != nil {
		return "", err
	}

	okm, err := kdf.Derive(req.KDF, req.Digest, secret, salt, info, req.Length)
	if err != nil {
		return "", err
	}

	e.logger.Debug().
		Str("op", "derive_key").
		Str("kdf", string(req.KDF)).
		Str("digest", string(req.Digest)).
		Int("length", req.Length).
		Msg("derived key")

	return codec.Encode(orDefault(req.OutputEncoding, codec.Base64), okm)
}

// GenerateJWK creates a fresh JSON Web Key and returns its JSON form.
func (e *Engine) GenerateJWK(req GenerateJWKRequest) (string, error) {
	key, err := jwk.Generate(req.Algorithm)
	if err != nil {
		return "", err
	}

	data, err := key.MarshalJSON()
	if err != nil {
		return "", jwk.ErrGenerateFailed.WithCause(err)
	}

	e.logger.Debug().
		Str("op", "generate_jwk").
		Str("algorithm", string(req.Algorithm)).
		Str("kid", key.KeyID).
		Msg("generated jwk")

	return string(data), nil
}
