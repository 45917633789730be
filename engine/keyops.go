package engine

import (
	"strings"

	"github.com/quorlin/cryptokit/codec"
	"github.com/quorlin/cryptokit/crypto/keys"
)

// GenerateKey creates a key pair and returns both halves serialized.
func (e *Engine) GenerateKey(req GenerateKeyRequest) (*KeyPair, error) {
	format := req.Format
	if format == "" {
		format = keys.PEM
	}

	var opts []func(*keys.Options)
	if req.RSABits != 0 {
		opts = append(opts, keys.WithRSABits(req.RSABits))
	}

	key, err := keys.Generate(req.Family, opts...)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	container := req.Container
	if container == "" {
		container = keys.PKCS8
	}
	publicContainer := req.PublicContainer
	if publicContainer == "" {
		publicContainer = keys.SPKI
	}

	privateDER, err := key.Export(container, format)
	if err != nil {
		return nil, err
	}
	pub, err := key.PublicKey()
	if err != nil {
		return nil, err
	}
	publicDER, err := pub.Export(publicContainer, format)
	if err != nil {
		return nil, err
	}

	outEnc := keyEncodingDefault(format)
	if format == keys.DER {
		outEnc = orDefault(req.OutputEncoding, outEnc)
	}

	private, err := codec.Encode(outEnc, privateDER)
	if err != nil {
		return nil, err
	}
	public, err := codec.Encode(outEnc, publicDER)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("op", "generate_key").
		Str("family", string(req.Family)).
		Str("container", string(container)).
		Str("format", string(format)).
		Msg("generated key pair")

	return &KeyPair{Private: private, Public: public}, nil
}

// DerivePublicKey derives and serializes the public half of a private key.
func (e *Engine) DerivePublicKey(req DerivePublicKeyRequest) (string, error) {
	format := req.Format
	if format == "" {
		format = keys.PEM
	}
	container := req.Container
	if container == "" {
		container = keys.PKCS8
	}

	raw, err := decodeField(req.Key, req.KeyEncoding, keyEncodingDefault(format))
	if err != nil {
		return "", err
	}

	key, err := keys.ImportPrivate(req.Family, container, format, raw)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	pub, err := key.PublicKey()
	if err != nil {
		return "", err
	}

	publicContainer := req.PublicContainer
	if publicContainer == "" {
		publicContainer = keys.SPKI
	}
	publicFormat := req.PublicFormat
	if publicFormat == "" {
		publicFormat = format
	}

	der, err := pub.Export(publicContainer, publicFormat)
	if err != nil {
		return "", err
	}

	outEnc := keyEncodingDefault(publicFormat)
	if publicFormat == keys.DER {
		outEnc = orDefault(req.OutputEncoding, outEnc)
	}

	e.logger.Debug().
		Str("op", "derive_public_key").
		Str("family", string(req.Family)).
		Msg("derived public key")

	return codec.Encode(outEnc, der)
}

// TranscodeKey converts a key between containers and formats.
func (e *Engine) TranscodeKey(req TranscodeKeyRequest) (string, error) {
	raw, err := decodeField(req.Key, req.KeyEncoding, keyEncodingDefault(req.FromFormat))
	if err != nil {
		return "", err
	}

	var out []byte
	if req.Private {
		out, err = keys.TranscodePrivate(req.Family, req.FromContainer, req.FromFormat, req.ToContainer, req.ToFormat, raw)
	} else {
		out, err = keys.TranscodePublic(req.Family, req.FromContainer, req.FromFormat, req.ToContainer, req.ToFormat, raw)
	}
	if err != nil {
		return "", err
	}

	outEnc := keyEncodingDefault(req.ToFormat)
	if req.ToFormat == keys.DER {
		outEnc = orDefault(req.OutputEncoding, outEnc)
	}

	e.logger.Debug().
		Str("op", "transcode_key").
		Str("family", string(req.Family)).
		Bool("private", req.Private).
		Str("from", string(req.FromContainer)+"/"+string(req.FromFormat)).
		Str("to", string(req.ToContainer)+"/"+string(req.ToFormat)).
		Msg("transcoded key")

	return codec.Encode(outEnc, out)
}

// InspectKey identifies the family, container, format and side of a key blob.
// Without an explicit encoding, PEM input is taken as plain text and anything
// else as base64 DER.
func (e *Engine) InspectKey(req InspectKeyRequest) (*keys.KeyInfo, error) {
	enc := req.KeyEncoding
	if enc == "" {
		enc = codec.Base64
		if strings.Contains(req.Key, "-----BEGIN ") {
			enc = codec.UTF8
		}
	}

	raw, err := codec.Decode(enc, req.Key)
	if err != nil {
		return nil, err
	}

	info, err := keys.Inspect(raw)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("op", "inspect_key").
		Str("family", string(info.Family)).
		Bool("private", info.Private).
		Msg("inspected key")

	return info, nil
}
