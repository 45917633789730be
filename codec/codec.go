// Package codec implements the text encodings used at the engine boundary:
// base64 (standard or URL-safe alphabet, padded or unpadded), hex (lower or
// upper case) and validating UTF-8.
//
// Empty input always encodes to "" and "" always decodes to empty bytes.
package codec

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/quorlin/cryptokit/errors"
)

// Encoding selects a text encoding.
type Encoding string

const (
	Base64 Encoding = "base64"
	Hex    Encoding = "hex"
	UTF8   Encoding = "utf8"
)

// Options adjusts encoding variants.
type Options struct {
	unpadded  bool
	urlSafe   bool
	uppercase bool
}

// WithUnpadded drops base64 padding characters.
func WithUnpadded() func(*Options) {
	return func(o *Options) {
		o.unpadded = true
	}
}

// WithURLSafe selects the URL-safe base64 alphabet.
func WithURLSafe() func(*Options) {
	return func(o *Options) {
		o.urlSafe = true
	}
}

// WithUppercase emits upper-case hex digits.
func WithUppercase() func(*Options) {
	return func(o *Options) {
		o.uppercase = true
	}
}

// Encode renders data as a string under the selected encoding.
func Encode(e Encoding, data []byte, opts ...func(*Options)) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	switch e {
	case Base64:
		return base64Encoding(opt).EncodeToString(data), nil
	case Hex:
		s := hex.EncodeToString(data)
		if opt.uppercase {
			s = strings.ToUpper(s)
		}
		return s, nil
	case UTF8:
		if !utf8.Valid(data) {
			return "", ErrInvalidUTF8
		}
		return string(data), nil
	default:
		return "", ErrUnknownEncoding.WithMetadata(map[string]string{"encoding": string(e)})
	}
}

// Decode parses a string under the selected encoding.
func Decode(e Encoding, s string, opts ...func(*Options)) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	switch e {
	case Base64:
		data, err := base64Encoding(opt).DecodeString(s)
		if err != nil {
			return nil, ErrInvalidBase64.WithCause(err)
		}
		return data, nil
	case Hex:
		data, err := hex.DecodeString(strings.ToLower(s))
		if err != nil {
			return nil, ErrInvalidHex.WithCause(err)
		}
		return data, nil
	case UTF8:
		if !utf8.ValidString(s) {
			return nil, ErrInvalidUTF8
		}
		return []byte(s), nil
	default:
		return nil, ErrUnknownEncoding.WithMetadata(map[string]string{"encoding": string(e)})
	}
}

func base64Encoding(opt *Options) *base64.Encoding {
	switch {
	case opt.urlSafe && opt.unpadded:
		return base64.RawURLEncoding
	case opt.urlSafe:
		return base64.URLEncoding
	case opt.unpadded:
		return base64.RawStdEncoding
	default:
		return base64.StdEncoding
	}
}

var (
	ErrUnknownEncoding = errors.Unsupported("codec: unknown text encoding")
	ErrInvalidBase64   = errors.MalformedInput("codec: invalid base64 input")
	ErrInvalidHex      = errors.MalformedInput("codec: invalid hex input")
	ErrInvalidUTF8     = errors.MalformedInput("codec: invalid utf-8 input")
)
