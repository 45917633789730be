package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorlin/cryptokit/errors"
)

func TestBase64Variants(t *testing.T) {
	data := []byte{0xfb, 0xff, 0xfe, 0x01}

	tests := []struct {
		name string
		opts []func(*Options)
		want string
	}{
		{"standard", nil, "+//+AQ=="},
		{"unpadded", []func(*Options){WithUnpadded()}, "+//+AQ"},
		{"urlsafe", []func(*Options){WithURLSafe()}, "-__-AQ=="},
		{"urlsafe unpadded", []func(*Options){WithURLSafe(), WithUnpadded()}, "-__-AQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(Base64, data, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, encoded)

			decoded, err := Decode(Base64, encoded, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestHexVariants(t *testing.T) {
	data := []byte{0xab, 0x01, 0xcd}

	lower, err := Encode(Hex, data)
	require.NoError(t, err)
	assert.Equal(t, "ab01cd", lower)

	upper, err := Encode(Hex, data, WithUppercase())
	require.NoError(t, err)
	assert.Equal(t, "AB01CD", upper)

	// Decoding accepts either case
	decoded, err := Decode(Hex, "AB01cd")
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestUTF8(t *testing.T) {
	encoded, err := Encode(UTF8, []byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, "héllo", encoded)

	decoded, err := Decode(UTF8, "héllo")
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo"), decoded)

	_, err = Encode(UTF8, []byte{0xff, 0xfe})
	require.Error(t, err)
	assert.True(t, errors.IsMalformedInput(err))
}

func TestEmptyInput(t *testing.T) {
	for _, e := range []Encoding{Base64, Hex, UTF8} {
		encoded, err := Encode(e, nil)
		require.NoError(t, err)
		assert.Equal(t, "", encoded)

		decoded, err := Decode(e, "")
		require.NoError(t, err)
		assert.Empty(t, decoded)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(Base64, "not@@base64")
	assert.True(t, errors.Is(err, ErrInvalidBase64))

	_, err = Decode(Hex, "zz")
	assert.True(t, errors.Is(err, ErrInvalidHex))

	_, err = Decode(Encoding("rot13"), "abc")
	assert.True(t, errors.IsUnsupported(err))
}
