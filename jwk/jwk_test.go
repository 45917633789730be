package jwk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorlin/cryptokit/errors"
)

func TestGenerate(t *testing.T) {
	for _, alg := range Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			key, err := Generate(alg)
			require.NoError(t, err)

			assert.Equal(t, string(alg), key.Algorithm)
			assert.True(t, key.Valid(), "generated key is not valid")

			wantUse := "sig"
			if isEncryptionAlgorithm(alg) {
				wantUse = "enc"
			}
			assert.Equal(t, wantUse, key.Use)

			_, err = uuid.Parse(key.KeyID)
			assert.NoError(t, err, "kid is not a UUID")
		})
	}
}

func TestGenerateOctKeySizes(t *testing.T) {
	sizes := map[Algorithm]int{
		HS256:   32,
		HS384:   48,
		HS512:   64,
		A128KW:  16,
		A192KW:  24,
		A256KW:  32,
		A128GCM: 16,
		A192GCM: 24,
		A256GCM: 32,
	}

	for alg, want := range sizes {
		key, err := Generate(alg)
		require.NoError(t, err)

		secret, ok := key.Key.([]byte)
		require.True(t, ok, "%s did not produce an oct key", alg)
		assert.Len(t, secret, want, "wrong secret length for %s", alg)
	}
}

func TestGenerateRSAVariants(t *testing.T) {
	for _, alg := range []Algorithm{PS256, PS384, PS512, RSAOAEP, RSAOAEP256} {
		key, err := Generate(alg)
		require.NoError(t, err)

		data, err := key.MarshalJSON()
		require.NoError(t, err)
		assert.Contains(t, string(data), `"kty":"RSA"`, "wrong key type for %s", alg)
	}
}

func TestGenerateUnknownAlgorithm(t *testing.T) {
	_, err := Generate("ES256K")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestMarshalParseRoundTrip(t *testing.T) {
	key, err := Generate(ES256)
	require.NoError(t, err)

	data, err := key.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kty":"EC"`)
	assert.Contains(t, string(data), `"crv":"P-256"`)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, key.KeyID, parsed.KeyID)
	assert.False(t, parsed.IsPublic())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"kty":"EC"}`))
	assert.True(t, errors.Is(err, ErrInvalidKey))
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, alg := range SignatureAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			key, err := Generate(alg)
			require.NoError(t, err)

			claims := &jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}
			token, err := SignToken(key, claims)
			require.NoError(t, err)
			assert.NotEmpty(t, claims.ID, "missing jti")

			var parsed jwt.RegisteredClaims
			require.NoError(t, VerifyToken(key, token, &parsed))
			assert.Equal(t, "user-1", parsed.Subject)
			assert.Equal(t, claims.ID, parsed.ID)
		})
	}
}

func TestVerifyWithWrongKey(t *testing.T) {
	key, err := Generate(ES256)
	require.NoError(t, err)
	other, err := Generate(ES256)
	require.NoError(t, err)

	token, err := SignToken(key, &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	err = VerifyToken(other, token, &parsed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyAlgorithmConfusion(t *testing.T) {
	hmacKey, err := Generate(HS256)
	require.NoError(t, err)
	rsaKey, err := Generate(RS256)
	require.NoError(t, err)

	token, err := SignToken(hmacKey, &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	require.NoError(t, err)

	// An HS256 token must not verify against an RS256 key
	var parsed jwt.RegisteredClaims
	err = VerifyToken(rsaKey, token, &parsed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerifyExpiredToken(t *testing.T) {
	key, err := Generate(HS256)
	require.NoError(t, err)

	token, err := SignToken(key, &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	require.NoError(t, err)

	var parsed jwt.RegisteredClaims
	err = VerifyToken(key, token, &parsed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestSignValidation(t *testing.T) {
	_, err := SignToken(nil, &jwt.RegisteredClaims{})
	assert.True(t, errors.Is(err, ErrKeyEmpty))

	key, err := Generate(HS256)
	require.NoError(t, err)
	key.Algorithm = "none"
	_, err = SignToken(key, &jwt.RegisteredClaims{})
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))

	// Encryption keys cannot sign
	wrapKey, err := Generate(A256KW)
	require.NoError(t, err)
	_, err = SignToken(wrapKey, &jwt.RegisteredClaims{})
	assert.True(t, errors.Is(err, ErrNotSignatureAlgorithm))
}
