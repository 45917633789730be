package keys

import "github.com/quorlin/cryptokit/errors"

// Selection errors
var (
	// ErrUnknownFamily indicates a family outside the supported set.
	ErrUnknownFamily = errors.Unsupported("keys: unknown key family")

	// ErrUnsupportedContainer indicates a container the family cannot use.
	ErrUnsupportedContainer = errors.Unsupported("keys: container not supported for family")

	// ErrUnknownFormat indicates a serialization other than pem or der.
	ErrUnknownFormat = errors.Unsupported("keys: unknown serialization format")

	// ErrRSABits indicates an RSA modulus size outside the supported set.
	ErrRSABits = errors.Unsupported("keys: unsupported rsa key size")

	// ErrNoAgreement indicates a family without a key-agreement operation.
	ErrNoAgreement = errors.Unsupported("keys: family does not support key agreement")

	// ErrExchangeKeySize indicates an exchange key of unexpected length.
	ErrExchangeKeySize = errors.Unsupported("keys: unsupported exchange key length")

	// ErrExchangeOnlyKey indicates an ephemeral exchange key that has no
	// container representation.
	ErrExchangeOnlyKey = errors.Unsupported("keys: exchange-only key cannot be exported")
)

// Decoding errors
var (
	// ErrInvalidPEM indicates data that is not a single well-formed PEM block.
	ErrInvalidPEM = errors.MalformedInput("keys: invalid pem block")

	// ErrPEMLabelMismatch indicates a PEM label that contradicts the
	// requested container.
	ErrPEMLabelMismatch = errors.MalformedInput("keys: pem label does not match container")

	// ErrMalformedKey indicates undecodable key material.
	ErrMalformedKey = errors.MalformedInput("keys: malformed key data")

	// ErrCurveMismatch indicates a curve OID that contradicts the requested
	// family.
	ErrCurveMismatch = errors.MalformedInput("keys: curve oid mismatch")

	// ErrKeyTypeMismatch indicates a container holding a different algorithm
	// than requested.
	ErrKeyTypeMismatch = errors.MalformedInput("keys: key algorithm mismatch")

	// ErrInvalidScalar indicates a private scalar outside the curve order.
	ErrInvalidScalar = errors.MalformedInput("keys: invalid private scalar")

	// ErrInvalidPoint indicates a public point that is not on the curve.
	ErrInvalidPoint = errors.MalformedInput("keys: invalid public point")

	// ErrUnrecognizedKey indicates Inspect found no matching interpretation.
	ErrUnrecognizedKey = errors.MalformedInput("keys: unrecognized key data")
)

// Request errors
var (
	// ErrKeyEmpty indicates a nil key argument.
	ErrKeyEmpty = errors.InvalidRequest("keys: key is empty")

	// ErrFamilyMismatch indicates an operation across different families.
	ErrFamilyMismatch = errors.InvalidRequest("keys: key family mismatch")
)

// Primitive failures
var (
	// ErrGenerateFailed indicates a failure in the underlying generator.
	ErrGenerateFailed = errors.CryptoFailure("keys: key generation failed")

	// ErrAgreementFailed indicates a failed shared-secret computation.
	ErrAgreementFailed = errors.CryptoFailure("keys: key agreement failed")
)
