package engine

import "github.com/quorlin/cryptokit/errors"

var (
	// ErrInvalidLength indicates a random byte count outside (0, 1 MiB].
	ErrInvalidLength = errors.InvalidRequest("engine: invalid output length")

	// ErrRandomFailed indicates the system entropy source failed.
	ErrRandomFailed = errors.CryptoFailure("engine: random source failed")
)
