package errors

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Kind classifies an error into one of the engine's failure categories.
type Kind int

const (
	// KindUnknown is the zero value, assigned to errors that did not
	// originate from this package.
	KindUnknown Kind = iota

	// KindInvalidRequest marks requests with missing or inconsistent
	// parameters (wrong IV size, zero output length, missing salt).
	KindInvalidRequest

	// KindMalformedInput marks inputs that could not be decoded
	// (PEM/DER/base64/hex/UTF-8, truncated envelopes, OID mismatches).
	KindMalformedInput

	// KindUnsupported marks well-formed selections outside the supported
	// matrix (unknown curve, key length, digest, container combination).
	KindUnsupported

	// KindCryptoFailure marks failures of the cryptographic primitives
	// themselves. Decryption failures collapse into this kind without
	// distinguishing a wrong key from tampered data.
	KindCryptoFailure
)

const (
	metadataSeparator = ", "
	metadataPrefix    = "metadata={"
	metadataSuffix    = "}"
	causePrefix       = "cause="
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindMalformedInput:
		return "malformed_input"
	case KindUnsupported:
		return "unsupported"
	case KindCryptoFailure:
		return "crypto_failure"
	default:
		return "unknown"
	}
}

// Status represents the status information of an error, including its kind,
// message and metadata.
type Status struct {
	Kind     Kind              `json:"kind,omitempty"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error represents a structured error carrying a failure kind, message,
// metadata and an error chain.
type Error struct {
	Status
	cause error
}

// Error returns a human-readable error message with optional error chain.
func (e *Error) Error() string {
	var msg strings.Builder

	msg.WriteString("kind=")
	msg.WriteString(e.Kind.String())
	msg.WriteString(metadataSeparator)
	msg.WriteString("message=")
	msg.WriteString(e.Message)

	if len(e.Metadata) > 0 {
		msg.WriteString(metadataSeparator)
		msg.WriteString(metadataPrefix)
		first := true
		for k, v := range e.Metadata {
			if !first {
				msg.WriteString(", ")
			}
			msg.WriteString(k)
			msg.WriteByte('=')
			msg.WriteString(strconv.Quote(v))
			first = false
		}
		msg.WriteString(metadataSuffix)
	}

	if e.cause != nil {
		msg.WriteString(metadataSeparator)
		msg.WriteString(causePrefix)
		msg.WriteString(e.cause.Error())
	}

	return msg.String()
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithMetadata adds metadata to the error. Returns a new error instance to
// maintain immutability.
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}

	maps.Copy(err.Metadata, m)
	return err
}

// WithCause adds a cause to the error. Returns a new error instance to
// maintain immutability.
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	err := e.clone()
	err.cause = cause
	return err
}

// clone creates a shallow copy of the error while deep copying the metadata map.
func (e *Error) clone() *Error {
	var metadata map[string]string
	if len(e.Metadata) > 0 {
		metadata = make(map[string]string, len(e.Metadata))
		maps.Copy(metadata, e.Metadata)
	}

	return &Error{
		Status: Status{
			Kind:     e.Kind,
			Message:  e.Message,
			Metadata: metadata,
		},
		cause: e.cause,
	}
}

// Is reports whether err is an *Error with the same kind and message.
// This implements the standard errors.Is interface, so sentinel errors
// declared with the constructors below survive WithCause wrapping.
func (e *Error) Is(err error) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return e.Kind == ge.Kind && e.Message == ge.Message
	}
	return false
}

// GetKind returns the error kind.
func (e *Error) GetKind() Kind {
	return e.Kind
}

// GetMessage returns the error message.
func (e *Error) GetMessage() string {
	return e.Message
}

// GetMetadata returns a copy of the metadata to prevent external modification.
func (e *Error) GetMetadata() map[string]string {
	if len(e.Metadata) == 0 {
		return nil
	}

	result := make(map[string]string, len(e.Metadata))
	maps.Copy(result, e.Metadata)
	return result
}

// GetCause returns the underlying cause of the error.
func (e *Error) GetCause() error {
	return e.cause
}

// New creates a new error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	var message string
	if len(args) == 0 {
		message = format
	} else {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Status: Status{
			Kind:    kind,
			Message: message,
		},
	}
}

// NewWithMetadata creates a new error with metadata.
func NewWithMetadata(kind Kind, metadata map[string]string, format string, args ...any) *Error {
	err := New(kind, format, args...)
	if len(metadata) > 0 {
		err.Metadata = make(map[string]string, len(metadata))
		maps.Copy(err.Metadata, metadata)
	}
	return err
}

// FromError converts a generic error to *Error. Errors that did not
// originate from this package are classified as crypto failures.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	if ge, ok := err.(*Error); ok {
		return ge
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	return New(KindCryptoFailure, "%v", err)
}

// KindOf returns the kind of err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// Wrap wraps an error with additional context while preserving the original
// error chain. Returns nil if the input error is nil.
func Wrap(err error, kind Kind, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	newErr := New(kind, format, args...)
	return newErr.WithCause(err)
}
