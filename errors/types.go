package errors

// Constructors for the four failure kinds, providing better semantic meaning
// and consistency at call sites.

func InvalidRequest(format string, args ...any) *Error {
	return New(KindInvalidRequest, format, args...)
}

func MalformedInput(format string, args ...any) *Error {
	return New(KindMalformedInput, format, args...)
}

func Unsupported(format string, args ...any) *Error {
	return New(KindUnsupported, format, args...)
}

func CryptoFailure(format string, args ...any) *Error {
	return New(KindCryptoFailure, format, args...)
}

// Kind predicates for classifying errors at the engine boundary.

func IsInvalidRequest(err error) bool {
	return KindOf(err) == KindInvalidRequest
}

func IsMalformedInput(err error) bool {
	return KindOf(err) == KindMalformedInput
}

func IsUnsupported(err error) bool {
	return KindOf(err) == KindUnsupported
}

func IsCryptoFailure(err error) bool {
	return KindOf(err) == KindCryptoFailure
}

// Convenience constructors with metadata.

func InvalidRequestWithMetadata(metadata map[string]string, format string, args ...any) *Error {
	return NewWithMetadata(KindInvalidRequest, metadata, format, args...)
}

func UnsupportedWithMetadata(metadata map[string]string, format string, args ...any) *Error {
	return NewWithMetadata(KindUnsupported, metadata, format, args...)
}
