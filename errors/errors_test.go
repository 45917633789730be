package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(KindUnsupported, "unsupported curve")
	if err.GetKind() != KindUnsupported {
		t.Errorf("expected kind %v, got %v", KindUnsupported, err.GetKind())
	}
	if err.GetMessage() != "unsupported curve" {
		t.Errorf("expected message 'unsupported curve', got %s", err.GetMessage())
	}

	t.Logf("Error: %s", err.Error())
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalidRequest, "invalid_request"},
		{KindMalformedInput, "malformed_input"},
		{KindUnsupported, "unsupported"},
		{KindCryptoFailure, "crypto_failure"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWithMetadata(t *testing.T) {
	err := New(KindInvalidRequest, "missing parameter")

	// Empty metadata should return the same instance
	err2 := err.WithMetadata(map[string]string{})
	if err != err2 {
		t.Error("WithMetadata with empty map should return same instance")
	}

	err3 := err.WithMetadata(map[string]string{"parameter": "iv", "mode": "cbc"})
	if err == err3 {
		t.Error("WithMetadata should return new instance")
	}

	metadata := err3.GetMetadata()
	if metadata["parameter"] != "iv" || metadata["mode"] != "cbc" {
		t.Errorf("metadata not set correctly: %v", metadata)
	}

	t.Logf("Error with metadata: %s", err3.Error())
}

func TestWithCause(t *testing.T) {
	originalErr := errors.New("cipher: message authentication failed")
	err := New(KindCryptoFailure, "decryption failed").WithCause(originalErr)

	if err.GetCause() != originalErr {
		t.Error("cause not set correctly")
	}

	t.Logf("Error with cause: %s", err.Error())
}

func TestSentinelSurvivesWithCause(t *testing.T) {
	sentinel := Unsupported("aes: key length must be 16 or 32 bytes")
	wrapped := sentinel.WithCause(errors.New("got 24 bytes"))

	if !Is(wrapped, sentinel) {
		t.Error("wrapped sentinel should still match via errors.Is")
	}
	if KindOf(wrapped) != KindUnsupported {
		t.Errorf("expected unsupported kind, got %v", KindOf(wrapped))
	}
}

func TestFromError(t *testing.T) {
	stdErr := errors.New("standard error")
	wrappedErr := FromError(stdErr)

	if wrappedErr.GetKind() != KindCryptoFailure {
		t.Errorf("expected kind %v, got %v", KindCryptoFailure, wrappedErr.GetKind())
	}

	// Existing *Error should come back unchanged
	existingErr := New(KindMalformedInput, "bad pem block")
	sameErr := FromError(existingErr)

	if existingErr != sameErr {
		t.Error("FromError should return same instance for *Error")
	}

	t.Logf("From standard error: %s", wrappedErr.Error())
}

func TestKindOf(t *testing.T) {
	if KindOf(nil) != KindUnknown {
		t.Error("KindOf(nil) should be KindUnknown")
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("KindOf(plain error) should be KindUnknown")
	}

	err := Wrap(errors.New("inner"), KindMalformedInput, "outer")
	if KindOf(err) != KindMalformedInput {
		t.Errorf("expected malformed_input, got %v", KindOf(err))
	}
}

func TestPredicates(t *testing.T) {
	if !IsInvalidRequest(InvalidRequest("x")) {
		t.Error("IsInvalidRequest failed")
	}
	if !IsMalformedInput(MalformedInput("x")) {
		t.Error("IsMalformedInput failed")
	}
	if !IsUnsupported(Unsupported("x")) {
		t.Error("IsUnsupported failed")
	}
	if !IsCryptoFailure(CryptoFailure("x")) {
		t.Error("IsCryptoFailure failed")
	}
	if IsCryptoFailure(Unsupported("x")) {
		t.Error("kind predicates should not cross-match")
	}
}

func BenchmarkNewError(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(KindCryptoFailure, "decryption failed")
	}
}

func BenchmarkErrorString(b *testing.B) {
	err := New(KindCryptoFailure, "decryption failed").
		WithMetadata(map[string]string{"mode": "gcm", "keybits": "256"}).
		WithCause(errors.New("cipher: message authentication failed"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

func TestNewWithMetadata(t *testing.T) {
	metadata := map[string]string{"family": "sm2", "container": "pkcs1"}
	err := NewWithMetadata(KindUnsupported, metadata, "container not supported for family")

	if err.GetKind() != KindUnsupported {
		t.Errorf("expected kind %v, got %v", KindUnsupported, err.GetKind())
	}

	resultMetadata := err.GetMetadata()
	if resultMetadata["family"] != "sm2" || resultMetadata["container"] != "pkcs1" {
		t.Errorf("metadata not set correctly: %v", resultMetadata)
	}

	t.Logf("Error with initial metadata: %s", err.Error())
}
