package ecies

import (
	"github.com/quorlin/cryptokit/crypto/digest"
	"github.com/quorlin/cryptokit/crypto/kdf"
)

// Options configure the envelope key derivation. Both sides of an exchange
// must use the same options.
type Options struct {
	kdf    kdf.Kind
	digest digest.Kind
	salt   []byte
	info   []byte
	aad    []byte
}

func newOptions(opts ...func(*Options)) *Options {
	opt := &Options{
		kdf:    kdf.PBKDF2,
		digest: digest.SHA512,
	}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithKDF selects the derivation function expanding the shared secret.
func WithKDF(kind kdf.Kind) func(*Options) {
	return func(o *Options) {
		o.kdf = kind
	}
}

// WithDigest selects the hash parameterizing the KDF.
func WithDigest(kind digest.Kind) func(*Options) {
	return func(o *Options) {
		o.digest = kind
	}
}

// WithSalt overrides the default derivation salt.
func WithSalt(salt []byte) func(*Options) {
	return func(o *Options) {
		o.salt = salt
	}
}

// WithInfo binds context information into the derivation.
func WithInfo(info []byte) func(*Options) {
	return func(o *Options) {
		o.info = info
	}
}

// WithAAD authenticates additional data alongside the payload. The data is
// not part of the envelope and must be presented again on decryption.
func WithAAD(aad []byte) func(*Options) {
	return func(o *Options) {
		o.aad = aad
	}
}
