package keys

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/asn1"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/emmansun/gmsm/sm2"

	"github.com/quorlin/cryptokit/internal/bytesutil"
)

// Point encoding prefixes (SEC1 §2.3.3).
const (
	uncompressedPointTag = 0x04
	compressedEvenTag    = 0x02
	compressedOddTag     = 0x03
)

// curveParams bundles everything the codec and the agreement surface need
// from one Weierstrass curve: its OID, scalar size and the scalar/point
// operations of its provider.
type curveParams struct {
	family Family
	oid    asn1.ObjectIdentifier
	size   int

	// generate returns a fresh scalar and its uncompressed public point.
	generate func() (d, pub []byte, err error)

	// derive validates the scalar and returns its uncompressed public point.
	derive func(d []byte) (pub []byte, err error)

	// decodePoint accepts a compressed or uncompressed SEC1 point and
	// returns the validated uncompressed form.
	decodePoint func(pt []byte) ([]byte, error)

	// compress converts an uncompressed point to compressed SEC1 form.
	compress func(pub []byte) ([]byte, error)

	// shared computes the ECDH shared secret (the x-coordinate, left-padded
	// to the scalar size) between the scalar and an uncompressed peer point.
	shared func(d, peer []byte) ([]byte, error)
}

var (
	oidNamedCurveP256      = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidNamedCurveP384      = asn1.ObjectIdentifier{1, 3, 132, 0, 34}
	oidNamedCurveP521      = asn1.ObjectIdentifier{1, 3, 132, 0, 35}
	oidNamedCurveSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
	oidNamedCurveSM2       = asn1.ObjectIdentifier{1, 2, 156, 10197, 1, 301}
)

var curveRegistry = map[Family]*curveParams{
	NistP256:  nistCurve(NistP256, oidNamedCurveP256, ecdh.P256(), elliptic.P256(), 32),
	NistP384:  nistCurve(NistP384, oidNamedCurveP384, ecdh.P384(), elliptic.P384(), 48),
	NistP521:  nistCurve(NistP521, oidNamedCurveP521, ecdh.P521(), elliptic.P521(), 66),
	Secp256k1: secp256k1Curve(),
	SM2:       weierstrassCurve(SM2, oidNamedCurveSM2, sm2.P256(), 32),
}

func curveFor(family Family) (*curveParams, error) {
	cp, ok := curveRegistry[family]
	if !ok {
		return nil, ErrUnknownFamily.WithMetadata(map[string]string{"family": string(family)})
	}
	return cp, nil
}

// nistCurve builds curve parameters on crypto/ecdh, keeping scalar
// multiplication constant time. The matching crypto/elliptic curve is used
// only for point compression.
func nistCurve(family Family, oid asn1.ObjectIdentifier, dh ecdh.Curve, ec elliptic.Curve, size int) *curveParams {
	return &curveParams{
		family: family,
		oid:    oid,
		size:   size,

		generate: func() (d, pub []byte, err error) {
			key, err := dh.GenerateKey(rand.Reader)
			if err != nil {
				return nil, nil, ErrGenerateFailed.WithCause(err)
			}
			return key.Bytes(), key.PublicKey().Bytes(), nil
		},

		derive: func(d []byte) ([]byte, error) {
			key, err := dh.NewPrivateKey(bytesutil.ZeroPad(d, size))
			if err != nil {
				return nil, ErrInvalidScalar.WithCause(err)
			}
			return key.PublicKey().Bytes(), nil
		},

		decodePoint: func(pt []byte) ([]byte, error) {
			switch {
			case len(pt) == 1+2*size && pt[0] == uncompressedPointTag:
				key, err := dh.NewPublicKey(pt)
				if err != nil {
					return nil, ErrInvalidPoint.WithCause(err)
				}
				return key.Bytes(), nil
			case len(pt) == 1+size && (pt[0] == compressedEvenTag || pt[0] == compressedOddTag):
				x, y := elliptic.UnmarshalCompressed(ec, pt)
				if x == nil {
					return nil, ErrInvalidPoint
				}
				return marshalPoint(x, y, size), nil
			default:
				return nil, ErrInvalidPoint
			}
		},

		compress: func(pub []byte) ([]byte, error) {
			return compressPoint(pub, size)
		},

		shared: func(d, peer []byte) ([]byte, error) {
			priv, err := dh.NewPrivateKey(bytesutil.ZeroPad(d, size))
			if err != nil {
				return nil, ErrInvalidScalar.WithCause(err)
			}
			pub, err := dh.NewPublicKey(peer)
			if err != nil {
				return nil, ErrInvalidPoint.WithCause(err)
			}
			secret, err := priv.ECDH(pub)
			if err != nil {
				return nil, ErrAgreementFailed.WithCause(err)
			}
			return secret, nil
		},
	}
}

// secp256k1Curve builds curve parameters on the decred implementation.
func secp256k1Curve() *curveParams {
	const size = 32

	parseScalar := func(d []byte) (*secp256k1.PrivateKey, error) {
		var s secp256k1.ModNScalar
		overflow := s.SetByteSlice(bytesutil.ZeroPad(d, size))
		if overflow || s.IsZero() {
			return nil, ErrInvalidScalar
		}
		return secp256k1.NewPrivateKey(&s), nil
	}

	return &curveParams{
		family: Secp256k1,
		oid:    oidNamedCurveSecp256k1,
		size:   size,

		generate: func() (d, pub []byte, err error) {
			key, err := secp256k1.GeneratePrivateKey()
			if err != nil {
				return nil, nil, ErrGenerateFailed.WithCause(err)
			}
			return key.Serialize(), key.PubKey().SerializeUncompressed(), nil
		},

		derive: func(d []byte) ([]byte, error) {
			key, err := parseScalar(d)
			if err != nil {
				return nil, err
			}
			return key.PubKey().SerializeUncompressed(), nil
		},

		decodePoint: func(pt []byte) ([]byte, error) {
			pub, err := secp256k1.ParsePubKey(pt)
			if err != nil {
				return nil, ErrInvalidPoint.WithCause(err)
			}
			return pub.SerializeUncompressed(), nil
		},

		compress: func(pub []byte) ([]byte, error) {
			key, err := secp256k1.ParsePubKey(pub)
			if err != nil {
				return nil, ErrInvalidPoint.WithCause(err)
			}
			return key.SerializeCompressed(), nil
		},

		shared: func(d, peer []byte) ([]byte, error) {
			priv, err := parseScalar(d)
			if err != nil {
				return nil, err
			}
			pub, err := secp256k1.ParsePubKey(peer)
			if err != nil {
				return nil, ErrInvalidPoint.WithCause(err)
			}
			return secp256k1.GenerateSharedSecret(priv, pub), nil
		},
	}
}

// weierstrassCurve builds curve parameters on a generic crypto/elliptic
// curve. Used for SM2, whose provider exposes its curve this way.
func weierstrassCurve(family Family, oid asn1.ObjectIdentifier, ec elliptic.Curve, size int) *curveParams {
	checkScalar := func(d []byte) error {
		k := new(big.Int).SetBytes(d)
		if k.Sign() == 0 || k.Cmp(ec.Params().N) >= 0 {
			return ErrInvalidScalar
		}
		return nil
	}

	unmarshal := func(pt []byte) (x, y *big.Int, err error) {
		switch {
		case len(pt) == 1+2*size && pt[0] == uncompressedPointTag:
			x, y = elliptic.Unmarshal(ec, pt)
		case len(pt) == 1+size && (pt[0] == compressedEvenTag || pt[0] == compressedOddTag):
			x, y = elliptic.UnmarshalCompressed(ec, pt)
		}
		if x == nil {
			return nil, nil, ErrInvalidPoint
		}
		return x, y, nil
	}

	return &curveParams{
		family: family,
		oid:    oid,
		size:   size,

		generate: func() (d, pub []byte, err error) {
			d, x, y, err := elliptic.GenerateKey(ec, rand.Reader)
			if err != nil {
				return nil, nil, ErrGenerateFailed.WithCause(err)
			}
			return bytesutil.ZeroPad(d, size), marshalPoint(x, y, size), nil
		},

		derive: func(d []byte) ([]byte, error) {
			if err := checkScalar(d); err != nil {
				return nil, err
			}
			x, y := ec.ScalarBaseMult(d)
			return marshalPoint(x, y, size), nil
		},

		decodePoint: func(pt []byte) ([]byte, error) {
			x, y, err := unmarshal(pt)
			if err != nil {
				return nil, err
			}
			return marshalPoint(x, y, size), nil
		},

		compress: func(pub []byte) ([]byte, error) {
			return compressPoint(pub, size)
		},

		shared: func(d, peer []byte) ([]byte, error) {
			if err := checkScalar(d); err != nil {
				return nil, err
			}
			x, y, err := unmarshal(peer)
			if err != nil {
				return nil, err
			}
			sx, _ := ec.ScalarMult(x, y, d)
			if sx.Sign() == 0 {
				return nil, ErrAgreementFailed
			}
			return bytesutil.ZeroPad(sx.Bytes(), size), nil
		},
	}
}

// marshalPoint encodes affine coordinates as an uncompressed SEC1 point.
func marshalPoint(x, y *big.Int, size int) []byte {
	return bytesutil.Concat(
		[]byte{uncompressedPointTag},
		bytesutil.ZeroPad(x.Bytes(), size),
		bytesutil.ZeroPad(y.Bytes(), size),
	)
}

// compressPoint converts an uncompressed SEC1 point to compressed form.
func compressPoint(pub []byte, size int) ([]byte, error) {
	if len(pub) != 1+2*size || pub[0] != uncompressedPointTag {
		return nil, ErrInvalidPoint
	}

	out := make([]byte, 1+size)
	if pub[len(pub)-1]&1 == 1 {
		out[0] = compressedOddTag
	} else {
		out[0] = compressedEvenTag
	}
	copy(out[1:], pub[1:1+size])
	return out, nil
}
