package keys

import (
	"encoding/asn1"

	"crypto/x509/pkix"

	"github.com/quorlin/cryptokit/internal/bytesutil"
)

// oidPublicKeyEC is id-ecPublicKey from RFC 5480, shared by every
// Weierstrass curve; the curve itself rides in the algorithm parameters.
var oidPublicKeyEC = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

// ecPrivateKey is the SEC1 ECPrivateKey structure (RFC 5915).
type ecPrivateKey struct {
	Version       int
	PrivateKey    []byte
	NamedCurveOID asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey     asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// pkcs8 is the PKCS#8 PrivateKeyInfo structure (RFC 5208).
type pkcs8 struct {
	Version    int
	Algo       pkix.AlgorithmIdentifier
	PrivateKey []byte
}

// publicKeyInfo is the SPKI SubjectPublicKeyInfo structure (RFC 5280).
type publicKeyInfo struct {
	Algo      pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

// marshalECSEC1 encodes a private scalar as SEC1 ECPrivateKey. The curve OID
// is included at the top level only when the structure stands alone; inside
// PKCS#8 the OID lives in the outer algorithm parameters (matching the
// crypto/x509 convention).
func marshalECSEC1(cp *curveParams, d, pub []byte, includeOID bool) ([]byte, error) {
	ec := ecPrivateKey{
		Version:    1,
		PrivateKey: bytesutil.ZeroPad(d, cp.size),
		PublicKey:  asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	}
	if includeOID {
		ec.NamedCurveOID = cp.oid
	}

	der, err := asn1.Marshal(ec)
	if err != nil {
		return nil, ErrMalformedKey.WithCause(err)
	}
	return der, nil
}

// parseECSEC1 decodes a SEC1 ECPrivateKey, validates the scalar against the
// curve and rederives the public point.
func parseECSEC1(cp *curveParams, der []byte) (d, pub []byte, err error) {
	var ec ecPrivateKey
	if rest, err := asn1.Unmarshal(der, &ec); err != nil || len(rest) != 0 {
		return nil, nil, ErrMalformedKey.WithCause(err)
	}
	if ec.Version != 1 {
		return nil, nil, ErrMalformedKey
	}
	if len(ec.NamedCurveOID) > 0 && !ec.NamedCurveOID.Equal(cp.oid) {
		return nil, nil, ErrCurveMismatch
	}

	// Shorter octet strings get left-padded; longer ones are malformed DER,
	// not a scalar to truncate.
	if len(ec.PrivateKey) > cp.size {
		return nil, nil, ErrMalformedKey
	}
	d = bytesutil.ZeroPad(ec.PrivateKey, cp.size)
	pub, err = cp.derive(d)
	if err != nil {
		return nil, nil, err
	}
	return d, pub, nil
}

// marshalECPKCS8 wraps a SEC1 key (without its inner OID) in PKCS#8.
func marshalECPKCS8(cp *curveParams, d, pub []byte) ([]byte, error) {
	inner, err := marshalECSEC1(cp, d, pub, false)
	if err != nil {
		return nil, err
	}

	params, err := asn1.Marshal(cp.oid)
	if err != nil {
		return nil, ErrMalformedKey.WithCause(err)
	}

	der, err := asn1.Marshal(pkcs8{
		Version: 0,
		Algo: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyEC,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		PrivateKey: inner,
	})
	if err != nil {
		return nil, ErrMalformedKey.WithCause(err)
	}
	return der, nil
}

// parseECPKCS8 unwraps PKCS#8, verifies both the algorithm and curve OIDs
// and decodes the inner SEC1 structure.
func parseECPKCS8(cp *curveParams, der []byte) (d, pub []byte, err error) {
	var info pkcs8
	if rest, err := asn1.Unmarshal(der, &info); err != nil || len(rest) != 0 {
		return nil, nil, ErrMalformedKey.WithCause(err)
	}
	if !info.Algo.Algorithm.Equal(oidPublicKeyEC) {
		return nil, nil, ErrKeyTypeMismatch
	}

	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(info.Algo.Parameters.FullBytes, &oid); err != nil {
		return nil, nil, ErrMalformedKey.WithCause(err)
	}
	if !oid.Equal(cp.oid) {
		return nil, nil, ErrCurveMismatch
	}

	return parseECSEC1(cp, info.PrivateKey)
}

// marshalECSPKI encodes an uncompressed public point as SubjectPublicKeyInfo.
func marshalECSPKI(cp *curveParams, pub []byte) ([]byte, error) {
	params, err := asn1.Marshal(cp.oid)
	if err != nil {
		return nil, ErrMalformedKey.WithCause(err)
	}

	der, err := asn1.Marshal(publicKeyInfo{
		Algo: pkix.AlgorithmIdentifier{
			Algorithm:  oidPublicKeyEC,
			Parameters: asn1.RawValue{FullBytes: params},
		},
		PublicKey: asn1.BitString{Bytes: pub, BitLength: len(pub) * 8},
	})
	if err != nil {
		return nil, ErrMalformedKey.WithCause(err)
	}
	return der, nil
}

// parseECSPKI decodes SubjectPublicKeyInfo and validates the point.
func parseECSPKI(cp *curveParams, der []byte) ([]byte, error) {
	var info publicKeyInfo
	if rest, err := asn1.Unmarshal(der, &info); err != nil || len(rest) != 0 {
		return nil, ErrMalformedKey.WithCause(err)
	}
	if !info.Algo.Algorithm.Equal(oidPublicKeyEC) {
		return nil, ErrKeyTypeMismatch
	}

	var oid asn1.ObjectIdentifier
	if _, err := asn1.Unmarshal(info.Algo.Parameters.FullBytes, &oid); err != nil {
		return nil, ErrMalformedKey.WithCause(err)
	}
	if !oid.Equal(cp.oid) {
		return nil, ErrCurveMismatch
	}

	return cp.decodePoint(info.PublicKey.RightAlign())
}
