// Package keys implements the asymmetric key codec of the engine: generation,
// import, export, public-key derivation, transcoding and inspection of keys
// across PKCS#8, PKCS#1, SEC1 and SPKI containers in PEM or DER form.
//
// Supported families:
//   - RSA (PKCS#8 or PKCS#1 private, SPKI or PKCS#1 public)
//   - NIST P-256 / P-384 / P-521, secp256k1, SM2 (PKCS#8 or SEC1 private,
//     SPKI public)
//   - Curve25519 as Ed25519 keys (PKCS#8 private, SPKI public)
//
// NIST curves ride on crypto/ecdh for constant-time scalar operations;
// secp256k1 uses the decred implementation; SM2 uses the gmsm curve
// parameters. The SEC1/PKCS#8/SPKI containers for all five Weierstrass
// curves share one generic ASN.1 codec, since crypto/x509 rejects the
// secp256k1 and SM2 OIDs.
//
// The package also provides the key-agreement surface consumed by the ecies
// package: ephemeral generation, shared-secret computation and the wire
// encoding of exchange keys (compressed SEC1 points, or the raw Montgomery
// u-coordinate for Curve25519).
package keys

// Family identifies a key algorithm family.
type Family string

const (
	RSA        Family = "rsa"
	NistP256   Family = "nistp256"
	NistP384   Family = "nistp384"
	NistP521   Family = "nistp521"
	Secp256k1  Family = "secp256k1"
	SM2        Family = "sm2"
	Curve25519 Family = "curve25519"
)

// Container identifies an ASN.1 key container.
type Container string

const (
	PKCS8 Container = "pkcs8"
	PKCS1 Container = "pkcs1"
	SEC1  Container = "sec1"
	SPKI  Container = "spki"
)

// Format identifies the outer serialization.
type Format string

const (
	PEM Format = "pem"
	DER Format = "der"
)

// KeyInfo describes a key recognized by Inspect.
type KeyInfo struct {
	Family    Family    `json:"family"`
	Container Container `json:"container"`
	Format    Format    `json:"format"`
	Private   bool      `json:"private"`
}

// Families lists every supported key family.
func Families() []Family {
	return []Family{RSA, NistP256, NistP384, NistP521, Secp256k1, SM2, Curve25519}
}

// weierstrassFamilies is the fixed trial order used by Inspect, shared by the
// generic EC codec.
var weierstrassFamilies = []Family{NistP256, NistP384, NistP521, Secp256k1, SM2}

func checkFormat(format Format) error {
	if format != PEM && format != DER {
		return ErrUnknownFormat.WithMetadata(map[string]string{"format": string(format)})
	}
	return nil
}

// privateContainers returns the containers a family's private keys accept.
func privateContainers(family Family) ([]Container, error) {
	switch family {
	case RSA:
		return []Container{PKCS8, PKCS1}, nil
	case NistP256, NistP384, NistP521, Secp256k1, SM2:
		return []Container{PKCS8, SEC1}, nil
	case Curve25519:
		return []Container{PKCS8}, nil
	default:
		return nil, ErrUnknownFamily.WithMetadata(map[string]string{"family": string(family)})
	}
}

// publicContainers returns the containers a family's public keys accept.
func publicContainers(family Family) ([]Container, error) {
	switch family {
	case RSA:
		return []Container{SPKI, PKCS1}, nil
	case NistP256, NistP384, NistP521, Secp256k1, SM2, Curve25519:
		return []Container{SPKI}, nil
	default:
		return nil, ErrUnknownFamily.WithMetadata(map[string]string{"family": string(family)})
	}
}

func checkPrivateContainer(family Family, container Container) error {
	allowed, err := privateContainers(family)
	if err != nil {
		return err
	}
	for _, c := range allowed {
		if c == container {
			return nil
		}
	}
	return ErrUnsupportedContainer.WithMetadata(map[string]string{
		"family":    string(family),
		"container": string(container),
	})
}

func checkPublicContainer(family Family, container Container) error {
	allowed, err := publicContainers(family)
	if err != nil {
		return err
	}
	for _, c := range allowed {
		if c == container {
			return nil
		}
	}
	return ErrUnsupportedContainer.WithMetadata(map[string]string{
		"family":    string(family),
		"container": string(container),
	})
}
