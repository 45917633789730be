package keys

import (
	"encoding/pem"
	"unicode/utf8"
)

// PEM labels per RFC 7468 and the OpenSSL traditional formats.
const (
	pemLabelPKCS8  = "PRIVATE KEY"
	pemLabelPKCS1  = "RSA PRIVATE KEY"
	pemLabelSEC1   = "EC PRIVATE KEY"
	pemLabelSPKI   = "PUBLIC KEY"
	pemLabelRSAPub = "RSA PUBLIC KEY"
)

// pemLabel returns the label a container uses, for private or public keys.
func pemLabel(container Container, private bool) (string, error) {
	if private {
		switch container {
		case PKCS8:
			return pemLabelPKCS8, nil
		case PKCS1:
			return pemLabelPKCS1, nil
		case SEC1:
			return pemLabelSEC1, nil
		}
	} else {
		switch container {
		case SPKI:
			return pemLabelSPKI, nil
		case PKCS1:
			return pemLabelRSAPub, nil
		}
	}
	return "", ErrUnsupportedContainer.WithMetadata(map[string]string{"container": string(container)})
}

// encodePEM wraps DER bytes in a single PEM block.
func encodePEM(label string, der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: label, Bytes: der})
}

// decodePEM extracts the DER bytes from a PEM block, enforcing the expected
// label. Mislabeled blocks are rejected rather than reinterpreted.
func decodePEM(data []byte, wantLabel string) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidPEM
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEM
	}
	if block.Type != wantLabel {
		return nil, ErrPEMLabelMismatch.WithMetadata(map[string]string{
			"label": block.Type,
			"want":  wantLabel,
		})
	}
	return block.Bytes, nil
}
