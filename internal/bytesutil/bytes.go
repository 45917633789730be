// Package bytesutil provides small byte-slice helpers shared by the crypto
// packages.
package bytesutil

// ZeroPad pads the byte slice to the specified length by prepending zeros.
// If the slice is already longer than or equal to the target length,
// it returns the first 'length' bytes.
func ZeroPad(b []byte, length int) []byte {
	if len(b) >= length {
		return b[:length]
	}

	result := make([]byte, length)
	copy(result[length-len(b):], b)
	return result
}

// Zeroize overwrites the slice with zeros. Used to wipe key material and
// derived secrets once they are no longer needed.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Concat joins the given slices into a single freshly allocated slice.
func Concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}

	result := make([]byte, 0, total)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}
