package aes

// pad applies the selected padding scheme before block encryption.
// PKCS#7 always appends between 1 and 16 bytes; NoPadding requires the
// plaintext to already be block aligned.
func pad(padding Padding, plaintext []byte) ([]byte, error) {
	switch padding {
	case PKCS7:
		n := BlockSize - len(plaintext)%BlockSize
		out := make([]byte, len(plaintext)+n)
		copy(out, plaintext)
		for i := len(plaintext); i < len(out); i++ {
			out[i] = byte(n)
		}
		return out, nil

	case NoPadding:
		if len(plaintext)%BlockSize != 0 {
			return nil, ErrPlaintextLength
		}
		out := make([]byte, len(plaintext))
		copy(out, plaintext)
		return out, nil

	default:
		return nil, ErrUnknownPadding.WithMetadata(map[string]string{"padding": string(padding)})
	}
}

// unpad validates and strips the padding after block decryption. Every
// padding byte is checked; any inconsistency yields the generic decryption
// failure.
func unpad(padding Padding, plaintext []byte) ([]byte, error) {
	switch padding {
	case PKCS7:
		if len(plaintext) == 0 {
			return nil, ErrDecryptionFailed
		}

		n := int(plaintext[len(plaintext)-1])
		if n == 0 || n > BlockSize || n > len(plaintext) {
			return nil, ErrDecryptionFailed
		}
		for _, b := range plaintext[len(plaintext)-n:] {
			if int(b) != n {
				return nil, ErrDecryptionFailed
			}
		}
		return plaintext[:len(plaintext)-n], nil

	case NoPadding:
		return plaintext, nil

	default:
		return nil, ErrUnknownPadding.WithMetadata(map[string]string{"padding": string(padding)})
	}
}
