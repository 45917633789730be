package bytesutil

import (
	"bytes"
	"testing"
)

func TestZeroPad(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		length int
		want   []byte
	}{
		{"shorter", []byte{0x01, 0x02}, 4, []byte{0x00, 0x00, 0x01, 0x02}},
		{"exact", []byte{0x01, 0x02}, 2, []byte{0x01, 0x02}},
		{"longer", []byte{0x01, 0x02, 0x03}, 2, []byte{0x01, 0x02}},
		{"empty", nil, 3, []byte{0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ZeroPad(tt.input, tt.length)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ZeroPad(%v, %d) = %v, want %v", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestZeroize(t *testing.T) {
	secret := []byte{0xde, 0xad, 0xbe, 0xef}
	Zeroize(secret)
	for i, b := range secret {
		if b != 0 {
			t.Errorf("byte %d not zeroized: %#x", i, b)
		}
	}
}

func TestConcat(t *testing.T) {
	got := Concat([]byte{0x01}, nil, []byte{0x02, 0x03})
	want := []byte{0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Errorf("Concat = %v, want %v", got, want)
	}
}
