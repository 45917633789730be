package digest

import (
	"encoding/hex"
	"testing"
)

// TestSumKnownVectors checks each algorithm against a published digest of "abc"
func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{SHA1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA384, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
		{SHA512, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{SHA3256, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{SHA3384, "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
		{SHA3512, "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sum, err := Sum(tt.kind, []byte("abc"))
			if err != nil {
				t.Fatalf("Sum failed: %v", err)
			}
			if got := hex.EncodeToString(sum); got != tt.want {
				t.Errorf("Sum(%s) = %s, want %s", tt.kind, got, tt.want)
			}
		})
	}
}

func TestSize(t *testing.T) {
	sizes := map[Kind]int{
		SHA1:    20,
		SHA256:  32,
		SHA384:  48,
		SHA512:  64,
		SHA3256: 32,
		SHA3384: 48,
		SHA3512: 64,
	}

	for kind, want := range sizes {
		got, err := Size(kind)
		if err != nil {
			t.Fatalf("Size(%s) failed: %v", kind, err)
		}
		if got != want {
			t.Errorf("Size(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestUnknownDigest(t *testing.T) {
	if _, err := New(Kind("md5")); err == nil {
		t.Error("expected error for unknown digest")
	}
	if _, err := Sum(Kind(""), []byte("x")); err == nil {
		t.Error("expected error for empty selector")
	}
}

func TestKindsCoversNew(t *testing.T) {
	for _, k := range Kinds() {
		if _, err := New(k); err != nil {
			t.Errorf("Kinds() lists %s but New rejects it: %v", k, err)
		}
	}
}
