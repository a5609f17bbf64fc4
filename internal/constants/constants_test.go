package constants

import "testing"

func TestBounds(t *testing.T) {
	if AMax != 1<<36 || PMax != 1<<36 {
		t.Error("RFC 8452 input bounds changed")
	}
	if CMax != PMax+TagSize {
		t.Error("CMax must be PMax plus the tag size")
	}
}

func TestDerivationBlockCounts(t *testing.T) {
	// MAC subkey (16 bytes) plus encryption subkey, 8 bytes kept per block.
	if DeriveBlocksAES128 != (MACKeySize+AES128KeySize)/DeriveChunkSize {
		t.Error("AES-128 derivation block count inconsistent")
	}
	if DeriveBlocksAES256 != (MACKeySize+AES256KeySize)/DeriveChunkSize {
		t.Error("AES-256 derivation block count inconsistent")
	}
}

func TestCipherSuiteString(t *testing.T) {
	cases := map[CipherSuite]string{
		CipherSuiteAES128GCMSIV:     "AES-128-GCM-SIV",
		CipherSuiteAES256GCMSIV:     "AES-256-GCM-SIV",
		CipherSuiteChaCha20Poly1305: "ChaCha20-Poly1305",
		CipherSuiteAscon128a:        "Ascon-128a",
		CipherSuite(0x9999):         "Unknown",
	}
	for cs, want := range cases {
		if got := cs.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", cs, got, want)
		}
	}
}

func TestCipherSuiteKeySize(t *testing.T) {
	cases := map[CipherSuite]int{
		CipherSuiteAES128GCMSIV:     16,
		CipherSuiteAES256GCMSIV:     32,
		CipherSuiteChaCha20Poly1305: 32,
		CipherSuiteAscon128a:        16,
		CipherSuite(0x9999):         0,
	}
	for cs, want := range cases {
		if got := cs.KeySize(); got != want {
			t.Errorf("%v.KeySize() = %d, want %d", cs, got, want)
		}
		if cs.IsSupported() != (want != 0) {
			t.Errorf("%v.IsSupported() inconsistent with KeySize", cs)
		}
	}
}

func TestIsFIPSApproved(t *testing.T) {
	if !CipherSuiteAES128GCMSIV.IsFIPSApproved() || !CipherSuiteAES256GCMSIV.IsFIPSApproved() {
		t.Error("AES-based suites must be FIPS approved")
	}
	if CipherSuiteChaCha20Poly1305.IsFIPSApproved() || CipherSuiteAscon128a.IsFIPSApproved() {
		t.Error("non-AES suites must not be FIPS approved")
	}
}
