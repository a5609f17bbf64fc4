package aead_test

import (
	"bytes"
	"testing"

	"github.com/03kalven/aeads-go/internal/constants"
	qerrors "github.com/03kalven/aeads-go/internal/errors"
	"github.com/03kalven/aeads-go/pkg/aead"
	"github.com/03kalven/aeads-go/pkg/crypto"
)

var allSuites = []constants.CipherSuite{
	constants.CipherSuiteAES128GCMSIV,
	constants.CipherSuiteAES256GCMSIV,
	constants.CipherSuiteChaCha20Poly1305,
	constants.CipherSuiteAscon128a,
}

// availableSuites skips the non-FIPS suites when built with the fips tag.
func availableSuites() []constants.CipherSuite {
	if !crypto.FIPSMode() {
		return allSuites
	}
	var out []constants.CipherSuite
	for _, s := range allSuites {
		if s.IsFIPSApproved() {
			out = append(out, s)
		}
	}
	return out
}

func newAEAD(t *testing.T, suite constants.CipherSuite) *aead.AEAD {
	t.Helper()
	key, err := crypto.SecureRandomBytes(suite.KeySize())
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	a, err := aead.New(suite, key)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", suite, err)
	}
	return a
}

func TestSealOpenRoundTrip(t *testing.T) {
	for _, suite := range availableSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			a := newAEAD(t, suite)
			plaintext := []byte("round trip message")
			additionalData := []byte("context")

			ciphertext, err := a.Seal(plaintext, additionalData)
			if err != nil {
				t.Fatalf("Seal failed: %v", err)
			}
			if len(ciphertext) != len(plaintext)+a.Overhead() {
				t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext)+a.Overhead())
			}

			recovered, err := a.Open(ciphertext, additionalData)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if !bytes.Equal(recovered, plaintext) {
				t.Fatalf("Open = %q, want %q", recovered, plaintext)
			}
		})
	}
}

func TestOpenRejectsTamper(t *testing.T) {
	for _, suite := range availableSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			a := newAEAD(t, suite)
			ciphertext, err := a.Seal([]byte("payload"), nil)
			if err != nil {
				t.Fatalf("Seal failed: %v", err)
			}

			ciphertext[len(ciphertext)-1] ^= 0x01
			if _, err := a.Open(ciphertext, nil); !qerrors.Is(err, qerrors.ErrAuthenticationFailed) {
				t.Fatalf("got %v, want ErrAuthenticationFailed", err)
			}
		})
	}
}

func TestOpenRejectsWrongAAD(t *testing.T) {
	for _, suite := range availableSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			a := newAEAD(t, suite)
			ciphertext, err := a.Seal([]byte("payload"), []byte{0x01})
			if err != nil {
				t.Fatalf("Seal failed: %v", err)
			}
			if _, err := a.Open(ciphertext, []byte{0x02}); !qerrors.Is(err, qerrors.ErrAuthenticationFailed) {
				t.Fatalf("got %v, want ErrAuthenticationFailed", err)
			}
		})
	}
}

func TestSealWithNonceDeterministicForSIV(t *testing.T) {
	a := newAEAD(t, constants.CipherSuiteAES256GCMSIV)
	nonce := make([]byte, a.NonceSize())

	c1, err := a.SealWithNonce(nonce, []byte("msg"), nil)
	if err != nil {
		t.Fatalf("SealWithNonce failed: %v", err)
	}
	c2, err := a.SealWithNonce(nonce, []byte("msg"), nil)
	if err != nil {
		t.Fatalf("SealWithNonce failed: %v", err)
	}
	if !bytes.Equal(c1, c2) {
		t.Fatal("GCM-SIV SealWithNonce is not deterministic")
	}

	pt, err := a.OpenWithNonce(nonce, c1, nil)
	if err != nil || !bytes.Equal(pt, []byte("msg")) {
		t.Fatalf("OpenWithNonce round trip failed: %v", err)
	}
}

func TestSealWithNonceRejectsBadNonce(t *testing.T) {
	a := newAEAD(t, constants.CipherSuiteAES128GCMSIV)
	if _, err := a.SealWithNonce(make([]byte, 11), []byte("x"), nil); !qerrors.Is(err, qerrors.ErrInvalidNonce) {
		t.Fatalf("got %v, want ErrInvalidNonce", err)
	}
}

func TestNewRejectsWrongKeySize(t *testing.T) {
	for _, suite := range availableSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			key := make([]byte, suite.KeySize()+1)
			if _, err := aead.New(suite, key); !qerrors.Is(err, qerrors.ErrInvalidKeySize) {
				t.Fatalf("got %v, want ErrInvalidKeySize", err)
			}
		})
	}
}

func TestNewRejectsUnknownSuite(t *testing.T) {
	if _, err := aead.New(constants.CipherSuite(0xFFFF), make([]byte, 32)); !qerrors.Is(err, qerrors.ErrUnsupportedCipherSuite) {
		t.Fatalf("got %v, want ErrUnsupportedCipherSuite", err)
	}
}

func TestFIPSGating(t *testing.T) {
	if !crypto.FIPSMode() {
		t.Skip("binary not built with the fips tag")
	}
	key := make([]byte, constants.ChaCha20Poly1305KeySize)
	if _, err := aead.New(constants.CipherSuiteChaCha20Poly1305, key); !qerrors.Is(err, qerrors.ErrUnsupportedCipherSuite) {
		t.Fatalf("got %v, want ErrUnsupportedCipherSuite in FIPS mode", err)
	}
}

func TestOpenRejectsShortInput(t *testing.T) {
	for _, suite := range availableSuites() {
		t.Run(suite.String(), func(t *testing.T) {
			a := newAEAD(t, suite)
			for n := 0; n < a.Overhead(); n++ {
				if _, err := a.Open(make([]byte, n), nil); !qerrors.Is(err, qerrors.ErrAuthenticationFailed) {
					t.Fatalf("%d bytes: got %v, want ErrAuthenticationFailed", n, err)
				}
			}
		})
	}
}

func TestSealPooled(t *testing.T) {
	a := newAEAD(t, constants.CipherSuiteAES128GCMSIV)
	plaintext := []byte("pooled payload")

	ciphertext, err := a.SealPooled(plaintext, nil)
	if err != nil {
		t.Fatalf("SealPooled failed: %v", err)
	}

	recovered, err := a.Open(ciphertext, nil)
	if err != nil || !bytes.Equal(recovered, plaintext) {
		t.Fatalf("round trip failed: %v", err)
	}
	crypto.PutBuffer(ciphertext)
}

func TestDerivedKeysPerSuite(t *testing.T) {
	secret := []byte("master secret material")
	seen := make(map[string]constants.CipherSuite)

	for _, suite := range availableSuites() {
		key, err := crypto.DeriveAEADKey(suite, secret)
		if err != nil {
			t.Fatalf("DeriveAEADKey(%v) failed: %v", suite, err)
		}
		if len(key) != suite.KeySize() {
			t.Fatalf("derived key size = %d, want %d", len(key), suite.KeySize())
		}
		if prev, dup := seen[string(key)]; dup {
			t.Fatalf("suites %v and %v derived identical keys", prev, suite)
		}
		seen[string(key)] = suite

		if _, err := aead.New(suite, key); err != nil {
			t.Fatalf("New with derived key failed: %v", err)
		}
	}
}
