// Package aead is the high-level entry point of the aeads-go collection:
// a cipher-suite switch over the library's authenticated encryption
// implementations.
//
// Supported suites:
//   - AES-128-GCM-SIV / AES-256-GCM-SIV: nonce-misuse-resistant (RFC 8452),
//     implemented by pkg/gcmsiv
//   - ChaCha20-Poly1305: high software performance (RFC 8439)
//   - Ascon-128a: lightweight cipher for constrained environments
//
// Seal prepends a fresh random nonce to its output. For the GCM-SIV suites a
// random nonce is doubly safe because even a collision only degrades to
// deterministic encryption; for the other suites it is the standard
// random-nonce regime and callers must rotate keys well before 2^32
// messages.
package aead

import (
	"crypto/cipher"

	"github.com/cloudflare/circl/cipher/ascon"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/03kalven/aeads-go/internal/constants"
	qerrors "github.com/03kalven/aeads-go/internal/errors"
	"github.com/03kalven/aeads-go/pkg/crypto"
	"github.com/03kalven/aeads-go/pkg/gcmsiv"
)

// CipherSuite identifies one of the supported AEAD constructions.
// It aliases the internal type so callers outside the module can name it.
type CipherSuite = constants.CipherSuite

// Re-exported suite identifiers.
const (
	AES128GCMSIV     = constants.CipherSuiteAES128GCMSIV
	AES256GCMSIV     = constants.CipherSuiteAES256GCMSIV
	ChaCha20Poly1305 = constants.CipherSuiteChaCha20Poly1305
	Ascon128a        = constants.CipherSuiteAscon128a
)

// AEAD represents an authenticated encryption cipher for one suite.
// It is immutable after construction and safe for concurrent use.
type AEAD struct {
	cipher cipher.AEAD
	suite  constants.CipherSuite
}

// New creates an AEAD cipher for the given suite and key.
//
// The key must be exactly suite.KeySize() bytes. In FIPS builds only the
// AES-based suites construct; the others return ErrUnsupportedCipherSuite.
func New(suite constants.CipherSuite, key []byte) (*AEAD, error) {
	if !suite.IsSupported() {
		return nil, qerrors.ErrUnsupportedCipherSuite
	}
	if crypto.FIPSMode() && !suite.IsFIPSApproved() {
		return nil, qerrors.ErrUnsupportedCipherSuite
	}
	if len(key) != suite.KeySize() {
		return nil, qerrors.ErrInvalidKeySize
	}

	var aeadCipher cipher.AEAD
	var err error

	switch suite {
	case constants.CipherSuiteAES128GCMSIV:
		aeadCipher, err = gcmsiv.New128(key)

	case constants.CipherSuiteAES256GCMSIV:
		aeadCipher, err = gcmsiv.New256(key)

	case constants.CipherSuiteChaCha20Poly1305:
		aeadCipher, err = chacha20poly1305.New(key)

	case constants.CipherSuiteAscon128a:
		aeadCipher, err = ascon.New(key, ascon.Ascon128a)

	default:
		return nil, qerrors.ErrUnsupportedCipherSuite
	}

	if err != nil {
		return nil, qerrors.NewCryptoError("aead.New", err)
	}

	return &AEAD{
		cipher: aeadCipher,
		suite:  suite,
	}, nil
}

// Seal encrypts and authenticates plaintext, returning
// nonce || ciphertext || tag with a fresh random nonce.
func (a *AEAD) Seal(plaintext, additionalData []byte) ([]byte, error) {
	if err := a.checkSizes(plaintext, additionalData); err != nil {
		return nil, err
	}

	nonceSize := a.cipher.NonceSize()
	out := make([]byte, nonceSize+len(plaintext)+a.cipher.Overhead())
	if err := crypto.SecureRandom(out[:nonceSize]); err != nil {
		return nil, err
	}

	a.cipher.Seal(out[nonceSize:nonceSize], out[:nonceSize], plaintext, additionalData)
	return out, nil
}

// SealPooled encrypts like Seal but into a buffer from the global pool.
// The caller must hand the returned slice back via crypto.PutBuffer when
// done; this avoids per-message allocations in high-throughput paths.
func (a *AEAD) SealPooled(plaintext, additionalData []byte) ([]byte, error) {
	if err := a.checkSizes(plaintext, additionalData); err != nil {
		return nil, err
	}

	nonceSize := a.cipher.NonceSize()
	out := crypto.GetBuffer(nonceSize + len(plaintext) + a.cipher.Overhead())
	if err := crypto.SecureRandom(out[:nonceSize]); err != nil {
		crypto.PutBuffer(out)
		return nil, err
	}

	a.cipher.Seal(out[nonceSize:nonceSize], out[:nonceSize], plaintext, additionalData)
	return out, nil
}

// SealWithNonce encrypts using an explicit nonce, returning
// ciphertext || tag without the nonce.
//
// The caller is responsible for the nonce policy. Under the GCM-SIV suites
// a repeated nonce only reveals message equality; under the other suites it
// is catastrophic.
func (a *AEAD) SealWithNonce(nonce, plaintext, additionalData []byte) ([]byte, error) {
	if len(nonce) != a.cipher.NonceSize() {
		return nil, qerrors.ErrInvalidNonce
	}
	if err := a.checkSizes(plaintext, additionalData); err != nil {
		return nil, err
	}

	return a.cipher.Seal(nil, nonce, plaintext, additionalData), nil
}

// Open decrypts and verifies a Seal output (nonce || ciphertext || tag).
// Every rejection surfaces as ErrAuthenticationFailed.
func (a *AEAD) Open(ciphertext, additionalData []byte) ([]byte, error) {
	nonceSize := a.cipher.NonceSize()
	if len(ciphertext) < nonceSize+a.cipher.Overhead() {
		return nil, qerrors.ErrAuthenticationFailed
	}

	nonce := ciphertext[:nonceSize]
	encrypted := ciphertext[nonceSize:]

	plaintext, err := a.cipher.Open(nil, nonce, encrypted, additionalData)
	if err != nil {
		return nil, qerrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// OpenWithNonce decrypts ciphertext || tag using an explicit nonce.
func (a *AEAD) OpenWithNonce(nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != a.cipher.NonceSize() {
		return nil, qerrors.ErrInvalidNonce
	}
	if len(ciphertext) < a.cipher.Overhead() {
		return nil, qerrors.ErrAuthenticationFailed
	}

	plaintext, err := a.cipher.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, qerrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// checkSizes enforces the RFC 8452 input bounds before the underlying
// cipher can panic on them. The same 2^36-byte bounds are applied to every
// suite; they are below each suite's own limits, so no underlying panic
// path is reachable.
func (a *AEAD) checkSizes(plaintext, additionalData []byte) error {
	if uint64(len(plaintext)) > constants.PMax || uint64(len(additionalData)) > constants.AMax {
		return qerrors.ErrMessageTooLarge
	}
	return nil
}

// Suite returns the cipher suite identifier.
func (a *AEAD) Suite() constants.CipherSuite {
	return a.suite
}

// Overhead returns the number of bytes added by Seal: nonce plus tag.
func (a *AEAD) Overhead() int {
	return a.cipher.NonceSize() + a.cipher.Overhead()
}

// NonceSize returns the required nonce size in bytes for the WithNonce
// variants.
func (a *AEAD) NonceSize() int {
	return a.cipher.NonceSize()
}
