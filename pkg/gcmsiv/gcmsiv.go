// Package gcmsiv implements AES-GCM-SIV (RFC 8452), a nonce-misuse-resistant
// authenticated encryption with associated data (AEAD) cipher.
//
// Unlike classical AES-GCM, encryption is deterministic in (key, nonce,
// associated data, plaintext): accidentally reusing a nonce only reveals
// whether two messages were identical, rather than breaking confidentiality
// and integrity outright. The construction derives fresh message-
// authentication and message-encryption subkeys from the long-term
// key-generating key for every nonce, computes a synthetic IV (the tag) with
// POLYVAL over the associated data and plaintext, and masks the message with
// a 32-bit little-endian counter mode keyed by the derived encryption key.
//
// The AEAD type implements crypto/cipher.AEAD. Following that interface's
// convention, Seal panics on caller misuse (wrong nonce length, input beyond
// the RFC 8452 bounds) while Open returns a single opaque error for every
// rejected ciphertext. SealInPlace and OpenInPlace operate on caller-owned
// buffers with a detached tag and report misuse as errors instead.
//
// # Security Properties
//
//   - Nonce misuse resistance: reuse degrades to deterministic encryption
//   - Tag verification in constant time via crypto/subtle
//   - Failed in-place decryption scrubs the buffer back to ciphertext so
//     unauthenticated plaintext is never exposed
//   - Derived subkeys and scratch blocks are zeroized after every call
//
// # References
//
//   - RFC 8452: AES-GCM-SIV: Nonce Misuse-Resistant Authenticated Encryption
package gcmsiv

import (
	"github.com/03kalven/aeads-go/internal/constants"
	qerrors "github.com/03kalven/aeads-go/internal/errors"
	"github.com/03kalven/aeads-go/pkg/crypto"
)

// AEAD is an AES-GCM-SIV cipher holding only the long-term key-generating
// key. It is immutable after construction and safe for concurrent use; all
// per-call state lives in a private session.
type AEAD struct {
	// Key-generating key, owned copy (16 or 32 bytes)
	key []byte
}

// New creates an AES-GCM-SIV AEAD, selecting the AES-128 or AES-256 variant
// from the key length (16 or 32 bytes).
func New(key []byte) (*AEAD, error) {
	switch len(key) {
	case constants.AES128KeySize, constants.AES256KeySize:
	default:
		return nil, qerrors.ErrInvalidKeySize
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &AEAD{key: k}, nil
}

// New128 creates an AES-128-GCM-SIV AEAD. The key must be exactly 16 bytes.
func New128(key []byte) (*AEAD, error) {
	if len(key) != constants.AES128KeySize {
		return nil, qerrors.ErrInvalidKeySize
	}
	return New(key)
}

// New256 creates an AES-256-GCM-SIV AEAD. The key must be exactly 32 bytes.
func New256(key []byte) (*AEAD, error) {
	if len(key) != constants.AES256KeySize {
		return nil, qerrors.ErrInvalidKeySize
	}
	return New(key)
}

// NonceSize returns the required nonce size in bytes.
func (a *AEAD) NonceSize() int { return constants.NonceSize }

// Overhead returns the difference between ciphertext and plaintext lengths.
func (a *AEAD) Overhead() int { return constants.TagSize }

// KeySize returns the key-generating-key size in bytes (16 or 32).
func (a *AEAD) KeySize() int { return len(a.key) }

// Seal encrypts and authenticates plaintext along with additionalData and
// appends ciphertext || tag to dst, returning the updated slice.
//
// Panics if the nonce is not 12 bytes or if plaintext or additionalData
// exceed the RFC 8452 bounds, matching crypto/cipher.AEAD conventions.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != constants.NonceSize {
		panic("gcmsiv: incorrect nonce length given to GCM-SIV")
	}
	if uint64(len(plaintext)) > constants.PMax || uint64(len(additionalData)) > constants.AMax {
		panic("gcmsiv: message too large for GCM-SIV")
	}

	ret, out := sliceForAppend(dst, len(plaintext)+constants.TagSize)
	copy(out, plaintext)

	s := a.newSession(nonce)
	defer s.destroy()

	tag := s.seal(out[:len(plaintext)], additionalData)
	copy(out[len(plaintext):], tag[:])
	return ret
}

// Open authenticates and decrypts ciphertext (which must carry a trailing
// 16-byte tag) together with additionalData, appending the plaintext to dst.
//
// Every rejection path — short input, input beyond the RFC 8452 bounds, tag
// mismatch — returns the same opaque error and reveals no plaintext.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != constants.NonceSize {
		return nil, qerrors.ErrInvalidNonce
	}
	if len(ciphertext) < constants.TagSize {
		return nil, qerrors.ErrAuthenticationFailed
	}
	if uint64(len(ciphertext)) > constants.CMax || uint64(len(additionalData)) > constants.AMax {
		return nil, qerrors.ErrAuthenticationFailed
	}

	tagStart := len(ciphertext) - constants.TagSize
	var tag [constants.TagSize]byte
	copy(tag[:], ciphertext[tagStart:])

	ret, out := sliceForAppend(dst, tagStart)
	copy(out, ciphertext[:tagStart])

	s := a.newSession(nonce)
	defer s.destroy()

	if err := s.open(out, tag, additionalData); err != nil {
		crypto.Zeroize(out)
		return nil, err
	}
	return ret, nil
}

// SealInPlace encrypts buffer in place and returns the 16-byte tag.
// The caller keeps ownership of buffer; nothing is appended.
func (a *AEAD) SealInPlace(nonce, buffer, additionalData []byte) ([]byte, error) {
	if len(nonce) != constants.NonceSize {
		return nil, qerrors.ErrInvalidNonce
	}
	if uint64(len(buffer)) > constants.PMax || uint64(len(additionalData)) > constants.AMax {
		return nil, qerrors.ErrMessageTooLarge
	}

	s := a.newSession(nonce)
	defer s.destroy()

	tag := s.seal(buffer, additionalData)
	return tag[:], nil
}

// OpenInPlace authenticates buffer (ciphertext without the tag) against the
// detached tag and decrypts it in place. On failure the buffer is restored
// to its pre-call ciphertext contents before the error is returned, so an
// unauthenticated plaintext is never observable.
func (a *AEAD) OpenInPlace(nonce, buffer, tag, additionalData []byte) error {
	if len(nonce) != constants.NonceSize {
		return qerrors.ErrInvalidNonce
	}
	if len(tag) != constants.TagSize {
		return qerrors.ErrAuthenticationFailed
	}
	if uint64(len(buffer)) > constants.PMax || uint64(len(additionalData)) > constants.AMax {
		return qerrors.ErrAuthenticationFailed
	}

	var t [constants.TagSize]byte
	copy(t[:], tag)

	s := a.newSession(nonce)
	defer s.destroy()

	return s.open(buffer, t, additionalData)
}

// sliceForAppend extends dst by n bytes and returns both the full slice and
// the freshly appended portion.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
