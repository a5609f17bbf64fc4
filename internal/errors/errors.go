// Package errors defines custom error types for the aeads-go library.
// These errors provide enough information for debugging while not leaking
// anything useful to an attacker through error distinctions.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for AEAD construction and caller misuse.
//
// These describe programming errors that are visible before any secret is
// processed, so distinguishing them leaks nothing.
var (
	// ErrInvalidKeySize indicates that a key has an incorrect size
	ErrInvalidKeySize = errors.New("aead: invalid key size")

	// ErrInvalidNonce indicates the nonce size is incorrect
	ErrInvalidNonce = errors.New("aead: invalid nonce size")

	// ErrUnsupportedCipherSuite indicates an unknown or disabled cipher suite
	ErrUnsupportedCipherSuite = errors.New("aead: unsupported cipher suite")

	// ErrMessageTooLarge indicates plaintext or associated data exceeds the
	// scheme's input bounds
	ErrMessageTooLarge = errors.New("aead: message too large")
)

// ErrAuthenticationFailed is the single opaque error returned for every
// rejected decryption: oversize input, ciphertext shorter than a tag, and
// tag mismatch all surface identically. Callers must treat any decryption
// failure as "message rejected" without further interpretation.
var ErrAuthenticationFailed = errors.New("aead: message authentication failed")

// CryptoError wraps a cryptographic error with the failing operation.
type CryptoError struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
