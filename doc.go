// Package aeads provides authenticated encryption with associated data
// (AEAD), centered on AES-GCM-SIV (RFC 8452), a nonce-misuse-resistant
// construction: encryption is deterministic in (key, nonce, associated data,
// plaintext), so an accidental nonce reuse only reveals whether two messages
// were identical instead of destroying confidentiality and integrity the way
// it does in classical GCM.
//
// # Quick Start
//
// For the high-level suite facade with random nonces:
//
//	import "github.com/03kalven/aeads-go/pkg/aead"
//
//	a, _ := aead.New(aead.AES256GCMSIV, key)
//	ciphertext, _ := a.Seal(plaintext, associatedData)
//	recovered, _ := a.Open(ciphertext, associatedData)
//
// For the RFC 8452 engine directly (implements crypto/cipher.AEAD):
//
//	import "github.com/03kalven/aeads-go/pkg/gcmsiv"
//
//	c, _ := gcmsiv.New256(key)
//	ciphertext := c.Seal(nil, nonce, plaintext, associatedData)
//	recovered, err := c.Open(nil, nonce, ciphertext, associatedData)
//
// # Package Structure
//
//   - pkg/aead: High-level cipher-suite facade (GCM-SIV, ChaCha20-Poly1305, Ascon-128a)
//   - pkg/gcmsiv: The AES-GCM-SIV engine with in-place and detached-tag APIs
//   - pkg/crypto: Secure randomness, zeroization, SHAKE-256 key derivation, buffer pools
//   - pkg/metrics: Structured logging, operation metrics, optional OpenTelemetry tracing
//   - internal/polyval: POLYVAL universal hash over GF(2^128) (RFC 8452 Section 3)
//   - internal/constants: RFC 8452 parameters and cipher-suite identifiers
//   - internal/errors: Sentinel error types
//
// # Security Properties
//
//   - Nonce misuse resistance for the GCM-SIV suites (at worst, equality leakage)
//   - Single opaque error for every rejected decryption
//   - Constant-time tag verification; failed in-place decryption scrubs the
//     buffer back to ciphertext
//   - Per-nonce derived subkeys zeroized after every operation
//   - RFC 8452 known-answer self-tests run at package load (POST)
//
// # Testing
//
//	go test ./...                               # All tests
//	go test -run TestKAT ./...                  # Known Answer Tests
//	go test -fuzz=FuzzOpen ./test/fuzz/         # Fuzz tests
//	go test -bench=. ./test/benchmark           # Benchmarks
//
// # References
//
//   - RFC 8452: AES-GCM-SIV: Nonce Misuse-Resistant Authenticated Encryption
//   - RFC 8439: ChaCha20 and Poly1305 for IETF Protocols
package aeads
