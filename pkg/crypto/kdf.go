// Package crypto implements key derivation helpers using SHAKE-256 (SHA-3 XOF).
//
// This file (kdf.go) uses SHAKE-256 (FIPS 202), an extendable-output function
// based on the Keccak sponge construction, to derive AEAD keys from
// caller-supplied secret material. Length-prefixed encoding of the domain
// separator and every input makes the derivation unambiguous.
//
// Key management proper (storage, rotation, distribution) is out of scope;
// these helpers only turn an existing secret into correctly-sized keys.
package crypto

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/03kalven/aeads-go/internal/constants"
	qerrors "github.com/03kalven/aeads-go/internal/errors"
)

// DeriveKey derives a key using SHAKE-256 with domain separation.
//
// The derivation follows the construction:
//
//	output = SHAKE-256(
//	    domain_separator_length || domain_separator ||
//	    input_length || input,
//	    output_length
//	)
//
// Length prefixes are 4-byte big-endian integers to ensure unambiguous parsing.
func DeriveKey(domain string, input []byte, outputLen int) ([]byte, error) {
	if outputLen <= 0 || outputLen > constants.KDFMaxOutput {
		return nil, qerrors.NewCryptoError("DeriveKey", qerrors.ErrInvalidKeySize)
	}

	h := sha3.NewShake256()

	domainBytes := []byte(domain)
	lenBuf := make([]byte, 4)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(domainBytes)))
	h.Write(lenBuf)
	h.Write(domainBytes)

	binary.BigEndian.PutUint32(lenBuf, uint32(len(input)))
	h.Write(lenBuf)
	h.Write(input)

	output := make([]byte, outputLen)
	_, _ = h.Read(output) // SHAKE256.Read never fails

	return output, nil
}

// DeriveKeyMultiple derives a key from multiple inputs with domain separation.
// Each input is length-prefixed, as is the input count, so no concatenation
// of distinct input lists can collide.
func DeriveKeyMultiple(domain string, inputs [][]byte, outputLen int) ([]byte, error) {
	if outputLen <= 0 || outputLen > constants.KDFMaxOutput {
		return nil, qerrors.NewCryptoError("DeriveKeyMultiple", qerrors.ErrInvalidKeySize)
	}

	h := sha3.NewShake256()
	lenBuf := make([]byte, 4)

	domainBytes := []byte(domain)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(domainBytes)))
	h.Write(lenBuf)
	h.Write(domainBytes)

	binary.BigEndian.PutUint32(lenBuf, uint32(len(inputs)))
	h.Write(lenBuf)

	for _, input := range inputs {
		binary.BigEndian.PutUint32(lenBuf, uint32(len(input)))
		h.Write(lenBuf)
		h.Write(input)
	}

	output := make([]byte, outputLen)
	_, _ = h.Read(output)

	return output, nil
}

// DeriveAEADKey derives a key of the right size for the given cipher suite
// from arbitrary secret material. The suite name participates in the
// derivation, so the same secret yields independent keys per suite.
func DeriveAEADKey(suite constants.CipherSuite, secret []byte) ([]byte, error) {
	if !suite.IsSupported() {
		return nil, qerrors.ErrUnsupportedCipherSuite
	}
	return DeriveKeyMultiple(
		constants.DomainSeparatorAEADKey,
		[][]byte{[]byte(suite.String()), secret},
		suite.KeySize(),
	)
}
