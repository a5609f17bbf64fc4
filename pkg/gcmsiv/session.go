// session.go holds the per-call cipher session: subkey derivation, the
// POLYVAL-driven tag computation and the 32-bit little-endian counter mode.
//
// Each Seal or Open constructs exactly one session and discards it
// afterwards; nothing here is shared between calls.

package gcmsiv

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"

	"github.com/03kalven/aeads-go/internal/constants"
	qerrors "github.com/03kalven/aeads-go/internal/errors"
	"github.com/03kalven/aeads-go/internal/polyval"
	"github.com/03kalven/aeads-go/pkg/crypto"
)

// session owns the per-nonce derived keys. It services exactly one seal or
// one open.
type session struct {
	// enc is AES keyed with the derived message-encryption subkey
	enc cipher.Block

	// pv is POLYVAL keyed with the derived message-authentication subkey
	pv *polyval.Hash

	// nonce copy, XORed into the tag and bound into subkey derivation
	nonce [constants.NonceSize]byte

	// derived key material, retained only so destroy can wipe it
	macKey [constants.MACKeySize]byte
	encKey [constants.AES256KeySize]byte
	encLen int
}

// newSession derives the per-nonce subkeys from the key-generating key.
//
// From RFC 8452 Section 4: the subkeys are generated by encrypting a series
// of blocks holding a 32-bit little-endian counter followed by the nonce,
// keeping only the first half of each ciphertext. Counters 0..1 produce the
// 128-bit MAC subkey; counters 2..3 (AES-128) or 2..5 (AES-256) produce the
// encryption subkey.
func (a *AEAD) newSession(nonce []byte) *session {
	// Key length was validated at construction, so NewCipher cannot fail.
	kgk, err := aes.NewCipher(a.key)
	if err != nil {
		panic("gcmsiv: " + err.Error())
	}

	s := &session{encLen: len(a.key)}
	copy(s.nonce[:], nonce)

	var block [constants.BlockSize]byte
	counter := uint32(0)
	for _, derivedKey := range [][]byte{s.macKey[:], s.encKey[:s.encLen]} {
		for off := 0; off < len(derivedKey); off += constants.DeriveChunkSize {
			binary.LittleEndian.PutUint32(block[:4], counter)
			copy(block[4:], s.nonce[:])

			kgk.Encrypt(block[:], block[:])
			copy(derivedKey[off:off+constants.DeriveChunkSize], block[:constants.DeriveChunkSize])

			counter++
		}
	}
	crypto.Zeroize(block[:])

	enc, err := aes.NewCipher(s.encKey[:s.encLen])
	if err != nil {
		panic("gcmsiv: " + err.Error())
	}
	s.enc = enc
	s.pv = polyval.New(s.macKey[:])
	return s
}

// destroy wipes the derived key material. The expanded AES key schedule
// inside cipher.Block is owned by the runtime and cannot be reached.
func (s *session) destroy() {
	crypto.ZeroizeMultiple(s.macKey[:], s.encKey[:])
	s.pv.Zeroize()
}

// seal authenticates buffer and additionalData, then encrypts buffer in
// place, returning the tag. Size limits are the caller's responsibility.
func (s *session) seal(buffer, additionalData []byte) [constants.TagSize]byte {
	tag := s.computeTag(buffer, additionalData)
	s.ctr32le(tag, buffer)
	return tag
}

// open decrypts buffer in place and verifies it against tag. On mismatch the
// counter-mode pass is re-applied so the buffer holds ciphertext again, and
// the single opaque authentication error is returned.
func (s *session) open(buffer []byte, tag [constants.TagSize]byte, additionalData []byte) error {
	s.ctr32le(tag, buffer)
	expected := s.computeTag(buffer, additionalData)

	if subtle.ConstantTimeCompare(expected[:], tag[:]) == 1 {
		return nil
	}

	// Scrub: the caller must not observe unauthenticated plaintext.
	s.ctr32le(tag, buffer)
	crypto.Zeroize(expected[:])
	return qerrors.ErrAuthenticationFailed
}

// computeTag computes the synthetic IV over the plaintext and associated
// data (RFC 8452 Section 5): POLYVAL of the zero-padded associated data, the
// zero-padded message and a length block of the two bit-lengths as 64-bit
// little-endian integers, then the nonce is XORed into the first 12 bytes,
// the top bit of the last byte is cleared to distinguish the tag from
// counter blocks, and the result is encrypted with the message-encryption key.
func (s *session) computeTag(buffer, additionalData []byte) [constants.TagSize]byte {
	s.pv.UpdatePadded(additionalData)
	s.pv.UpdatePadded(buffer)

	var lengthBlock [constants.BlockSize]byte
	binary.LittleEndian.PutUint64(lengthBlock[:8], uint64(len(additionalData))*8)
	binary.LittleEndian.PutUint64(lengthBlock[8:], uint64(len(buffer))*8)
	s.pv.UpdateBlock(&lengthBlock)

	tag := s.pv.FinalizeReset()

	for i := 0; i < constants.NonceSize; i++ {
		tag[i] ^= s.nonce[i]
	}
	tag[15] &= 0x7f

	s.enc.Encrypt(tag[:], tag[:])
	return tag
}

// ctr32le applies counter mode with a 32-bit little-endian counter in the
// first 4 bytes of the block, wrapping on overflow. The top bit of the last
// byte is forced to 1, the complement of the bit cleared during tag
// computation. Encryption and decryption are the same transform.
func (s *session) ctr32le(counterBlock [constants.BlockSize]byte, buffer []byte) {
	counterBlock[15] |= 0x80

	var keystream [constants.BlockSize]byte
	for len(buffer) > 0 {
		s.enc.Encrypt(keystream[:], counterBlock[:])

		counter := binary.LittleEndian.Uint32(counterBlock[:4]) + 1
		binary.LittleEndian.PutUint32(counterBlock[:4], counter)

		n := len(buffer)
		if n > constants.BlockSize {
			n = constants.BlockSize
		}
		for i := 0; i < n; i++ {
			buffer[i] ^= keystream[i]
		}
		buffer = buffer[n:]
	}
	crypto.Zeroize(keystream[:])
}
