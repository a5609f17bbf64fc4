// Package benchmark provides throughput benchmarks across suites and sizes.
//
// Run with:
//
//	go test -bench=. -benchmem ./test/benchmark
package benchmark

import (
	"fmt"
	"testing"

	"github.com/03kalven/aeads-go/internal/constants"
	"github.com/03kalven/aeads-go/pkg/aead"
	"github.com/03kalven/aeads-go/pkg/crypto"
	"github.com/03kalven/aeads-go/pkg/gcmsiv"
)

var benchSizes = []int{64, 1024, 8192, 65536}

func benchKey(b *testing.B, n int) []byte {
	b.Helper()
	key, err := crypto.SecureRandomBytes(n)
	if err != nil {
		b.Fatal(err)
	}
	return key
}

func BenchmarkGCMSIVSeal(b *testing.B) {
	for _, keyLen := range []int{constants.AES128KeySize, constants.AES256KeySize} {
		c, err := gcmsiv.New(benchKey(b, keyLen))
		if err != nil {
			b.Fatal(err)
		}
		nonce := make([]byte, c.NonceSize())

		for _, size := range benchSizes {
			b.Run(fmt.Sprintf("aes%d/%d", keyLen*8, size), func(b *testing.B) {
				plaintext := make([]byte, size)
				dst := make([]byte, 0, size+c.Overhead())
				b.SetBytes(int64(size))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					c.Seal(dst[:0], nonce, plaintext, nil)
				}
			})
		}
	}
}

func BenchmarkGCMSIVOpen(b *testing.B) {
	c, err := gcmsiv.New(benchKey(b, constants.AES256KeySize))
	if err != nil {
		b.Fatal(err)
	}
	nonce := make([]byte, c.NonceSize())

	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			ciphertext := c.Seal(nil, nonce, make([]byte, size), nil)
			dst := make([]byte, 0, size)
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Open(dst[:0], nonce, ciphertext, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkGCMSIVSealInPlace(b *testing.B) {
	c, err := gcmsiv.New(benchKey(b, constants.AES128KeySize))
	if err != nil {
		b.Fatal(err)
	}
	nonce := make([]byte, c.NonceSize())
	buffer := make([]byte, 8192)

	b.SetBytes(int64(len(buffer)))
	for i := 0; i < b.N; i++ {
		if _, err := c.SealInPlace(nonce, buffer, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSuiteSeal(b *testing.B) {
	suites := []aead.CipherSuite{
		aead.AES128GCMSIV,
		aead.AES256GCMSIV,
		aead.ChaCha20Poly1305,
		aead.Ascon128a,
	}

	for _, suite := range suites {
		if crypto.FIPSMode() && !suite.IsFIPSApproved() {
			continue
		}
		a, err := aead.New(suite, benchKey(b, suite.KeySize()))
		if err != nil {
			b.Fatal(err)
		}
		nonce := make([]byte, a.NonceSize())
		plaintext := make([]byte, 4096)

		b.Run(suite.String(), func(b *testing.B) {
			b.SetBytes(int64(len(plaintext)))
			for i := 0; i < b.N; i++ {
				if _, err := a.SealWithNonce(nonce, plaintext, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSealPooledVsAlloc(b *testing.B) {
	a, err := aead.New(aead.AES128GCMSIV, benchKey(b, constants.AES128KeySize))
	if err != nil {
		b.Fatal(err)
	}
	plaintext := make([]byte, 1024)

	b.Run("alloc", func(b *testing.B) {
		b.SetBytes(int64(len(plaintext)))
		for i := 0; i < b.N; i++ {
			if _, err := a.Seal(plaintext, nil); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("pooled", func(b *testing.B) {
		b.SetBytes(int64(len(plaintext)))
		for i := 0; i < b.N; i++ {
			out, err := a.SealPooled(plaintext, nil)
			if err != nil {
				b.Fatal(err)
			}
			crypto.PutBuffer(out)
		}
	})
}
