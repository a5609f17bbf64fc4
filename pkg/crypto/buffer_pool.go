// Package crypto implements supporting utilities for the aeads-go library.
//
// This file (buffer_pool.go) provides buffer pooling to reduce memory
// allocations during encryption/decryption in high-throughput scenarios.
// The pool uses size classes sized for typical AEAD outputs.
package crypto

import (
	"sync"

	"github.com/03kalven/aeads-go/internal/constants"
)

// BufferPool provides pooled byte slices for cryptographic operations.
type BufferPool struct {
	// Small buffers (typical messages up to 1KB)
	small sync.Pool

	// Medium buffers (up to 16KB)
	medium sync.Pool

	// Large buffers (up to 64KB)
	large sync.Pool
}

// Buffer size class thresholds. Each class leaves room for a prepended
// nonce and a trailing tag on top of the payload.
const (
	smallBufferSize  = 1024 + constants.NonceSize + constants.TagSize
	mediumBufferSize = 16*1024 + constants.NonceSize + constants.TagSize
	largeBufferSize  = 64*1024 + constants.NonceSize + constants.TagSize
)

// globalPool is the default buffer pool instance.
var globalPool = NewBufferPool()

// NewBufferPool creates a new buffer pool.
func NewBufferPool() *BufferPool {
	return &BufferPool{
		small: sync.Pool{
			New: func() any {
				buf := make([]byte, smallBufferSize)
				return &buf
			},
		},
		medium: sync.Pool{
			New: func() any {
				buf := make([]byte, mediumBufferSize)
				return &buf
			},
		},
		large: sync.Pool{
			New: func() any {
				buf := make([]byte, largeBufferSize)
				return &buf
			},
		},
	}
}

// Get returns a buffer of at least the requested size. Requests larger than
// the biggest size class are allocated directly and will not be pooled.
func (p *BufferPool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}

	var bufPtr *[]byte

	switch {
	case size <= smallBufferSize:
		bufPtr = p.small.Get().(*[]byte)
	case size <= mediumBufferSize:
		bufPtr = p.medium.Get().(*[]byte)
	case size <= largeBufferSize:
		bufPtr = p.large.Get().(*[]byte)
	default:
		return make([]byte, size)
	}

	return (*bufPtr)[:size]
}

// Put returns a buffer to the pool. The buffer is zeroed first so no
// plaintext or key material survives in pooled memory.
func (p *BufferPool) Put(buf []byte) {
	if buf == nil {
		return
	}

	bufCap := cap(buf)
	if bufCap == 0 {
		return
	}

	buf = buf[:bufCap]
	Zeroize(buf)

	bufPtr := &buf

	switch bufCap {
	case smallBufferSize:
		p.small.Put(bufPtr)
	case mediumBufferSize:
		p.medium.Put(bufPtr)
	case largeBufferSize:
		p.large.Put(bufPtr)
		// Non-standard sizes are not returned to the pool
	}
}

// GetBuffer returns a buffer from the global pool.
func GetBuffer(size int) []byte {
	return globalPool.Get(size)
}

// PutBuffer returns a buffer to the global pool.
func PutBuffer(buf []byte) {
	globalPool.Put(buf)
}
