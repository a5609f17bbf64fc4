//go:build !fips
// +build !fips

// This file is compiled when the "fips" build tag is NOT specified.
// In standard mode, all supported cipher suites are available.

package crypto

// FIPSMode reports whether the binary was built in FIPS mode.
// When false, all supported cipher suites (including ChaCha20-Poly1305 and
// Ascon-128a) are available.
func FIPSMode() bool { return false }
