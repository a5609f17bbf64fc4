//go:build fips
// +build fips

// This file is compiled when the "fips" build tag is specified.
// In FIPS mode, only cipher suites built from FIPS 140-3 approved
// primitives construct, and power-on self-test failures panic.

package crypto

// FIPSMode reports whether the binary was built in FIPS mode.
// When true, only the AES-based suites are available.
func FIPSMode() bool { return true }
