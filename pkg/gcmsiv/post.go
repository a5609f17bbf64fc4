// post.go implements Power-On Self-Tests (POST) for the AES-GCM-SIV engine.
//
// IMPORTANT: POST is production code, not test code. FIPS 140-3 requires
// self-tests to run at module load time to verify the cryptographic
// implementation before any operation is performed. This catches issues like
// corrupted binaries, hardware failures, or tampered code.
//
// The tests replay RFC 8452 Appendix C known-answer vectors through both key
// variants plus the POLYVAL worked example from Appendix A. In FIPS mode,
// POST failures cause a panic; in standard mode, failures are recorded and
// can be inspected via RunPOST.

package gcmsiv

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/03kalven/aeads-go/internal/polyval"
	"github.com/03kalven/aeads-go/pkg/crypto"
)

// POST KAT (Known Answer Test) values from RFC 8452 appendices.
var (
	// AES-128-GCM-SIV, empty plaintext and AAD (Appendix C.1)
	postKAT128Key, _   = hex.DecodeString("01000000000000000000000000000000")
	postKATNonce, _    = hex.DecodeString("030000000000000000000000")
	postKAT128Empty, _ = hex.DecodeString("dc20e2d83f25705bb49e439eca56de25")

	// AES-128-GCM-SIV, 8-byte plaintext (Appendix C.1)
	postKAT128Msg, _ = hex.DecodeString("0100000000000000")
	postKAT128CT, _  = hex.DecodeString("b5d839330ac7b786578782fff6013b815b287c22493a364c")

	// AES-256-GCM-SIV, empty plaintext and AAD (Appendix C.2)
	postKAT256Key, _   = hex.DecodeString("0100000000000000000000000000000000000000000000000000000000000000")
	postKAT256Empty, _ = hex.DecodeString("07f5f4169bbf55a8400cd47ea6f57d1c")

	// POLYVAL worked example (Appendix A)
	postKATPolyvalKey, _ = hex.DecodeString("25629347589242761d31f826ba4b757b")
	postKATPolyvalIn, _  = hex.DecodeString("4f4f95668c83dfb6401762bb2d01a262d1a24ddd2721d006bbe45f20d3c9f362")
	postKATPolyvalOut, _ = hex.DecodeString("f7a3b47b846119fae5b7866cf5e5b77e")
)

// POSTResult contains the results of the Power-On Self-Tests.
type POSTResult struct {
	Passed        bool
	PolyvalPassed bool
	AES128Passed  bool
	AES256Passed  bool
	Errors        []string
}

var (
	postResult     *POSTResult
	postResultOnce sync.Once
	postRan        bool
)

func init() {
	// Self-verify before the package can be used. The three KATs cost a few
	// microseconds at load time.
	RunPOST()
}

// RunPOST executes the Power-On Self-Tests and returns the results.
// This function is safe to call multiple times; tests only run once.
func RunPOST() *POSTResult {
	postResultOnce.Do(func() {
		postResult = &POSTResult{
			Passed: true,
		}

		if err := runPolyvalKAT(); err != nil {
			postResult.Passed = false
			postResult.Errors = append(postResult.Errors, fmt.Sprintf("POLYVAL KAT failed: %v", err))
		} else {
			postResult.PolyvalPassed = true
		}

		if err := runAES128KAT(); err != nil {
			postResult.Passed = false
			postResult.Errors = append(postResult.Errors, fmt.Sprintf("AES-128-GCM-SIV KAT failed: %v", err))
		} else {
			postResult.AES128Passed = true
		}

		if err := runAES256KAT(); err != nil {
			postResult.Passed = false
			postResult.Errors = append(postResult.Errors, fmt.Sprintf("AES-256-GCM-SIV KAT failed: %v", err))
		} else {
			postResult.AES256Passed = true
		}

		postRan = true

		// In FIPS mode, POST failures are fatal
		if crypto.FIPSMode() && !postResult.Passed {
			panic(fmt.Sprintf("FIPS POST failed: %v", postResult.Errors))
		}
	})

	return postResult
}

// POSTRan returns true if POST has been executed
func POSTRan() bool {
	return postRan
}

// POSTPassed returns true if POST has run and all tests passed
func POSTPassed() bool {
	if postResult == nil {
		return false
	}
	return postResult.Passed
}

// runPolyvalKAT verifies POLYVAL against the RFC 8452 Appendix A example.
func runPolyvalKAT() error {
	p := polyval.New(postKATPolyvalKey)
	p.UpdatePadded(postKATPolyvalIn)
	got := p.FinalizeReset()
	if !bytes.Equal(got[:], postKATPolyvalOut) {
		return fmt.Errorf("output mismatch: got %x, want %x", got, postKATPolyvalOut)
	}
	return nil
}

// runAES128KAT verifies the AES-128 variant with two Appendix C.1 vectors.
func runAES128KAT() error {
	aead, err := New128(postKAT128Key)
	if err != nil {
		return fmt.Errorf("New128 failed: %w", err)
	}

	ct := aead.Seal(nil, postKATNonce, nil, nil)
	if !bytes.Equal(ct, postKAT128Empty) {
		return fmt.Errorf("empty-message tag mismatch: got %x, want %x", ct, postKAT128Empty)
	}

	ct = aead.Seal(nil, postKATNonce, postKAT128Msg, nil)
	if !bytes.Equal(ct, postKAT128CT) {
		return fmt.Errorf("ciphertext mismatch: got %x, want %x", ct, postKAT128CT)
	}

	pt, err := aead.Open(nil, postKATNonce, ct, nil)
	if err != nil {
		return fmt.Errorf("decrypt failed: %w", err)
	}
	if !bytes.Equal(pt, postKAT128Msg) {
		return fmt.Errorf("round-trip mismatch: got %x, want %x", pt, postKAT128Msg)
	}
	return nil
}

// runAES256KAT verifies the AES-256 variant with the Appendix C.2 vector.
func runAES256KAT() error {
	aead, err := New256(postKAT256Key)
	if err != nil {
		return fmt.Errorf("New256 failed: %w", err)
	}

	ct := aead.Seal(nil, postKATNonce, nil, nil)
	if !bytes.Equal(ct, postKAT256Empty) {
		return fmt.Errorf("empty-message tag mismatch: got %x, want %x", ct, postKAT256Empty)
	}
	return nil
}
