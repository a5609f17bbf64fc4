// Command aeads is a small demo and benchmark tool for the aeads-go library.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/03kalven/aeads-go/pkg/aead"
	"github.com/03kalven/aeads-go/pkg/crypto"
	"github.com/03kalven/aeads-go/pkg/metrics"
	pkgversion "github.com/03kalven/aeads-go/pkg/version"
)

// Build-time variables (set via -ldflags)
var (
	version   = ""        // Set via -ldflags "-X main.version=x.y.z"
	gitCommit = "unknown" // Set via -ldflags "-X main.gitCommit=..."
)

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.String()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "seal":
		sealCommand()
	case "open":
		openCommand()
	case "vectors":
		vectorsCommand()
	case "bench":
		benchCommand()
	case "version":
		fmt.Printf("aeads version %s\n", getVersion())
		if gitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", gitCommit)
		}
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`aeads - AEAD encryption tool (AES-GCM-SIV and friends)

USAGE:
    aeads <command> [options]

COMMANDS:
    seal      Encrypt a message (hex output: nonce || ciphertext || tag)
    open      Decrypt a sealed message
    vectors   Print the RFC 8452 known-answer vectors and verify them
    bench     Run throughput benchmarks
    version   Print version information
    help      Show this help message

EXAMPLES:
    # Seal with a derived key (suite keys are derived from --secret)
    aeads seal --suite aes-256-gcm-siv --secret hunter2 --message "hello"

    # Open the result
    aeads open --suite aes-256-gcm-siv --secret hunter2 --input <hex>

    # Verify the implementation against RFC 8452
    aeads vectors

    # Benchmark all suites
    aeads bench --size 4096 --iterations 10000`)
}

// parseSuite maps a command-line name to a suite identifier.
func parseSuite(name string) (aead.CipherSuite, error) {
	switch strings.ToLower(name) {
	case "aes-128-gcm-siv", "aes128":
		return aead.AES128GCMSIV, nil
	case "aes-256-gcm-siv", "aes256":
		return aead.AES256GCMSIV, nil
	case "chacha20-poly1305", "chacha":
		return aead.ChaCha20Poly1305, nil
	case "ascon-128a", "ascon":
		return aead.Ascon128a, nil
	default:
		return 0, fmt.Errorf("unknown suite %q", name)
	}
}

// newLogger builds the process logger from common flags.
func newLogger(level, format string) *metrics.Logger {
	f := metrics.FormatText
	if strings.EqualFold(format, "json") {
		f = metrics.FormatJSON
	}
	return metrics.NewLogger(
		metrics.WithLevel(metrics.ParseLevel(level)),
		metrics.WithFormat(f),
		metrics.WithName("aeads"),
	)
}

// suiteAEAD constructs the AEAD for a suite, deriving the key from the
// supplied secret.
func suiteAEAD(suiteName, secret string) (*aead.AEAD, error) {
	suite, err := parseSuite(suiteName)
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveAEADKey(suite, []byte(secret))
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(key)
	return aead.New(suite, key)
}

func sealCommand() {
	fs := flag.NewFlagSet("seal", flag.ExitOnError)
	suiteName := fs.String("suite", "aes-256-gcm-siv", "Cipher suite")
	secret := fs.String("secret", "", "Secret to derive the key from")
	message := fs.String("message", "", "Plaintext message")
	aadHex := fs.String("aad", "", "Associated data (hex)")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")
	logFormat := fs.String("log-format", "text", "Log format: text or json")
	fs.Parse(os.Args[2:])

	logger := newLogger(*logLevel, *logFormat)

	if *secret == "" {
		logger.Error("missing --secret")
		os.Exit(1)
	}

	additionalData, err := hex.DecodeString(*aadHex)
	if err != nil {
		logger.Error("invalid --aad hex", metrics.Fields{"error": err})
		os.Exit(1)
	}

	a, err := suiteAEAD(*suiteName, *secret)
	if err != nil {
		logger.Error("setup failed", metrics.Fields{"error": err})
		os.Exit(1)
	}

	ciphertext, err := a.Seal([]byte(*message), additionalData)
	if err != nil {
		logger.Error("seal failed", metrics.Fields{"error": err})
		os.Exit(1)
	}

	logger.Debug("sealed", metrics.Fields{
		"suite":    a.Suite().String(),
		"bytes":    len(*message),
		"overhead": a.Overhead(),
	})
	fmt.Println(hex.EncodeToString(ciphertext))
}

func openCommand() {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	suiteName := fs.String("suite", "aes-256-gcm-siv", "Cipher suite")
	secret := fs.String("secret", "", "Secret to derive the key from")
	input := fs.String("input", "", "Sealed message (hex)")
	aadHex := fs.String("aad", "", "Associated data (hex)")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")
	logFormat := fs.String("log-format", "text", "Log format: text or json")
	fs.Parse(os.Args[2:])

	logger := newLogger(*logLevel, *logFormat)

	if *secret == "" || *input == "" {
		logger.Error("missing --secret or --input")
		os.Exit(1)
	}

	ciphertext, err := hex.DecodeString(*input)
	if err != nil {
		logger.Error("invalid --input hex", metrics.Fields{"error": err})
		os.Exit(1)
	}
	additionalData, err := hex.DecodeString(*aadHex)
	if err != nil {
		logger.Error("invalid --aad hex", metrics.Fields{"error": err})
		os.Exit(1)
	}

	a, err := suiteAEAD(*suiteName, *secret)
	if err != nil {
		logger.Error("setup failed", metrics.Fields{"error": err})
		os.Exit(1)
	}

	plaintext, err := a.Open(ciphertext, additionalData)
	if err != nil {
		logger.Error("message rejected", metrics.Fields{"error": err})
		os.Exit(1)
	}

	fmt.Println(string(plaintext))
}
