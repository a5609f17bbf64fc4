package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/03kalven/aeads-go/pkg/aead"
	"github.com/03kalven/aeads-go/pkg/crypto"
	"github.com/03kalven/aeads-go/pkg/metrics"
)

func benchCommand() {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	size := fs.Int("size", 4096, "Message size in bytes")
	iterations := fs.Int("iterations", 10000, "Iterations per suite")
	suiteName := fs.String("suite", "", "Benchmark a single suite (default: all)")
	export := fs.Bool("export", false, "Print Prometheus metrics after the run")
	fs.Parse(os.Args[2:])

	suites := []aead.CipherSuite{
		aead.AES128GCMSIV,
		aead.AES256GCMSIV,
		aead.ChaCha20Poly1305,
		aead.Ascon128a,
	}
	if *suiteName != "" {
		s, err := parseSuite(*suiteName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		suites = []aead.CipherSuite{s}
	}

	fmt.Printf("aeads bench: %d iterations, %d-byte messages\n", *iterations, *size)
	fmt.Println(strings.Repeat("-", 60))

	collector := metrics.NewCollector(metrics.Labels{"tool": "aeads-bench"})

	for _, suite := range suites {
		if crypto.FIPSMode() && !suite.IsFIPSApproved() {
			fmt.Printf("%-20s skipped (FIPS mode)\n", suite.String())
			continue
		}
		benchSuite(collector, suite, *size, *iterations)
	}

	if *export {
		fmt.Println(strings.Repeat("-", 60))
		metrics.NewPrometheusExporter(collector, "aeads").WriteMetrics(os.Stdout)
	}
}

func benchSuite(collector *metrics.Collector, suite aead.CipherSuite, size, iterations int) {
	key := crypto.GetBuffer(suite.KeySize())
	defer crypto.PutBuffer(key)
	crypto.MustSecureRandom(key)

	a, err := aead.New(suite, key)
	if err != nil {
		fmt.Printf("%-20s error: %v\n", suite.String(), err)
		return
	}

	plaintext := make([]byte, size)
	crypto.MustSecureRandom(plaintext)

	// Seal throughput
	start := time.Now()
	var ciphertext []byte
	for i := 0; i < iterations; i++ {
		opStart := time.Now()
		ciphertext, err = a.Seal(plaintext, nil)
		if err != nil {
			collector.RecordSealError()
			fmt.Printf("%-20s seal error: %v\n", suite.String(), err)
			return
		}
		collector.RecordSeal(size, time.Since(opStart))
	}
	sealElapsed := time.Since(start)

	// Open throughput
	start = time.Now()
	for i := 0; i < iterations; i++ {
		opStart := time.Now()
		if _, err := a.Open(ciphertext, nil); err != nil {
			collector.RecordAuthFailure()
			fmt.Printf("%-20s open error: %v\n", suite.String(), err)
			return
		}
		collector.RecordOpen(size, time.Since(opStart))
	}
	openElapsed := time.Since(start)

	total := float64(size) * float64(iterations)
	fmt.Printf("%-20s seal %8.1f MB/s   open %8.1f MB/s\n",
		suite.String(),
		total/sealElapsed.Seconds()/1e6,
		total/openElapsed.Seconds()/1e6)
}
