package gateways

import (
	"context"
	_ "crypto/sha256" // register hashes for go-digest
	_ "crypto/sha512"
	"fmt"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"
)

// checksumVerifier computes file digests by algorithm name using go-digest
type checksumVerifier struct{}

// NewChecksumVerifier creates a new checksum verifier
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumVerifier() *checksumVerifier {
	return &checksumVerifier{}
}

// CalculateDigest returns the hex digest of a file's full content.
// algorithm is a go-digest algorithm name: sha256, sha384 or sha512.
func (v *checksumVerifier) CalculateDigest(_ context.Context, filePath, algorithm string) (string, error) {
	alg := digest.Algorithm(strings.ToLower(algorithm))
	if !alg.Available() {
		return "", fmt.Errorf("unsupported digest algorithm %q", algorithm)
	}

	//nolint:gosec // G304: File path comes from the release directory listing
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	d, err := alg.FromReader(f)
	if err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return d.Encoded(), nil
}

// ReadExpectedDigest reads a checksum file (format: "hash  filename") and
// returns the hash token
func (v *checksumVerifier) ReadExpectedDigest(checksumPath string) (string, error) {
	//nolint:gosec // G304: File path comes from the release directory listing
	data, err := os.ReadFile(checksumPath)
	if err != nil {
		return "", fmt.Errorf("failed to read checksum file: %w", err)
	}

	parts := strings.Fields(string(data))
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], nil
}
