// Package gateways defines interfaces for the side-effecting collaborators
// of the release checks (filesystem, VCS, digests, signatures).
package gateways

import (
	"context"

	"github.com/ochairo/relcheck/internal/domain/entities"
)

// FileStore lists and relocates release files
type FileStore interface {
	// ListFiles returns the names of regular files directly inside dir
	ListFiles(dir string) ([]string, error)

	// EnsureDir creates dir (and parents) if it does not exist
	EnsureDir(dir string) error

	// MoveFile moves srcDir/name into destDir, keeping its name
	MoveFile(srcDir, name, destDir string) error
}

// ReleaseCheckout fetches a remote release directory into a local path
type ReleaseCheckout interface {
	Checkout(ctx context.Context, url, destDir string) error
}

// ChecksumGateway computes and reads file checksums
type ChecksumGateway interface {
	// CalculateDigest returns the lowercase hex digest of filePath using the
	// named algorithm (sha256, sha384, sha512)
	CalculateDigest(ctx context.Context, filePath, algorithm string) (string, error)

	// ReadExpectedDigest returns the first whitespace-delimited token of a
	// checksum file, or "" if the file is blank
	ReadExpectedDigest(checksumPath string) (string, error)
}

// SignatureVerifier verifies detached OpenPGP signatures against an
// ephemeral keyring
type SignatureVerifier interface {
	// ImportKeys loads public keys from a URL or local path into the keyring
	ImportKeys(ctx context.Context, source string) error

	// VerifyDetached checks sigPath as a detached signature over dataPath.
	// Verification failures are reported in the result, not as errors.
	VerifyDetached(dataPath, sigPath string) entities.SignatureVerification

	// ClearKeyring drops all imported keys
	ClearKeyring()
}
