// Package gpg provides GPG signature verification capabilities.
package gpg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// armoredSignaturePrefix is the first 27 bytes of an ASCII-armored signature
const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE---"

// Verifier implements GPG signature verification using ProtonMail's go-crypto
// A maintained, modern fork of golang.org/x/crypto/openpgp
// This is in external-adapters to isolate the external dependency
type Verifier struct {
	keyring    openpgp.EntityList
	httpClient *http.Client
}

// NewVerifier creates a new GPG verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ImportKeysFromURL imports all GPG keys from a KEYS file URL
// This is commonly used by projects like Apache, Python, Perl that publish KEYS files
func (v *Verifier) ImportKeysFromURL(ctx context.Context, keysURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, keysURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download KEYS file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unable to download signature keys from %s: received: %d", keysURL, resp.StatusCode)
	}

	// Limit KEYS file size to 10MB (some projects have large keyring files)
	limitedReader := io.LimitReader(resp.Body, 10*1024*1024)

	entities, err := readArmoredKeyBlocks(limitedReader)
	if err != nil {
		return fmt.Errorf("failed to parse KEYS file: %w", err)
	}

	// Import all keys - signature verification will fail if key is expired
	v.keyring = append(v.keyring, entities...)

	return nil
}

// ImportKeyFromFile imports GPG keys from a local armored or binary keyring file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is user-provided for GPG key import
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := readArmoredKeyBlocks(f)
	if err != nil {
		// Try reading as binary
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to reset file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// readArmoredKeyBlocks reads every armored public key block in r. KEYS files
// concatenate one block per committer, with free text in between.
func readArmoredKeyBlocks(r io.Reader) (openpgp.EntityList, error) {
	br := bufio.NewReader(r)
	var keyring openpgp.EntityList
	for {
		block, err := armor.Decode(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if block.Type != openpgp.PublicKeyType {
			if _, err := io.Copy(io.Discard, block.Body); err != nil {
				return nil, err
			}
			continue
		}
		entities, err := openpgp.ReadKeyRing(block.Body)
		if err != nil {
			return nil, err
		}
		keyring = append(keyring, entities...)
	}

	if len(keyring) == 0 {
		return nil, errors.New("no armored public keys found")
	}
	return keyring, nil
}

// VerifySignatureFromFile verifies a detached signature from a local file and
// returns the identity of the signing key
func (v *Verifier) VerifySignatureFromFile(filePath, sigPath string) (string, error) {
	if len(v.keyring) == 0 {
		return "", fmt.Errorf("no GPG keys imported, import a KEYS file first")
	}

	//nolint:gosec // G304: sigPath comes from the release directory listing
	sigFile, err := os.Open(sigPath)
	if err != nil {
		return "", fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer sigFile.Close()

	//nolint:gosec // G304: filePath comes from the release directory listing
	dataFile, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer dataFile.Close()

	// Peek at signature file to determine if it's armored
	peekBuf := make([]byte, len(armoredSignaturePrefix))
	n, _ := io.ReadFull(sigFile, peekBuf)
	isArmored := n == len(peekBuf) && string(peekBuf) == armoredSignaturePrefix

	if _, seekErr := sigFile.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset signature file: %w", seekErr)
	}

	var signer *openpgp.Entity
	if isArmored {
		signer, err = openpgp.CheckArmoredDetachedSignature(v.keyring, dataFile, sigFile, nil)
	} else {
		signer, err = openpgp.CheckDetachedSignature(v.keyring, dataFile, sigFile, nil)
	}

	if err != nil {
		return "", fmt.Errorf("signature verification failed: %w", err)
	}

	return identityOf(signer), nil
}

// identityOf returns the primary user ID of an entity, or its key ID
func identityOf(e *openpgp.Entity) string {
	if e == nil {
		return "unknown"
	}
	if id := e.PrimaryIdentity(); id != nil {
		return id.Name
	}
	return e.PrimaryKey.KeyIdString()
}

// GetKeyringSize returns the number of keys in the keyring
func (v *Verifier) GetKeyringSize() int {
	return len(v.keyring)
}

// ClearKeyring clears all imported keys
func (v *Verifier) ClearKeyring() {
	v.keyring = make(openpgp.EntityList, 0)
}
