package gateways

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/external-adapters/gpg"
)

// gpgVerifier wraps the external GPG adapter to implement the domain gateway interface
type gpgVerifier struct {
	verifier *gpg.Verifier
}

// NewGPGVerifier creates a new GPG verifier gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewGPGVerifier() *gpgVerifier {
	return &gpgVerifier{
		verifier: gpg.NewVerifier(),
	}
}

// ImportKeys imports a KEYS file from an http(s) URL, a file:// URL or a local path
func (g *gpgVerifier) ImportKeys(ctx context.Context, source string) error {
	if source == "" {
		return fmt.Errorf("no signature key source configured")
	}

	if u, err := url.Parse(source); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			if err := g.verifier.ImportKeysFromURL(ctx, source); err != nil {
				return fmt.Errorf("failed to import GPG keys from URL: %w", err)
			}
			return nil
		case "file":
			source = u.Path
		}
	}

	if err := g.verifier.ImportKeyFromFile(source); err != nil {
		return fmt.Errorf("failed to import GPG keys from file: %w", err)
	}
	return nil
}

// VerifyDetached checks sigPath against dataPath. Failures are reported in the
// result rather than returned, so one bad file does not stop the run.
func (g *gpgVerifier) VerifyDetached(dataPath, sigPath string) entities.SignatureVerification {
	signer, err := g.verifier.VerifySignatureFromFile(dataPath, sigPath)
	if err != nil {
		return entities.SignatureVerification{
			Valid:    false,
			Problems: []string{err.Error()},
		}
	}
	return entities.SignatureVerification{
		Valid:  true,
		Signer: signer,
	}
}

// GetKeyringSize returns the number of keys loaded
func (g *gpgVerifier) GetKeyringSize() int {
	return g.verifier.GetKeyringSize()
}

// ClearKeyring clears all imported keys
func (g *gpgVerifier) ClearKeyring() {
	g.verifier.ClearKeyring()
}
