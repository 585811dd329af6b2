package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/domain/interfaces"
	"github.com/ochairo/relcheck/internal/domain/interfaces/gateways"
)

// SignatureSuffix marks detached ASCII-armored signature files
const SignatureSuffix = ".asc"

// SignatureService validates detached signatures of release files
type SignatureService struct {
	verifier gateways.SignatureVerifier
	logger   interfaces.Logger
}

// NewSignatureService creates a new signature service
func NewSignatureService(verifier gateways.SignatureVerifier, logger interfaces.Logger) *SignatureService {
	return &SignatureService{
		verifier: verifier,
		logger:   interfaces.OrNoOp(logger),
	}
}

// Validate imports the keys at keySource into a fresh keyring and verifies
// every *.asc file in files against the file with the suffix stripped.
// Invalid signatures are returned as records; a key import failure is an error.
func (s *SignatureService) Validate(ctx context.Context, dir string, files []string, keySource string) ([]entities.InvalidSignature, error) {
	s.verifier.ClearKeyring()
	if err := s.verifier.ImportKeys(ctx, keySource); err != nil {
		return nil, fmt.Errorf("failed to import keys from %s: %w", keySource, err)
	}

	var invalid []entities.InvalidSignature
	for _, f := range files {
		if !strings.HasSuffix(f, SignatureSuffix) {
			continue
		}
		data := strings.TrimSuffix(f, SignatureSuffix)

		result := s.verifier.VerifyDetached(filepath.Join(dir, data), filepath.Join(dir, f))
		if !result.Valid {
			invalid = append(invalid, entities.InvalidSignature{
				File:     f,
				Status:   result.Valid,
				Problems: result.Problems,
			})
			continue
		}

		s.logger.Info(fmt.Sprintf("File %s signed by %s", f, result.Signer))
	}

	return invalid, nil
}
