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

// PairChecksums pairs every "<name>.<suffix>" file with "<name>" when that
// artifact is also present in files. Dangling checksum files are skipped.
func PairChecksums(files []string, suffix string) []entities.ChecksumPair {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	ext := "." + suffix
	var pairs []entities.ChecksumPair
	for _, f := range files {
		if !strings.HasSuffix(f, ext) {
			continue
		}
		artifact := strings.TrimSuffix(f, ext)
		if artifact == "" || !present[artifact] {
			continue
		}
		pairs = append(pairs, entities.ChecksumPair{ShaFile: f, CheckFile: artifact})
	}
	return pairs
}

// ChecksumService validates checksum files against their artifacts
type ChecksumService struct {
	checksums gateways.ChecksumGateway
	logger    interfaces.Logger
}

// NewChecksumService creates a new checksum service
func NewChecksumService(checksums gateways.ChecksumGateway, logger interfaces.Logger) *ChecksumService {
	return &ChecksumService{
		checksums: checksums,
		logger:    interfaces.OrNoOp(logger),
	}
}

// Validate compares each pair's recorded digest with the digest of the
// artifact in dir. Mismatches are returned as records; I/O failures and
// unknown algorithms are errors.
func (s *ChecksumService) Validate(ctx context.Context, dir string, pairs []entities.ChecksumPair, algorithm string) ([]entities.InvalidChecksum, error) {
	var invalid []entities.InvalidChecksum

	for _, pair := range pairs {
		expected, err := s.checksums.ReadExpectedDigest(filepath.Join(dir, pair.ShaFile))
		if err != nil {
			return nil, err
		}

		actual, err := s.checksums.CalculateDigest(ctx, filepath.Join(dir, pair.CheckFile), algorithm)
		if err != nil {
			return nil, fmt.Errorf("failed to checksum %s: %w", pair.CheckFile, err)
		}

		if expected != actual {
			invalid = append(invalid, entities.InvalidChecksum{
				File:        pair.ShaFile,
				ExpectedSha: expected,
				ActualSha:   actual,
			})
			continue
		}

		s.logger.Debug("checksum valid", interfaces.F("file", pair.CheckFile), interfaces.F("algorithm", algorithm))
	}

	return invalid, nil
}
