package orchestrators

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/domain/interfaces"
	"github.com/ochairo/relcheck/internal/domain/interfaces/gateways"
	"github.com/ochairo/relcheck/internal/domain/services"
)

// VerificationOrchestrator runs the configured checksum, signature and naming
// checks over a release directory. Each check returns its records; nothing is
// kept between runs.
type VerificationOrchestrator struct {
	files      gateways.FileStore
	checksums  *services.ChecksumService
	signatures *services.SignatureService
	audit      *services.AuditService
	logger     interfaces.Logger
}

// NewVerificationOrchestrator creates a new verification orchestrator
func NewVerificationOrchestrator(
	files gateways.FileStore,
	checksums *services.ChecksumService,
	signatures *services.SignatureService,
	audit *services.AuditService,
	logger interfaces.Logger,
) *VerificationOrchestrator {
	return &VerificationOrchestrator{
		files:      files,
		checksums:  checksums,
		signatures: signatures,
		audit:      audit,
		logger:     interfaces.OrNoOp(logger),
	}
}

// ChecksumResult holds every checksum mismatch found across all checks
type ChecksumResult struct {
	Checked int
	Invalid []entities.InvalidChecksum
}

// Err returns one aggregated error per mismatch, or nil
func (r *ChecksumResult) Err() error {
	var merr *multierror.Error
	for _, c := range r.Invalid {
		merr = multierror.Append(merr, fmt.Errorf("checksum mismatch for %s: expected %s, got %s",
			c.File, c.ExpectedSha, c.ActualSha))
	}
	return formatErrorOrNil(merr)
}

// SignatureResult holds every invalid signature found across all checks
type SignatureResult struct {
	Checked int
	Invalid []entities.InvalidSignature
}

// Err returns one aggregated error per invalid signature, or nil
func (r *SignatureResult) Err() error {
	var merr *multierror.Error
	for _, s := range r.Invalid {
		merr = multierror.Append(merr, fmt.Errorf("invalid signature %s: %s",
			s.File, strings.Join(s.Problems, "; ")))
	}
	return formatErrorOrNil(merr)
}

// AuditResult wraps the report of a naming audit
type AuditResult struct {
	Report entities.AuditReport
}

// Err returns one aggregated error per unknown file, or nil
func (r *AuditResult) Err() error {
	var merr *multierror.Error
	for _, f := range r.Report.UnknownExtensions {
		merr = multierror.Append(merr, fmt.Errorf("unknown file extension: %s", f))
	}
	for _, f := range r.Report.UnknownFiles {
		merr = multierror.Append(merr, fmt.Errorf("unknown package name: %s", f))
	}
	return formatErrorOrNil(merr)
}

// VerifyChecksums pairs checksum files by each check's algorithm suffix and
// validates them
func (o *VerificationOrchestrator) VerifyChecksums(ctx context.Context, dir string, checks []entities.ChecksumCheck) (*ChecksumResult, error) {
	files, err := o.listFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &ChecksumResult{}
	for _, check := range checks {
		o.logger.Info(check.Description, interfaces.F("algorithm", check.Algorithm))

		pairs := services.PairChecksums(files, check.Algorithm)
		invalid, err := o.checksums.Validate(ctx, dir, pairs, check.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", describe(check.Description, check.Algorithm), err)
		}
		result.Checked += len(pairs)
		result.Invalid = append(result.Invalid, invalid...)
	}
	return result, nil
}

// VerifySignatures validates every detached signature once per gpg check.
// Checks with another method are skipped; at least one gpg check must run.
func (o *VerificationOrchestrator) VerifySignatures(ctx context.Context, dir string, checks []entities.SignatureCheck) (*SignatureResult, error) {
	files, err := o.listFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &SignatureResult{}
	for _, check := range checks {
		if check.Method != entities.SignatureMethodGPG {
			o.logger.Warn("Skipping signature check with unsupported method",
				interfaces.F("description", check.Description),
				interfaces.F("method", check.Method))
			continue
		}
		o.logger.Info(check.Description, interfaces.F("keys", check.Keys))

		invalid, err := o.signatures.Validate(ctx, dir, files, check.Keys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", describe(check.Description, check.Keys), err)
		}
		result.Checked++
		result.Invalid = append(result.Invalid, invalid...)
	}
	if result.Checked == 0 {
		return nil, fmt.Errorf("%w (supported: %s)", services.ErrNoSignatureChecks, entities.SignatureMethodGPG)
	}
	return result, nil
}

// AuditNames runs every naming check and collects unknown files per check type
func (o *VerificationOrchestrator) AuditNames(dir string, checks []entities.AuditCheck) (*AuditResult, error) {
	files, err := o.listFiles(dir)
	if err != nil {
		return nil, err
	}

	result := &AuditResult{}
	for _, check := range checks {
		o.logger.Info(check.Description, interfaces.F("check", check.ID))
		if err := o.audit.AuditInto(&result.Report, files, check.Identifiers, check.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", describe(check.Description, string(check.ID)), err)
		}
	}
	return result, nil
}

func (o *VerificationOrchestrator) listFiles(dir string) ([]string, error) {
	files, err := o.files.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", services.ErrNoFiles, dir)
	}
	return files, nil
}

func describe(description, fallback string) string {
	if description != "" {
		return description
	}
	return fallback
}

func formatErrors(es []error) string {
	if len(es) == 1 {
		return fmt.Sprintf("1 problem found:\n\t* %s", es[0])
	}

	points := make([]string, len(es))
	for i, err := range es {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d problems found:\n\t%s", len(es), strings.Join(points, "\n\t"))
}

func formatErrorOrNil(err *multierror.Error) error {
	if err != nil {
		err.ErrorFormat = formatErrors
	}
	return err.ErrorOrNil()
}
