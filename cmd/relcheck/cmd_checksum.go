package main

import (
	"context"

	"github.com/spf13/cobra"

	orchestrators "github.com/ochairo/relcheck/internal/domain-orchestrators"
	"github.com/ochairo/relcheck/internal/domain-adapters/gateways"
	"github.com/ochairo/relcheck/internal/domain/services"
)

func newChecksumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checksum",
		Short: "Validate <file>.<algorithm> checksum files in REPO_PATH",
		Long: `For each configured algorithm, pairs every "<name>.<algorithm>" file with
"<name>" and compares the recorded digest with the digest of the artifact.
All mismatches are reported before the command fails.

Environment:
  CHECK_SUM_CONFIG  [{"description": "...", "algorithm": "sha512"}]
  REPO_PATH         release directory (default: --dir or the current directory)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runChecksum(cmd.Context())
		},
	}
}

func (a *app) newVerificationOrchestrator() *orchestrators.VerificationOrchestrator {
	matcher := services.NewMatcher(a.logger)
	return orchestrators.NewVerificationOrchestrator(
		gateways.NewArtifactFinder(),
		services.NewChecksumService(gateways.NewChecksumVerifier(), a.logger),
		services.NewSignatureService(gateways.NewGPGVerifier(), a.logger),
		services.NewAuditService(matcher, a.logger),
		a.logger,
	)
}

func (a *app) runChecksum(ctx context.Context) error {
	raw, err := a.requireEnv(envChecksumConfig)
	if err != nil {
		return err
	}
	checks, err := a.parser.ParseChecksumChecks([]byte(raw))
	if err != nil {
		return err
	}

	result, err := a.newVerificationOrchestrator().VerifyChecksums(ctx, a.workDir(envRepoPath), checks)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}

	a.printf("✅ All checksums are valid (%d checked)\n", result.Checked)
	return nil
}
