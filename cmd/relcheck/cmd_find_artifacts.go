package main

import (
	"github.com/spf13/cobra"

	orchestrators "github.com/ochairo/relcheck/internal/domain-orchestrators"
	"github.com/ochairo/relcheck/internal/domain-adapters/gateways"
	"github.com/ochairo/relcheck/internal/domain/services"
)

func newFindArtifactsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find-artifacts",
		Short: "Select built artifacts and move them to DIST_PATH",
		Long: `Lists the files of the working directory, drops those matching the exclude
rules of ARTIFACTS_CONFIG and moves the rest to DIST_PATH (created if absent).

Environment:
  ARTIFACTS_CONFIG  {"description": "...", "exclude": [{"type": "regex", "pattern": "..."}]}
  DIST_PATH         destination directory (required)
  MODE              VERIFY (default) or RELEASE`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runFindArtifacts()
		},
	}
}

func (a *app) runFindArtifacts() error {
	cfg, err := a.parser.ParseArtifactsConfig([]byte(envOr(a.getenv, envArtifactsConfig, "{}")))
	if err != nil {
		return err
	}
	distPath, err := a.requireEnv(envDistPath)
	if err != nil {
		return err
	}
	mode, err := a.mode()
	if err != nil {
		return err
	}

	orch := orchestrators.NewArtifactOrchestrator(
		gateways.NewArtifactFinder(),
		services.NewMatcher(a.logger),
		a.logger,
	)

	result, err := orch.FindArtifacts(cfg, a.workDir(""), distPath)
	if err != nil {
		return err
	}

	a.printf("✅ Moved %d package(s) to %s\n", len(result.Selected), result.DistPath)
	a.printSelection(mode, result.Selected)
	return nil
}
