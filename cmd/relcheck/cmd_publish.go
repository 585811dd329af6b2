package main

import (
	"context"

	"github.com/spf13/cobra"

	orchestrators "github.com/ochairo/relcheck/internal/domain-orchestrators"
	"github.com/ochairo/relcheck/internal/domain-adapters/gateways"
	"github.com/ochairo/relcheck/internal/domain/services"
)

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Prepare release candidate or final release packages in DIST_PATH",
		Long: `RC_VERSION moves every non-excluded file of SOURCE_PATH to DIST_PATH.

PYPI_VERSION checks out compare.url with svn, extracts package names from the
local release candidates with compare.package_names, and moves the released
files starting with one of those names (minus exclude_extensions) to DIST_PATH.

Environment:
  PUBLISH_PACKAGES_CONFIG  {"release-type": "RC_VERSION|PYPI_VERSION", "exclude_extensions": [...],
                            "compare": {"url": "...", "path": "...", "package_names": [...]}}
  SOURCE_PATH              RC_VERSION source directory (default: --dir or the current directory)
  DIST_PATH                destination directory (required)
  MODE                     VERIFY (default) or RELEASE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPublish(cmd.Context())
		},
	}
}

func (a *app) runPublish(ctx context.Context) error {
	raw, err := a.requireEnv(envPublishConfig)
	if err != nil {
		return err
	}
	cfg, err := a.parser.ParsePublishConfig([]byte(raw))
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

	localDir := a.workDir("")
	req := orchestrators.PublishRequest{
		LocalDir:   localDir,
		SourcePath: envOr(a.getenv, envSourcePath, localDir),
		DistPath:   distPath,
	}

	orch := orchestrators.NewPublishOrchestrator(
		gateways.NewArtifactFinder(),
		gateways.NewSVNCheckout(gateways.NewCommandExecutor(a.logger)),
		services.NewMatcher(a.logger),
		a.logger,
	)

	result, err := orch.Publish(ctx, cfg, req)
	if err != nil {
		return err
	}

	a.printf("✅ %s: moved %d package(s) to %s\n", result.ReleaseType, len(result.Packages), result.DistPath)
	a.printSelection(mode, result.Packages)
	return nil
}
