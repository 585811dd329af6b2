package orchestrators

import (
	"context"
	"fmt"
	"os"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/domain/interfaces"
	"github.com/ochairo/relcheck/internal/domain/interfaces/gateways"
	"github.com/ochairo/relcheck/internal/domain/services"
)

// PublishOrchestrator prepares the dist directory for a release candidate or
// for promoting a candidate to a final release
type PublishOrchestrator struct {
	files    gateways.FileStore
	checkout gateways.ReleaseCheckout
	matcher  *services.Matcher
	logger   interfaces.Logger
	tempDir  func() (string, func(), error)
}

// NewPublishOrchestrator creates a new publish orchestrator
func NewPublishOrchestrator(
	files gateways.FileStore,
	checkout gateways.ReleaseCheckout,
	matcher *services.Matcher,
	logger interfaces.Logger,
) *PublishOrchestrator {
	return &PublishOrchestrator{
		files:    files,
		checkout: checkout,
		matcher:  matcher,
		logger:   interfaces.OrNoOp(logger),
		tempDir:  makeTempDir,
	}
}

// PublishRequest holds the directories a publish run works on
type PublishRequest struct {
	// LocalDir holds the candidate files; names are extracted from it
	LocalDir string
	// SourcePath is where RC_VERSION packages are moved from
	SourcePath string
	DistPath   string
}

// PublishResult lists the packages moved to the dist directory
type PublishResult struct {
	ReleaseType entities.ReleaseType
	Packages    []string
	DistPath    string
}

// Publish runs the flow selected by cfg.ReleaseType
func (o *PublishOrchestrator) Publish(ctx context.Context, cfg *entities.PublishConfig, req PublishRequest) (*PublishResult, error) {
	if req.DistPath == "" {
		return nil, fmt.Errorf("dist path is not set")
	}

	var (
		packages []string
		err      error
	)
	switch cfg.ReleaseType {
	case entities.ReleaseTypeRC:
		packages, err = o.publishRC(cfg, req)
	case entities.ReleaseTypePyPI:
		packages, err = o.publishPyPI(ctx, cfg, req)
	default:
		return nil, fmt.Errorf("%w %q", services.ErrInvalidReleaseType, cfg.ReleaseType)
	}
	if err != nil {
		return nil, err
	}

	return &PublishResult{
		ReleaseType: cfg.ReleaseType,
		Packages:    packages,
		DistPath:    req.DistPath,
	}, nil
}

// publishRC moves every non-excluded file of the source path
func (o *PublishOrchestrator) publishRC(cfg *entities.PublishConfig, req PublishRequest) ([]string, error) {
	files, err := o.files.ListFiles(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", req.SourcePath, err)
	}
	o.logger.Debug("source files", interfaces.F("files", files))

	packages, err := o.matcher.Exclude(files, cfg.ExcludeExtensions)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("%w from %s", services.ErrNoPackages, req.SourcePath)
	}

	if err := moveAll(o.files, req.SourcePath, packages, req.DistPath); err != nil {
		return nil, err
	}
	return packages, nil
}

// publishPyPI checks out the release directory, keeps the released files whose
// names start with a package name of the local candidates and moves them
func (o *PublishOrchestrator) publishPyPI(ctx context.Context, cfg *entities.PublishConfig, req PublishRequest) ([]string, error) {
	if cfg.Compare == nil {
		return nil, fmt.Errorf("%s release requires a compare section", entities.ReleaseTypePyPI)
	}

	local, err := o.files.ListFiles(req.LocalDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", req.LocalDir, err)
	}

	checkoutDir, cleanup, err := o.tempDir()
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout directory: %w", err)
	}
	defer cleanup()

	o.logger.Info(fmt.Sprintf("Checking out release files from %s to %s", cfg.Compare.URL, checkoutDir),
		interfaces.F("path", cfg.Compare.Path))
	if err := o.checkout.Checkout(ctx, cfg.Compare.URL, checkoutDir); err != nil {
		return nil, err
	}

	remote, err := o.files.ListFiles(checkoutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkout %s: %w", checkoutDir, err)
	}

	matched, err := o.matcher.MatchRelease(local, remote, cfg.Compare.PackageNames)
	if err != nil {
		return nil, fmt.Errorf("comparing %s with %s: %w", req.LocalDir, cfg.Compare.URL, err)
	}

	packages, err := o.matcher.Exclude(matched, cfg.ExcludeExtensions)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("%w from %s", services.ErrNoPackages, cfg.Compare.URL)
	}

	if err := moveAll(o.files, checkoutDir, packages, req.DistPath); err != nil {
		return nil, err
	}
	return packages, nil
}

func makeTempDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", "relcheck-release-*")
	if err != nil {
		return "", nil, err
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}
