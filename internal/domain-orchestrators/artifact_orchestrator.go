// Package orchestrators coordinates the release workflows across domain services.
package orchestrators

import (
	"fmt"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/domain/interfaces"
	"github.com/ochairo/relcheck/internal/domain/interfaces/gateways"
	"github.com/ochairo/relcheck/internal/domain/services"
)

// ArtifactOrchestrator selects built artifacts and moves them to the dist directory
type ArtifactOrchestrator struct {
	files   gateways.FileStore
	matcher *services.Matcher
	logger  interfaces.Logger
}

// NewArtifactOrchestrator creates a new artifact orchestrator
func NewArtifactOrchestrator(files gateways.FileStore, matcher *services.Matcher, logger interfaces.Logger) *ArtifactOrchestrator {
	return &ArtifactOrchestrator{
		files:   files,
		matcher: matcher,
		logger:  interfaces.OrNoOp(logger),
	}
}

// SelectionResult lists the files moved to the dist directory
type SelectionResult struct {
	Selected []string
	Excluded []string
	DistPath string
}

// FindArtifacts lists dir, drops files matching cfg.Exclude and moves the
// remainder to distPath
func (o *ArtifactOrchestrator) FindArtifacts(cfg *entities.ArtifactsConfig, dir, distPath string) (*SelectionResult, error) {
	if distPath == "" {
		return nil, fmt.Errorf("dist path is not set")
	}
	if cfg.Description != "" {
		o.logger.Info(cfg.Description)
	}

	files, err := o.files.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", services.ErrNoFiles, dir)
	}

	excluded, selected, err := o.matcher.Split(files, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	if len(excluded) > 0 {
		o.logger.Info("Following packages excluded", interfaces.F("files", excluded))
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w from %s", services.ErrNoPackages, dir)
	}

	if err := moveAll(o.files, dir, selected, distPath); err != nil {
		return nil, err
	}

	return &SelectionResult{
		Selected: selected,
		Excluded: excluded,
		DistPath: distPath,
	}, nil
}

// moveAll creates destDir and moves each named file from srcDir into it
func moveAll(files gateways.FileStore, srcDir string, names []string, destDir string) error {
	if err := files.EnsureDir(destDir); err != nil {
		return fmt.Errorf("failed to create %s: %w", destDir, err)
	}
	for _, name := range names {
		if err := files.MoveFile(srcDir, name, destDir); err != nil {
			return fmt.Errorf("failed to move %s to %s: %w", name, destDir, err)
		}
	}
	return nil
}
