package gateways

import (
	"context"
	"fmt"
	"strings"
)

// commandRunner is the subset of CommandExecutor used for checkouts
type commandRunner interface {
	Execute(ctx context.Context, config CommandConfig) *ExecuteResult
}

// SVNCheckout checks out a remote release directory with the svn client
type SVNCheckout struct {
	runner commandRunner
	binary string
}

// NewSVNCheckout creates a checkout gateway running the given executor
func NewSVNCheckout(runner commandRunner) *SVNCheckout {
	return &SVNCheckout{
		runner: runner,
		binary: "svn",
	}
}

// Checkout runs `svn checkout <url> <destDir>`. A failing checkout is fatal:
// an empty or partial release listing would silently turn into "no match".
func (s *SVNCheckout) Checkout(ctx context.Context, url, destDir string) error {
	if url == "" {
		return fmt.Errorf("checkout URL is empty")
	}

	result := s.runner.Execute(ctx, CommandConfig{
		Name:        s.binary,
		Args:        []string{"checkout", "--non-interactive", url, destDir},
		Description: fmt.Sprintf("Checking out release files from %s to %s", url, destDir),
	})

	if !result.Success {
		return fmt.Errorf("svn checkout of %s failed (exit %d): %w\nStderr: %s",
			url, result.ExitCode, result.Error, strings.TrimSpace(result.Stderr))
	}
	return nil
}
