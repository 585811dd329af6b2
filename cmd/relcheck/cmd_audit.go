package main

import (
	"github.com/spf13/cobra"
)

func newAuditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check that REPO_PATH only holds expected file names and extensions",
		Long: `Runs each configured check against the file names of the release directory.
An "extension" check reports files matching none of its identifiers as
unknown extensions; a "package_name" check reports them as unknown files.

Environment:
  SVN_CHECK_CONFIG  [{"id": "extension|package_name", "description": "...",
                      "identifiers": [{"type": "regex", "pattern": "..."}]}]
  REPO_PATH         release directory (default: --dir or the current directory)`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runAudit()
		},
	}
}

func (a *app) runAudit() error {
	raw, err := a.requireEnv(envAuditConfig)
	if err != nil {
		return err
	}
	checks, err := a.parser.ParseAuditChecks([]byte(raw))
	if err != nil {
		return err
	}

	result, err := a.newVerificationOrchestrator().AuditNames(a.workDir(envRepoPath), checks)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}

	a.printf("✅ All files have expected names and extensions\n")
	return nil
}
