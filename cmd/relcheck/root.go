package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ochairo/relcheck/internal/domain/interfaces"
	"github.com/ochairo/relcheck/internal/external-adapters/logrus"
	"github.com/ochairo/relcheck/internal/external-adapters/yaml"
)

// app carries what every subcommand needs: environment, output and logger
type app struct {
	getenv   func(string) string
	out      io.Writer
	errOut   io.Writer
	parser   *yaml.ConfigParser
	logger   interfaces.Logger
	logLevel string
	dir      string
}

func newRootCmd(getenv func(string) string, out, errOut io.Writer) *cobra.Command {
	a := &app{
		getenv: getenv,
		out:    out,
		errOut: errOut,
		parser: yaml.NewConfigParser(),
		logger: &interfaces.NoOpLogger{},
	}

	root := &cobra.Command{
		Use:   "relcheck",
		Short: "Release verification utilities",
		Long: `relcheck - release verification utilities

Selects the artifacts to publish, prepares release candidates and final
releases, and validates checksums, signatures and file names of a release
directory. Each command is configured through environment variables holding
JSON (or YAML) configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logrus.NewLogger(a.errOut, a.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
			}
			a.logger = logger
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", envOr(getenv, envLogLevel, "info"),
		"log level (debug, info, warn, error), also read from "+envLogLevel)
	root.PersistentFlags().StringVar(&a.dir, "dir", "",
		"directory to operate on (default: the command's path variable, else the current directory)")

	root.AddCommand(
		newFindArtifactsCmd(a),
		newPublishCmd(a),
		newChecksumCmd(a),
		newSignatureCmd(a),
		newAuditCmd(a),
	)
	return root
}

func (a *app) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
