package cmd

import (
	_ "embed"

	"github.com/ezerfernandes/codefence/internal/docs"
	"github.com/spf13/cobra"
)

//go:embed help/scan.md
var scanHelp string

func scanCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "scan [flags] [filename...]",
		Aliases: []string{"s", "check"},
		Short:   "Report formatting issues in embedded code blocks",
		Long:    scanHelp,
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			render, err := reporter(format)
			if err != nil {
				return err
			}

			sess, err := newSession(cmd, opts, args)
			if err != nil {
				return err
			}

			return scanRun(sess, opts, render)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "report format (text|table)")

	return cmd
}

func scanRun(sess *session, opts *options, render renderFunc) error {
	sess.opts.OnMissing = func(name string) {
		opts.status("skipping %s: not found\n", name)
	}

	reports, err := docs.Scan(sess.fsys, sess.names, sess.opts)
	if err != nil {
		return err
	}

	if err := render(opts.out, sess.pal, reports); err != nil {
		return err
	}

	if len(reports) != 0 {
		return errIssuesFound
	}

	return nil
}
