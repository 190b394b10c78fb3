package cmd

import (
	_ "embed"
	"fmt"

	"github.com/ezerfernandes/codefence/internal/docs"
	"github.com/spf13/cobra"
)

//go:embed help/fix.md
var fixHelp string

func fixCmd(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "fix [flags] [filename...]",
		Aliases: []string{"f"},
		Short:   "Normalize whitespace in embedded code blocks",
		Long:    fixHelp,
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, opts, args)
			if err != nil {
				return err
			}

			sess.opts.DryRun = dryRun

			return fixRun(sess, opts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report files that would change without writing them")

	return cmd
}

func fixRun(sess *session, opts *options) error {
	pal := sess.pal
	out := opts.out

	verb := "Fixed"
	if sess.opts.DryRun {
		verb = "Would fix"
	}

	fmt.Fprintf(out, "Fixing code block indentation issues...\n\n")

	var count int

	sess.opts.OnMissing = func(name string) {
		opts.status("skipping %s: not found\n", name)
	}
	sess.opts.OnFix = func(res *docs.Result) {
		if !res.Changed {
			fmt.Fprintf(out, "  No changes: %s\n", pal.faint("%s", res.Path))

			return
		}

		count++

		fmt.Fprintf(out, "%s %s: %s\n", pal.changed("✓"), verb, pal.path("%s", res.Path))
		opts.status("  %d block(s) rewritten\n", res.Blocks)
	}

	if _, err := docs.Fix(sess.fsys, sess.names, sess.opts); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s %d files\n", verb, count)

	return nil
}
