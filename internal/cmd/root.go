// Package cmd implements the codefence command line.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

type statusFunc func(format string, args ...interface{})

type options struct {
	configFile string
	root       string
	component  string
	indent     int
	preview    int
	include    []string
	exclude    []string
	lang       []string
	quiet      bool
	color      string

	status statusFunc
	out    io.Writer
}

func (opts *options) createStatus(writer io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(writer, format, args...)
	}
}

// errIssuesFound makes the process exit with a failure status without
// printing an error message; the report already explains it.
var errIssuesFound = errors.New("formatting issues found")

func rootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "codefence",
		Short: "Lint and normalize code samples embedded in documentation pages",
		Long:  rootHelp,

		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	flags := root.PersistentFlags()

	flags.StringVarP(&opts.configFile, "config", "c", "", "configuration file (default: nearest "+configName+")")
	flags.StringVarP(&opts.root, "root", "r", "", "directory document paths are relative to")
	flags.StringVar(&opts.component, "component", "", "tag name of the code block component (default \"CodeBlock\")")
	flags.IntVar(&opts.indent, "indent", 0, "expected indentation step (default 2)")
	flags.IntVar(&opts.preview, "preview", 0, "length of block previews in reports (default 100)")
	flags.StringSliceVarP(&opts.include, "include", "i", nil, "glob patterns of documents to add")
	flags.StringSliceVarP(&opts.exclude, "exclude", "x", nil, "glob patterns of documents to skip")
	flags.StringSliceVarP(&opts.lang, "lang", "l", nil, "only process blocks whose language matches one of the glob patterns")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
	flags.StringVar(&opts.color, "color", colorAuto, "colorize output (auto|on|off)")

	root.AddCommand(scanCmd(opts), fixCmd(opts))

	return root
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{out: stdout}

	root := rootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	if !errors.Is(err, errIssuesFound) {
		fmt.Fprintln(stderr, "Error:", err)
	}

	return 1
}
