package cmd

import (
	"github.com/ezerfernandes/codefence/internal/config"
	"github.com/ezerfernandes/codefence/internal/docs"
	"github.com/spf13/cobra"
)

const configName = config.Filename

// session is the resolved input of one scan or fix run.
type session struct {
	fsys  docs.FS
	names []string
	opts  *docs.Options
	pal   *palette
}

func loadConfig(opts *options) (*config.Config, error) {
	if len(opts.configFile) != 0 {
		return config.Load(opts.configFile)
	}

	return config.Discover(".")
}

func newSession(cmd *cobra.Command, opts *options, args []string) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(cfg.Path) != 0 {
		opts.status("using %s\n", cfg.Path)
	}

	flags := cmd.Flags()

	sel := docs.Selection{Files: cfg.Files, Include: cfg.Include, Exclude: cfg.Exclude}
	root := cfg.Root

	if len(args) != 0 {
		// explicit paths are relative to the working directory
		sel.Files = args
		root = "."
	}

	if flags.Changed("root") {
		root = opts.root
	}

	if flags.Changed("include") {
		sel.Include = opts.include
	}

	if flags.Changed("exclude") {
		sel.Exclude = opts.exclude
	}

	if len(sel.Files) == 0 && len(sel.Include) == 0 {
		sel.Files = docs.DefaultFiles
	}

	fsys := docs.OS(root)

	names, err := docs.Resolve(fsys, sel)
	if err != nil {
		return nil, err
	}

	dopts := &docs.Options{
		Component: cfg.Component,
		Unit:      cfg.Indent,
		Preview:   cfg.Preview,
	}

	if flags.Changed("component") {
		dopts.Component = opts.component
	}

	if flags.Changed("indent") {
		dopts.Unit = opts.indent
	}

	if flags.Changed("preview") {
		dopts.Preview = opts.preview
	}

	if dopts.Filter, err = filter(opts.lang); err != nil {
		return nil, err
	}

	pal, err := newPalette(opts.color, opts.out)
	if err != nil {
		return nil, err
	}

	return &session{fsys: fsys, names: names, opts: dopts, pal: pal}, nil
}
