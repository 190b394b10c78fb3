package docs

import (
	"io/fs"

	"github.com/ezerfernandes/codefence/internal/fence"
	"github.com/ezerfernandes/codefence/internal/indent"
)

// Result is the outcome of fixing one document.
type Result struct {
	Path string
	// Found is false when the document does not exist.
	Found bool
	// Changed is true when normalization altered the document.
	Changed bool
	// Blocks is the number of blocks whose code was rewritten.
	Blocks int
}

const defaultPerm fs.FileMode = 0o644

// FixFile normalizes every code block of the named document and writes it
// back only when its content changed.
func FixFile(fsys FS, name string, opts *Options) (*Result, error) {
	res := &Result{Path: name}

	found, err := exists(fsys, name)
	if err != nil || !found {
		return res, err
	}

	res.Found = true

	source, err := fs.ReadFile(fsys, name)
	if err != nil {
		return res, err
	}

	walk := walker(name, opts.component())

	modified, content, err := walk(source, func(block *fence.Block) error {
		if !opts.selected(block) {
			return nil
		}

		code := indent.Normalize(string(block.Code))
		if code != string(block.Code) {
			block.Code = []byte(code)
			res.Blocks++
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	res.Changed = modified

	if !res.Changed || (opts != nil && opts.DryRun) {
		return res, nil
	}

	perm := defaultPerm
	if info, err := fs.Stat(fsys, name); err == nil {
		perm = info.Mode().Perm()
	}

	return res, fsys.WriteFile(name, content, perm)
}

// Fix normalizes every named document in order. Missing documents are
// skipped; the first I/O error aborts the run and is returned together with
// the results of the documents processed before it.
func Fix(fsys FS, names []string, opts *Options) ([]*Result, error) {
	results := make([]*Result, 0, len(names))

	for _, name := range names {
		res, err := FixFile(fsys, name, opts)
		if err != nil {
			return results, err
		}

		results = append(results, res)

		switch {
		case !res.Found:
			opts.missing(name)
		case opts != nil && opts.OnFix != nil:
			opts.OnFix(res)
		}
	}

	return results, nil
}
