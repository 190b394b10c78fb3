package docs

import (
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/ezerfernandes/codefence/internal/fence"
	"github.com/ezerfernandes/codefence/internal/indent"
)

// Report lists the issues found in one code block.
type Report struct {
	Path    string
	Line    int
	Lang    string
	Issues  []indent.Issue
	Preview string
}

// ScanFile inspects every code block of the named document. A missing
// document yields no reports and found == false.
func ScanFile(fsys fs.FS, name string, opts *Options) (reports []*Report, found bool, err error) {
	if found, err = exists(fsys, name); err != nil || !found {
		return nil, found, err
	}

	source, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, true, err
	}

	inspector := opts.inspector()
	walk := walker(name, opts.component())

	_, _, err = walk(source, func(block *fence.Block) error {
		if !opts.selected(block) {
			return nil
		}

		code := string(block.Code)

		issues := inspector.Inspect(code)
		if len(issues) == 0 {
			return nil
		}

		reports = append(reports, &Report{
			Path:    name,
			Line:    block.StartLine,
			Lang:    block.Lang,
			Issues:  issues,
			Preview: preview(code, opts.preview()),
		})

		return nil
	})
	if err != nil {
		return nil, true, err
	}

	return reports, true, nil
}

// Scan inspects every named document in order and returns all reports.
// Missing documents are skipped; the first error aborts the run and is
// returned together with the reports gathered so far.
func Scan(fsys fs.FS, names []string, opts *Options) ([]*Report, error) {
	var all []*Report

	for _, name := range names {
		reports, found, err := ScanFile(fsys, name, opts)
		if err != nil {
			return all, err
		}

		if !found {
			opts.missing(name)

			continue
		}

		if opts != nil && opts.OnScan != nil {
			opts.OnScan(name, reports)
		}

		all = append(all, reports...)
	}

	return all, nil
}

func preview(code string, n int) string {
	if utf8.RuneCountInString(code) > n {
		code = string([]rune(code)[:n])
	}

	return strings.ReplaceAll(code, "\n", `\n`)
}
