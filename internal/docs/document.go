// Package docs drives the code block scanner and fixer over documentation
// source files.
package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/ezerfernandes/codefence/internal/fence"
	"github.com/ezerfernandes/codefence/internal/indent"
)

// DefaultPreview is the number of characters of a block shown in a report.
const DefaultPreview = 100

// Options control how documents are scanned and fixed.
type Options struct {
	// Component is the tag name delimiting code blocks. Empty means
	// [fence.DefaultComponent].
	Component string
	// Unit is the expected indentation step. Zero means [indent.DefaultUnit].
	Unit int
	// Preview is the length of the report preview. Zero means [DefaultPreview].
	Preview int
	// DryRun reports changes without writing documents back.
	DryRun bool
	// Filter selects the blocks to process. Nil selects every block.
	Filter func(block *fence.Block) bool

	// OnMissing is called by [Scan] and [Fix] for every document that does
	// not exist.
	OnMissing func(name string)
	// OnScan is called by [Scan] after each document has been inspected.
	OnScan func(name string, reports []*Report)
	// OnFix is called by [Fix] after each existing document has been fixed.
	OnFix func(res *Result)
}

func (o *Options) preview() int {
	if o == nil || o.Preview <= 0 {
		return DefaultPreview
	}

	return o.Preview
}

func (o *Options) component() string {
	if o == nil {
		return ""
	}

	return o.Component
}

func (o *Options) inspector() *indent.Inspector {
	if o == nil {
		return &indent.Inspector{}
	}

	return &indent.Inspector{Unit: o.Unit}
}

func (o *Options) selected(block *fence.Block) bool {
	return o == nil || o.Filter == nil || o.Filter(block)
}

func (o *Options) missing(name string) {
	if o != nil && o.OnMissing != nil {
		o.OnMissing(name)
	}
}

type walkFunc func(source []byte, walker fence.Walker) (bool, []byte, error)

// walker returns the block walker that applies to a document, chosen by its
// extension: Markdown fences for .md, component blocks and fences for .mdx,
// and component blocks for everything else.
func walker(name string, component string) walkFunc {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return fence.WalkMarkdown
	case ".mdx":
		return func(source []byte, walker fence.Walker) (bool, []byte, error) {
			return fence.WalkMDX(source, component, walker)
		}
	default:
		return func(source []byte, walker fence.Walker) (bool, []byte, error) {
			return fence.Walk(source, component, walker)
		}
	}
}

// exists reports whether the named document is present. Errors other than
// a missing file are returned.
func exists(fsys fs.FS, name string) (bool, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	if info.IsDir() {
		return false, fmt.Errorf("%s: %w", name, ErrIsDir)
	}

	return true, nil
}

// ErrIsDir is returned when a document path names a directory.
var ErrIsDir = errors.New("is a directory")
