package docs

import (
	"io/fs"
	"path"

	"github.com/gobwas/glob"
)

// DefaultFiles are the documentation pages processed when nothing else is
// configured.
var DefaultFiles = []string{
	"app/docs/acp-integration/page.tsx",
	"app/docs/agents/page.tsx",
	"app/docs/cli/page.tsx",
	"app/docs/conversation/page.tsx",
	"app/docs/formatting/page.tsx",
	"app/docs/installation/page.tsx",
	"app/docs/local-models/page.tsx",
	"app/docs/local-providers/page.tsx",
	"app/docs/mcp-overview/page.tsx",
	"app/docs/mcp-servers/page.tsx",
	"app/docs/memory/page.tsx",
	"app/docs/multi-tenancy/page.tsx",
	"app/docs/nestjs/page.tsx",
	"app/docs/observability/page.tsx",
	"app/docs/providers/page.tsx",
	"app/docs/quick-start/page.tsx",
	"app/docs/tools/page.tsx",
	"app/docs/workflows/page.tsx",
}

// Selection describes which documents to process.
type Selection struct {
	// Files are processed in the given order.
	Files []string
	// Include patterns select additional documents found under the root.
	Include []string
	// Exclude patterns remove documents from both Files and Include matches.
	Exclude []string
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// Resolve returns the ordered, de-duplicated list of document names for sel.
// Explicit files come first, followed by include matches in lexical order.
func Resolve(fsys fs.FS, sel Selection) ([]string, error) {
	include, err := compile(sel.Include)
	if err != nil {
		return nil, err
	}

	exclude, err := compile(sel.Exclude)
	if err != nil {
		return nil, err
	}

	var names []string

	seen := make(map[string]struct{})

	add := func(name string) {
		name = path.Clean(name)

		if _, dup := seen[name]; dup || matchAny(exclude, name) {
			return
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, name := range sel.Files {
		add(name)
	}

	if len(include) == 0 {
		return names, nil
	}

	err = fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if name != "." && (entry.Name() == "node_modules" || entry.Name()[0] == '.') {
				return fs.SkipDir
			}

			return nil
		}

		if matchAny(include, name) {
			add(name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}
