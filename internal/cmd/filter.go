package cmd

import (
	"github.com/ezerfernandes/codefence/internal/fence"
	"github.com/gobwas/glob"
)

type filterFunc func(block *fence.Block) bool

// filter selects blocks whose language matches one of the patterns.
func filter(patterns []string) (filterFunc, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return func(block *fence.Block) bool {
		for _, g := range globs {
			if g.Match(block.Lang) {
				return true
			}
		}

		return false
	}, nil
}
