package indent

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultUnit is the indentation step assumed by [Inspect].
const DefaultUnit = 2

const excerptLen = 50

// Inspector reports formatting issues of code blocks without modifying them.
type Inspector struct {
	// Unit is the expected indentation step. Zero means [DefaultUnit].
	Unit int
}

// Inspect runs every check on code using the default indentation unit.
func Inspect(code string) []Issue {
	return (&Inspector{}).Inspect(code)
}

// Inspect runs every check on code and returns the issues found, in check
// order. A clean block yields nil.
func (in *Inspector) Inspect(code string) []Issue {
	lines := strings.Split(code, "\n")

	var issues []Issue

	issues = append(issues, multiSpace(lines)...)
	issues = append(issues, unindented(lines)...)
	issues = append(issues, in.oddIndent(lines)...)

	return issues
}

func (in *Inspector) unit() int {
	if in.Unit <= 0 {
		return DefaultUnit
	}

	return in.Unit
}

func multiSpace(lines []string) []Issue {
	var found []int

	for idx, line := range lines {
		if strings.Contains(line, "   ") {
			found = append(found, idx+1)
		}
	}

	if len(found) == 0 {
		return nil
	}

	return []Issue{{Kind: MultiSpace, Lines: found}}
}

func unindented(lines []string) []Issue {
	var issues []Issue

	for idx := 1; idx < len(lines); idx++ {
		prev := strings.TrimRightFunc(lines[idx-1], unicode.IsSpace)
		if !strings.HasSuffix(prev, "{") && !strings.HasSuffix(prev, "[") {
			continue
		}

		line := lines[idx]
		if isBlank(line) || len(leading(line)) > 0 {
			continue
		}

		content := strings.TrimSpace(line)
		if strings.HasPrefix(content, "/") || strings.HasPrefix(content, "}") || strings.HasPrefix(content, "]") {
			continue
		}

		issues = append(issues, Issue{Kind: Unindented, Lines: []int{idx + 1}, Excerpt: truncate(content, excerptLen)})
	}

	return issues
}

func (in *Inspector) oddIndent(lines []string) []Issue {
	seen := make(map[int]struct{})

	for _, line := range lines {
		content := strings.TrimSpace(line)
		if len(content) == 0 || strings.HasPrefix(content, "//") {
			continue
		}

		if width := utf8.RuneCountInString(leading(line)); width > 0 {
			seen[width] = struct{}{}
		}
	}

	if len(seen) < 2 {
		return nil
	}

	unit := in.unit()

	var odd []int

	for width := range seen {
		if width%unit != 0 {
			odd = append(odd, width)
		}
	}

	if len(odd) == 0 {
		return nil
	}

	sort.Ints(odd)

	return []Issue{{Kind: OddIndent, Levels: odd, Unit: unit}}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}
