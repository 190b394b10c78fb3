// Package indent normalizes and lints the whitespace of embedded code samples.
package indent

import (
	"regexp"
	"strings"
	"unicode"
)

var reSpaceRun = regexp.MustCompile(`   +`)

// Normalize collapses every run of three or more spaces after a line's
// indentation to a single space and empties whitespace-only lines. The
// indentation itself and the number of lines are left untouched.
func Normalize(code string) string {
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		lines[i] = normalizeLine(line)
	}

	return strings.Join(lines, "\n")
}

func normalizeLine(line string) string {
	if isBlank(line) {
		return ""
	}

	content := strings.TrimLeftFunc(line, unicode.IsSpace)
	lead := line[:len(line)-len(content)]

	return lead + reSpaceRun.ReplaceAllString(content, " ")
}

func isBlank(line string) bool {
	return len(strings.TrimSpace(line)) == 0
}

func leading(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}
