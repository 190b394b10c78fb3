package indent

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the check that produced an [Issue].
type Kind int

const (
	// MultiSpace marks lines containing three or more consecutive spaces.
	MultiSpace Kind = iota + 1
	// Unindented marks a non-blank line at column zero right after a line
	// opening a brace or bracket.
	Unindented
	// OddIndent marks indentation widths that are not a multiple of the
	// indent unit.
	OddIndent
)

func (k Kind) String() string {
	switch k {
	case MultiSpace:
		return "multi-space"
	case Unindented:
		return "unindented"
	case OddIndent:
		return "odd-indent"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Issue is a suspected formatting defect in a code block. Line numbers are
// 1-based and relative to the start of the block body.
type Issue struct {
	Kind  Kind
	Lines []int

	// Levels holds the offending indentation widths of an OddIndent issue.
	Levels []int
	// Excerpt is the trimmed content of an Unindented line.
	Excerpt string

	// Unit is the indentation step an OddIndent issue was checked against.
	Unit int
}

func (i Issue) String() string {
	switch i.Kind {
	case MultiSpace:
		return "Multiple consecutive spaces on lines: " + intList(i.Lines)
	case Unindented:
		return fmt.Sprintf("Unindented property at line %d: '%s'", i.firstLine(), i.Excerpt)
	case OddIndent:
		if i.Unit == 0 || i.Unit == DefaultUnit {
			return "Odd indentation levels found: " + intList(i.Levels)
		}

		return fmt.Sprintf("Indentation levels not a multiple of %d found: %s", i.Unit, intList(i.Levels))
	default:
		return i.Kind.String()
	}
}

func (i Issue) firstLine() int {
	if len(i.Lines) == 0 {
		return 0
	}

	return i.Lines[0]
}

func intList(values []int) string {
	strs := make([]string, len(values))
	for idx, v := range values {
		strs[idx] = strconv.Itoa(v)
	}

	return "[" + strings.Join(strs, ", ") + "]"
}
