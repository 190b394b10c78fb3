package indent_test

import (
	"testing"

	"github.com/ezerfernandes/codefence/internal/indent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectClean(t *testing.T) {
	t.Parallel()

	code := "\nconst agent = new Agent({\n  name: 'assistant',\n  model: 'gpt-4',\n});\n"

	assert.Empty(t, indent.Inspect(code))
}

func TestInspectMultiSpace(t *testing.T) {
	t.Parallel()

	issues := indent.Inspect("a\nx    y\nb\nc   d")
	require.Len(t, issues, 1)

	assert.Equal(t, indent.MultiSpace, issues[0].Kind)
	assert.Equal(t, []int{2, 4}, issues[0].Lines)
	assert.Equal(t, "Multiple consecutive spaces on lines: [2, 4]", issues[0].String())
}

func TestInspectUnindented(t *testing.T) {
	t.Parallel()

	code := "const a = {\nfoo: 1,\n};\nconst b = [\n]\nconst c = {\n// comment\n}\nlist = [  \n\n  ok\n]\nx = {\n}"

	issues := indent.Inspect(code)
	require.Len(t, issues, 1)

	assert.Equal(t, indent.Unindented, issues[0].Kind)
	assert.Equal(t, []int{2}, issues[0].Lines)
	assert.Equal(t, "Unindented property at line 2: 'foo: 1,'", issues[0].String())
}

func TestInspectUnindentedExcerpt(t *testing.T) {
	t.Parallel()

	long := "property: 'aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa'"

	issues := indent.Inspect("{\n" + long)
	require.Len(t, issues, 1)
	assert.Equal(t, long[:50], issues[0].Excerpt)
}

func TestInspectOddIndent(t *testing.T) {
	t.Parallel()

	code := "a {\n  b {\n     c\n   d\n  }\n   // ignored\n}"

	issues := indent.Inspect(code)
	require.Len(t, issues, 2)

	assert.Equal(t, indent.MultiSpace, issues[0].Kind)
	assert.Equal(t, []int{3, 4, 6}, issues[0].Lines)

	assert.Equal(t, indent.OddIndent, issues[1].Kind)
	assert.Equal(t, []int{3, 5}, issues[1].Levels)
	assert.Equal(t, "Odd indentation levels found: [3, 5]", issues[1].String())
}

func TestInspectSingleOddLevel(t *testing.T) {
	t.Parallel()

	// one distinct level is never flagged, whatever its width
	assert.Empty(t, indent.Inspect("a\n b\n c"))
}

func TestInspectUnit(t *testing.T) {
	t.Parallel()

	code := "a\n  b\n    c\n      d"

	inspector := &indent.Inspector{Unit: 4}

	issues := inspector.Inspect(code)
	require.Len(t, issues, 2)

	assert.Equal(t, indent.OddIndent, issues[1].Kind)
	assert.Equal(t, []int{2, 6}, issues[1].Levels)
	assert.Equal(t, "Indentation levels not a multiple of 4 found: [2, 6]", issues[1].String())
}

func TestInspectDoesNotModify(t *testing.T) {
	t.Parallel()

	code := "{\nx    y\n   z\n}"
	copied := string([]byte(code))

	indent.Inspect(code)
	assert.Equal(t, copied, code)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "multi-space", indent.MultiSpace.String())
	assert.Equal(t, "unindented", indent.Unindented.String())
	assert.Equal(t, "odd-indent", indent.OddIndent.String())
	assert.Equal(t, "kind(9)", indent.Kind(9).String())
}
