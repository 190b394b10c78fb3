package fence_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/ezerfernandes/codefence/internal/fence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `import { CodeBlock } from './Section';

export default function Page() {
  return (
    <div>
      <CodeBlock language="typescript">
        {` + "`" + `const a = 1;
const b = 2;` + "`" + `}
      </CodeBlock>
      <p>between</p>
      <CodeBlock language={"bash"} showLineNumbers>{` + "`" + `npm install` + "`" + `}</CodeBlock>
    </div>
  );
}
`

func TestExtract(t *testing.T) {
	t.Parallel()

	blocks, err := fence.Extract([]byte(page), "")
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "const a = 1;\nconst b = 2;", string(blocks[0].Code))
	assert.Equal(t, "typescript", blocks[0].Lang)
	assert.Equal(t, 6, blocks[0].StartLine)
	assert.Equal(t, 9, blocks[0].EndLine)
	assert.Equal(t, bytes.Index([]byte(page), []byte("<CodeBlock language=\"typescript\"")), blocks[0].Offset)

	assert.Equal(t, "npm install", string(blocks[1].Code))
	assert.Equal(t, "bash", blocks[1].Lang)
	assert.True(t, blocks[1].Attrs.Has("showLineNumbers"))
	assert.Equal(t, 11, blocks[1].StartLine)
}

func TestExtractSkipsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "no template literal",
			source: "<CodeBlock language=\"ts\">plain text</CodeBlock>",
		},
		{
			name:   "missing closing tag",
			source: "<CodeBlock>{`a`}",
		},
		{
			name:   "self closing",
			source: "<CodeBlock code={x} />",
		},
		{
			name:   "other component",
			source: "<CodeBlockGroup>{`a`}</CodeBlockGroup>",
		},
		{
			name:   "malformed then valid",
			source: "<CodeBlock>oops</CodeBlock>\n<CodeBlock>{`ok`}</CodeBlock>",
			want:   []string{"ok"},
		},
		{
			name:   "backtick brace inside body",
			source: "<CodeBlock>{`x = `}` y`}</CodeBlock>",
			want:   []string{"x = `}` y"},
		},
		{
			name:   "empty body",
			source: "<CodeBlock>{``}</CodeBlock><CodeBlock>{`b`}</CodeBlock>",
			want:   []string{"", "b"},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks, err := fence.Extract([]byte(tt.source), "")
			require.NoError(t, err)

			var got []string
			for _, block := range blocks {
				got = append(got, string(block.Code))
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCustomComponent(t *testing.T) {
	t.Parallel()

	blocks, err := fence.Extract([]byte("<Code>{`a`}</Code><CodeBlock>{`b`}</CodeBlock>"), "Code")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "a", string(blocks[0].Code))

	_, err = fence.Extract([]byte("x"), "<bad>")
	assert.ErrorIs(t, err, fence.ErrInvalidComponent)
}

func TestWalk(t *testing.T) {
	t.Parallel()

	modified, result, err := fence.Walk([]byte(page), "", func(block *fence.Block) error {
		if block.Lang == "bash" {
			block.Code = []byte("pnpm add")
		}

		return nil
	})
	require.NoError(t, err)
	assert.True(t, modified)
	assert.Equal(t, bytes.Replace([]byte(page), []byte("npm install"), []byte("pnpm add"), 1), result)
}

func TestWalkUnmodified(t *testing.T) {
	t.Parallel()

	modified, result, err := fence.Walk([]byte(page), "", func(*fence.Block) error { return nil })
	require.NoError(t, err)
	assert.False(t, modified)
	assert.Nil(t, result)
}

func TestWalkError(t *testing.T) {
	t.Parallel()

	errStop := assert.AnError

	_, _, err := fence.Walk([]byte(page), "", func(*fence.Block) error { return errStop })
	assert.ErrorIs(t, err, errStop)
}

const markdown = "# Title\n\n```ts title=\"a.ts\"\nconst x =   1;\n```\n\ntext\n\n```\nplain\n```\n"

func TestExtractMarkdown(t *testing.T) {
	t.Parallel()

	blocks, err := fence.ExtractMarkdown([]byte(markdown))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "ts", blocks[0].Lang)
	assert.Equal(t, "a.ts", blocks[0].Attrs.Get("title"))
	assert.Equal(t, "const x =   1;\n", string(blocks[0].Code))
	assert.Equal(t, 3, blocks[0].StartLine)

	assert.Equal(t, "", blocks[1].Lang)
	assert.Equal(t, "plain\n", string(blocks[1].Code))
}

func TestWalkMarkdown(t *testing.T) {
	t.Parallel()

	modified, result, err := fence.WalkMarkdown([]byte(markdown), func(block *fence.Block) error {
		block.Code = bytes.ReplaceAll(block.Code, []byte("   "), []byte(" "))

		return nil
	})
	require.NoError(t, err)
	assert.True(t, modified)
	assert.Equal(t, "# Title\n\n```ts title=\"a.ts\"\nconst x = 1;\n```\n\ntext\n\n```\nplain\n```\n", string(result))
}

var reRun = regexp.MustCompile(`   +`)

func collapse(block *fence.Block) error {
	block.Code = reRun.ReplaceAll(block.Code, []byte(" "))

	return nil
}

func TestWalkMarkdownContainers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "list item",
			source: "- step\n\n  ```ts\n  const a = {\n    b:    1,\n  };\n  ```\n",
			want:   "- step\n\n  ```ts\n  const a = {\n    b: 1,\n  };\n  ```\n",
		},
		{
			name:   "blockquote",
			source: "> ```ts\n> x    y\n> z\n> ```\n",
			want:   "> ```ts\n> x y\n> z\n> ```\n",
		},
		{
			name:   "nested list",
			source: "1. one\n   - two\n\n     ```\n     p    q\n       r    s\n     ```\n",
			want:   "1. one\n   - two\n\n     ```\n     p q\n       r s\n     ```\n",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			modified, result, err := fence.WalkMarkdown([]byte(tt.source), collapse)
			require.NoError(t, err)
			assert.True(t, modified)
			assert.Equal(t, tt.want, string(result))
		})
	}
}

func TestWalkMarkdownLineCountChange(t *testing.T) {
	t.Parallel()

	drop := func(block *fence.Block) error {
		block.Code = []byte("a\n")

		return nil
	}

	modified, result, err := fence.WalkMarkdown([]byte("```\na\nb\n```\n"), drop)
	require.NoError(t, err)
	assert.True(t, modified)
	assert.Equal(t, "```\na\n```\n", string(result))

	// lines of a quoted fence are not contiguous, so it cannot be rewritten as a whole
	modified, result, err = fence.WalkMarkdown([]byte("> ```\n> a\n> b\n> ```\n"), drop)
	require.NoError(t, err)
	assert.False(t, modified)
	assert.Nil(t, result)
}

const mdx = "<CodeBlock language=\"md\">{`\n\n```bash\nnpm    i\n```\n`}</CodeBlock>\n\n" +
	"```tsx\n<CodeBlock>{`x    y`}</CodeBlock>\n```\n\n" +
	"```sh\nls    -l\n```\n"

func TestExtractMDX(t *testing.T) {
	t.Parallel()

	blocks, err := fence.ExtractMDX([]byte(mdx), "")
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Equal(t, "md", blocks[0].Lang)
	assert.Equal(t, 1, blocks[0].StartLine)
	assert.Equal(t, "tsx", blocks[1].Lang)
	assert.Equal(t, 8, blocks[1].StartLine)
	assert.Equal(t, "sh", blocks[2].Lang)
	assert.Equal(t, 12, blocks[2].StartLine)
}

func TestWalkMDX(t *testing.T) {
	t.Parallel()

	modified, result, err := fence.WalkMDX([]byte(mdx), "", collapse)
	require.NoError(t, err)
	assert.True(t, modified)
	assert.Equal(t, "<CodeBlock language=\"md\">{`\n\n```bash\nnpm i\n```\n`}</CodeBlock>\n\n"+
		"```tsx\n<CodeBlock>{`x y`}</CodeBlock>\n```\n\n"+
		"```sh\nls -l\n```\n", string(result))
}
