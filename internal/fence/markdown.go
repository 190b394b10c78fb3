package fence

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*([\w+-]+)\s*(.*)\s*`)

// WalkMarkdown parses a Markdown document and calls walker for every fenced
// code block. A modified block is written back line by line, so container
// prefixes such as list indentation or "> " are kept. A block whose line
// count changed is only written back when it is not nested in a container.
func WalkMarkdown(source []byte, walker Walker) (bool, []byte, error) {
	sites, err := markdownSites(source)
	if err != nil {
		return false, nil, err
	}

	return walkSites(source, sites, walker)
}

func markdownSites(source []byte) ([]*site, error) {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	root := parser.Parse(reader).OwnerDocument()

	var sites []*site

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		block := fencedBlock(fcb, source)

		sites = append(sites, &site{
			block:  block,
			start:  block.Offset,
			end:    fencedEnd(fcb, block.Offset),
			splice: fencedSplice(fcb),
		})

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return sites, nil
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		return fcb
	}

	return nil
}

func fencedEnd(fcb *ast.FencedCodeBlock, start int) int {
	lines := fcb.Lines()
	if lines.Len() > 0 {
		return lines.At(lines.Len() - 1).Stop
	}

	if fcb.Info != nil {
		return fcb.Info.Segment.Stop
	}

	return start
}

// fencedSplice maps new code back onto the source line segments of a fence.
// Fences without content, or with padded (tab expanded) lines, are left as
// they are.
func fencedSplice(fcb *ast.FencedCodeBlock) func(code []byte) []*change {
	lines := fcb.Lines()
	segs := make([]text.Segment, lines.Len())

	for i := range segs {
		segs[i] = lines.At(i)
	}

	return func(code []byte) []*change {
		if len(segs) == 0 {
			return nil
		}

		for _, seg := range segs {
			if seg.Padding > 0 {
				return nil
			}
		}

		if parts := splitLines(code); len(parts) == len(segs) {
			changes := make([]*change, len(segs))
			for i, seg := range segs {
				changes[i] = &change{start: seg.Start, stop: seg.Stop, code: parts[i]}
			}

			return changes
		}

		for i := 1; i < len(segs); i++ {
			if segs[i].Start != segs[i-1].Stop {
				return nil
			}
		}

		return []*change{{start: segs[0].Start, stop: segs[len(segs)-1].Stop, code: code}}
	}
}

// splitLines splits code after each newline, without a trailing empty part.
func splitLines(code []byte) [][]byte {
	parts := bytes.SplitAfter(code, []byte{'\n'})
	if len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	return parts
}

func fencedBlock(fcb *ast.FencedCodeBlock, source []byte) *Block {
	var (
		buff  bytes.Buffer
		lang  string
		attrs = Attrs{}
	)

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	if fcb.Info != nil {
		if all := reInfo.FindSubmatch(fcb.Info.Text(source)); all != nil {
			lang = string(all[1])

			if meta, err := parseAttrs(all[2]); err == nil {
				attrs = meta
			}
		}
	}

	block := &Block{Lang: lang, Attrs: attrs, Code: buff.Bytes()}

	if fcb.Info != nil {
		block.Offset = fcb.Info.Segment.Start
		block.StartLine = lineAt(source, fcb.Info.Segment.Start)
	} else if lines.Len() > 0 {
		block.Offset = lines.At(0).Start
		block.StartLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		block.EndLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if block.StartLine > 0 {
		block.EndLine = block.StartLine + 1
	}

	return block
}
