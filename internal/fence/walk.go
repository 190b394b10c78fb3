package fence

import "bytes"

// Walker is a callback invoked for each code block found in a document. The
// walker may modify block.Code in place; any changes are written back into
// the document by [Walk].
type Walker func(block *Block) error

type change struct {
	start int
	stop  int
	code  []byte
}

func (c *change) sizeIncrement() int {
	return len(c.code) - (c.stop - c.start)
}

// site is a located block together with the way its code is written back.
// The block spans source[start:end].
type site struct {
	block  *Block
	start  int
	end    int
	splice func(code []byte) []*change
}

// Walk scans a document for component-delimited code blocks and calls walker
// for each of them, in document order. If the walker modifies any block's
// Code, Walk returns true and the updated document. When no blocks are
// modified, it returns false and a nil slice.
func Walk(source []byte, component string, walker Walker) (bool, []byte, error) {
	mark, err := newMarker(component)
	if err != nil {
		return false, nil, err
	}

	return walkSites(source, componentSites(source, mark), walker)
}

// walkSites calls walker for every site in order and applies the resulting
// changes. Sites must be ordered and must not overlap.
func walkSites(source []byte, sites []*site, walker Walker) (bool, []byte, error) {
	var changes []*change

	for _, s := range sites {
		code := s.block.Code

		if err := walker(s.block); err != nil {
			return false, nil, err
		}

		if !bytes.Equal(code, s.block.Code) {
			changes = append(changes, s.splice(s.block.Code)...)
		}
	}

	if len(changes) == 0 {
		return false, nil, nil
	}

	return true, applyChanges(changes, source), nil
}

func componentSites(source []byte, mark *marker) []*site {
	regions := mark.all(source)
	sites := make([]*site, 0, len(regions))

	for _, reg := range regions {
		reg := reg

		sites = append(sites, &site{
			block: extractBlock(reg, source),
			start: reg.start,
			end:   reg.end,
			splice: func(code []byte) []*change {
				return []*change{{start: reg.bodyStart, stop: reg.bodyEnd, code: code}}
			},
		})
	}

	return sites
}

func extractBlock(reg region, source []byte) *Block {
	attrs, err := parseAttrs(source[reg.attrStart:reg.attrEnd])
	if err != nil {
		// unparsable attributes do not make the block itself invalid
		attrs = Attrs{}
	}

	code := make([]byte, reg.bodyEnd-reg.bodyStart)
	copy(code, source[reg.bodyStart:reg.bodyEnd])

	return &Block{
		Lang:      attrs.Get("language"),
		Attrs:     attrs,
		Code:      code,
		Offset:    reg.start,
		StartLine: lineAt(source, reg.start),
		EndLine:   lineAt(source, reg.end),
	}
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func applyChanges(changes []*change, source []byte) []byte {
	resSize := len(source)

	for _, change := range changes {
		resSize += change.sizeIncrement()
	}

	result := make([]byte, resSize)

	var srcIdx, resIdx int

	for _, change := range changes {
		copy(result[resIdx:], source[srcIdx:change.start])
		resIdx += (change.start - srcIdx)

		copy(result[resIdx:], change.code)
		resIdx += len(change.code)

		srcIdx = change.stop
	}

	copy(result[resIdx:], source[srcIdx:])

	return result
}
