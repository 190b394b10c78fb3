package fence

import (
	"bytes"
	"errors"
	"regexp"
)

// DefaultComponent is the tag name of the code sample component.
const DefaultComponent = "CodeBlock"

const (
	openDelim  = "{`"
	closeDelim = "`}"
)

var reComponent = regexp.MustCompile(`^[A-Za-z_$][\w$.]*$`)

// ErrInvalidComponent is returned when a component name is not a valid tag name.
var ErrInvalidComponent = errors.New("invalid component name")

// marker locates component-delimited code regions in a document:
//
//	<CodeBlock language="ts">{`
//	  body
//	`}</CodeBlock>
type marker struct {
	open  []byte
	close []byte
}

// region is the position of one matched marker pair. The body is
// source[bodyStart:bodyEnd].
type region struct {
	start     int
	attrStart int
	attrEnd   int
	bodyStart int
	bodyEnd   int
	end       int
}

func newMarker(component string) (*marker, error) {
	if len(component) == 0 {
		component = DefaultComponent
	}

	if !reComponent.MatchString(component) {
		return nil, ErrInvalidComponent
	}

	return &marker{
		open:  []byte("<" + component),
		close: []byte("</" + component + ">"),
	}, nil
}

// next returns the first complete region at or after pos.
func (m *marker) next(source []byte, pos int) (region, bool) {
	for pos < len(source) {
		idx := bytes.Index(source[pos:], m.open)
		if idx < 0 {
			return region{}, false
		}

		start := pos + idx

		if reg, ok := m.match(source, start); ok {
			return reg, true
		}

		pos = start + 1
	}

	return region{}, false
}

// match tries to match a region whose opening tag begins at start.
func (m *marker) match(source []byte, start int) (region, bool) {
	reg := region{start: start, attrStart: start + len(m.open)}

	if reg.attrStart < len(source) && !isTagBoundary(source[reg.attrStart]) {
		return region{}, false
	}

	gt := bytes.IndexByte(source[reg.attrStart:], '>')
	if gt < 0 {
		return region{}, false
	}

	reg.attrEnd = reg.attrStart + gt

	pos := skipSpace(source, reg.attrEnd+1)
	if !bytes.HasPrefix(source[pos:], []byte(openDelim)) {
		return region{}, false
	}

	reg.bodyStart = pos + len(openDelim)

	for pos = reg.bodyStart; pos < len(source); {
		idx := bytes.Index(source[pos:], []byte(closeDelim))
		if idx < 0 {
			return region{}, false
		}

		bodyEnd := pos + idx
		after := skipSpace(source, bodyEnd+len(closeDelim))

		if bytes.HasPrefix(source[after:], m.close) {
			reg.bodyEnd = bodyEnd
			reg.end = after + len(m.close)

			return reg, true
		}

		pos = bodyEnd + 1
	}

	return region{}, false
}

func (m *marker) all(source []byte) []region {
	var regions []region

	for pos := 0; ; {
		reg, ok := m.next(source, pos)
		if !ok {
			return regions
		}

		regions = append(regions, reg)
		pos = reg.end
	}
}

func isTagBoundary(c byte) bool {
	return c == '>' || c == '/' || isSpace(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}

	return false
}

func skipSpace(source []byte, pos int) int {
	for pos < len(source) && isSpace(source[pos]) {
		pos++
	}

	return pos
}
