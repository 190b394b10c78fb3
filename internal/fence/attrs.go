package fence

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Attrs holds the attributes of a block's opening tag, or the metadata of a
// Markdown fence info string.
type Attrs map[string]interface{}

// Get returns the attribute value for the given key as a string.
// It returns an empty string if the key is missing or the Attrs is nil.
func (a Attrs) Get(name string) string {
	if a == nil {
		return ""
	}

	value, has := a[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// Has reports whether the attribute is present, with or without a value.
func (a Attrs) Has(name string) bool {
	_, has := a[name]

	return has
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
	reSelfEnd  = regexp.MustCompile(`\s*/\s*$`)
)

func parseAttrs(input []byte) (Attrs, error) {
	input = reSelfEnd.ReplaceAll(input, nil)

	if len(strings.TrimSpace(string(input))) == 0 {
		return Attrs{}, nil
	}

	if reJSON.Match(input) {
		var attrs Attrs

		err := json.Unmarshal(input, &attrs)
		if err != nil {
			return nil, err
		}

		return attrs, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	dict := make(Attrs)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx < 0 {
			dict[word] = true

			continue
		}

		dict[word[:idx]] = unbrace(word[idx+1:])
	}

	return dict, nil
}

// unbrace strips a JSX expression container around a string literal,
// so that language={"ts"} reads the same as language="ts".
func unbrace(value string) string {
	if len(value) >= 2 && value[0] == '{' && value[len(value)-1] == '}' {
		return strings.Trim(value[1:len(value)-1], "\"'`")
	}

	return value
}
