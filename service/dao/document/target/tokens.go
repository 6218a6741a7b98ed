package target

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	slashCode
	qnameCode
	selectorCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	slashToken      = parsly.NewToken(slashCode, "/", matcher.NewByte('/'))
	qnameToken      = parsly.NewToken(qnameCode, "QName", newQNameMatcher())
	selectorToken   = parsly.NewToken(selectorCode, "NameSelector", newSelectorMatcher())
)

func newQNameMatcher() parsly.Matcher {
	return &qnameMatcher{}
}

func newSelectorMatcher() parsly.Matcher {
	return &selectorMatcher{}
}

// qnameMatcher matches an XML qualified name with an optional single prefix
// (e.g. cellml:component).
type qnameMatcher struct{}

func (m *qnameMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}
	if !isNameStart(input[pos]) {
		return 0
	}

	matched := 1
	prefixed := false
	for i := pos + 1; i < size; i++ {
		c := input[i]
		if isNamePart(c) {
			matched++
			continue
		}
		if c == ':' && !prefixed && i+1 < size && isNameStart(input[i+1]) {
			prefixed = true
			matched++
			continue
		}
		break
	}
	return matched
}

// selectorMatcher matches a [@name='value'] predicate wholesale.
type selectorMatcher struct{}

const (
	selectorPrefix = "[@name='"
	selectorSuffix = "']"
)

func (m *selectorMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos+len(selectorPrefix)+len(selectorSuffix) > size {
		return 0
	}
	for i := 0; i < len(selectorPrefix); i++ {
		if input[pos+i] != selectorPrefix[i] {
			return 0
		}
	}
	for i := pos + len(selectorPrefix); i+1 < size; i++ {
		if input[i] == '\'' && input[i+1] == ']' {
			return i + 2 - pos
		}
	}
	return 0
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNamePart(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '.'
}
