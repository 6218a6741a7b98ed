// Package target parses the XPath-like variable targets used by SED-ML
// documents over CellML models, of the form:
//
//	/cellml:model/cellml:component[@name='heart']/cellml:variable[@name='P_lv']
//
// Only this shape is supported; anything richer is rejected so unresolvable
// selections surface as errors instead of silently matching nothing.
package target

import (
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// Target is the structured form of a variable target.
type Target struct {
	Raw       string
	Component string
	Variable  string
}

type segment struct {
	name     string
	selector string
}

// Parse parses a variable target string.
func Parse(input []byte) (*Target, error) {
	cursor := parsly.NewCursor("", input, 0)

	var segments []segment
	for {
		matched := cursor.MatchAfterOptional(whitespaceToken, slashToken)
		if matched.Code != slashToken.Code {
			if cursor.Pos >= cursor.InputSize && len(segments) > 0 {
				break
			}
			return nil, cursor.NewError(slashToken)
		}

		matched = cursor.MatchOne(qnameToken)
		if matched.Code != qnameToken.Code {
			return nil, cursor.NewError(qnameToken)
		}
		seg := segment{name: localName(matched.Text(cursor))}

		if cursor.Pos < cursor.InputSize && cursor.Input[cursor.Pos] == '[' {
			matched = cursor.MatchOne(selectorToken)
			if matched.Code != selectorToken.Code {
				return nil, cursor.NewError(selectorToken)
			}
			text := matched.Text(cursor)
			seg.selector = text[len(selectorPrefix) : len(text)-len(selectorSuffix)]
		}
		segments = append(segments, seg)
	}

	target := &Target{Raw: string(input)}
	if len(segments) != 3 {
		return nil, fmt.Errorf("unsupported target %q: expected /model/component[@name=..]/variable[@name=..]", target.Raw)
	}
	if segments[0].name != "model" {
		return nil, fmt.Errorf("unsupported target %q: root element %s is not a model", target.Raw, segments[0].name)
	}
	if segments[1].name != "component" || segments[1].selector == "" {
		return nil, fmt.Errorf("unsupported target %q: second step must select a component by name", target.Raw)
	}
	if segments[2].name != "variable" || segments[2].selector == "" {
		return nil, fmt.Errorf("unsupported target %q: last step must select a variable by name", target.Raw)
	}
	target.Component = segments[1].selector
	target.Variable = segments[2].selector
	return target, nil
}

// localName strips a namespace prefix from an XML qualified name.
func localName(qname string) string {
	if index := strings.IndexByte(qname, ':'); index >= 0 {
		return qname[index+1:]
	}
	return qname
}

// String renders the target in its canonical CellML form.
func (t *Target) String() string {
	return fmt.Sprintf("/cellml:model/cellml:component[@name='%s']/cellml:variable[@name='%s']", t.Component, t.Variable)
}
