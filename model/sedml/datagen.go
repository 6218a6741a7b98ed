package sedml

import (
	"encoding/xml"
	"strings"
)

// DataGenerator extracts a value from a task result.  The documents in this
// repository only use trivial identity expressions selecting a single model
// variable.
type DataGenerator struct {
	ID   string `xml:"id,attr" json:"id"`
	Name string `xml:"name,attr,omitempty" json:"name,omitempty"`

	Variables []*Variable `xml:"listOfVariables>variable" json:"variables,omitempty"`
	Math      *Math       `xml:"math" json:"math,omitempty"`
}

// Variable selects a named model variable through an XPath-like target
// resolved against the referenced model document.
type Variable struct {
	ID            string `xml:"id,attr" json:"id"`
	Name          string `xml:"name,attr,omitempty" json:"name,omitempty"`
	Target        string `xml:"target,attr" json:"target"`
	TaskReference string `xml:"taskReference,attr" json:"taskReference"`
}

// Math holds a MathML expression verbatim.
type Math struct {
	XMLNS string `xml:"xmlns,attr,omitempty" json:"-"`
	Inner string `xml:",innerxml" json:"expression,omitempty"`
}

// CI returns the single content identifier of an identity expression, or an
// empty string when the expression is anything richer.
func (m *Math) CI() string {
	if m == nil {
		return ""
	}
	var ci struct {
		Value string `xml:",chardata"`
	}
	decoder := xml.NewDecoder(strings.NewReader(m.Inner))
	for {
		token, err := decoder.Token()
		if err != nil {
			return ""
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "ci" {
			return ""
		}
		if err := decoder.DecodeElement(&ci, &start); err != nil {
			return ""
		}
		return strings.TrimSpace(ci.Value)
	}
}

// IsIdentity reports whether the generator simply forwards its only variable.
func (g *DataGenerator) IsIdentity() bool {
	if len(g.Variables) != 1 {
		return false
	}
	symbol := g.Math.CI()
	return symbol != "" && (symbol == g.Variables[0].ID || symbol == g.Variables[0].Name)
}
