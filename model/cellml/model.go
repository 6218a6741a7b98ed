package cellml

import (
	"encoding/xml"
	"fmt"
)

// Namespace identifiers understood by this package.
const (
	// Namespace is the CellML 1.1 namespace.
	Namespace = "http://www.cellml.org/cellml/1.1#"

	// MetadataNamespace qualifies cmeta:id attributes.
	MetadataNamespace = "http://www.cellml.org/metadata/1.0#"
)

// Model is the structural view of a CellML document.
type Model struct {
	XMLName xml.Name `xml:"model" json:"-"`
	Name    string   `xml:"name,attr" json:"name"`
	MetaID  string   `xml:"http://www.cellml.org/metadata/1.0# id,attr" json:"metaId,omitempty"`

	Components []*Component `xml:"component" json:"components,omitempty"`

	// MetadataIDs holds every cmeta:id found anywhere in the document, in
	// document order.  It is populated by the loader, not by unmarshalling.
	MetadataIDs []string `xml:"-" json:"metadataIds,omitempty"`

	// Source records the origin URL of the document.
	Source string `xml:"-" json:"source,omitempty"`
}

// Component groups variables of the model.
type Component struct {
	Name   string `xml:"name,attr" json:"name"`
	MetaID string `xml:"http://www.cellml.org/metadata/1.0# id,attr" json:"metaId,omitempty"`

	Variables []*Variable `xml:"variable" json:"variables,omitempty"`
}

// Variable declares a named quantity of a component.
type Variable struct {
	Name             string `xml:"name,attr" json:"name"`
	Units            string `xml:"units,attr" json:"units"`
	InitialValue     string `xml:"initial_value,attr,omitempty" json:"initialValue,omitempty"`
	PublicInterface  string `xml:"public_interface,attr,omitempty" json:"publicInterface,omitempty"`
	PrivateInterface string `xml:"private_interface,attr,omitempty" json:"privateInterface,omitempty"`
	MetaID           string `xml:"http://www.cellml.org/metadata/1.0# id,attr" json:"metaId,omitempty"`
}

// Component returns the component with the given name or nil.
func (m *Model) Component(name string) *Component {
	for _, c := range m.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Resolve looks up a variable by component and variable name.
func (m *Model) Resolve(component, variable string) (*Variable, error) {
	c := m.Component(component)
	if c == nil {
		return nil, fmt.Errorf("unknown component %s", component)
	}
	for _, v := range c.Variables {
		if v.Name == variable {
			return v, nil
		}
	}
	return nil, fmt.Errorf("component %s has no variable %s", component, variable)
}
