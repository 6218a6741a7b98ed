package sedml

import (
	"bytes"
	"encoding/xml"
)

// Namespace identifiers used by the documents this package understands.
const (
	// Namespace is the SED-ML Level 1 Version 3 namespace.
	Namespace = "http://sed-ml.org/sed-ml/level1/version3"

	// CellMLNamespace is the extension namespace used by model variable targets.
	CellMLNamespace = "http://www.cellml.org/cellml/1.1#"

	// MathMLNamespace qualifies data generator expressions.
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"

	// OpenCORNamespace qualifies vendor rendering annotations.
	OpenCORNamespace = "http://www.opencor.ws/"
)

// LanguageCellML11 identifies models expressed in CellML 1.1.
const LanguageCellML11 = "urn:sedml:language:cellml.1_1"

// Source provides information about the origin of a document
type Source struct {
	URL string `json:"url,omitempty"`
}

// Document represents a SED-ML simulation experiment description
type Document struct {
	XMLName xml.Name `xml:"sedML" json:"-"`

	// Level and Version identify the SED-ML schema revision the document
	// was written against.
	Level   int `xml:"level,attr" json:"level"`
	Version int `xml:"version,attr" json:"version"`

	Models         []*Model             `xml:"listOfModels>model" json:"models,omitempty"`
	Simulations    []*UniformTimeCourse `xml:"listOfSimulations>uniformTimeCourse" json:"simulations,omitempty"`
	Tasks          []*Task              `xml:"listOfTasks>task" json:"tasks,omitempty"`
	RepeatedTasks  []*RepeatedTask      `xml:"listOfTasks>repeatedTask" json:"repeatedTasks,omitempty"`
	DataGenerators []*DataGenerator     `xml:"listOfDataGenerators>dataGenerator" json:"dataGenerators,omitempty"`
	Plots          []*Plot2D            `xml:"listOfOutputs>plot2D" json:"plots,omitempty"`

	// Name is derived from the origin URL; it is not part of the wire format.
	Name string `xml:"-" json:"name,omitempty"`

	// Source provides information about the origin of the document
	Source *Source `xml:"-" json:"source,omitempty"`
}

// Model references an external model document, for this repository a sibling
// CellML file.
type Model struct {
	ID       string `xml:"id,attr" json:"id"`
	Name     string `xml:"name,attr,omitempty" json:"name,omitempty"`
	Language string `xml:"language,attr" json:"language"`
	Source   string `xml:"source,attr" json:"source"`
}

// Annotation holds a vendor extension block verbatim.  Consuming tools that do
// not understand the content are free to ignore it.
type Annotation struct {
	Inner string `xml:",innerxml" json:"-"`
}

// Model returns the model with the given id or nil.
func (d *Document) Model(id string) *Model {
	for _, m := range d.Models {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Simulation returns the simulation with the given id or nil.
func (d *Document) Simulation(id string) *UniformTimeCourse {
	for _, s := range d.Simulations {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Task returns the plain task with the given id or nil.
func (d *Document) Task(id string) *Task {
	for _, t := range d.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RepeatedTask returns the repeated task with the given id or nil.
func (d *Document) RepeatedTask(id string) *RepeatedTask {
	for _, t := range d.RepeatedTasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// HasTask reports whether id names either a plain or a repeated task.
func (d *Document) HasTask(id string) bool {
	return d.Task(id) != nil || d.RepeatedTask(id) != nil
}

// DataGenerator returns the data generator with the given id or nil.
func (d *Document) DataGenerator(id string) *DataGenerator {
	for _, g := range d.DataGenerators {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Variables returns every model variable selected by the document's data
// generators, in document order.
func (d *Document) Variables() []*Variable {
	var result []*Variable
	for _, g := range d.DataGenerators {
		result = append(result, g.Variables...)
	}
	return result
}

// Encode serialises the document back to XML.  The output carries the SED-ML
// default namespace plus the CellML extension namespace on the root element,
// matching the layout of documents produced by CellML-aware editors.
func (d *Document) Encode() ([]byte, error) {
	type document Document // drop methods to avoid recursion
	shadow := struct {
		document
		XMLNS       string `xml:"xmlns,attr"`
		XMLNSCellML string `xml:"xmlns:cellml,attr"`
	}{document(*d), Namespace, CellMLNamespace}
	shadow.XMLName = xml.Name{Local: "sedML"}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)
	encoder.Indent("", "  ")
	if err := encoder.Encode(&shadow); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
