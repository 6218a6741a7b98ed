package sedml

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Plot2D composes curves into a two dimensional plot output.
type Plot2D struct {
	ID   string `xml:"id,attr" json:"id"`
	Name string `xml:"name,attr,omitempty" json:"name,omitempty"`

	Annotation *Annotation `xml:"annotation" json:"-"`
	Curves     []*Curve    `xml:"listOfCurves>curve" json:"curves,omitempty"`
}

// Curve pairs an x and a y data generator.
type Curve struct {
	ID   string `xml:"id,attr" json:"id"`
	Name string `xml:"name,attr,omitempty" json:"name,omitempty"`

	LogX           bool   `xml:"logX,attr" json:"logX"`
	LogY           bool   `xml:"logY,attr" json:"logY"`
	XDataReference string `xml:"xDataReference,attr" json:"xDataReference"`
	YDataReference string `xml:"yDataReference,attr" json:"yDataReference"`

	Annotation *Annotation `xml:"annotation" json:"-"`
}

// Properties models the OpenCOR rendering annotation
// (http://www.opencor.ws/).  Plot level annotations use the background, grid
// and legend settings; curve level annotations use line and symbol styling.
// All fields are cosmetic and may be ignored by consuming tools.
type Properties struct {
	XMLName xml.Name `xml:"properties" json:"-"`

	BackgroundColor string     `xml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	FontSize        int        `xml:"fontSize,omitempty" json:"fontSize,omitempty"`
	ForegroundColor string     `xml:"foregroundColor,omitempty" json:"foregroundColor,omitempty"`
	GridLines       *LineStyle `xml:"gridLines,omitempty" json:"gridLines,omitempty"`
	Legend          bool       `xml:"legend,omitempty" json:"legend,omitempty"`
	Title           string     `xml:"title,omitempty" json:"title,omitempty"`
	XAxis           *Axis      `xml:"xAxis,omitempty" json:"xAxis,omitempty"`
	YAxis           *Axis      `xml:"yAxis,omitempty" json:"yAxis,omitempty"`

	Line   *LineStyle   `xml:"line,omitempty" json:"line,omitempty"`
	Symbol *SymbolStyle `xml:"symbol,omitempty" json:"symbol,omitempty"`
}

// LineStyle describes how a curve or grid line is stroked.
type LineStyle struct {
	Style string  `xml:"style,omitempty" json:"style,omitempty"`
	Width float64 `xml:"width,omitempty" json:"width,omitempty"`
	Color string  `xml:"color,omitempty" json:"color,omitempty"`
}

// SymbolStyle describes the marker drawn at curve points.
type SymbolStyle struct {
	Style     string `xml:"style,omitempty" json:"style,omitempty"`
	Size      int    `xml:"size,omitempty" json:"size,omitempty"`
	Color     string `xml:"color,omitempty" json:"color,omitempty"`
	Filled    bool   `xml:"filled,omitempty" json:"filled,omitempty"`
	FillColor string `xml:"fillColor,omitempty" json:"fillColor,omitempty"`
}

// Axis describes one plot axis.
type Axis struct {
	LogarithmicScale bool   `xml:"logarithmicScale,omitempty" json:"logarithmicScale,omitempty"`
	Title            string `xml:"title,omitempty" json:"title,omitempty"`
}

// Properties decodes the annotation's OpenCOR properties block.  It returns
// nil when the annotation carries no block in the OpenCOR namespace, so
// callers can ignore foreign vendor content.
func (a *Annotation) Properties() (*Properties, error) {
	if a == nil || strings.TrimSpace(a.Inner) == "" {
		return nil, nil
	}
	decoder := xml.NewDecoder(strings.NewReader(a.Inner))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			// exhausted without finding an OpenCOR block
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "properties" || start.Name.Space != OpenCORNamespace {
			if err := decoder.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		properties := &Properties{}
		if err := decoder.DecodeElement(properties, &start); err != nil {
			return nil, err
		}
		return properties, nil
	}
}
