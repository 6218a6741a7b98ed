package sedml

// UniformTimeCourse specifies an ODE time course run producing output at
// evenly spaced points.
type UniformTimeCourse struct {
	ID   string `xml:"id,attr" json:"id"`
	Name string `xml:"name,attr,omitempty" json:"name,omitempty"`

	InitialTime     float64 `xml:"initialTime,attr" json:"initialTime"`
	OutputStartTime float64 `xml:"outputStartTime,attr" json:"outputStartTime"`
	OutputEndTime   float64 `xml:"outputEndTime,attr" json:"outputEndTime"`
	NumberOfPoints  int     `xml:"numberOfPoints,attr" json:"numberOfPoints"`

	Algorithm *Algorithm `xml:"algorithm" json:"algorithm,omitempty"`
}

// Algorithm identifies the numerical method of a simulation by its KISAO term
// together with method specific sub-parameters.
type Algorithm struct {
	KisaoID    string                `xml:"kisaoID,attr" json:"kisaoID"`
	Parameters []*AlgorithmParameter `xml:"listOfAlgorithmParameters>algorithmParameter" json:"parameters,omitempty"`
}

// AlgorithmParameter carries a single KISAO-identified solver setting.  Values
// are kept as strings on the wire; numeric interpretation is left to the
// consumer.
type AlgorithmParameter struct {
	KisaoID string `xml:"kisaoID,attr" json:"kisaoID"`
	Value   string `xml:"value,attr" json:"value"`
}

// Parameter returns the algorithm parameter with the given KISAO id or nil.
func (a *Algorithm) Parameter(kisaoID string) *AlgorithmParameter {
	if a == nil {
		return nil
	}
	for _, p := range a.Parameters {
		if p.KisaoID == kisaoID {
			return p
		}
	}
	return nil
}

// Duration returns the simulated output time span.
func (s *UniformTimeCourse) Duration() float64 {
	return s.OutputEndTime - s.OutputStartTime
}
