package sedml

// Task binds a model to a simulation.
type Task struct {
	ID                  string `xml:"id,attr" json:"id"`
	Name                string `xml:"name,attr,omitempty" json:"name,omitempty"`
	ModelReference      string `xml:"modelReference,attr" json:"modelReference"`
	SimulationReference string `xml:"simulationReference,attr" json:"simulationReference"`
}

// RepeatedTask wraps sub tasks in a range.  The documents in this repository
// use a vector range of length one so the wrapped simulation runs exactly
// once.
type RepeatedTask struct {
	ID         string `xml:"id,attr" json:"id"`
	Name       string `xml:"name,attr,omitempty" json:"name,omitempty"`
	Range      string `xml:"range,attr" json:"range"`
	ResetModel bool   `xml:"resetModel,attr" json:"resetModel"`

	Ranges   []*VectorRange `xml:"listOfRanges>vectorRange" json:"ranges,omitempty"`
	SubTasks []*SubTask     `xml:"listOfSubTasks>subTask" json:"subTasks,omitempty"`
}

// VectorRange enumerates explicit iteration values.
type VectorRange struct {
	ID     string    `xml:"id,attr" json:"id"`
	Values []float64 `xml:"value" json:"values"`
}

// SubTask references a task executed as part of a repeated task.
type SubTask struct {
	Order int    `xml:"order,attr" json:"order"`
	Task  string `xml:"task,attr" json:"task"`
}

// RangeByID returns the range with the given id or nil.
func (t *RepeatedTask) RangeByID(id string) *VectorRange {
	for _, r := range t.Ranges {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Iterations returns the number of iterations of the master range, or 0 when
// the range is missing.
func (t *RepeatedTask) Iterations() int {
	if r := t.RangeByID(t.Range); r != nil {
		return len(r.Values)
	}
	return 0
}
