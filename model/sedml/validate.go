package sedml

import (
	"fmt"
	"strings"
)

// Validate performs a best-effort structural validation of the document.  The
// returned slice is empty when the document is sound; otherwise it contains
// human-readable error descriptions.  Targets are NOT resolved against the
// referenced model here – that requires the model document and is handled by
// the validator service.
func (d *Document) Validate() []error {
	var issues []error

	if d.XMLName.Space != "" && d.XMLName.Space != Namespace {
		issues = append(issues, fmt.Errorf("unsupported SED-ML namespace %s", d.XMLName.Space))
	}
	if len(d.Models) == 0 {
		issues = append(issues, fmt.Errorf("document declares no model"))
	}

	// collect all ids, rejecting duplicates across element classes
	seen := map[string]string{}
	register := func(id, kind string) {
		if id == "" {
			issues = append(issues, fmt.Errorf("%s has empty id", kind))
			return
		}
		if previous, ok := seen[id]; ok {
			issues = append(issues, fmt.Errorf("duplicate id %s used by %s and %s", id, previous, kind))
			return
		}
		seen[id] = kind
	}

	for _, m := range d.Models {
		register(m.ID, "model")
		if m.Source == "" {
			issues = append(issues, fmt.Errorf("model %s has no source", m.ID))
		}
	}
	for _, s := range d.Simulations {
		register(s.ID, "simulation")
		issues = append(issues, s.validate()...)
	}
	for _, t := range d.Tasks {
		register(t.ID, "task")
	}
	for _, t := range d.RepeatedTasks {
		register(t.ID, "repeatedTask")
		for _, r := range t.Ranges {
			register(r.ID, "range")
		}
	}
	for _, g := range d.DataGenerators {
		register(g.ID, "dataGenerator")
		for _, v := range g.Variables {
			register(v.ID, "variable")
		}
	}
	for _, p := range d.Plots {
		register(p.ID, "plot2D")
		for _, c := range p.Curves {
			register(c.ID, "curve")
		}
	}

	// tasks must reference declared models and simulations
	for _, t := range d.Tasks {
		if d.Model(t.ModelReference) == nil {
			issues = append(issues, fmt.Errorf("task %s references unknown model %s", t.ID, t.ModelReference))
		}
		if d.Simulation(t.SimulationReference) == nil {
			issues = append(issues, fmt.Errorf("task %s references unknown simulation %s", t.ID, t.SimulationReference))
		}
	}

	// repeated tasks must reference a declared range and existing sub tasks
	for _, t := range d.RepeatedTasks {
		if t.RangeByID(t.Range) == nil {
			issues = append(issues, fmt.Errorf("repeatedTask %s references unknown range %s", t.ID, t.Range))
		}
		if len(t.SubTasks) == 0 {
			issues = append(issues, fmt.Errorf("repeatedTask %s has no sub tasks", t.ID))
		}
		for _, sub := range t.SubTasks {
			if d.Task(sub.Task) == nil {
				issues = append(issues, fmt.Errorf("repeatedTask %s sub task references unknown task %s", t.ID, sub.Task))
			}
			if sub.Task == t.ID {
				issues = append(issues, fmt.Errorf("repeatedTask %s repeats itself", t.ID))
			}
		}
	}

	// every data generator selects exactly one model variable
	for _, g := range d.DataGenerators {
		if len(g.Variables) != 1 {
			issues = append(issues, fmt.Errorf("dataGenerator %s selects %d variables, expected exactly one", g.ID, len(g.Variables)))
			continue
		}
		variable := g.Variables[0]
		if strings.TrimSpace(variable.Target) == "" {
			issues = append(issues, fmt.Errorf("variable %s has no target", variable.ID))
		}
		if variable.TaskReference == "" || !d.HasTask(variable.TaskReference) {
			issues = append(issues, fmt.Errorf("variable %s references unknown task %s", variable.ID, variable.TaskReference))
		}
		if !g.IsIdentity() {
			issues = append(issues, fmt.Errorf("dataGenerator %s is not an identity expression", g.ID))
		}
	}

	// curves must reference declared data generators
	for _, p := range d.Plots {
		for _, c := range p.Curves {
			if d.DataGenerator(c.XDataReference) == nil {
				issues = append(issues, fmt.Errorf("curve %s references unknown x data generator %s", c.ID, c.XDataReference))
			}
			if d.DataGenerator(c.YDataReference) == nil {
				issues = append(issues, fmt.Errorf("curve %s references unknown y data generator %s", c.ID, c.YDataReference))
			}
		}
	}

	return issues
}

func (s *UniformTimeCourse) validate() []error {
	var issues []error
	if s.NumberOfPoints <= 0 {
		issues = append(issues, fmt.Errorf("simulation %s has non-positive numberOfPoints %d", s.ID, s.NumberOfPoints))
	}
	if s.OutputStartTime < s.InitialTime {
		issues = append(issues, fmt.Errorf("simulation %s output starts at %v before initial time %v", s.ID, s.OutputStartTime, s.InitialTime))
	}
	if s.OutputEndTime <= s.OutputStartTime {
		issues = append(issues, fmt.Errorf("simulation %s output ends at %v, not after its start %v", s.ID, s.OutputEndTime, s.OutputStartTime))
	}
	if s.Algorithm == nil || s.Algorithm.KisaoID == "" {
		issues = append(issues, fmt.Errorf("simulation %s has no algorithm", s.ID))
	}
	return issues
}
