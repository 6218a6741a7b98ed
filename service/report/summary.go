// Package report turns simulation experiment documents into human and
// machine readable summaries, and computes unified diffs between document
// revisions.
package report

import (
	"fmt"
	"strings"

	"github.com/AnatomicMaps/BG-models/model/kisao"
	"github.com/AnatomicMaps/BG-models/model/sedml"
)

// Summary is a flattened view of a simulation experiment document.
type Summary struct {
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
	Level    int    `json:"level" yaml:"level"`
	Version  int    `json:"version" yaml:"version"`

	Models      []*ModelSummary      `json:"models,omitempty" yaml:"models,omitempty"`
	Simulations []*SimulationSummary `json:"simulations,omitempty" yaml:"simulations,omitempty"`
	Tasks       []*TaskSummary       `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Generators  int                  `json:"dataGenerators" yaml:"dataGenerators"`
	Outputs     []*OutputSummary     `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// ModelSummary describes one referenced model.
type ModelSummary struct {
	ID       string `json:"id" yaml:"id"`
	Language string `json:"language" yaml:"language"`
	Source   string `json:"source" yaml:"source"`
}

// SimulationSummary describes one uniform time course.
type SimulationSummary struct {
	ID              string   `json:"id" yaml:"id"`
	InitialTime     float64  `json:"initialTime" yaml:"initialTime"`
	OutputStartTime float64  `json:"outputStartTime" yaml:"outputStartTime"`
	OutputEndTime   float64  `json:"outputEndTime" yaml:"outputEndTime"`
	NumberOfPoints  int      `json:"numberOfPoints" yaml:"numberOfPoints"`
	Algorithm       string   `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Parameters      []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// TaskSummary describes a task or a repeated task.
type TaskSummary struct {
	ID         string `json:"id" yaml:"id"`
	Model      string `json:"model,omitempty" yaml:"model,omitempty"`
	Simulation string `json:"simulation,omitempty" yaml:"simulation,omitempty"`
	Repeats    int    `json:"repeats,omitempty" yaml:"repeats,omitempty"`
}

// OutputSummary describes one plot.
type OutputSummary struct {
	ID     string   `json:"id" yaml:"id"`
	Title  string   `json:"title,omitempty" yaml:"title,omitempty"`
	Curves []string `json:"curves,omitempty" yaml:"curves,omitempty"`
}

// Summarize builds a Summary from a document.
func Summarize(document *sedml.Document) *Summary {
	ret := &Summary{
		Document:   document.Name,
		Level:      document.Level,
		Version:    document.Version,
		Generators: len(document.DataGenerators),
	}
	for _, model := range document.Models {
		ret.Models = append(ret.Models, &ModelSummary{
			ID:       model.ID,
			Language: model.Language,
			Source:   model.Source,
		})
	}
	for _, simulation := range document.Simulations {
		ret.Simulations = append(ret.Simulations, summarizeSimulation(simulation))
	}
	for _, task := range document.Tasks {
		ret.Tasks = append(ret.Tasks, &TaskSummary{
			ID:         task.ID,
			Model:      task.ModelReference,
			Simulation: task.SimulationReference,
		})
	}
	for _, task := range document.RepeatedTasks {
		summary := &TaskSummary{ID: task.ID, Repeats: task.Iterations()}
		for _, subTask := range task.SubTasks {
			if resolved := document.Task(subTask.Task); resolved != nil {
				summary.Model = resolved.ModelReference
				summary.Simulation = resolved.SimulationReference
				break
			}
		}
		ret.Tasks = append(ret.Tasks, summary)
	}
	for _, plot := range document.Plots {
		ret.Outputs = append(ret.Outputs, summarizePlot(plot))
	}
	return ret
}

func summarizeSimulation(simulation *sedml.UniformTimeCourse) *SimulationSummary {
	ret := &SimulationSummary{
		ID:              simulation.ID,
		InitialTime:     simulation.InitialTime,
		OutputStartTime: simulation.OutputStartTime,
		OutputEndTime:   simulation.OutputEndTime,
		NumberOfPoints:  simulation.NumberOfPoints,
	}
	if simulation.Algorithm == nil {
		return ret
	}
	ret.Algorithm = kisao.Describe(simulation.Algorithm.KisaoID)
	for _, parameter := range simulation.Algorithm.Parameters {
		ret.Parameters = append(ret.Parameters,
			fmt.Sprintf("%s = %s", kisao.Describe(parameter.KisaoID), parameter.Value))
	}
	return ret
}

func summarizePlot(plot *sedml.Plot2D) *OutputSummary {
	ret := &OutputSummary{ID: plot.ID}
	if properties, err := plot.Annotation.Properties(); err == nil && properties != nil {
		ret.Title = properties.Title
	}
	for _, curve := range plot.Curves {
		ret.Curves = append(ret.Curves,
			fmt.Sprintf("%s vs %s", curve.YDataReference, curve.XDataReference))
	}
	return ret
}

// Text renders the summary as an indented plain text report.
func (s *Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "document: %s (SED-ML L%dV%d)\n", s.Document, s.Level, s.Version)
	for _, model := range s.Models {
		fmt.Fprintf(&b, "model %s: %s [%s]\n", model.ID, model.Source, model.Language)
	}
	for _, simulation := range s.Simulations {
		fmt.Fprintf(&b, "simulation %s: %g -> %g, %d points\n",
			simulation.ID, simulation.OutputStartTime, simulation.OutputEndTime, simulation.NumberOfPoints)
		if simulation.Algorithm != "" {
			fmt.Fprintf(&b, "  algorithm: %s\n", simulation.Algorithm)
		}
		for _, parameter := range simulation.Parameters {
			fmt.Fprintf(&b, "    %s\n", parameter)
		}
	}
	for _, task := range s.Tasks {
		if task.Repeats > 0 {
			fmt.Fprintf(&b, "repeated task %s: %d iteration(s)\n", task.ID, task.Repeats)
			continue
		}
		fmt.Fprintf(&b, "task %s: model=%s simulation=%s\n", task.ID, task.Model, task.Simulation)
	}
	fmt.Fprintf(&b, "data generators: %d\n", s.Generators)
	for _, output := range s.Outputs {
		title := output.Title
		if title == "" {
			title = output.ID
		}
		fmt.Fprintf(&b, "plot %s: %s, %d curve(s)\n", output.ID, title, len(output.Curves))
	}
	return b.String()
}
