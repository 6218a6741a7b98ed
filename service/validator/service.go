// Package validator checks SED-ML documents against the CellML model they
// reference: structural integrity, variable target resolution, algorithm
// identifiers and time course consistency.
package validator

import (
	"context"

	"github.com/AnatomicMaps/BG-models/model/cellml"
	"github.com/AnatomicMaps/BG-models/model/kisao"
	"github.com/AnatomicMaps/BG-models/model/sedml"
	"github.com/AnatomicMaps/BG-models/service/dao/document/target"
	"github.com/AnatomicMaps/BG-models/tracing"
	"github.com/viant/toolbox"
)

// Service validates simulation experiment descriptions.
type Service struct{}

// New creates a validator service.
func New() *Service {
	return &Service{}
}

// Validate checks doc against model.  A nil model restricts the run to
// document-local checks, leaving targets unresolved but not reported as
// errors.
func (s *Service) Validate(ctx context.Context, doc *sedml.Document, model *cellml.Model) *Report {
	_, span := tracing.StartSpan(ctx, "validator.Validate", "INTERNAL")
	report := &Report{}
	if doc.Source != nil {
		report.DocumentURL = doc.Source.URL
	}
	if model != nil {
		report.ModelURL = model.Source
	}

	for _, issue := range doc.Validate() {
		report.add(SeverityError, CodeStructure, "%v", issue)
	}
	s.checkLanguages(doc, report)
	s.checkAlgorithms(doc, report)
	if model != nil {
		s.checkTargets(doc, model, report)
	}

	span.WithAttributes(map[string]string{"document": report.DocumentURL})
	if report.OK() {
		tracing.EndSpan(span, nil)
	} else {
		tracing.EndSpan(span, report.Errors()[0])
	}
	return report
}

func (s *Service) checkLanguages(doc *sedml.Document, report *Report) {
	for _, m := range doc.Models {
		if m.Language != sedml.LanguageCellML11 {
			report.add(SeverityWarning, CodeUnknownLanguage,
				"model %s uses language %s, this repository only carries CellML 1.1 models", m.ID, m.Language)
		}
	}
}

func (s *Service) checkAlgorithms(doc *sedml.Document, report *Report) {
	for _, simulation := range doc.Simulations {
		algorithm := simulation.Algorithm
		if algorithm == nil {
			continue // already reported as a structural issue
		}
		if !kisao.IsValid(algorithm.KisaoID) {
			report.add(SeverityError, CodeBadKisaoID,
				"simulation %s algorithm id %q is not a KISAO term", simulation.ID, algorithm.KisaoID)
		} else if !kisao.IsAlgorithm(algorithm.KisaoID) {
			report.add(SeverityError, CodeUnknownAlgorithm,
				"simulation %s requests unsupported algorithm %s", simulation.ID, kisao.Describe(algorithm.KisaoID))
		}
		for _, parameter := range algorithm.Parameters {
			if !kisao.IsValid(parameter.KisaoID) {
				report.add(SeverityError, CodeBadKisaoID,
					"simulation %s parameter id %q is not a KISAO term", simulation.ID, parameter.KisaoID)
				continue
			}
			if kisao.Name(parameter.KisaoID) == "" {
				// vendor specific parameters may be ignored by a consumer
				report.add(SeverityWarning, CodeUnknownParameter,
					"simulation %s carries unknown parameter %s", simulation.ID, parameter.KisaoID)
			}
		}
		s.checkTolerance(simulation, kisao.AbsoluteTolerance, report)
		s.checkTolerance(simulation, kisao.RelativeTolerance, report)
	}
}

func (s *Service) checkTolerance(simulation *sedml.UniformTimeCourse, kisaoID string, report *Report) {
	parameter := simulation.Algorithm.Parameter(kisaoID)
	if parameter == nil {
		return
	}
	value, err := toolbox.ToFloat(parameter.Value)
	if err != nil {
		report.add(SeverityError, CodeBadParameterValue,
			"simulation %s %s %q is not numeric", simulation.ID, kisao.Describe(kisaoID), parameter.Value)
		return
	}
	if value <= 0 {
		report.add(SeverityError, CodeBadParameterValue,
			"simulation %s %s must be positive, got %v", simulation.ID, kisao.Describe(kisaoID), value)
	}
}

func (s *Service) checkTargets(doc *sedml.Document, model *cellml.Model, report *Report) {
	for _, variable := range doc.Variables() {
		parsed, err := target.Parse([]byte(variable.Target))
		if err != nil {
			report.add(SeverityError, CodeBadTarget,
				"variable %s: %v", variable.ID, err)
			continue
		}
		if _, err := model.Resolve(parsed.Component, parsed.Variable); err != nil {
			report.add(SeverityError, CodeUnresolvedTarget,
				"variable %s target does not resolve against %s: %v", variable.ID, model.Name, err)
		}
	}
}
