package bgmodels

import (
	"context"
	"fmt"

	cellmlmodel "github.com/AnatomicMaps/BG-models/model/cellml"
	"github.com/AnatomicMaps/BG-models/model/sedml"
	"github.com/AnatomicMaps/BG-models/service/annotator"
	cellmldao "github.com/AnatomicMaps/BG-models/service/dao/cellml"
	"github.com/AnatomicMaps/BG-models/service/dao/document"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/AnatomicMaps/BG-models/service/runner"
	"github.com/AnatomicMaps/BG-models/service/validator"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

// Service is the high-level façade over the repository's tooling: document
// and model loading, validation, annotation generation and external
// simulation execution.
type Service struct {
	config        *Config
	metaService   *meta.Service
	metaBaseURL   string
	metaFsOptions []storage.Option

	documents        *document.Service
	models           *cellmldao.Service
	validator        *validator.Service
	annotator        *annotator.Service
	annotatorOptions []annotator.Option
	runner           *runner.Service
	runnerOptions    []runner.Option
}

func (s *Service) init(ctx context.Context, options []Option) error {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()

	if profileURL := s.config.Annotator.Profile; profileURL != "" {
		profile, err := annotator.LoadProfile(ctx, s.metaService, profileURL)
		if err != nil {
			return err
		}
		s.annotatorOptions = append(profile.Options(), s.annotatorOptions...)
	}
	if s.config.Annotator.AnnotateFlows {
		s.annotatorOptions = append(s.annotatorOptions, annotator.WithFlowAnnotations(true))
	}
	s.annotator = annotator.New(s.annotatorOptions...)
	s.runner = runner.New(s.runnerOptions...)
	return nil
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.documents == nil {
		s.documents = document.New(document.WithMetaService(s.metaService))
	}
	if s.models == nil {
		s.models = cellmldao.New(cellmldao.WithMetaService(s.metaService))
	}
	if s.validator == nil {
		s.validator = validator.New()
	}
}

// Documents exposes the experiment document loader.
func (s *Service) Documents() *document.Service { return s.documents }

// Models exposes the model loader.
func (s *Service) Models() *cellmldao.Service { return s.models }

// Validator exposes the experiment validator.
func (s *Service) Validator() *validator.Service { return s.validator }

// Annotator exposes the RDF annotation generator.
func (s *Service) Annotator() *annotator.Service { return s.annotator }

// Runner exposes the external simulation runner.
func (s *Service) Runner() *runner.Service { return s.runner }

// LoadExperiment loads a simulation experiment document.
func (s *Service) LoadExperiment(ctx context.Context, URL string) (*sedml.Document, error) {
	return s.documents.Load(ctx, URL)
}

// LoadModel loads a model document.
func (s *Service) LoadModel(ctx context.Context, URL string) (*cellmlmodel.Model, error) {
	return s.models.Load(ctx, URL)
}

// LoadExperimentModel loads the model referenced by the document's first
// model entry, resolving a relative source against the document location.
func (s *Service) LoadExperimentModel(ctx context.Context, doc *sedml.Document) (*cellmlmodel.Model, error) {
	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("document %s references no model", doc.Name)
	}
	source := s.documents.ResolveModelSource(doc, doc.Models[0])
	return s.models.Load(ctx, source)
}

// Validate loads the document and its model and validates the pair.  When
// the model cannot be loaded the document is still validated structurally
// and the report carries a warning; target resolution is skipped.
func (s *Service) Validate(ctx context.Context, documentURL string) (*validator.Report, error) {
	doc, err := s.documents.Load(ctx, documentURL)
	if err != nil {
		return nil, err
	}
	var model *cellmlmodel.Model
	var modelIssue *validator.Issue
	if len(doc.Models) > 0 {
		source := s.documents.ResolveModelSource(doc, doc.Models[0])
		if model, err = s.models.Load(ctx, source); err != nil {
			modelIssue = &validator.Issue{
				Severity: validator.SeverityWarning,
				Code:     validator.CodeStructure,
				Message:  fmt.Sprintf("model %s not loadable, target checks skipped: %v", source, err),
			}
		}
	}
	report := s.validator.Validate(ctx, doc, model)
	report.DocumentURL = documentURL
	if modelIssue != nil {
		report.Issues = append(report.Issues, modelIssue)
	}
	return report, nil
}

// Annotate loads the model and generates its RDF annotation graph.
func (s *Service) Annotate(ctx context.Context, modelURL string) (*annotator.Result, error) {
	model, err := s.models.Load(ctx, modelURL)
	if err != nil {
		return nil, err
	}
	set := cellmlmodel.ClassifyMetadataIDs(model.MetadataIDs)
	return s.annotator.Annotate(ctx, model.Source, set)
}

// Run hands the document to the configured external simulation engine.
func (s *Service) Run(ctx context.Context, documentURL string) (*runner.Output, error) {
	input := &runner.Input{
		DocumentURL: documentURL,
		Executor:    s.config.Runner.Executor,
		TimeoutMs:   s.config.Runner.TimeoutMs,
	}
	output := &runner.Output{}
	if err := s.runner.Execute(ctx, input, output); err != nil {
		return output, err
	}
	return output, nil
}

// New creates the service façade.
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(ctx, options); err != nil {
		return nil, err
	}
	if err := ret.config.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
