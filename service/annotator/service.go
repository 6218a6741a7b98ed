// Package annotator derives RDF anatomical annotations from the metadata ids
// of a CellML model.  Every id of the form <compartment>.blood.<quantity> is
// linked to the blood within its UBERON compartment (bqbiol:isPropertyOf) and
// to the OPB physical quantity it measures (bqbiol:isVersionOf).  The
// resulting graph is serialised as Turtle, ready to be packaged next to the
// model in an OMEX archive.
package annotator

import (
	"context"
	"fmt"
	"io"

	"github.com/AnatomicMaps/BG-models/model/cellml"
	"github.com/AnatomicMaps/BG-models/tracing"
	"github.com/knakk/rdf"
)

// bqbiol qualifier predicates.
const (
	qualifierIs           = BQBiolNamespace + "is"
	qualifierIsPartOf     = BQBiolNamespace + "isPartOf"
	qualifierIsPropertyOf = BQBiolNamespace + "isPropertyOf"
	qualifierIsVersionOf  = BQBiolNamespace + "isVersionOf"
)

// localIDSeed offsets the local node counter; annotation documents produced
// from different models then keep recognisably distinct node names.
const localIDSeed = 1024

// Service turns classified metadata ids into annotation graphs.
type Service struct {
	vocabulary    *Vocabulary
	annotateFlows bool
}

type Option func(*Service)

// WithVocabulary replaces the default compartment vocabulary.
func WithVocabulary(vocabulary *Vocabulary) Option {
	return func(s *Service) {
		if vocabulary != nil {
			s.vocabulary = vocabulary
		}
	}
}

// WithFlowAnnotations enables annotation of .blood.flow ids.  Flow ids are
// classified but left unannotated by default.
func WithFlowAnnotations(enabled bool) Option {
	return func(s *Service) {
		s.annotateFlows = enabled
	}
}

// New creates an annotator service.
func New(opts ...Option) *Service {
	ret := &Service{
		vocabulary: DefaultVocabulary(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Result is an annotation graph together with the ids that were not
// annotated.
type Result struct {
	Triples []rdf.Triple

	// Skipped lists metadata ids with no known quantity suffix.
	Skipped []string
	// UnknownCavities lists compartment abbreviations that fell back to the
	// generic anatomical entity term.
	UnknownCavities []string
}

// graphBuilder tracks local blood-in-cavity nodes so that every quantity of
// the same compartment shares one node, mirroring the layout of hand-curated
// annotation files.
type graphBuilder struct {
	result     *Result
	vocabulary *Vocabulary
	modelPath  string
	localNodes map[string]rdf.IRI
	nextLocal  int
}

// Annotate builds the annotation graph for a model.  modelPath is the
// OMEX-library relative path of the CellML file the ids were harvested from.
func (s *Service) Annotate(ctx context.Context, modelPath string, set *cellml.IDSet) (*Result, error) {
	_, span := tracing.StartSpan(ctx, "annotator.Annotate", "INTERNAL")
	result, err := s.annotate(modelPath, set)
	tracing.EndSpan(span.WithAttributes(map[string]string{"model": modelPath}), err)
	return result, err
}

func (s *Service) annotate(modelPath string, set *cellml.IDSet) (*Result, error) {
	if modelPath == "" {
		return nil, fmt.Errorf("model path is required")
	}
	builder := &graphBuilder{
		result:     &Result{Skipped: set.Unknown},
		vocabulary: s.vocabulary,
		modelPath:  modelPath,
		localNodes: map[string]rdf.IRI{},
		nextLocal:  localIDSeed,
	}
	for _, id := range set.Volumes {
		if err := builder.addQuantity(id, volumeTerm); err != nil {
			return nil, err
		}
	}
	for _, id := range set.Pressures {
		if err := builder.addQuantity(id, pressureTerm); err != nil {
			return nil, err
		}
	}
	if s.annotateFlows {
		for _, id := range set.Flows {
			if err := builder.addQuantity(id, flowTerm); err != nil {
				return nil, err
			}
		}
	} else {
		builder.result.Skipped = append(builder.result.Skipped, set.Flows...)
	}
	return builder.result, nil
}

// addQuantity emits the triples for one metadata id: the shared local blood
// node of its compartment plus the property and quantity links.
func (b *graphBuilder) addQuantity(id, opbTerm string) error {
	subject, err := rdf.NewIRI(OMEXLibraryNamespace + b.modelPath + "#" + id)
	if err != nil {
		return fmt.Errorf("invalid metadata id %q: %w", id, err)
	}
	localNode, err := b.localBloodNode(cellml.Compartment(id))
	if err != nil {
		return err
	}
	if err := b.add(subject, qualifierIsPropertyOf, localNode); err != nil {
		return err
	}
	quantity, err := rdf.NewIRI(OPBNamespace + opbTerm)
	if err != nil {
		return err
	}
	return b.add(subject, qualifierIsVersionOf, quantity)
}

// localBloodNode returns the local node describing blood within the given
// compartment, creating it on first use.  Nodes are shared by cavity URI, so
// compartments that fall back to the generic anatomical entity term also
// share one node.
func (b *graphBuilder) localBloodNode(compartment string) (rdf.IRI, error) {
	cavityURI, known := b.vocabulary.CavityURI(compartment)
	if !known {
		b.result.UnknownCavities = append(b.result.UnknownCavities, compartment)
	}
	if node, ok := b.localNodes[cavityURI]; ok {
		return node, nil
	}

	b.nextLocal++
	node, err := rdf.NewIRI(fmt.Sprintf("%slocal-node-%d", LocalNamespace, b.nextLocal))
	if err != nil {
		return rdf.IRI{}, err
	}
	blood, err := rdf.NewIRI(UberonNamespace + bloodTerm)
	if err != nil {
		return rdf.IRI{}, err
	}
	cavity, err := rdf.NewIRI(cavityURI)
	if err != nil {
		return rdf.IRI{}, err
	}
	if err := b.add(node, qualifierIs, blood); err != nil {
		return rdf.IRI{}, err
	}
	if err := b.add(node, qualifierIsPartOf, cavity); err != nil {
		return rdf.IRI{}, err
	}
	b.localNodes[cavityURI] = node
	return node, nil
}

func (b *graphBuilder) add(subject rdf.IRI, predicate string, object rdf.IRI) error {
	pred, err := rdf.NewIRI(predicate)
	if err != nil {
		return err
	}
	b.result.Triples = append(b.result.Triples, rdf.Triple{Subj: subject, Pred: pred, Obj: object})
	return nil
}

// WriteTurtle serialises the graph as Turtle.
func (r *Result) WriteTurtle(w io.Writer) error {
	encoder := rdf.NewTripleEncoder(w, rdf.Turtle)
	for _, triple := range r.Triples {
		if err := encoder.Encode(triple); err != nil {
			return err
		}
	}
	return encoder.Close()
}
