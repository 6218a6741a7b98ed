// Package document loads SED-ML simulation experiment descriptions.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnatomicMaps/BG-models/model/sedml"
	"github.com/AnatomicMaps/BG-models/service/dao"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// DefaultExtension is appended to extension-less URLs.
const DefaultExtension = ".sedml"

// Service loads and decodes SED-ML documents.
type Service struct {
	metaService *meta.Service
}

// Load loads a document from the specified URL and validates its internal
// reference integrity.
func (s *Service) Load(ctx context.Context, URL string) (*sedml.Document, error) {
	if filepath.Ext(URL) == "" {
		URL += DefaultExtension
	}
	data, err := s.metaService.Download(ctx, URL)
	if err != nil {
		if exists, existsErr := s.metaService.Exists(ctx, URL); existsErr == nil && !exists {
			return nil, fmt.Errorf("%w: %s", dao.ErrNotFound, URL)
		}
		return nil, fmt.Errorf("failed to load document from %s: %w", URL, err)
	}
	doc, err := s.DecodeXML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document from %s: %w", URL, err)
	}
	doc.Source = &sedml.Source{URL: URL}
	doc.Name = documentNameFromURL(URL)
	return doc, nil
}

// DecodeXML decodes a document from XML and validates it.
func (s *Service) DecodeXML(encoded []byte) (*sedml.Document, error) {
	doc := &sedml.Document{}
	if err := decodeXML(encoded, doc); err != nil {
		return nil, errors.Join(dao.ErrInvalidDocument, err)
	}
	if doc.XMLName.Space != sedml.Namespace {
		return nil, fmt.Errorf("%w: unsupported document namespace %q, want %s",
			dao.ErrInvalidDocument, doc.XMLName.Space, sedml.Namespace)
	}
	if issues := doc.Validate(); len(issues) > 0 {
		return nil, errors.Join(dao.ErrInvalidDocument, issues[0])
	}
	doc.Name = generateAnonymousName()
	return doc, nil
}

// ResolveModelSource resolves a model's source reference relative to the
// document's origin, so sibling CellML files can be located.
func (s *Service) ResolveModelSource(doc *sedml.Document, model *sedml.Model) string {
	if doc.Source == nil || doc.Source.URL == "" || isAbsoluteRef(model.Source) {
		return model.Source
	}
	parent, _ := url.Split(s.metaService.Resolve(doc.Source.URL), "file")
	return url.Join(parent, model.Source)
}

func isAbsoluteRef(ref string) bool {
	return strings.Contains(ref, "://") || strings.HasPrefix(ref, "/")
}

// documentNameFromURL extracts a document name from its URL (file name
// without extension).
func documentNameFromURL(URL string) string {
	base := filepath.Base(URL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// New creates a new document service instance
func New(opts ...Option) *Service {
	ret := &Service{
		metaService: meta.New(afs.New(), ""),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
