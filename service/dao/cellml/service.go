// Package cellml loads CellML model documents structurally.
package cellml

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	model "github.com/AnatomicMaps/BG-models/model/cellml"
	"github.com/AnatomicMaps/BG-models/service/dao"
	"github.com/AnatomicMaps/BG-models/service/meta"
	"github.com/viant/afs"
)

// DefaultExtension is appended to extension-less URLs.
const DefaultExtension = ".cellml"

// Service loads and decodes CellML documents.
type Service struct {
	metaService *meta.Service
}

type Option func(*Service)

// WithMetaService sets the meta service
func WithMetaService(meta *meta.Service) Option {
	return func(s *Service) {
		s.metaService = meta
	}
}

// Load loads a model from the specified URL and harvests its metadata ids.
func (s *Service) Load(ctx context.Context, URL string) (*model.Model, error) {
	if filepath.Ext(URL) == "" {
		URL += DefaultExtension
	}
	data, err := s.metaService.Download(ctx, URL)
	if err != nil {
		if exists, existsErr := s.metaService.Exists(ctx, URL); existsErr == nil && !exists {
			return nil, fmt.Errorf("%w: %s", dao.ErrNotFound, URL)
		}
		return nil, fmt.Errorf("failed to load model from %s: %w", URL, err)
	}
	result, err := s.DecodeXML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model from %s: %w", URL, err)
	}
	result.Source = URL
	return result, nil
}

// DecodeXML decodes a model from XML.  The decode is structural; MathML,
// units and imports are intentionally not interpreted.
func (s *Service) DecodeXML(encoded []byte) (*model.Model, error) {
	result := &model.Model{}
	if err := decodeXML(encoded, result); err != nil {
		return nil, errors.Join(dao.ErrInvalidDocument, err)
	}
	if space := result.XMLName.Space; space != model.Namespace {
		return nil, fmt.Errorf("%w: unsupported model namespace %q, want %s",
			dao.ErrInvalidDocument, space, model.Namespace)
	}
	ids, err := model.CollectMetadataIDs(encoded)
	if err != nil {
		return nil, errors.Join(dao.ErrInvalidDocument, err)
	}
	result.MetadataIDs = ids
	return result, nil
}

// New creates a new model service instance
func New(opts ...Option) *Service {
	ret := &Service{
		metaService: meta.New(afs.New(), ""),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
