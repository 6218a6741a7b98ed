package document

import "github.com/AnatomicMaps/BG-models/service/meta"

type Option func(*Service)

// WithMetaService sets the meta service
func WithMetaService(meta *meta.Service) Option {
	return func(s *Service) {
		s.metaService = meta
	}
}
