package loader

import "github.com/gemstack/gemkit/service/meta"

type Option func(*Service)

// WithMetaService sets the meta service used to retrieve documents.
func WithMetaService(meta *meta.Service) Option {
	return func(s *Service) {
		s.metaService = meta
	}
}
