package workflow

import "github.com/viant/fluxreg/service/meta"

type Option func(*Service)

// WithLocations sets directories or files scanned for definitions
func WithLocations(locations ...string) Option {
	return func(s *Service) {
		s.locations = append(s.locations, locations...)
	}
}

// WithMetaService sets the meta service
func WithMetaService(meta *meta.Service) Option {
	return func(s *Service) {
		s.metaService = meta
	}
}
