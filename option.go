package fluxreg

import (
	"github.com/viant/afs/storage"
	"github.com/viant/fluxreg/service/behavior"
	"github.com/viant/fluxreg/service/cache"
	"github.com/viant/fluxreg/service/dao/workflow"
	"github.com/viant/fluxreg/service/event"
	"github.com/viant/fluxreg/service/meta"
	"github.com/viant/fluxreg/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a service option
type Option func(s *Service)

// WithConfig sets the configuration, fields not driven by other options are taken from it
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithLocations adds directories or files scanned for definitions
func WithLocations(locations ...string) Option {
	return func(s *Service) {
		s.config.Definitions = append(s.config.Definitions, locations...)
	}
}

// WithStrict sets the load policy
func WithStrict(strict bool) Option {
	return func(s *Service) {
		s.config.Strict = strict
	}
}

// WithDiscovery sets the discovery service, configured locations are ignored
func WithDiscovery(discovery *workflow.Service) Option {
	return func(s *Service) {
		s.discovery = discovery
	}
}

// WithMetaService sets the meta service used by the default discovery
func WithMetaService(service *meta.Service) Option {
	return func(s *Service) {
		s.metaService = service
	}
}

// WithMetaBaseURL sets the meta base URL
func WithMetaBaseURL(URL string) Option {
	return func(s *Service) {
		s.metaBaseURL = URL
	}
}

// WithMetaFsOptions with meta file system options
func WithMetaFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.metaFsOptions = options
	}
}

// WithCache sets the loaded definition set cache
func WithCache(c cache.Cache[*Report]) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithFactory sets the behaviour factory
func WithFactory(factory *behavior.Factory) Option {
	return func(s *Service) {
		s.factory = factory
	}
}

// WithBehavior registers a behaviour constructor for a workflow class
func WithBehavior(class string, constructor behavior.Constructor) Option {
	return func(s *Service) {
		s.behaviors[class] = constructor
	}
}

// WithPublisher sets the reload notification publisher
func WithPublisher(publisher *event.Publisher[ReloadEvent]) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithTracing configures OpenTelemetry tracing. If outputFile is empty the
// stdout exporter is used; the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
