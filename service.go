package fluxreg

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/fluxreg/model"
	"github.com/viant/fluxreg/service/behavior"
	"github.com/viant/fluxreg/service/cache"
	"github.com/viant/fluxreg/service/dao/workflow"
	"github.com/viant/fluxreg/service/event"
	"github.com/viant/fluxreg/service/group"
	"github.com/viant/fluxreg/service/messaging"
	mmemory "github.com/viant/fluxreg/service/messaging/memory"
	"github.com/viant/fluxreg/service/meta"
	"github.com/viant/fluxreg/service/registry"
	"github.com/viant/fluxreg/service/validator"
	"github.com/viant/fluxreg/tracing"
)

const (
	cacheKey = "definitions"

	serviceName = "fluxreg"
)

// Service loads workflow definitions into a registry and instantiates behaviours
type Service struct {
	config        *Config
	discovery     *workflow.Service
	metaService   *meta.Service
	metaBaseURL   string
	metaFsOptions []storage.Option
	registry      *registry.Registry
	factory       *behavior.Factory
	behaviors     map[string]behavior.Constructor
	cache         cache.Cache[*Report]
	publisher     *event.Publisher[ReloadEvent]
	report        atomic.Pointer[Report]
	mux           sync.Mutex
}

// Config returns the service configuration
func (s *Service) Config() *Config {
	return s.config
}

// Registry returns the definition registry
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Factory returns the behaviour factory
func (s *Service) Factory() *behavior.Factory {
	return s.factory
}

// Events returns the reload notification publisher
func (s *Service) Events() *event.Publisher[ReloadEvent] {
	return s.publisher
}

// Report returns the outcome of the last successful load or nil
func (s *Service) Report() *Report {
	return s.report.Load()
}

// Load returns the cached definition set when present, otherwise discovers,
// validates and installs a fresh one.
func (s *Service) Load(ctx context.Context) (*registry.Snapshot, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if report, ok := s.cache.Get(ctx, cacheKey); ok {
		if s.registry.Snapshot() != report.Snapshot {
			s.registry.Swap(report.Snapshot)
			s.report.Store(report)
		}
		return report.Snapshot, nil
	}
	return s.reload(ctx)
}

// Reload invalidates the cached definition set and loads a fresh one. On
// failure the previously held set remains installed.
func (s *Service) Reload(ctx context.Context) (*registry.Snapshot, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.cache.Delete(ctx, cacheKey)
	return s.reload(ctx)
}

// Install validates supplied candidates and installs the accepted definitions
func (s *Service) Install(ctx context.Context, candidates *model.Candidates) (*registry.Snapshot, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.cache.Delete(ctx, cacheKey)
	ctx, span := tracing.StartSpan(ctx, "fluxreg.reload", "INTERNAL")
	ret, err := s.install(ctx, candidates)
	tracing.EndSpan(span, err)
	return ret, err
}

func (s *Service) reload(ctx context.Context) (*registry.Snapshot, error) {
	ctx, span := tracing.StartSpan(ctx, "fluxreg.reload", "INTERNAL")
	ret, err := s.discoverAndInstall(ctx)
	tracing.EndSpan(span, err)
	return ret, err
}

func (s *Service) discoverAndInstall(ctx context.Context) (*registry.Snapshot, error) {
	candidates, err := s.discovery.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover workflow definitions: %w", err)
	}
	return s.install(ctx, candidates)
}

func (s *Service) install(ctx context.Context, candidates *model.Candidates) (*registry.Snapshot, error) {
	if candidates == nil {
		candidates = model.NewCandidates()
	}
	catalog, groupRejections := group.Decode(candidates.Groups)
	accepted, rejections := validator.New(catalog).ValidateAll(ctx, candidates.Definitions)
	if s.config.Strict && (len(groupRejections) > 0 || len(rejections) > 0) {
		return nil, &LoadError{Groups: groupRejections, Rejections: rejections}
	}
	for _, rejection := range groupRejections {
		log.Warn().Str("group", rejection.ID).Err(rejection.Err).Msg("workflow group skipped")
	}
	for _, rejection := range rejections {
		log.Warn().Str("workflow", rejection.ID).Str("url", candidates.Sources[rejection.ID]).Err(rejection.Err).Msg("workflow definition skipped")
	}

	snapshot := registry.NewSnapshot(catalog, accepted)
	report := &Report{Snapshot: snapshot, Rejected: rejections, RejectedGroups: groupRejections, Sources: candidates.Sources}
	for _, definition := range snapshot.Definitions() {
		report.Accepted = append(report.Accepted, definition.ID)
	}
	s.registry.Swap(snapshot)
	s.report.Store(report)
	s.cache.Set(ctx, cacheKey, report)
	log.Info().Str("revision", snapshot.Revision).Int("accepted", len(report.Accepted)).Int("rejected", len(rejections)).Int("rejectedGroups", len(groupRejections)).Msg("workflow definitions loaded")
	s.notify(ctx, report)
	return snapshot, nil
}

func (s *Service) notify(ctx context.Context, report *Report) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, event.NewEvent(event.TypeReloaded, *report.event()))
	switch {
	case err == nil:
	case errors.Is(err, messaging.ErrQueueFull):
		log.Warn().Str("revision", report.Revision()).Msg("reload notification dropped, queue full")
	default:
		log.Error().Err(err).Str("revision", report.Revision()).Msg("failed to publish reload notification")
	}
}

// Instantiate creates the behaviour of a held workflow, selected by the
// workflow class of its group
func (s *Service) Instantiate(ctx context.Context, workflowID string) (behavior.Behavior, error) {
	if !s.registry.Loaded() {
		return nil, ErrNotLoaded
	}
	snapshot := s.registry.Snapshot()
	definition, ok := snapshot.Definition(workflowID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorkflowNotFound, workflowID)
	}
	group, _ := snapshot.GroupOf(definition)
	return s.factory.Create(definition, group)
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	for class, constructor := range s.behaviors {
		s.factory.Register(class, constructor)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.metaService == nil {
		s.metaService = meta.New(afs.New(), s.metaBaseURL, s.metaFsOptions...)
	}
	if s.discovery == nil {
		s.discovery = workflow.New(workflow.WithMetaService(s.metaService), workflow.WithLocations(s.config.Definitions...))
	}
	if s.factory == nil {
		s.factory = behavior.NewFactory()
	}
	if s.cache == nil {
		s.cache = cache.NewInMemory[*Report](cacheKey, s.config.Cache.TTL)
	}
	if s.publisher == nil {
		buffer := s.config.Events.Buffer
		if buffer <= 0 {
			buffer = DefaultConfig().Events.Buffer
		}
		config := mmemory.DefaultConfig()
		config.QueueBuffer = buffer
		s.publisher = event.NewPublisher[ReloadEvent](mmemory.NewQueue[event.Event[ReloadEvent]](config))
	}
}

// New creates a service
func New(options ...Option) *Service {
	ret := &Service{
		config:    DefaultConfig(),
		registry:  &registry.Registry{},
		behaviors: map[string]behavior.Constructor{},
	}
	ret.init(options)
	return ret
}

// NewFromConfig validates config and creates a service, tracing is
// initialised when enabled
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Tracing.Enabled {
		if err := tracing.Init(serviceName, "", config.Tracing.Output); err != nil {
			return nil, fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}
	return New(append([]Option{WithConfig(config)}, options...)...), nil
}
