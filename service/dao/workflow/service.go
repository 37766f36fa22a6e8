// Package workflow discovers raw workflow and group candidates from YAML
// files.
//
// Definition files are named *.workflows.yaml (or .yml) and map workflow ids
// to candidate fields; group files are named *.workflow_groups.yaml and map
// group ids to {label, entity_type, workflow_class}. Mapping key order in a
// file is preserved as candidate order.
package workflow

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/viant/afs"
	"github.com/viant/fluxreg/internal/yml"
	"github.com/viant/fluxreg/model"
	"github.com/viant/fluxreg/service/meta"
	"github.com/viant/fluxreg/tracing"
)

const (
	DefinitionSuffix = ".workflows"
	GroupSuffix      = ".workflow_groups"
)

type kind int

const (
	kindOther kind = iota
	kindDefinitions
	kindGroups
)

// Service discovers workflow candidates
type Service struct {
	metaService *meta.Service
	locations   []string
}

// Locations returns configured locations
func (s *Service) Locations() []string {
	return append([]string(nil), s.locations...)
}

// Discover loads every group and definition file under configured locations.
// Files are processed in URL order; a workflow id declared again in a later
// file replaces the earlier declaration.
func (s *Service) Discover(ctx context.Context) (*model.Candidates, error) {
	ctx, span := tracing.StartSpan(ctx, "fluxreg.discover", "INTERNAL")
	ret, err := s.discover(ctx)
	tracing.EndSpan(span, err)
	return ret, err
}

func (s *Service) discover(ctx context.Context) (*model.Candidates, error) {
	ret := model.NewCandidates()
	for _, location := range s.locations {
		URLs, err := s.files(ctx, location)
		if err != nil {
			return nil, err
		}
		for _, URL := range URLs {
			if err := s.load(ctx, URL, ret); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func (s *Service) files(ctx context.Context, location string) ([]string, error) {
	if fileKind(location) != kindOther {
		return []string{location}, nil
	}
	return s.metaService.List(ctx, location, func(name string) bool {
		return fileKind(name) != kindOther
	})
}

func (s *Service) load(ctx context.Context, URL string, candidates *model.Candidates) error {
	data, err := s.metaService.Download(ctx, URL)
	if err != nil {
		return err
	}
	fields, err := yml.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", URL, err)
	}
	switch fileKind(URL) {
	case kindGroups:
		merge(URL, "group", fields, candidates.Groups, nil)
	case kindDefinitions:
		merge(URL, "workflow", fields, candidates.Definitions, candidates.Sources)
	}
	log.Debug().Str("url", URL).Int("entries", fields.Len()).Msg("loaded definition file")
	return nil
}

// DecodeDefinitions decodes workflow candidates from YAML content
func (s *Service) DecodeDefinitions(data []byte) (*model.Fields, error) {
	return yml.Decode([]byte(meta.ExpandEnv(string(data))))
}

// DecodeGroups decodes group candidates from YAML content
func (s *Service) DecodeGroups(data []byte) (*model.Fields, error) {
	return yml.Decode([]byte(meta.ExpandEnv(string(data))))
}

func merge(URL, entity string, source, dest *model.Fields, sources map[string]string) {
	source.Range(func(id string, value interface{}) bool {
		if dest.Has(id) {
			log.Warn().Str(entity, id).Str("url", URL).Msgf("%s %s redeclared, previous declaration replaced", entity, id)
		}
		dest.Put(id, value)
		if sources != nil {
			sources[id] = URL
		}
		return true
	})
}

func fileKind(name string) kind {
	base := path.Base(name)
	ext := path.Ext(base)
	if ext != ".yaml" && ext != ".yml" {
		return kindOther
	}
	switch {
	case strings.HasSuffix(strings.TrimSuffix(base, ext), DefinitionSuffix):
		return kindDefinitions
	case strings.HasSuffix(strings.TrimSuffix(base, ext), GroupSuffix):
		return kindGroups
	}
	return kindOther
}

// New creates a discovery service
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.metaService == nil {
		ret.metaService = meta.New(afs.New(), "")
	}
	return ret
}

// IsDefinitionFile returns true for workflow or group definition file names
func IsDefinitionFile(name string) bool {
	return fileKind(name) != kindOther
}
