// Package meta loads definition assets through viant/afs, so that definition
// files can live on a local disk, in memory, in an embedded FS or in cloud
// storage.
package meta

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/option"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// Service loads assets relative to a base URL
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// URL returns absolute location URL
func (s *Service) URL(location string) string {
	if s.baseURL == "" || strings.Contains(location, "://") || strings.HasPrefix(location, "/") {
		return location
	}
	return url.Join(s.baseURL, location)
}

// Download returns asset content with ${env.KEY} expressions expanded
func (s *Service) Download(ctx context.Context, location string) ([]byte, error) {
	URL := s.URL(location)
	data, err := s.fs.DownloadWithURL(ctx, URL, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", URL, err)
	}
	return []byte(ExpandEnv(string(data))), nil
}

// List returns URLs of files under location accepted by match, sorted by URL
func (s *Service) List(ctx context.Context, location string, match func(name string) bool) ([]string, error) {
	URL := s.URL(location)
	options := append([]storage.Option{option.NewRecursive(true)}, s.options...)
	objects, err := s.fs.List(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", URL, err)
	}
	var result []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if match != nil && !match(object.Name()) {
			continue
		}
		result = append(result, object.URL())
	}
	sort.Strings(result)
	return result, nil
}

// New creates a meta service
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}
