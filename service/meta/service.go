// Package meta loads documents through the afs virtual file system so that
// callers can address them uniformly by URL (plain paths, file://, embed://,
// http:// and so on).  URLs may contain ${env.KEY} expressions which are
// expanded before resolution.
package meta

import (
	"context"
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service resolves and decodes documents addressed by URL.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service.  When baseURL is not empty, relative URLs are
// resolved against it.  Storage options (for example an embedded file system)
// are passed through to every afs call.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Resolve expands env expressions and joins relative URLs with the base URL.
func (s *Service) Resolve(URL string) string {
	URL = expandEnvExpr(URL)
	if s.baseURL != "" && !isAbsolute(URL) {
		return url.Join(s.baseURL, URL)
	}
	return URL
}

// Download fetches the raw document content.
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	resolved := s.Resolve(URL)
	data, err := s.fs.DownloadWithURL(ctx, resolved, s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", resolved, err)
	}
	return data, nil
}

// Load fetches a document and decodes it into dest.  The decoder is chosen
// by extension: .yaml/.yml/.json use YAML, everything else (.sedml, .cellml,
// .xml) uses XML.
func (s *Service) Load(ctx context.Context, URL string, dest interface{}) error {
	data, err := s.Download(ctx, URL)
	if err != nil {
		return err
	}
	switch strings.ToLower(path.Ext(s.Resolve(URL))) {
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", URL, err)
		}
	default:
		if err := xml.Unmarshal(data, dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", URL, err)
		}
	}
	return nil
}

// Exists reports whether the URL resolves to an existing document.
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, s.Resolve(URL), s.options...)
}

func isAbsolute(URL string) bool {
	return strings.Contains(URL, "://") || strings.HasPrefix(URL, "/")
}
