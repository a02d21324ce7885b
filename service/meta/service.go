// Package meta retrieves external documents (SBML models, media
// definitions) through the afs virtual file system, so that file, embed and
// mem schemes are all supported transparently.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service resolves document URLs against an optional base URL and downloads
// their content.
type Service struct {
	fs      afs.Service
	baseURL string
	options []storage.Option
}

// New creates a meta service.  baseURL may be empty, in which case URLs are
// used as supplied.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	return &Service{fs: fs, baseURL: baseURL, options: options}
}

// Resolve joins the given URI with the configured base URL.
func (s *Service) Resolve(URI string) string {
	if s.baseURL == "" || strings.Contains(URI, "://") {
		return URI
	}
	return url.Join(s.baseURL, URI)
}

// Download returns the raw content of the document at the given URL.
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, s.Resolve(URL), s.options...)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", URL, err)
	}
	return data, nil
}

// Exists reports whether a document exists at the given URL.
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, s.Resolve(URL), s.options...)
}

// Load downloads a YAML or JSON document, expands ${env.KEY} expressions and
// unmarshals it into target.  The format is chosen by file extension; YAML
// is the default.
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	data, err := s.Download(ctx, URL)
	if err != nil {
		return err
	}
	expanded := expandEnvExpr(string(data))
	switch strings.ToLower(path.Ext(URL)) {
	case ".json":
		if err = json.Unmarshal([]byte(expanded), target); err != nil {
			return fmt.Errorf("failed to decode json document %s: %w", URL, err)
		}
	default:
		if err = yaml.Unmarshal([]byte(expanded), target); err != nil {
			return fmt.Errorf("failed to decode yaml document %s: %w", URL, err)
		}
	}
	return nil
}
