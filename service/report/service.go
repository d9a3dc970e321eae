package report

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

const prefix = "os-analytics-report-"

// Service persists snapshots under a base URL.
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.Mutex
}

// BaseURL returns the normalized report location.
func (s *Service) BaseURL() string {
	return s.baseURL
}

// Save writes the snapshot and returns its URL.
func (s *Service) Save(ctx context.Context, snapshot *Snapshot) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("cannot save nil snapshot")
	}
	data, err := Encode(snapshot)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ensureBase(ctx); err != nil {
		return "", err
	}
	URL := url.Join(s.baseURL, Name(snapshot.Timestamp))
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to save report %s: %w", URL, err)
	}
	return URL, nil
}

// Load reads a snapshot from URL; relative names resolve against the base URL.
func (s *Service) Load(ctx context.Context, URL string) (*Snapshot, error) {
	if !strings.Contains(URL, "://") && !strings.HasPrefix(URL, "/") {
		URL = url.Join(s.baseURL, URL)
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check report %s: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("report not found: %s", URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", URL, err)
	}
	return Decode(data)
}

// List returns report URLs under the base URL sorted by name.
func (s *Service) List(ctx context.Context) ([]string, error) {
	exists, err := s.fs.Exists(ctx, s.baseURL)
	if err != nil || !exists {
		return nil, err
	}
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	var ret []string
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if !strings.HasPrefix(object.Name(), prefix) || !strings.HasSuffix(object.Name(), ".yaml") {
			continue
		}
		ret = append(ret, object.URL())
	}
	sort.Strings(ret)
	return ret, nil
}

func (s *Service) ensureBase(ctx context.Context) error {
	exists, _ := s.fs.Exists(ctx, s.baseURL)
	if exists {
		return nil
	}
	if err := s.fs.Create(ctx, s.baseURL, file.DefaultDirOsMode, true); err != nil {
		return fmt.Errorf("failed to create report location %s: %w", s.baseURL, err)
	}
	return nil
}

// New creates a report service writing under baseURL. Plain paths are
// treated as local file locations.
func New(baseURL string) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("report base URL cannot be empty")
	}
	return &Service{
		baseURL: url.Normalize(baseURL, file.Scheme),
		fs:      afs.New(),
	}, nil
}
