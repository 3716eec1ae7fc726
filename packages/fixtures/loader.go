package fixtures

import (
	"strings"

	"github.com/abdul-hamid-achik/domspec/packages/transport"
	"go.uber.org/zap"
)

// DefaultPath is the fixtures base path used when none is configured.
const DefaultPath = "spec/fixtures"

// Loader resolves logical fixture paths and fetches uncached content.
type Loader struct {
	basePath  string
	transport transport.Transport
	cache     *Cache
	logger    *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithBasePath sets the path or URL fixture names are resolved against.
func WithBasePath(path string) LoaderOption {
	return func(l *Loader) {
		l.basePath = path
	}
}

// WithTransport sets the transport used for cache misses.
func WithTransport(t transport.Transport) LoaderOption {
	return func(l *Loader) {
		l.transport = t
	}
}

// WithCache shares an existing cache, typically one kept for the whole test
// binary.
func WithCache(c *Cache) LoaderOption {
	return func(l *Loader) {
		l.cache = c
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader. Without WithTransport the transport is chosen
// from the base path.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		basePath: DefaultPath,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.transport == nil {
		l.transport = transport.For(l.basePath)
	}
	return l
}

// BasePath returns the configured base path.
func (l *Loader) BasePath() string {
	return l.basePath
}

// Cache returns the cache backing the loader, creating it on first use.
func (l *Loader) Cache() *Cache {
	if l.cache == nil {
		l.cache = NewCache()
	}
	return l.cache
}

// Read returns the content of every path, joined in call order. Cached paths
// are not fetched again.
func (l *Loader) Read(paths ...string) (string, error) {
	var b strings.Builder
	for _, path := range paths {
		chunk, err := l.fixture(path)
		if err != nil {
			return "", err
		}
		b.WriteString(chunk)
	}
	return b.String(), nil
}

// Preload fills the cache for every path without returning content.
func (l *Loader) Preload(paths ...string) error {
	for _, path := range paths {
		if _, err := l.fixture(path); err != nil {
			return err
		}
	}
	return nil
}

// ClearCache drops every cached fixture.
func (l *Loader) ClearCache() {
	l.Cache().Clear()
	l.logger.Debug("fixture cache cleared")
}

// ResolveURL joins the base path and a fixture path, inserting a separator
// only when the base path does not already end with one.
func (l *Loader) ResolveURL(path string) string {
	if strings.HasSuffix(l.basePath, "/") {
		return l.basePath + path
	}
	return l.basePath + "/" + path
}

func (l *Loader) fixture(path string) (string, error) {
	cache := l.Cache()
	if content, ok := cache.Get(path); ok {
		l.logger.Debug("fixture cache hit", zap.String("fixture", path))
		return content, nil
	}

	url := l.ResolveURL(path)
	l.logger.Debug("fetching fixture", zap.String("fixture", path), zap.String("url", url))

	resp, err := l.transport.Fetch(url)
	if err != nil {
		l.logger.Warn("fixture fetch failed", zap.String("url", url), zap.Error(err))
		return "", &FetchError{URL: url, StatusText: err.Error(), Err: err}
	}
	if resp == nil {
		l.logger.Warn("fixture fetch returned no response", zap.String("url", url))
		return "", &FetchError{URL: url, StatusText: "no response"}
	}
	if !resp.IsSuccess() {
		l.logger.Warn("fixture fetch failed",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("statusText", resp.Status))
		return "", &FetchError{URL: url, Status: resp.StatusCode, StatusText: resp.Status}
	}

	content := resp.BodyString()
	if !cache.Add(path, content) {
		// Another reader stored the path first; the first entry wins.
		if cached, ok := cache.Get(path); ok {
			return cached, nil
		}
	}
	l.logger.Debug("fixture cached",
		zap.String("fixture", path),
		zap.Int("bytes", len(content)),
		zap.Duration("duration", resp.Duration))
	return content, nil
}
