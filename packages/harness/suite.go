package harness

import (
	"testing"

	"github.com/abdul-hamid-achik/domspec/packages/core/config"
	"github.com/abdul-hamid-achik/domspec/packages/dom"
	"github.com/abdul-hamid-achik/domspec/packages/events"
	"github.com/abdul-hamid-achik/domspec/packages/fixtures"
	"github.com/abdul-hamid-achik/domspec/packages/matchers"
	"github.com/abdul-hamid-achik/domspec/packages/transport"
	"go.uber.org/zap"
)

// Suite is the shared state of a test package.
type Suite struct {
	cfg       *config.Config
	transport transport.Transport
	logger    *zap.Logger

	doc      *dom.Document
	fixtures *fixtures.Fixtures
	registry *events.Registry
	table    matchers.Table
}

// Option configures a Suite.
type Option func(*Suite)

// WithConfig sets the configuration. Unset fields keep their defaults.
func WithConfig(cfg *config.Config) Option {
	return func(s *Suite) {
		s.cfg = config.DefaultConfig().Merge(cfg)
	}
}

// WithTransport replaces the transport picked from the fixtures path.
func WithTransport(t transport.Transport) Option {
	return func(s *Suite) {
		s.transport = t
	}
}

// WithLogger sets the logger handed to every component.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Suite) {
		s.logger = logger
	}
}

// NewSuite builds the document, the fixture manager, the spy registry and
// the merged matcher table.
func NewSuite(opts ...Option) *Suite {
	s := &Suite{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.transport == nil {
		s.transport = transport.For(s.cfg.FixturesPath, s.cfg.ClientOptions()...)
	}

	s.doc = dom.NewDocument()
	loader := fixtures.NewLoader(
		fixtures.WithBasePath(s.cfg.FixturesPath),
		fixtures.WithTransport(s.transport),
		fixtures.WithLogger(s.logger),
	)
	s.fixtures = fixtures.New(s.doc, loader,
		fixtures.WithContainerID(s.cfg.ContainerID),
		fixtures.WithSandboxID(s.cfg.SandboxID),
		fixtures.WithFixturesLogger(s.logger),
	)
	s.registry = events.NewRegistry(s.doc, events.WithLogger(s.logger))
	s.table = matchers.Merge(matchers.Default(), matchers.TriggeredOn(s.registry))

	return s
}

// Document returns the suite's document.
func (s *Suite) Document() *dom.Document {
	return s.doc
}

// Fixtures returns the fixture manager.
func (s *Suite) Fixtures() *fixtures.Fixtures {
	return s.fixtures
}

// Registry returns the event spy registry.
func (s *Suite) Registry() *events.Registry {
	return s.registry
}

// Table returns the merged matcher table.
func (s *Suite) Table() matchers.Table {
	return s.table
}

// Begin starts a test. The returned Spec reports through t, and the fixture
// container and spy records are cleared when t finishes, even if it failed
// or panicked.
func (s *Suite) Begin(t testing.TB) *Spec {
	t.Helper()
	t.Cleanup(s.CleanUp)
	s.logger.Debug("test started", zap.String("test", t.Name()))
	return &Spec{t: t, suite: s}
}

// CleanUp removes the fixture container and forgets spy records. The
// fixture cache is kept.
func (s *Suite) CleanUp() {
	s.fixtures.CleanUp()
	s.registry.CleanUp()
}
