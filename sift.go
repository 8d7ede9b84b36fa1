package sift

import (
	"context"
	"log/slog"
	"time"

	"github.com/atelier-tools/sift/internal/engine"
	"github.com/atelier-tools/sift/internal/logging"
	"github.com/atelier-tools/sift/pkg/adapters/zipsink"
	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// Engine is the high-level entry point for the Sift library.
// It wraps the internal engine and provides a simplified API for consumers.
type Engine struct {
	core      *engine.Engine
	tree      ports.DocumentTree
	presenter ports.Presenter
	prefs     ports.PreferenceStore
	sink      ports.ExportSink
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	yield     time.Duration
	clock     func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithPresenter injects the presentation boundary. Without one, progress
// and result messages are discarded and only return values remain.
func WithPresenter(p ports.Presenter) Option {
	return func(e *Engine) {
		e.presenter = p
	}
}

// WithPreferenceStore injects the store that persists the traversal
// scope across sessions.
func WithPreferenceStore(s ports.PreferenceStore) Option {
	return func(e *Engine) {
		e.prefs = s
	}
}

// WithExportSink replaces the default zip sink for export packaging.
func WithExportSink(s ports.ExportSink) Option {
	return func(e *Engine) {
		e.sink = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithYieldInterval sets the pause taken at each traversal checkpoint,
// keeping long traversals cooperative with the host.
func WithYieldInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.yield = d
	}
}

// WithClock overrides the time source used for the {date} rename token
// and lifecycle timestamps.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// New initializes a new Sift Engine over a host document tree.
func New(tree ports.DocumentTree, opts ...Option) (*Engine, error) {
	eng := &Engine{tree: tree}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.sink == nil {
		eng.sink = zipsink.New()
	}

	core, err := engine.New(engine.Config{
		Tree:        eng.tree,
		Presenter:   eng.presenter,
		Preferences: eng.prefs,
		Sink:        eng.sink,
		Hooks:       eng.hooks,
		Logger:      eng.logger,
		YieldEvery:  eng.yield,
		Clock:       eng.clock,
	})
	if err != nil {
		return nil, err
	}
	eng.core = core
	return eng, nil
}

// Run executes one query against the live tree and returns its result.
func (e *Engine) Run(ctx context.Context, q *domain.Query) (*domain.QueryResult, error) {
	return e.core.Run(ctx, q)
}

// Inspect reads one attribute off the single selected node.
func (e *Engine) Inspect(ctx context.Context, key domain.AttributeKey) (any, error) {
	return e.core.Inspect(ctx, key)
}

// Snapshot reads every supported attribute off the single selected node.
func (e *Engine) Snapshot(ctx context.Context) ([]domain.AttributeValue, error) {
	return e.core.Snapshot(ctx)
}

// SelectElement navigates the host viewport and selection to one element.
func (e *Engine) SelectElement(ctx context.Context, id string) error {
	return e.core.SelectElement(ctx, id)
}

// Scope returns the active traversal scope.
func (e *Engine) Scope() domain.Scope { return e.core.Scope() }

// SetScope switches and persists the traversal scope.
func (e *Engine) SetScope(ctx context.Context, scope domain.Scope) error {
	return e.core.SetScope(ctx, scope)
}

// LoadPreferences restores the persisted scope, if any.
func (e *Engine) LoadPreferences(ctx context.Context) error {
	return e.core.LoadPreferences(ctx)
}

// Tree returns the underlying document tree used by the engine.
func (e *Engine) Tree() ports.DocumentTree {
	return e.tree
}
