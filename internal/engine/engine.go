package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-tools/sift/internal/logging"
	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// Config wires an Engine to its ports. Tree is required; everything else
// has a working default.
type Config struct {
	Tree        ports.DocumentTree
	Presenter   ports.Presenter
	Preferences ports.PreferenceStore
	Sink        ports.ExportSink
	Hooks       domain.LifecycleHooks
	Logger      *slog.Logger

	// YieldEvery is the pause taken at each traversal checkpoint. Zero
	// means yield the scheduler without sleeping.
	YieldEvery time.Duration

	// Clock supplies the current time for the {date} rename token.
	Clock func() time.Time
}

// Engine evaluates queries over a host document tree and applies bulk
// actions to the matched subset. It holds no match state between runs;
// the only thing it remembers is the traversal scope.
type Engine struct {
	tree       ports.DocumentTree
	presenter  ports.Presenter
	prefs      ports.PreferenceStore
	sink       ports.ExportSink
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	yieldEvery time.Duration
	clock      func() time.Time

	scope domain.Scope
}

var errNoTree = errors.New("engine: document tree is required")

// New builds an Engine over a document tree.
func New(cfg Config) (*Engine, error) {
	if cfg.Tree == nil {
		return nil, errNoTree
	}
	e := &Engine{
		tree:       cfg.Tree,
		presenter:  cfg.Presenter,
		prefs:      cfg.Preferences,
		sink:       cfg.Sink,
		hooks:      cfg.Hooks,
		logger:     cfg.Logger,
		yieldEvery: cfg.YieldEvery,
		clock:      cfg.Clock,
		scope:      domain.ScopeCurrentPage,
	}
	if e.presenter == nil {
		e.presenter = ports.NopPresenter{}
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	return e, nil
}

// Scope returns the active traversal scope.
func (e *Engine) Scope() domain.Scope { return e.scope }

// SetScope switches the traversal scope and persists it when a
// preference store is wired. Scope is the only setting that survives
// sessions.
func (e *Engine) SetScope(ctx context.Context, scope domain.Scope) error {
	e.scope = scope
	if e.prefs == nil {
		return nil
	}
	if err := e.prefs.SaveScope(ctx, scope); err != nil {
		e.logger.Warn("persisting scope failed", "scope", scope, "error", err)
		return err
	}
	return nil
}

// LoadPreferences restores the persisted scope. A missing preference
// leaves the default in place.
func (e *Engine) LoadPreferences(ctx context.Context) error {
	if e.prefs == nil {
		return nil
	}
	scope, err := e.prefs.LoadScope(ctx)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	e.scope = scope
	return nil
}

// Run executes one query: traverse the scope, fold the filter set over
// every candidate, report the matches, and apply the bulk action. Every
// run recomputes from the live tree.
func (e *Engine) Run(ctx context.Context, q *domain.Query) (*domain.QueryResult, error) {
	runID := uuid.NewString()
	started := e.clock()
	scope := q.Scope
	if scope == "" {
		scope = e.scope
	}
	if e.hooks.OnQueryStart != nil {
		e.hooks.OnQueryStart(ctx, &domain.QueryEvent{
			Timestamp: started, RunID: runID, Scope: scope, Action: q.Action,
		})
	}

	res, candidateCount, err := e.run(ctx, q, scope, runID)
	if err != nil {
		e.presenter.Notify(err.Error())
		// The presentation layer still needs a terminal result message,
		// otherwise it would keep showing the previous run.
		empty := &domain.QueryResult{RunID: runID}
		e.presenter.Result(empty)
		return empty, err
	}

	if e.hooks.OnQueryEnd != nil {
		e.hooks.OnQueryEnd(ctx, &domain.QueryEvent{
			Timestamp: e.clock(), RunID: runID, Scope: scope, Action: q.Action,
			Matched: res.Count, Candidate: candidateCount, Duration: e.clock().Sub(started),
		})
	}
	e.presenter.Result(res)
	return res, nil
}

func (e *Engine) run(ctx context.Context, q *domain.Query, scope domain.Scope, runID string) (*domain.QueryResult, int, error) {
	set, err := CompileFilters(q.Filters)
	if err != nil {
		return nil, 0, err
	}

	switch q.ElementKind {
	case domain.ElementStyle:
		res, err := e.runStyles(ctx, set, runID)
		return res, 0, err
	case domain.ElementVariable:
		res, err := e.runVariables(ctx, set, runID)
		return res, 0, err
	}

	candidates, onCurrentPage, err := e.candidates(ctx, scope)
	if err != nil {
		return nil, 0, err
	}

	// The current-page figure counts candidates, not matches.
	res := &domain.QueryResult{RunID: runID, CurrentPageCount: onCurrentPage}
	var matched []*domain.Node
	for _, n := range candidates {
		if !kindMatch(n, q.ElementKind) {
			continue
		}
		if !set.Verdict(n) {
			continue
		}
		matched = append(matched, n)
		res.Elements = append(res.Elements, domain.ElementSummary{
			ID: n.ID, Name: n.Name, PageName: n.PageName(), Selected: true,
		})
	}
	res.Count = len(matched)

	if q.Action != domain.ActionNone && len(matched) > 0 {
		appliedCount, download, err := e.applyAction(ctx, q, runID, matched)
		if err != nil {
			return nil, len(candidates), err
		}
		res.Download = download
		if e.hooks.OnAction != nil {
			e.hooks.OnAction(ctx, &domain.ActionEvent{
				Timestamp: e.clock(), RunID: runID, Action: q.Action, Applied: appliedCount,
			})
		}
		if mutates(q.Action) {
			e.presenter.ResultsInvalidated()
		}
	}
	return res, len(candidates), nil
}

// mutates reports whether the action changes the tree, invalidating the
// presented results list.
func mutates(a domain.Action) bool {
	switch a {
	case domain.ActionRename, domain.ActionDuplicate, domain.ActionDelete:
		return true
	}
	return false
}

// kindMatch pre-filters a candidate by element kind. The boolean
// operation subtypes match against the node's operation tag.
func kindMatch(n *domain.Node, kind domain.ElementKind) bool {
	switch kind {
	case domain.ElementAny, "":
		return true
	case domain.ElementKind(domain.BooleanUnion), domain.ElementKind(domain.BooleanSubtract),
		domain.ElementKind(domain.BooleanIntersect), domain.ElementKind(domain.BooleanExclude):
		return n.Kind == domain.KindBooleanOperation && n.BooleanOperation == string(kind)
	}
	return string(n.Kind) == string(kind)
}

// runStyles lists the document's local styles. Filters run against the
// style name only, through a name-bearing stand-in node.
func (e *Engine) runStyles(ctx context.Context, set *FilterSet, runID string) (*domain.QueryResult, error) {
	styles, err := e.tree.Styles(ctx)
	if err != nil {
		return nil, err
	}
	res := &domain.QueryResult{RunID: runID}
	for _, s := range styles {
		if !set.Verdict(&domain.Node{Name: s.Name}) {
			continue
		}
		res.Styles = append(res.Styles, domain.StyleSummary{
			ID: s.ID, Name: s.Name, StyleType: s.StyleType, Selected: true,
		})
	}
	res.Count = len(res.Styles)
	return res, nil
}

// runVariables lists every variable of every collection, one row per
// mode, with values normalized to display strings.
func (e *Engine) runVariables(ctx context.Context, set *FilterSet, runID string) (*domain.QueryResult, error) {
	collections, err := e.tree.VariableCollections(ctx)
	if err != nil {
		return nil, err
	}
	res := &domain.QueryResult{RunID: runID}
	for _, col := range collections {
		for _, v := range col.Variables {
			if !set.Verdict(&domain.Node{Name: v.Name}) {
				continue
			}
			for _, mode := range col.Modes {
				res.Variables = append(res.Variables, domain.VariableSummary{
					Collection: col.Name,
					Mode:       mode.Name,
					Name:       v.Name,
					Value:      domain.DisplayValue(v.ResolvedType, v.ValuesByMode[mode.ID]),
					Selected:   true,
				})
			}
		}
	}
	res.Count = len(res.Variables)
	return res, nil
}

// selectedOne returns the single selected node, notifying and failing on
// any other cardinality.
func (e *Engine) selectedOne() (*domain.Node, error) {
	selection := e.tree.Selection()
	switch len(selection) {
	case 0:
		e.presenter.Notify(domain.ErrNoSelection.Error())
		return nil, domain.ErrNoSelection
	case 1:
		return selection[0], nil
	}
	e.presenter.Notify(domain.ErrMultipleSelection.Error())
	return nil, domain.ErrMultipleSelection
}

// Inspect reads one attribute off the single selected node.
func (e *Engine) Inspect(ctx context.Context, key domain.AttributeKey) (any, error) {
	n, err := e.selectedOne()
	if err != nil {
		return nil, err
	}
	return Inspect(n, key), nil
}

// Snapshot reads every supported attribute off the single selected node,
// in presentation order.
func (e *Engine) Snapshot(ctx context.Context) ([]domain.AttributeValue, error) {
	n, err := e.selectedOne()
	if err != nil {
		return nil, err
	}
	out := make([]domain.AttributeValue, 0, len(snapshotKeys))
	for _, key := range snapshotKeys {
		out = append(out, domain.AttributeValue{Key: key, Value: Inspect(n, key)})
	}
	return out, nil
}

// SelectElement navigates the host to one element: switch to its page if
// needed, select it, and scroll it into view.
func (e *Engine) SelectElement(ctx context.Context, id string) error {
	n, err := e.tree.NodeByID(id)
	if err != nil {
		return err
	}
	page := n.Page()
	if page == nil {
		return domain.ErrUnknownPage
	}
	if page != e.tree.CurrentPage() {
		if err := e.tree.SetCurrentPage(ctx, page.ID); err != nil {
			return err
		}
	}
	if err := e.tree.SetSelection(ctx, []*domain.Node{n}); err != nil {
		return err
	}
	e.tree.ScrollAndZoomIntoView([]*domain.Node{n})
	return nil
}
