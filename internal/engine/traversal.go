package engine

import (
	"context"
	"runtime"
	"time"

	"github.com/atelier-tools/sift/pkg/domain"
)

// checkpoint yields the cooperative thread and flushes a progress
// snapshot. Traversal calls it at scope-defined points: after each page
// subtree, or after each selection element.
func (e *Engine) checkpoint(ctx context.Context, state *domain.LoadingState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.presenter.Loading(*state)
	if e.yieldEvery > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.yieldEvery):
		}
	} else {
		runtime.Gosched()
	}
	return nil
}

// candidates gathers the traversal set for a scope in document order and
// reports how many of the candidates sit on the current page. Pages
// themselves are never candidates; traversal starts at their children.
// For the selection scope each selected element is a candidate followed
// by its descendants, and the whole set counts as current-page.
func (e *Engine) candidates(ctx context.Context, scope domain.Scope) ([]*domain.Node, int, error) {
	state := domain.LoadingState{Active: true}
	defer func() {
		state.Active = false
		e.presenter.Loading(state)
	}()

	switch scope {
	case domain.ScopeAllPages:
		if err := e.tree.LoadAllPages(ctx); err != nil {
			return nil, 0, err
		}
		current := e.tree.CurrentPage()
		var out []*domain.Node
		onCurrent := 0
		for _, page := range e.tree.Root().Pages {
			before := len(out)
			for _, child := range page.Children {
				out = appendSubtree(out, child)
			}
			if page == current {
				onCurrent = len(out) - before
			}
			state.PageCount++
			state.NodeCount = len(out)
			if err := e.checkpoint(ctx, &state); err != nil {
				return nil, 0, err
			}
		}
		return out, onCurrent, nil

	case domain.ScopeCurrentSelection:
		selection := e.tree.Selection()
		if len(selection) == 0 {
			return nil, 0, domain.ErrNoSelection
		}
		var out []*domain.Node
		for _, n := range selection {
			out = appendSubtree(out, n)
			state.NodeCount = len(out)
			if err := e.checkpoint(ctx, &state); err != nil {
				return nil, 0, err
			}
		}
		return out, len(out), nil

	default: // current page
		page := e.tree.CurrentPage()
		if page == nil {
			return nil, 0, domain.ErrUnknownPage
		}
		var out []*domain.Node
		for _, child := range page.Children {
			out = appendSubtree(out, child)
		}
		state.PageCount = 1
		state.NodeCount = len(out)
		if err := e.checkpoint(ctx, &state); err != nil {
			return nil, 0, err
		}
		return out, len(out), nil
	}
}

// appendSubtree appends n and its descendants pre-order.
func appendSubtree(out []*domain.Node, n *domain.Node) []*domain.Node {
	out = append(out, n)
	for _, c := range n.Children {
		out = appendSubtree(out, c)
	}
	return out
}
