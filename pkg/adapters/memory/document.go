// Package memory provides in-process host adapters: a DocumentTree over
// an owned node graph and a PreferenceStore over a map. They back the
// CLI and server modes and double as the reference implementation for
// the ports contracts.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// RenderFunc produces the bytes for one node export. The default render
// emits a small deterministic placeholder payload.
type RenderFunc func(n *domain.Node, preset domain.ExportPreset) ([]byte, error)

// DocumentTree is an in-process implementation of ports.DocumentTree
// that owns its document outright. All pages are always materialized, so
// LoadAllPages is instantaneous.
type DocumentTree struct {
	mu        sync.RWMutex
	doc       *domain.Document
	current   *domain.Node
	selection []*domain.Node
	render    RenderFunc
}

// Option configures a DocumentTree.
type Option func(*DocumentTree)

// WithRender replaces the placeholder export renderer.
func WithRender(r RenderFunc) Option {
	return func(t *DocumentTree) { t.render = r }
}

// NewDocumentTree wraps a document. Parent links are repaired and the
// first page becomes current.
func NewDocumentTree(doc *domain.Document, opts ...Option) (*DocumentTree, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("memory: document needs at least one page")
	}
	doc.Link()
	t := &DocumentTree{
		doc:     doc,
		current: doc.Pages[0],
		render: func(n *domain.Node, preset domain.ExportPreset) ([]byte, error) {
			return []byte(fmt.Sprintf("%s %s@%gx %s", preset.Format, n.ID, preset.Scale, n.Name)), nil
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *DocumentTree) Root() *domain.Document {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.doc
}

func (t *DocumentTree) CurrentPage() *domain.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *DocumentTree) SetCurrentPage(ctx context.Context, pageID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.doc.Pages {
		if p.ID == pageID {
			t.current = p
			// Selection is page-scoped on the host.
			t.selection = nil
			return nil
		}
	}
	return domain.ErrUnknownPage
}

func (t *DocumentTree) Selection() []*domain.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*domain.Node(nil), t.selection...)
}

func (t *DocumentTree) SetSelection(ctx context.Context, nodes []*domain.Node) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range nodes {
		if n.Page() != t.current {
			return fmt.Errorf("memory: node %s is not on the current page", n.ID)
		}
	}
	t.selection = append([]*domain.Node(nil), nodes...)
	return nil
}

// ScrollAndZoomIntoView is a no-op for the in-process host, which has no
// viewport.
func (t *DocumentTree) ScrollAndZoomIntoView(nodes []*domain.Node) {}

// LoadAllPages is a no-op: the in-process tree is always fully loaded.
func (t *DocumentTree) LoadAllPages(ctx context.Context) error {
	return ctx.Err()
}

func (t *DocumentTree) NodeByID(id string) (*domain.Node, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, p := range t.doc.Pages {
		if p.ID == id {
			return p, nil
		}
		if n := findByID(p, id); n != nil {
			return n, nil
		}
	}
	return nil, domain.ErrUnknownNode
}

func findByID(root *domain.Node, id string) *domain.Node {
	for _, c := range root.Children {
		if c.ID == id {
			return c
		}
		if n := findByID(c, id); n != nil {
			return n
		}
	}
	return nil
}

func (t *DocumentTree) Rename(ctx context.Context, n *domain.Node, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	n.Name = name
	return nil
}

func (t *DocumentTree) Remove(ctx context.Context, n *domain.Node) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	n.Detach()
	for i, s := range t.selection {
		if s == n {
			t.selection = append(t.selection[:i], t.selection[i+1:]...)
			break
		}
	}
	return nil
}

// Clone deep-copies the node subtree with fresh IDs and appends the copy
// to the current page.
func (t *DocumentTree) Clone(ctx context.Context, n *domain.Node) (*domain.Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	clone := deepCopy(n)
	t.current.AppendChild(clone)
	return clone, nil
}

func deepCopy(n *domain.Node) *domain.Node {
	c := *n
	c.ID = uuid.NewString()
	c.Children = nil
	out := &c
	for _, child := range n.Children {
		out.AppendChild(deepCopy(child))
	}
	return out
}

func (t *DocumentTree) Export(ctx context.Context, n *domain.Node, preset domain.ExportPreset) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.render(n, preset)
}

func (t *DocumentTree) Styles(ctx context.Context) ([]domain.Style, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Style(nil), t.doc.Styles...), nil
}

func (t *DocumentTree) VariableCollections(ctx context.Context) ([]domain.VariableCollection, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.VariableCollection(nil), t.doc.Variables...), nil
}

var _ ports.DocumentTree = (*DocumentTree)(nil)
