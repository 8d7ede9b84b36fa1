package ports

import (
	"context"

	"github.com/atelier-tools/sift/pkg/domain"
)

// DocumentTree is the boundary with the host's live node tree. The host
// owns all nodes; the engine reads during traversal and evaluation and
// mutates only through the write methods below, as the terminal step of
// an action.
type DocumentTree interface {
	// Root returns the document: ordered pages plus style and variable
	// collections.
	Root() *domain.Document

	// CurrentPage returns the host's active page.
	CurrentPage() *domain.Node

	// SetCurrentPage makes the page with the given ID active.
	SetCurrentPage(ctx context.Context, pageID string) error

	// Selection returns the host's current selection in order.
	Selection() []*domain.Node

	// SetSelection replaces the host selection. All nodes must live on
	// the current page.
	SetSelection(ctx context.Context, nodes []*domain.Node) error

	// ScrollAndZoomIntoView pans the host viewport to the nodes.
	ScrollAndZoomIntoView(nodes []*domain.Node)

	// LoadAllPages materializes every page of the document. This is the
	// explicit, possibly-expensive step before an all-pages traversal.
	LoadAllPages(ctx context.Context) error

	// NodeByID resolves a node anywhere in the document, or
	// domain.ErrUnknownNode.
	NodeByID(id string) (*domain.Node, error)

	// Rename sets the node's name.
	Rename(ctx context.Context, n *domain.Node, name string) error

	// Remove deletes the node from the tree.
	Remove(ctx context.Context, n *domain.Node) error

	// Clone duplicates the node and appends the copy to the current
	// page, returning the clone.
	Clone(ctx context.Context, n *domain.Node) (*domain.Node, error)

	// Export renders the node with the given preset and returns the
	// finished image bytes.
	Export(ctx context.Context, n *domain.Node, preset domain.ExportPreset) ([]byte, error)

	// Styles returns the document's local styles.
	Styles(ctx context.Context) ([]domain.Style, error)

	// VariableCollections returns the document's variable collections.
	VariableCollections(ctx context.Context) ([]domain.VariableCollection, error)
}
