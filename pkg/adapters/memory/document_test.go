package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/pkg/domain"
)

func testDoc() *domain.Document {
	frame := &domain.Node{ID: "frame", Name: "Frame", Kind: domain.KindFrame}
	frame.AppendChild(&domain.Node{ID: "child", Name: "Child", Kind: domain.KindRectangle})

	home := &domain.Node{ID: "home", Name: "Home", Kind: domain.KindPage}
	home.AppendChild(frame)
	about := &domain.Node{ID: "about", Name: "About", Kind: domain.KindPage}
	about.AppendChild(&domain.Node{ID: "hero", Name: "Hero", Kind: domain.KindFrame})

	return &domain.Document{Name: "Doc", Pages: []*domain.Node{home, about}}
}

func TestNewDocumentTreeNeedsPages(t *testing.T) {
	_, err := NewDocumentTree(&domain.Document{})
	require.Error(t, err)
	_, err = NewDocumentTree(nil)
	require.Error(t, err)
}

func TestNodeByID(t *testing.T) {
	tree, err := NewDocumentTree(testDoc())
	require.NoError(t, err)

	n, err := tree.NodeByID("child")
	require.NoError(t, err)
	assert.Equal(t, "Child", n.Name)
	assert.Equal(t, "Home", n.PageName(), "parent links are repaired on load")

	_, err = tree.NodeByID("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestSetCurrentPageClearsSelection(t *testing.T) {
	tree, err := NewDocumentTree(testDoc())
	require.NoError(t, err)
	ctx := context.Background()

	frame, _ := tree.NodeByID("frame")
	require.NoError(t, tree.SetSelection(ctx, []*domain.Node{frame}))
	require.Len(t, tree.Selection(), 1)

	require.NoError(t, tree.SetCurrentPage(ctx, "about"))
	assert.Equal(t, "About", tree.CurrentPage().Name)
	assert.Empty(t, tree.Selection())

	assert.ErrorIs(t, tree.SetCurrentPage(ctx, "nope"), domain.ErrUnknownPage)
}

func TestSetSelectionRejectsOtherPages(t *testing.T) {
	tree, err := NewDocumentTree(testDoc())
	require.NoError(t, err)

	hero, _ := tree.NodeByID("hero")
	err = tree.SetSelection(context.Background(), []*domain.Node{hero})
	require.Error(t, err, "hero lives on About, not the current page")
}

func TestCloneAssignsFreshIDs(t *testing.T) {
	tree, err := NewDocumentTree(testDoc())
	require.NoError(t, err)

	frame, _ := tree.NodeByID("frame")
	clone, err := tree.Clone(context.Background(), frame)
	require.NoError(t, err)

	assert.NotEqual(t, frame.ID, clone.ID)
	require.Len(t, clone.Children, 1)
	assert.NotEqual(t, "child", clone.Children[0].ID)
	assert.Equal(t, "Child", clone.Children[0].Name)
	assert.Equal(t, tree.CurrentPage(), clone.Page())

	// The clone is addressable afterwards.
	found, err := tree.NodeByID(clone.ID)
	require.NoError(t, err)
	assert.Same(t, clone, found)
}

func TestRemoveDetachesAndPrunesSelection(t *testing.T) {
	tree, err := NewDocumentTree(testDoc())
	require.NoError(t, err)
	ctx := context.Background()

	frame, _ := tree.NodeByID("frame")
	require.NoError(t, tree.SetSelection(ctx, []*domain.Node{frame}))
	require.NoError(t, tree.Remove(ctx, frame))

	_, err = tree.NodeByID("frame")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
	assert.Empty(t, tree.Selection())
}

func TestExportUsesRenderFunc(t *testing.T) {
	tree, err := NewDocumentTree(testDoc(), WithRender(func(n *domain.Node, p domain.ExportPreset) ([]byte, error) {
		return []byte("custom:" + n.ID), nil
	}))
	require.NoError(t, err)

	frame, _ := tree.NodeByID("frame")
	data, err := tree.Export(context.Background(), frame, domain.DefaultExportPreset())
	require.NoError(t, err)
	assert.Equal(t, []byte("custom:frame"), data)
}
