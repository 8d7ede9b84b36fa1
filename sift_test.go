package sift_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/pkg/adapters/memory"
	"github.com/atelier-tools/sift/pkg/domain"
)

func newDemoTree(t *testing.T) *memory.DocumentTree {
	t.Helper()
	page := &domain.Node{ID: "p1", Name: "Landing", Kind: domain.KindPage}
	page.AppendChild(&domain.Node{ID: "hero", Name: "Hero", Kind: domain.KindFrame, Layout: &domain.Layout{Width: 1440, Height: 600}})
	page.AppendChild(&domain.Node{ID: "cta", Name: "CTA Button", Kind: domain.KindFrame, Layout: &domain.Layout{Width: 180, Height: 48}})
	tree, err := memory.NewDocumentTree(&domain.Document{Name: "Site", Pages: []*domain.Node{page}})
	require.NoError(t, err)
	return tree
}

func TestNewRequiresTree(t *testing.T) {
	_, err := sift.New(nil)
	require.Error(t, err)
}

func TestRunThroughFacade(t *testing.T) {
	eng, err := sift.New(newDemoTree(t))
	require.NoError(t, err)

	res, err := eng.Run(context.Background(), &domain.Query{
		ElementKind: domain.ElementAny,
		Filters: []domain.Filter{
			{Key: domain.KeyLayerName, Comparison: domain.CompareContains, Value: "Button"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "CTA Button", res.Elements[0].Name)
}

func TestScopeThroughFacade(t *testing.T) {
	eng, err := sift.New(newDemoTree(t), sift.WithPreferenceStore(memory.NewPreferenceStore()))
	require.NoError(t, err)
	ctx := context.Background()

	assert.Equal(t, domain.ScopeCurrentPage, eng.Scope())
	require.NoError(t, eng.SetScope(ctx, domain.ScopeAllPages))
	assert.Equal(t, domain.ScopeAllPages, eng.Scope())
}

func TestTreeAccessor(t *testing.T) {
	tree := newDemoTree(t)
	eng, err := sift.New(tree)
	require.NoError(t, err)
	assert.Equal(t, tree, eng.Tree())
}
