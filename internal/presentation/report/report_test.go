package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atelier-tools/sift/pkg/domain"
)

func TestMarkdownElements(t *testing.T) {
	md := Markdown(&domain.QueryResult{
		Count:            2,
		CurrentPageCount: 1,
		Elements: []domain.ElementSummary{
			{ID: "a", Name: "Hero", PageName: "Landing"},
			{ID: "b", Name: "Hero", PageName: "About"},
		},
	})
	assert.Contains(t, md, "**2** matched")
	assert.Contains(t, md, "| 1 | Hero | Landing | `a` |")
	assert.Contains(t, md, "| 2 | Hero | About | `b` |")
}

func TestMarkdownVariablesAndDownload(t *testing.T) {
	md := Markdown(&domain.QueryResult{
		Count: 1,
		Variables: []domain.VariableSummary{
			{Collection: "Tokens", Mode: "Light", Name: "accent", Value: "FF0000"},
		},
		Download: &domain.ExportFile{Name: "export.zip", Data: []byte("zip")},
	})
	assert.Contains(t, md, "| Tokens | Light | accent | FF0000 |")
	assert.Contains(t, md, "**export.zip** (3 bytes)")
}

func TestSnapshotTable(t *testing.T) {
	md := Snapshot([]domain.AttributeValue{
		{Key: domain.KeyLayerName, Value: "Hero"},
		{Key: domain.KeyWidth, Value: 120.0},
		{Key: domain.KeyFontSize, Value: "N/A"},
	})
	assert.Contains(t, md, "| layer-name | Hero |")
	assert.Contains(t, md, "| width | 120 |")
	assert.Contains(t, md, "| font-size | N/A |")
}
