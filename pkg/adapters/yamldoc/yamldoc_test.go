package yamldoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/pkg/domain"
)

const docYAML = `
name: Demo
pages:
  - id: home
    name: Home
    kind: PAGE
    children:
      - id: frame
        name: Frame
        kind: FRAME
        layout:
          width: 100
          height: 50
          x: 0
          y: 0
        children:
          - id: label
            name: Label
            kind: TEXT
`

func TestLoadRepairsParentLinks(t *testing.T) {
	doc, err := Load(strings.NewReader(docYAML))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	frame := doc.Pages[0].Children[0]
	label := frame.Children[0]
	assert.Equal(t, frame, label.Parent())
	assert.Equal(t, "Home", label.PageName())
	assert.Equal(t, 100.0, frame.Layout.Width)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("name: X\npages:\n  - id: p\n    bogus: true\n"))
	require.Error(t, err)
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	_, err := Load(strings.NewReader("name: X\n"))
	require.Error(t, err)
}

func TestDecodeQuery(t *testing.T) {
	q, err := DecodeQuery(strings.NewReader(`
scope: all-pages
element_kind: ANY
filters:
  - key: layer-name
    comparison: contains
    value: Icon
  - key: width
    comparison: is-larger-than
    value: "100"
    logic: AND
action: rename
rename_template: "{name}-{id}"
`))
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeAllPages, q.Scope)
	require.Len(t, q.Filters, 2)
	assert.Equal(t, domain.KeyWidth, q.Filters[1].Key)
	assert.Equal(t, domain.LogicAnd, q.Filters[1].Logic)
	assert.Equal(t, domain.ActionRename, q.Action)
	assert.Equal(t, "{name}-{id}", q.RenameTemplate)
}

func TestSaveRoundTrip(t *testing.T) {
	doc, err := Load(strings.NewReader(docYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, doc))

	again, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.Pages[0].Children[0].ID, again.Pages[0].Children[0].ID)
}
