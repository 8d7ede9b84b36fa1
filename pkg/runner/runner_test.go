package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/pkg/adapters/memory"
	"github.com/atelier-tools/sift/pkg/domain"
)

func newTestTree(t *testing.T) *memory.DocumentTree {
	t.Helper()
	home := &domain.Node{ID: "home", Name: "Home", Kind: domain.KindPage}
	home.AppendChild(&domain.Node{ID: "frame", Name: "Frame", Kind: domain.KindFrame, Layout: &domain.Layout{Width: 200}})
	home.AppendChild(&domain.Node{ID: "label", Name: "Label", Kind: domain.KindText, Layout: &domain.Layout{Width: 40}})
	tree, err := memory.NewDocumentTree(&domain.Document{Name: "Mockups", Pages: []*domain.Node{home}})
	require.NoError(t, err)
	return tree
}

// runSession feeds the input lines through a runner and returns the
// decoded outbound envelopes.
func runSession(t *testing.T, tree *memory.DocumentTree, lines ...string) []Envelope {
	t.Helper()
	var out bytes.Buffer
	r, err := New(tree,
		WithIO(strings.NewReader(strings.Join(lines, "\n")), &out),
		WithYieldInterval(0),
	)
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))

	var envs []Envelope
	dec := json.NewDecoder(&out)
	for dec.More() {
		var env Envelope
		require.NoError(t, dec.Decode(&env))
		envs = append(envs, env)
	}
	return envs
}

func typesOf(envs []Envelope) []string {
	out := make([]string, 0, len(envs))
	for _, e := range envs {
		out = append(out, e.Type)
	}
	return out
}

func findEnvelope(envs []Envelope, msgType string) (Envelope, bool) {
	for _, e := range envs {
		if e.Type == msgType {
			return e, true
		}
	}
	return Envelope{}, false
}

func TestRunAnnouncesScope(t *testing.T) {
	envs := runSession(t, newTestTree(t))
	require.NotEmpty(t, envs)
	assert.Equal(t, MsgScopeStart, envs[0].Type)
	assert.Equal(t, "current-page", envs[0].Payload["scope"])
}

func TestFilterElementsRoundTrip(t *testing.T) {
	envs := runSession(t, newTestTree(t),
		`{"type":"filter-elements","payload":{"element_kind":"ANY","filters":[{"key":"width","comparison":"is-larger-than","value":"100"}]}}`,
	)

	count, ok := findEnvelope(envs, MsgUpdateElementCount)
	require.True(t, ok, "got %v", typesOf(envs))
	assert.Equal(t, 1.0, count.Payload["count"])

	results, ok := findEnvelope(envs, MsgUpdateResults)
	require.True(t, ok)
	elements, ok := results.Payload["elements"].([]any)
	require.True(t, ok)
	require.Len(t, elements, 1)

	// Traversal progress precedes the results.
	_, ok = findEnvelope(envs, MsgLoading)
	assert.True(t, ok)
}

func TestInitializeCount(t *testing.T) {
	envs := runSession(t, newTestTree(t), `{"type":"initialize-count"}`)
	count, ok := findEnvelope(envs, MsgUpdateElementCount)
	require.True(t, ok, "got %v", typesOf(envs))
	assert.Equal(t, 2.0, count.Payload["count"], "every node counts with no filters")
}

func TestIdentifyWithSelection(t *testing.T) {
	tree := newTestTree(t)
	frame, err := tree.NodeByID("frame")
	require.NoError(t, err)
	require.NoError(t, tree.SetSelection(context.Background(), []*domain.Node{frame}))

	envs := runSession(t, tree, `{"type":"identify","payload":{"key":"width"}}`)
	env, ok := findEnvelope(envs, MsgIdentifyResult)
	require.True(t, ok, "got %v", typesOf(envs))
	assert.Equal(t, "width", env.Payload["key"])
	assert.Equal(t, 200.0, env.Payload["value"])
}

func TestIdentifyWithoutSelectionNotifies(t *testing.T) {
	envs := runSession(t, newTestTree(t), `{"type":"identify","payload":{"key":"width"}}`)
	env, ok := findEnvelope(envs, MsgNotify)
	require.True(t, ok)
	assert.Equal(t, "no selection found", env.Payload["message"])
	_, ok = findEnvelope(envs, MsgIdentifyResult)
	assert.False(t, ok)
}

func TestUpdateScope(t *testing.T) {
	envs := runSession(t, newTestTree(t), `{"type":"update-scope","payload":{"scope":"all-pages"}}`)
	require.GreaterOrEqual(t, len(envs), 2)
	assert.Equal(t, MsgScopeStart, envs[1].Type)
	assert.Equal(t, "all-pages", envs[1].Payload["scope"])
}

func TestGetFilename(t *testing.T) {
	envs := runSession(t, newTestTree(t), `{"type":"get-filename"}`)
	env, ok := findEnvelope(envs, MsgFilename)
	require.True(t, ok)
	assert.Equal(t, "Mockups", env.Payload["name"])
}

func TestSelectElement(t *testing.T) {
	tree := newTestTree(t)
	runSession(t, tree, `{"type":"select-element","payload":{"id":"label"}}`)
	sel := tree.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "label", sel[0].ID)
}

func TestUnknownMessageType(t *testing.T) {
	envs := runSession(t, newTestTree(t), `{"type":"mystery"}`)
	env, ok := findEnvelope(envs, MsgError)
	require.True(t, ok)
	assert.Contains(t, env.Payload["message"], "mystery")
}

func TestMalformedLines(t *testing.T) {
	envs := runSession(t, newTestTree(t),
		"",
		"not json",
		`{"payload":{}}`,
	)
	errors := 0
	for _, e := range envs {
		if e.Type == MsgError {
			errors++
		}
	}
	assert.Equal(t, 2, errors, "blank lines are skipped, bad ones reported")
}
