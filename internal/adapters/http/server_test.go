package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/pkg/adapters/memory"
	"github.com/atelier-tools/sift/pkg/domain"
)

func newTestServer(t *testing.T) (http.Handler, *memory.DocumentTree) {
	t.Helper()

	frame := &domain.Node{ID: "frame", Name: "Frame", Kind: domain.KindFrame, Layout: &domain.Layout{Width: 200}}
	home := &domain.Node{ID: "home", Name: "Home", Kind: domain.KindPage}
	home.AppendChild(frame)
	home.AppendChild(&domain.Node{ID: "label", Name: "Label", Kind: domain.KindText, Layout: &domain.Layout{Width: 40}})

	tree, err := memory.NewDocumentTree(&domain.Document{Name: "Doc", Pages: []*domain.Node{home}})
	require.NoError(t, err)

	broker := NewBroker()
	engine, err := sift.New(tree,
		sift.WithPresenter(broker),
		sift.WithPreferenceStore(memory.NewPreferenceStore()),
	)
	require.NoError(t, err)
	return NewHandler(engine, broker), tree
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestQueryEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec := postJSON(t, h, "/query", domain.Query{
		ElementKind: domain.ElementAny,
		Filters: []domain.Filter{
			{Key: domain.KeyWidth, Comparison: domain.CompareLargerThan, Value: "100"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.QueryResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "Frame", res.Elements[0].Name)
}

func TestQueryBadFilterIsUnprocessable(t *testing.T) {
	h, _ := newTestServer(t)

	rec := postJSON(t, h, "/query", domain.Query{
		Filters: []domain.Filter{
			{Key: domain.KeyLayerName, Comparison: domain.CompareFitsRegex, Value: "(["},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestQueryEmptySelectionConflicts(t *testing.T) {
	h, _ := newTestServer(t)

	rec := postJSON(t, h, "/query", domain.Query{Scope: domain.ScopeCurrentSelection})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestIdentifyEndpoint(t *testing.T) {
	h, tree := newTestServer(t)

	// Without a selection the inspection cannot run.
	rec := postJSON(t, h, "/identify", map[string]string{"key": "width"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	frame, err := tree.NodeByID("frame")
	require.NoError(t, err)
	require.NoError(t, tree.SetSelection(context.Background(), []*domain.Node{frame}))

	rec = postJSON(t, h, "/identify", map[string]string{"key": "width"})
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 200.0, body["value"])
}

func TestSelectEndpoint(t *testing.T) {
	h, tree := newTestServer(t)

	rec := postJSON(t, h, "/select", map[string]string{"id": "label"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	sel := tree.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "label", sel[0].ID)

	rec = postJSON(t, h, "/select", map[string]string{"id": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScopeRoundTrip(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/scope", bytes.NewReader([]byte(`{"scope":"all-pages"}`)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scope", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "all-pages", body["scope"])
}

func TestDocumentEndpoint(t *testing.T) {
	h, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/document", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var doc domain.Document
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Equal(t, "Doc", doc.Name)
	require.Len(t, doc.Pages, 1)
}

func TestHealthz(t *testing.T) {
	h, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBrokerFanOut(t *testing.T) {
	b := NewBroker()
	ch := b.subscribe()
	defer b.unsubscribe(ch)

	b.Notify("hello")
	ev := <-ch
	assert.Equal(t, "notify", ev.Name)

	// Download events carry metadata only, never the payload bytes.
	b.Download(domain.ExportFile{Name: "export.zip", Data: make([]byte, 1024)})
	ev = <-ch
	data, err := encodeEvent(ev)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"size":1024`)
	assert.NotContains(t, string(data), "AAAA")
}
