package observability

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/atelier-tools/sift/pkg/domain"
)

func TestHooksRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnQueryEnd(ctx, &domain.QueryEvent{
		Scope: domain.ScopeCurrentPage, Action: domain.ActionRename,
		Matched: 3, Duration: 20 * time.Millisecond,
	})
	hooks.OnAction(ctx, &domain.ActionEvent{Action: domain.ActionRename, Applied: 3})
	hooks.OnExportError(ctx, &domain.ExportErrorEvent{NodeID: "n1"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues("current-page", "rename")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.actions.WithLabelValues("rename")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportErrors))
}

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	// A second registration on the same registry must panic per the
	// MustRegister contract.
	assert.Panics(t, func() { New(reg) })
}
