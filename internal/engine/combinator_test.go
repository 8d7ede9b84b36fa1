package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/internal/engine"
	"github.com/atelier-tools/sift/pkg/domain"
)

func nameFilter(value string, logic domain.Logic) domain.Filter {
	return domain.Filter{Key: domain.KeyLayerName, Comparison: domain.CompareContains, Value: value, Logic: logic}
}

func TestVerdictEmptyMatchesEverything(t *testing.T) {
	set, err := engine.CompileFilters(nil)
	require.NoError(t, err)
	assert.True(t, set.Empty())
	assert.True(t, set.Verdict(&domain.Node{Name: "anything"}))
}

func TestVerdictFoldIsSequential(t *testing.T) {
	// A OR B AND C must read ((A OR B) AND C), not A OR (B AND C).
	n := &domain.Node{Name: "alpha", Layout: &domain.Layout{Width: 5}}

	set, err := engine.CompileFilters([]domain.Filter{
		nameFilter("alpha", ""),                  // A: true
		nameFilter("beta", domain.LogicOr),       // B: false -> acc true
		{Key: domain.KeyWidth, Comparison: domain.CompareLargerThan, Value: "10", Logic: domain.LogicAnd}, // C: false
	})
	require.NoError(t, err)
	// A right-grouped A OR (B AND C) would pass here on A alone.
	assert.False(t, set.Verdict(n), "trailing AND false must sink the verdict")

	wide := &domain.Node{Name: "alpha", Layout: &domain.Layout{Width: 50}}
	assert.True(t, set.Verdict(wide))
}

func TestVerdictFirstFilterLogicIgnored(t *testing.T) {
	// The seed filter's own logic tag must not combine with anything.
	set, err := engine.CompileFilters([]domain.Filter{
		nameFilter("zeta", domain.LogicAnd),
	})
	require.NoError(t, err)
	assert.True(t, set.Verdict(&domain.Node{Name: "zeta-1"}))
	assert.False(t, set.Verdict(&domain.Node{Name: "eta"}))
}

func TestVerdictOrRescues(t *testing.T) {
	set, err := engine.CompileFilters([]domain.Filter{
		nameFilter("missing", ""),
		nameFilter("present", domain.LogicOr),
	})
	require.NoError(t, err)
	assert.True(t, set.Verdict(&domain.Node{Name: "present"}))
	assert.False(t, set.Verdict(&domain.Node{Name: "neither"}))
}

func TestCompileFiltersBadRegex(t *testing.T) {
	_, err := engine.CompileFilters([]domain.Filter{
		{Key: domain.KeyLayerName, Comparison: domain.CompareFitsRegex, Value: `([`},
	})
	require.Error(t, err)
}
